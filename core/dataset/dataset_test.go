package dataset_test

import (
	"testing"

	"rosterfill/core/dataset"

	"github.com/stretchr/testify/assert"
)

func TestNew_FillsMissingCells(t *testing.T) {
	ds := dataset.New(
		[]string{"id", "name", "dept"},
		[]dataset.Row{
			{"id": "1", "name": "Alice"},
			{"id": "2"},
			nil,
		},
	)

	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, 3, ds.Columns())
	assert.Equal(t, "", ds.Rows[0]["dept"])
	assert.Equal(t, "", ds.Rows[1]["name"])
	assert.Equal(t, "Alice", ds.Rows[0]["name"])
	assert.Equal(t, dataset.Row{"id": "", "name": "", "dept": ""}, ds.Rows[2])
}

func TestNew_KeepsExtraRowKeys(t *testing.T) {
	ds := dataset.New(
		[]string{"id"},
		[]dataset.Row{{"id": "1", "ghost": "x"}},
	)

	assert.Equal(t, "x", ds.Rows[0]["ghost"])
	assert.False(t, ds.HasHeader("ghost"))
}

func TestHasHeader(t *testing.T) {
	ds := dataset.New([]string{"Name", "dept"}, nil)

	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{"Exact", "Name", true},
		{"CaseSensitive", "name", false},
		{"Absent", "id", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ds.HasHeader(tt.header))
		})
	}
}

func TestNew_Empty(t *testing.T) {
	ds := dataset.New(nil, nil)

	assert.Equal(t, 0, ds.Len())
	assert.Equal(t, 0, ds.Columns())
	assert.False(t, ds.HasHeader("anything"))
}
