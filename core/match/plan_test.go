package match_test

import (
	"testing"

	"rosterfill/core/match"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlan_OverwriteExistingColumn(t *testing.T) {
	plan := match.BuildPlan(
		[]string{"uid", "dept"},
		[]match.Mapping{{Source: "name", Destination: "dept", Mode: match.ModeOverwrite}},
	)

	assert.Equal(t, []string{"uid", "dept"}, plan.Headers)
	assert.Equal(t, []match.ColumnOp{{Source: "name", Write: "dept"}}, plan.Ops)
	assert.Empty(t, plan.Added)
}

func TestBuildPlan_AppendDerivesNameFromSource(t *testing.T) {
	tests := []struct {
		name    string
		mapping match.Mapping
	}{
		{"EmptyDestination", match.Mapping{Source: "phone", Mode: match.ModeOverwrite}},
		{"AppendMode", match.Mapping{Source: "phone", Mode: match.ModeAppend}},
		// Append mode wins over an explicit destination.
		{"AppendModeWithDestination", match.Mapping{Source: "phone", Destination: "uid", Mode: match.ModeAppend}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := match.BuildPlan([]string{"uid"}, []match.Mapping{tt.mapping})

			assert.Equal(t, []string{"uid", "phone"}, plan.Headers)
			assert.Equal(t, []match.ColumnOp{{Source: "phone", Write: "phone"}}, plan.Ops)
			assert.Equal(t, []string{"phone"}, plan.Added)
		})
	}
}

func TestBuildPlan_AppendCollisionSuffixes(t *testing.T) {
	plan := match.BuildPlan(
		[]string{"uid", "name"},
		[]match.Mapping{{Source: "name", Mode: match.ModeAppend}},
	)

	assert.Equal(t, []string{"uid", "name", "name_fill1"}, plan.Headers)
	assert.Equal(t, []match.ColumnOp{{Source: "name", Write: "name_fill1"}}, plan.Ops)
}

func TestBuildPlan_RepeatedCollisionsIncrement(t *testing.T) {
	// The target already carries name and name_fill1; two more appends of
	// the same source must step past both and then past each other.
	plan := match.BuildPlan(
		[]string{"name", "name_fill1"},
		[]match.Mapping{
			{Source: "name", Mode: match.ModeAppend},
			{Source: "name", Mode: match.ModeAppend},
		},
	)

	assert.Equal(t, []string{"name", "name_fill1", "name_fill2", "name_fill3"}, plan.Headers)
	assert.Equal(t, []string{"name_fill2", "name_fill3"}, plan.Added)
}

func TestBuildPlan_SkipsInertEntries(t *testing.T) {
	plan := match.BuildPlan(
		[]string{"uid"},
		[]match.Mapping{
			{Source: "", Destination: "uid", Mode: match.ModeOverwrite},
			{Source: "name", Mode: match.ModeAppend},
			{Source: ""},
		},
	)

	require.Len(t, plan.Ops, 1)
	assert.Equal(t, match.ColumnOp{Source: "name", Write: "name"}, plan.Ops[0])
}

func TestBuildPlan_AppendedColumnsFollowEntryOrder(t *testing.T) {
	plan := match.BuildPlan(
		[]string{"uid", "dept"},
		[]match.Mapping{
			{Source: "phone", Mode: match.ModeAppend},
			{Source: "name", Destination: "dept", Mode: match.ModeOverwrite},
			{Source: "email", Mode: match.ModeAppend},
		},
	)

	assert.Equal(t, []string{"uid", "dept", "phone", "email"}, plan.Headers)
	assert.Equal(t, []string{"phone", "email"}, plan.Added)
	assert.Equal(t, []match.ColumnOp{
		{Source: "phone", Write: "phone"},
		{Source: "name", Write: "dept"},
		{Source: "email", Write: "email"},
	}, plan.Ops)
}

func TestBuildPlan_DuplicateOverwritesKeptInPlan(t *testing.T) {
	// Two entries overwriting the same column both stay in the plan; Run
	// applies them in order so the later one wins per row. No error.
	plan := match.BuildPlan(
		[]string{"uid", "dept"},
		[]match.Mapping{
			{Source: "name", Destination: "dept", Mode: match.ModeOverwrite},
			{Source: "unit", Destination: "dept", Mode: match.ModeOverwrite},
		},
	)

	assert.Equal(t, []string{"uid", "dept"}, plan.Headers)
	require.Len(t, plan.Ops, 2)
	assert.Equal(t, "name", plan.Ops[0].Source)
	assert.Equal(t, "unit", plan.Ops[1].Source)
	assert.Equal(t, []string{"dept"}, plan.DuplicateWrites())
}

func TestPlan_DuplicateWrites(t *testing.T) {
	tests := []struct {
		name string
		ops  []match.ColumnOp
		want []string
	}{
		{
			"NoDuplicates",
			[]match.ColumnOp{{Source: "a", Write: "x"}, {Source: "b", Write: "y"}},
			nil,
		},
		{
			"OneDuplicateReportedOnce",
			[]match.ColumnOp{{Source: "a", Write: "x"}, {Source: "b", Write: "x"}, {Source: "c", Write: "x"}},
			[]string{"x"},
		},
		{
			"FirstAppearanceOrder",
			[]match.ColumnOp{
				{Source: "a", Write: "y"},
				{Source: "b", Write: "x"},
				{Source: "c", Write: "y"},
				{Source: "d", Write: "x"},
			},
			[]string{"y", "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := &match.Plan{Ops: tt.ops}
			assert.Equal(t, tt.want, plan.DuplicateWrites())
		})
	}
}

func TestBuildPlan_CopiesTargetHeaders(t *testing.T) {
	target := []string{"uid", "dept"}
	plan := match.BuildPlan(target, []match.Mapping{{Source: "phone", Mode: match.ModeAppend}})

	plan.Headers[0] = "mutated"
	assert.Equal(t, []string{"uid", "dept"}, target)
}
