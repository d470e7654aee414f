package tabio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func gbkBytes(t *testing.T, s string) []byte {
	t.Helper()
	raw, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return raw
}

func TestDecodeText_UTF8(t *testing.T) {
	out, err := decodeText([]byte("héllo"), "utf-8")
	assert.NoError(t, err)
	assert.Equal(t, "héllo", out)

	_, err = decodeText([]byte{0xD6, 0xD0}, "utf-8")
	assert.Error(t, err)
}

func TestDecodeText_UTF8Sig(t *testing.T) {
	withBOM := append([]byte{0xEF, 0xBB, 0xBF}, []byte("id,name")...)

	out, err := decodeText(withBOM, "utf-8-sig")
	assert.NoError(t, err)
	assert.Equal(t, "id,name", out)

	// No marker is fine too, same as plain UTF-8.
	out, err = decodeText([]byte("id,name"), "utf-8-sig")
	assert.NoError(t, err)
	assert.Equal(t, "id,name", out)
}

func TestDecodeText_GBK(t *testing.T) {
	raw := gbkBytes(t, "姓名")

	out, err := decodeText(raw, "gbk")
	assert.NoError(t, err)
	assert.Equal(t, "姓名", out)

	// GBK bytes are not valid UTF-8.
	_, err = decodeText(raw, "utf-8")
	assert.Error(t, err)
}

func TestDecodeText_GB18030FourByte(t *testing.T) {
	// A four-byte GB18030 sequence (U+0080). GBK cannot decode it because
	// 0x30 is not a valid trail byte there.
	raw := []byte{0x81, 0x30, 0x81, 0x30}

	_, err := decodeText(raw, "gbk")
	assert.Error(t, err)

	out, err := decodeText(raw, "gb18030")
	assert.NoError(t, err)
	assert.Equal(t, "\u0080", out)
}

func TestDecodeText_GB2312Alias(t *testing.T) {
	out, err := decodeText(gbkBytes(t, "部门"), "gb2312")
	assert.NoError(t, err)
	assert.Equal(t, "部门", out)
}

func TestDecodeText_Latin1NeverFails(t *testing.T) {
	out, err := decodeText([]byte{0xFF, 0x2C, 0x81}, "latin-1")
	assert.NoError(t, err)
	assert.Equal(t, "\u00ff,\u0081", out)
}

func TestDecodeText_UnknownName(t *testing.T) {
	_, err := decodeText([]byte("x"), "utf-16")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown encoding")
}
