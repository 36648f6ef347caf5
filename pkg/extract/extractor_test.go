package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_PlainTextVerbatim(t *testing.T) {
	text, err := Extract([]byte("hello\nworld"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", text)
}

func TestExtract_StripsMediaTypeParameters(t *testing.T) {
	text, err := Extract([]byte("content"), "text/plain; charset=utf-8")
	require.NoError(t, err)
	assert.Equal(t, "content", text)
}

func TestExtract_UnsupportedMediaType(t *testing.T) {
	for _, mt := range []string{"image/png", "application/json", "", "application/octet-stream"} {
		_, err := Extract([]byte("data"), mt)
		assert.ErrorIs(t, err, ErrUnsupportedMediaType, "media type %q", mt)
	}
}

func TestExtract_CorruptPDF(t *testing.T) {
	_, err := Extract([]byte("definitely not a pdf"), "application/pdf")
	assert.ErrorIs(t, err, ErrExtraction)
}

func TestExtract_TruncatedPDFHeader(t *testing.T) {
	_, err := Extract([]byte("%PDF-1.4\ngarbage"), "application/pdf")
	assert.ErrorIs(t, err, ErrExtraction)
}
