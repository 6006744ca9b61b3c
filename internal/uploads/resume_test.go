package uploads

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateContentType_AllowList(t *testing.T) {
	allowed := []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
	for _, ct := range allowed {
		assert.NoError(t, ValidateContentType(ct), ct)
	}

	rejected := []string{
		"image/png",
		"text/plain",
		"application/zip",
		"",
	}
	for _, ct := range rejected {
		err := ValidateContentType(ct)
		require.Error(t, err, ct)
		assert.True(t, errors.Is(err, ErrUnsupportedType), ct)
	}
}

func TestAllowedResumeTypes_Extensions(t *testing.T) {
	assert.Equal(t, ".pdf", allowedResumeTypes["application/pdf"])
	assert.Equal(t, ".doc", allowedResumeTypes["application/msword"])
	assert.Equal(t, ".docx", allowedResumeTypes["application/vnd.openxmlformats-officedocument.wordprocessingml.document"])
}

// Progress reports climb chunk by chunk and finish at the full size.
func TestCopyInChunks_ProgressReachesTotal(t *testing.T) {
	size := int64(chunkSize*2 + chunkSize/2)
	src := bytes.Repeat([]byte("a"), int(size))

	var dst bytes.Buffer
	var reports []int64
	written, err := copyInChunks(&dst, bytes.NewReader(src), size, func(written, total int64) {
		assert.Equal(t, size, total)
		reports = append(reports, written)
	})

	require.NoError(t, err)
	assert.Equal(t, size, written)
	assert.Equal(t, size, int64(dst.Len()))

	require.NotEmpty(t, reports)
	for i := 1; i < len(reports); i++ {
		assert.GreaterOrEqual(t, reports[i], reports[i-1])
	}
	assert.Equal(t, size, reports[len(reports)-1])
}

func TestCopyInChunks_NilProgressAndUnknownSize(t *testing.T) {
	src := bytes.Repeat([]byte("b"), chunkSize/3)

	var dst bytes.Buffer
	written, err := copyInChunks(&dst, bytes.NewReader(src), 0, nil)

	require.NoError(t, err)
	assert.Equal(t, int64(len(src)), written)
}
