package admin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2024, 3, 2, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "02/03/2024, 09:05", FormatDateTime(ts))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 12, 25, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "25/12/2024", FormatDate(ts))
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{532, "532 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{2359296, "2.25 MB"},
		{3 * 1024 * 1024 * 1024, "3 GB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HumanSize(tt.bytes), "bytes=%d", tt.bytes)
	}
}

func TestFileIcon(t *testing.T) {
	assert.Equal(t, "🖼️", FileIcon("image/png"))
	assert.Equal(t, "📄", FileIcon("application/pdf"))
	assert.Equal(t, "📎", FileIcon("application/zip"))
	assert.Equal(t, "📎", FileIcon(""))
}
