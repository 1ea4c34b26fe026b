package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page, size int
		offset     int
		limit      int
	}{
		{name: "first page", page: 1, size: 10, offset: 0, limit: 10},
		{name: "third page", page: 3, size: 10, offset: 20, limit: 10},
		{name: "zero page clamps to first", page: 0, size: 10, offset: 0, limit: 10},
		{name: "negative page clamps to first", page: -4, size: 5, offset: 0, limit: 5},
		{name: "zero size clamps to one", page: 2, size: 0, offset: 1, limit: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			offset, limit := Paginate(tt.page, tt.size)
			assert.Equal(t, tt.offset, offset)
			assert.Equal(t, tt.limit, limit)
		})
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "image limit", bytes: 5 << 20, expected: "5.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}
