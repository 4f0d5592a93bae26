package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 5, ParseIntDefault("", 5))
	assert.Equal(t, 7, ParseIntDefault("7", 5))
	assert.Equal(t, 5, ParseIntDefault("seven", 5))
}

func TestWindow(t *testing.T) {
	tests := []struct {
		skip, limit  int
		offset, size int
	}{
		{0, 0, 0, DefaultLimit},
		{0, -5, 0, DefaultLimit},
		{-3, 10, 0, 10},
		{20, 5, 20, 5},
		{0, MaxLimit + 1, 0, MaxLimit},
	}
	for _, tt := range tests {
		offset, size := Window(tt.skip, tt.limit)
		assert.Equal(t, tt.offset, offset)
		assert.Equal(t, tt.size, size)
	}
}
