package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseComparison(t *testing.T) {
	tests := []struct {
		symbol string
		want   Comparison
		sql    string
	}{
		{"<", LessThan, "<"},
		{"<=", LessOrEqual, "<="},
		{"=<", LessOrEqual, "<="},
		{"=", Equal, "="},
		{">=", GreaterOrEqual, ">="},
		{"=>", GreaterOrEqual, ">="},
		{">", GreaterThan, ">"},
	}
	for _, tt := range tests {
		got, ok := ParseComparison(tt.symbol)
		assert.True(t, ok, tt.symbol)
		assert.Equal(t, tt.want, got, tt.symbol)
		assert.Equal(t, tt.sql, got.SQL(), tt.symbol)
	}

	for _, bad := range []string{"", "name", "description", "==", "<>"} {
		got, ok := ParseComparison(bad)
		assert.False(t, ok, bad)
		assert.Equal(t, CompareNone, got)
		assert.Empty(t, got.SQL())
	}
}
