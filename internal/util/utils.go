package util

import "strconv"

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

// Window clamps an offset/limit pair to sane bounds. A limit below 1 means
// DefaultLimit, so limit=0 never yields an empty page on its own.
func Window(skip, limit int) (offset int, size int) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return skip, limit
}
