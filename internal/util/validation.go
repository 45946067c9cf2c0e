package util

import (
	"strconv"
	"strings"
)

// ParseID parses a positive integer identifier as sent in query strings.
func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
