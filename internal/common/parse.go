package common

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHeight converts a decimal block height string into a number.
// Surrounding whitespace is ignored.
func ParseHeight(val string) (uint64, error) {
	str := strings.TrimSpace(val)
	if str == "" {
		return 0, fmt.Errorf("empty height")
	}

	height, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid height %q: %w", val, err)
	}

	return height, nil
}

// ParseOptionalHeight parses a height if val is non-empty, returning nil otherwise.
func ParseOptionalHeight(val string) (*uint64, error) {
	if strings.TrimSpace(val) == "" {
		return nil, nil
	}

	height, err := ParseHeight(val)
	if err != nil {
		return nil, err
	}

	return &height, nil
}

func ToLowerWithTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
