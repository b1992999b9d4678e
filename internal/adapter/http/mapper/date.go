package mapper

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatDateBR re-renders an ISO date (YYYY-MM-DD, optionally with a
// T-separated time suffix) as DD/MM/YYYY, zero-padding day and month.
// Nil and empty stay nil; anything that does not parse is returned
// unchanged. It never fails.
func FormatDateBR(date *string) *string {
	if date == nil || *date == "" {
		return nil
	}

	parts := strings.Split(strings.SplitN(*date, "T", 2)[0], "-")
	if len(parts) != 3 {
		return date
	}
	for _, part := range parts {
		if _, err := strconv.Atoi(part); err != nil {
			return date
		}
	}

	formatted := fmt.Sprintf("%s/%s/%s", pad2(parts[2]), pad2(parts[1]), parts[0])
	return &formatted
}

func pad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
