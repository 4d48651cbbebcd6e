package membership

import (
	"strconv"
	"strings"
)

// FormatIDs renders ids as a comma-separated list for messages.
func FormatIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ", ")
}
