package lexicon

import (
	"sort"
	"strings"
)

func joinSorted(fields []string) string {
	sorted := append([]string(nil), fields...)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}
