package files

import (
	"os"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortEntries puts directories first, then files, each group ordered
// case-insensitively with numeric runs compared by value.
func SortEntries(entries []os.DirEntry) {
	// A Collator is not safe for concurrent use.
	c := collate.New(language.Und, collate.IgnoreCase, collate.Numeric)
	slices.SortStableFunc(entries, func(a, b os.DirEntry) int {
		if a.IsDir() != b.IsDir() {
			if a.IsDir() {
				return -1
			}
			return 1
		}
		return c.CompareString(a.Name(), b.Name())
	})
}
