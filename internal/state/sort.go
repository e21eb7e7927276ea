package state

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// SortMode selects how a listing orders its entries.
type SortMode int

const (
	// SortUngrouped orders every entry by case-folded name.
	SortUngrouped SortMode = iota
	// SortDirectoriesFirst puts directories before everything else,
	// each group ordered by case-folded name.
	SortDirectoriesFirst
)

// Next returns the following mode in the cycle.
func (m SortMode) Next() SortMode {
	switch m {
	case SortUngrouped:
		return SortDirectoriesFirst
	default:
		return SortUngrouped
	}
}

func (m SortMode) String() string {
	switch m {
	case SortDirectoriesFirst:
		return "dirs-first"
	default:
		return "ungrouped"
	}
}

// ParseSortMode accepts the names produced by String.
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ungrouped", "name":
		return SortUngrouped, nil
	case "dirs-first", "directories-first", "dirs":
		return SortDirectoriesFirst, nil
	default:
		return SortUngrouped, fmt.Errorf("unknown sort mode %q", s)
	}
}

type sortKey struct {
	entry  FileEntry
	folded string
}

// sortEntries returns a sorted copy of entries. Ties keep the input order,
// which callers pass in read order.
func sortEntries(entries []FileEntry, mode SortMode) []FileEntry {
	caser := cases.Fold()
	keys := make([]sortKey, len(entries))
	for i, e := range entries {
		keys[i] = sortKey{entry: e, folded: caser.String(e.Name)}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		if mode == SortDirectoriesFirst && keys[i].entry.IsDir != keys[j].entry.IsDir {
			return keys[i].entry.IsDir
		}
		return keys[i].folded < keys[j].folded
	})

	sorted := make([]FileEntry, len(keys))
	for i, k := range keys {
		sorted[i] = k.entry
	}
	return sorted
}
