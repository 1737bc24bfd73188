package task

import (
	"fmt"
	"sort"
	"strings"
)

// SortMode selects one of the four total orders over tasks.
type SortMode string

const (
	SortPriority  SortMode = "priority"
	SortAlpha     SortMode = "alpha"
	SortDateAdded SortMode = "date_added"
	SortManual    SortMode = "manual"
)

// DefaultSortMode is the order used when none has been chosen.
const DefaultSortMode = SortDateAdded

// SortModes returns the valid mode names in lexical order.
func SortModes() []string {
	return []string{string(SortAlpha), string(SortDateAdded), string(SortManual), string(SortPriority)}
}

// ParseSortMode validates a mode name.
func ParseSortMode(s string) (SortMode, error) {
	switch m := SortMode(strings.ToLower(strings.TrimSpace(s))); m {
	case SortPriority, SortAlpha, SortDateAdded, SortManual:
		return m, nil
	default:
		return "", fmt.Errorf("invalid sort mode %q: must be %s", s, strings.Join(SortModes(), ", "))
	}
}

var priorityRank = map[Priority]int{
	PriorityLow:    1,
	PriorityMedium: 2,
	PriorityHigh:   3,
}

// Sort orders tasks in place under the given mode. Every mode ends its
// tie-break chain at the unique task id, so the result is deterministic.
func Sort(tasks []Task, mode SortMode) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := &tasks[i], &tasks[j]
		switch mode {
		case SortPriority:
			if priorityRank[a.Priority] != priorityRank[b.Priority] {
				return priorityRank[a.Priority] > priorityRank[b.Priority]
			}
			if a.Order != b.Order {
				return a.Order < b.Order
			}
			return a.ID < b.ID
		case SortAlpha:
			at, bt := strings.ToLower(a.Title), strings.ToLower(b.Title)
			if at != bt {
				return at < bt
			}
			if a.Order != b.Order {
				return a.Order < b.Order
			}
			return a.ID < b.ID
		case SortManual:
			if a.Order != b.Order {
				return a.Order < b.Order
			}
			return a.ID < b.ID
		default: // date_added: newest first
			return a.ID > b.ID
		}
	})
}
