package task

// Status filter values.
const (
	StatusAll      = "all"
	StatusPending  = "pending"
	StatusComplete = "complete"
)

// PriorityAll disables the priority clause of a filter.
const PriorityAll = "all"

// Filter is a stateless conjunction of status, priority, and tag clauses.
// The zero value is not usable; construct with NewFilter.
type Filter struct {
	Status   string `json:"status"`
	Priority string `json:"priority"`
	Tag      string `json:"tag"`
}

// NewFilter returns a filter with all clauses disabled.
func NewFilter() Filter {
	return Filter{Status: StatusAll, Priority: PriorityAll}
}

// Matches reports whether the task passes every active clause.
func (f Filter) Matches(t *Task) bool {
	switch f.Status {
	case StatusPending:
		if t.Completed {
			return false
		}
	case StatusComplete:
		if !t.Completed {
			return false
		}
	}

	if f.Priority != PriorityAll && t.Priority != Priority(f.Priority) {
		return false
	}

	if f.Tag != "" && !containsString(t.Tags, f.Tag) {
		return false
	}

	return true
}

// Active reports whether any clause deviates from the defaults.
func (f Filter) Active() bool {
	return f.Status != StatusAll || f.Priority != PriorityAll || f.Tag != ""
}

// Reset disables all clauses.
func (f *Filter) Reset() {
	*f = NewFilter()
}
