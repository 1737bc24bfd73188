package task

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Priority represents a task priority level.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Recurrence represents a task recurrence rule.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "NONE"
	RecurrenceDaily   Recurrence = "DAILY"
	RecurrenceWeekly  Recurrence = "WEEKLY"
	RecurrenceMonthly Recurrence = "MONTHLY"
)

// Date layouts for the two due-value formats.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

// MaxTags is the maximum number of tags a task may carry.
const MaxTags = 5

var tagPattern = regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`)

// Task represents a single todo item.
type Task struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Completed    bool       `json:"completed"`
	Priority     Priority   `json:"priority"`
	Tags         []string   `json:"tags"`
	DueDate      string     `json:"due_date,omitempty"`
	DueDateTime  string     `json:"due_datetime,omitempty"`
	Recurrence   Recurrence `json:"recurrence"`
	ParentID     int        `json:"parent_id,omitempty"`
	ReminderSent bool       `json:"reminder_sent"`
	Order        int        `json:"order"`
}

// DueTime parses the task's due datetime as local wall-clock time.
// Returns false if no due datetime is set or it does not parse.
func (t *Task) DueTime() (time.Time, bool) {
	if t.DueDateTime == "" {
		return time.Time{}, false
	}
	dt, err := time.ParseInLocation(DateTimeLayout, t.DueDateTime, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return dt, true
}

// ValidatePriority normalizes a priority value. Empty input defaults to
// MEDIUM; unrecognized values are an error.
func ValidatePriority(s string) (Priority, error) {
	if strings.TrimSpace(s) == "" {
		return PriorityMedium, nil
	}
	switch p := Priority(strings.ToUpper(strings.TrimSpace(s))); p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p, nil
	default:
		return "", fmt.Errorf("invalid priority %q: must be HIGH, MEDIUM, or LOW", s)
	}
}

// ValidateTags normalizes a tag list. The count limit applies to the input
// as supplied, before any normalization or deduplication.
func ValidateTags(tags []string) ([]string, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	if len(tags) > MaxTags {
		return nil, fmt.Errorf("maximum %d tags allowed, got %d", MaxTags, len(tags))
	}

	var validated []string
	for _, tag := range tags {
		normalized := strings.ToLower(strings.TrimSpace(tag))
		if normalized == "" {
			continue
		}
		if !tagPattern.MatchString(normalized) {
			return nil, fmt.Errorf("invalid tag %q: tags must be lowercase with hyphens (e.g. %q)", tag, "work-projects")
		}
		if !containsString(validated, normalized) {
			validated = append(validated, normalized)
		}
	}
	return validated, nil
}

// ValidateDueDate checks the legacy date-only due value. Malformed input is
// treated as absent, never an error.
func ValidateDueDate(s string) string {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return ""
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return ""
	}
	return s
}

// ValidateDueDateTime checks a date+time due value and re-serializes it in
// canonical minute-resolution form. Malformed input is treated as absent.
func ValidateDueDateTime(s string) string {
	if s == "" {
		return ""
	}
	dt, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return ""
	}
	return dt.Format(DateTimeLayout)
}

// ValidateRecurrence normalizes a recurrence rule. Empty input defaults to
// NONE; unrecognized values are an error.
func ValidateRecurrence(s string) (Recurrence, error) {
	if strings.TrimSpace(s) == "" {
		return RecurrenceNone, nil
	}
	switch r := Recurrence(strings.ToUpper(strings.TrimSpace(s))); r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return r, nil
	default:
		return "", fmt.Errorf("invalid recurrence %q: must be NONE, DAILY, WEEKLY, or MONTHLY", s)
	}
}

// CoerceRecurrence maps any stored value onto a valid rule, degrading
// unknown values to NONE. Used on the lenient snapshot-load path; returns
// false when the value had to be coerced.
func CoerceRecurrence(s string) (Recurrence, bool) {
	r, err := ValidateRecurrence(s)
	if err != nil {
		return RecurrenceNone, false
	}
	return r, true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
