// Package service orchestrates the task store, filtering, sorting,
// search, recurrence, and persistence behind a single command/query API.
//
// A Manager is single-caller and synchronous: one command runs to
// completion before the next is issued. Mutating commands validate all
// input first and only then touch state, so a failed command leaves the
// collection exactly as it was. After every successful mutation the
// registered change listeners run synchronously in registration order;
// a listener failure or panic is logged and never aborts the command.
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/taskline/taskline/internal/notify"
	"github.com/taskline/taskline/internal/recur"
	"github.com/taskline/taskline/internal/snapshot"
	"github.com/taskline/taskline/internal/task"
)

// ReminderWindow is how far ahead of now a due task triggers a reminder.
const ReminderWindow = 15 * time.Minute

// Listener is invoked after every mutating command. Errors are logged and
// swallowed.
type Listener func() error

// Manager owns the task collection and the persistent view state.
type Manager struct {
	list      *task.List
	path      string
	search    string
	filter    task.Filter
	sort      task.SortMode
	listeners []Listener
	logger    *log.Logger

	now func() time.Time
}

// New creates a manager persisting to snapshotPath. Call Load to restore
// previously saved state.
func New(snapshotPath string, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		list:   task.NewList(),
		path:   snapshotPath,
		filter: task.NewFilter(),
		sort:   task.DefaultSortMode,
		logger: logger,
		now:    time.Now,
	}
}

// AddListener registers a change listener. Listeners run synchronously in
// registration order after every mutating command.
func (m *Manager) AddListener(l Listener) {
	m.listeners = append(m.listeners, l)
}

// notifyChange invokes every listener best-effort: failures and panics
// are logged so persistence or notification problems never abort the
// command that triggered them.
func (m *Manager) notifyChange() {
	for _, l := range m.listeners {
		func() {
			defer func() {
				if r := recover(); r != nil {
					m.logger.Warn("change listener panicked", "panic", r)
				}
			}()
			if err := l(); err != nil {
				m.logger.Warn("change listener failed", "err", err)
			}
		}()
	}
}

// AddOptions holds the fields for a new task. Title is required;
// everything else is optional raw input run through field validation.
type AddOptions struct {
	Title       string
	Description string
	Priority    string
	Tags        []string
	DueDate     string
	DueDateTime string
	Recurrence  string
}

// Add validates the input, stores a new task under the next sequential
// id, and returns it.
func (m *Manager) Add(opts AddOptions) (task.Task, error) {
	if strings.TrimSpace(opts.Title) == "" {
		return task.Task{}, validationf("title cannot be empty")
	}

	priority, err := task.ValidatePriority(opts.Priority)
	if err != nil {
		return task.Task{}, invalid(err)
	}
	tags, err := task.ValidateTags(opts.Tags)
	if err != nil {
		return task.Task{}, invalid(err)
	}
	recurrence, err := task.ValidateRecurrence(opts.Recurrence)
	if err != nil {
		return task.Task{}, invalid(err)
	}

	// The title keeps its whitespace as supplied; only emptiness is checked.
	t := m.list.Add(task.Task{
		Title:       opts.Title,
		Description: strings.TrimSpace(opts.Description),
		Priority:    priority,
		Tags:        tags,
		DueDate:     task.ValidateDueDate(opts.DueDate),
		DueDateTime: task.ValidateDueDateTime(opts.DueDateTime),
		Recurrence:  recurrence,
	})

	m.notifyChange()
	return t, nil
}

// Task returns a single task by id.
func (m *Manager) Task(id int) (task.Task, bool) {
	t := m.list.Get(id)
	if t == nil {
		return task.Task{}, false
	}
	return *t, true
}

// AllTasks returns every task in insertion order, ignoring the active
// search, filter, and sort.
func (m *Manager) AllTasks() []task.Task {
	return m.list.All()
}

// Tasks returns the current view: all tasks narrowed by the active search
// and filter, then ordered by the active sort mode.
func (m *Manager) Tasks() []task.Task {
	tasks := m.list.All()

	if m.search != "" {
		matched := tasks[:0]
		for _, t := range tasks {
			if strings.Contains(strings.ToLower(t.Title), m.search) ||
				strings.Contains(strings.ToLower(t.Description), m.search) {
				matched = append(matched, t)
			}
		}
		tasks = matched
	}

	filtered := tasks[:0]
	for i := range tasks {
		if m.filter.Matches(&tasks[i]) {
			filtered = append(filtered, tasks[i])
		}
	}
	tasks = filtered

	task.Sort(tasks, m.sort)
	return tasks
}

// UpdateOptions holds a partial update. Nil pointer fields are left
// unchanged. Tags follows the same convention with a nil slice; a non-nil
// empty slice clears the tags.
type UpdateOptions struct {
	Title       *string
	Description *string
	Priority    *string
	Tags        []string
	DueDate     *string
	DueDateTime *string
	Recurrence  *string
}

// Update applies a partial update to the task with the given id. Every
// supplied field is validated before any of them is applied. Changing the
// due datetime resets the reminder latch.
func (m *Manager) Update(id int, opts UpdateOptions) (task.Task, error) {
	t := m.list.Get(id)
	if t == nil {
		return task.Task{}, &NotFoundError{ID: id}
	}

	if opts.Title != nil && strings.TrimSpace(*opts.Title) == "" {
		return task.Task{}, validationf("title cannot be empty")
	}

	var priority task.Priority
	if opts.Priority != nil {
		p, err := task.ValidatePriority(*opts.Priority)
		if err != nil {
			return task.Task{}, invalid(err)
		}
		priority = p
	}
	var tags []string
	if opts.Tags != nil {
		v, err := task.ValidateTags(opts.Tags)
		if err != nil {
			return task.Task{}, invalid(err)
		}
		tags = v
	}
	var recurrence task.Recurrence
	if opts.Recurrence != nil {
		r, err := task.ValidateRecurrence(*opts.Recurrence)
		if err != nil {
			return task.Task{}, invalid(err)
		}
		recurrence = r
	}

	// All input is valid; apply.
	if opts.Title != nil {
		t.Title = *opts.Title
	}
	if opts.Description != nil {
		t.Description = strings.TrimSpace(*opts.Description)
	}
	if opts.Priority != nil {
		t.Priority = priority
	}
	if opts.Tags != nil {
		t.Tags = tags
	}
	if opts.DueDate != nil {
		t.DueDate = task.ValidateDueDate(*opts.DueDate)
	}
	if opts.DueDateTime != nil {
		next := task.ValidateDueDateTime(*opts.DueDateTime)
		if next != t.DueDateTime {
			t.ReminderSent = false
		}
		t.DueDateTime = next
	}
	if opts.Recurrence != nil {
		t.Recurrence = recurrence
	}

	m.notifyChange()
	return *t, nil
}

// Delete removes a task. Listeners fire only when something was removed.
func (m *Manager) Delete(id int) bool {
	removed := m.list.Delete(id)
	if removed {
		m.notifyChange()
	}
	return removed
}

// Complete marks a task complete. On the incomplete-to-complete
// transition of a recurring task with a due datetime, a successor task is
// spawned with the due value advanced by one recurrence unit and its
// parent reference set. Completing an already complete task is a no-op
// that returns true without re-triggering recurrence.
func (m *Manager) Complete(id int) bool {
	t := m.list.Get(id)
	if t == nil {
		return false
	}
	if t.Completed {
		return true
	}

	t.Completed = true

	if t.Recurrence != task.RecurrenceNone && t.DueDateTime != "" {
		if next, ok := recur.Next(t.DueDateTime, t.Recurrence); ok {
			m.list.Add(task.Task{
				Title:       t.Title,
				Description: t.Description,
				Priority:    t.Priority,
				Tags:        append([]string(nil), t.Tags...),
				DueDateTime: next,
				Recurrence:  t.Recurrence,
				ParentID:    t.ID,
			})
		}
	}

	m.notifyChange()
	return true
}

// Incomplete marks a task incomplete. No recurrence interaction.
func (m *Manager) Incomplete(id int) bool {
	if !m.list.MarkIncomplete(id) {
		return false
	}
	m.notifyChange()
	return true
}

// Search sets the active search term and returns the resulting view. The
// term matches case-insensitively against title or description.
func (m *Manager) Search(keyword string) ([]task.Task, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, validationf("please provide a search keyword")
	}
	m.search = strings.ToLower(keyword)
	return m.Tasks(), nil
}

// ClearSearch drops the active search term.
func (m *Manager) ClearSearch() {
	m.search = ""
}

// SearchTerm returns the active search term, empty when none.
func (m *Manager) SearchTerm() string {
	return m.search
}

// FilterBy updates one clause of the persistent filter and returns the
// resulting view. filterType is one of status, priority, or tag.
func (m *Manager) FilterBy(filterType, value string) ([]task.Task, error) {
	value = strings.ToLower(strings.TrimSpace(value))

	switch filterType {
	case "status":
		switch value {
		case task.StatusAll, task.StatusPending, task.StatusComplete:
			m.filter.Status = value
		default:
			return nil, validationf("invalid status filter %q: must be all, pending, or complete", value)
		}
	case "priority":
		switch value {
		case "all":
			m.filter.Priority = task.PriorityAll
		case "high", "medium", "low":
			m.filter.Priority = strings.ToUpper(value)
		default:
			return nil, validationf("invalid priority filter %q: must be all, HIGH, MEDIUM, or LOW", value)
		}
	case "tag":
		if value == "" {
			return nil, validationf("please provide a tag name")
		}
		m.filter.Tag = value
	default:
		return nil, validationf("invalid filter type %q: must be status, priority, or tag", filterType)
	}

	return m.Tasks(), nil
}

// ClearFilters resets the filter and search to defaults and returns all
// tasks under the current sort.
func (m *Manager) ClearFilters() []task.Task {
	m.search = ""
	m.filter.Reset()
	return m.Tasks()
}

// Filter returns the current filter state.
func (m *Manager) Filter() task.Filter {
	return m.filter
}

// SortBy switches the sort mode and returns the resorted view. Switching
// modes never touches task data.
func (m *Manager) SortBy(mode string) ([]task.Task, error) {
	parsed, err := task.ParseSortMode(mode)
	if err != nil {
		return nil, invalid(err)
	}
	m.sort = parsed
	return m.Tasks(), nil
}

// SortMode returns the current sort mode.
func (m *Manager) SortMode() task.SortMode {
	return m.sort
}

// Move adjusts a task's manual-order value: up decreases it, down
// increases it. Only the manual sort mode consults this value.
func (m *Manager) Move(id int, direction string) (task.Task, error) {
	var delta int
	switch direction {
	case "up":
		delta = -1
	case "down":
		delta = 1
	default:
		return task.Task{}, validationf("direction must be %q or %q", "up", "down")
	}

	t := m.list.Get(id)
	if t == nil {
		return task.Task{}, &NotFoundError{ID: id}
	}
	t.Order += delta

	m.notifyChange()
	return *t, nil
}

// CheckReminders scans incomplete tasks with an unsent reminder and a due
// datetime, notifying for each one due within the reminder window. The
// reminder latch is set whether or not delivery succeeded, so a task is
// never notified twice.
func (m *Manager) CheckReminders(n notify.Notifier) int {
	now := m.now()
	threshold := now.Add(ReminderWindow)

	reminded := 0
	for _, t := range m.list.All() {
		if t.Completed || t.ReminderSent || t.DueDateTime == "" {
			continue
		}
		due, ok := t.DueTime()
		if !ok {
			continue
		}
		if due.Before(now) || due.After(threshold) {
			continue
		}

		message := fmt.Sprintf("%q is due at %s", t.Title, timePart(t.DueDateTime))
		m.safeNotify(n, "Task Due Soon", message)

		if stored := m.list.Get(t.ID); stored != nil {
			stored.ReminderSent = true
		}
		reminded++
		m.notifyChange()
	}
	return reminded
}

// safeNotify shields the scan from a misbehaving notifier: a panic is
// treated as not delivered.
func (m *Manager) safeNotify(n notify.Notifier, title, message string) (delivered bool) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Warn("notifier panicked", "panic", r)
			delivered = false
		}
	}()
	return n.Notify(title, message)
}

// Overdue returns incomplete tasks whose due datetime is strictly in the
// past, in insertion order. Read-only.
func (m *Manager) Overdue() []task.Task {
	now := m.now()
	var overdue []task.Task
	for _, t := range m.list.All() {
		if t.Completed {
			continue
		}
		if due, ok := t.DueTime(); ok && due.Before(now) {
			overdue = append(overdue, t)
		}
	}
	return overdue
}

// ViewState is a read-only snapshot of the active query settings,
// recomputed on request.
type ViewState struct {
	SearchTerm    string
	Filter        task.Filter
	SortMode      task.SortMode
	TotalCount    int
	MatchingCount int
}

// ViewState reports the current search, filter, sort, and counts.
func (m *Manager) ViewState() ViewState {
	return ViewState{
		SearchTerm:    m.search,
		Filter:        m.filter,
		SortMode:      m.sort,
		TotalCount:    m.list.Len(),
		MatchingCount: len(m.Tasks()),
	}
}

// Save writes the full collection snapshot, overwriting prior state.
func (m *Manager) Save() error {
	doc := &snapshot.Document{
		Version:     snapshot.Version,
		NextID:      m.list.NextID(),
		Tasks:       m.list.All(),
		FilterState: m.filter,
		SortMode:    string(m.sort),
	}
	if err := snapshot.Save(m.path, doc); err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}

// Load restores state from the snapshot file. Missing or malformed files
// start an empty collection; see the snapshot package for the lenient
// load rules. The id counter is taken as the larger of the stored counter
// and the highest task id plus one, so ids freed by deleting the newest
// task are still never reassigned.
func (m *Manager) Load() []task.Task {
	doc := snapshot.Load(m.path, m.logger)

	m.list = task.NewList()
	for _, t := range doc.Tasks {
		m.list.AddLoaded(t)
	}
	m.list.SetNextID(doc.NextID)

	m.filter = doc.FilterState
	if mode, err := task.ParseSortMode(doc.SortMode); err == nil {
		m.sort = mode
	}

	return m.list.All()
}

// timePart extracts the HH:MM portion of a due datetime for display.
func timePart(dueDateTime string) string {
	if i := strings.IndexByte(dueDateTime, ' '); i >= 0 {
		return dueDateTime[i+1:]
	}
	return dueDateTime
}
