package task

// List is an ordered in-memory task collection. It assigns sequential ids
// starting at 1 and never reuses an id, even after deletion.
type List struct {
	tasks  []Task
	nextID int
}

// NewList returns an empty list with the id counter at 1.
func NewList() *List {
	return &List{nextID: 1}
}

// Add stores the task under the next sequential id and returns the stored
// value.
func (l *List) Add(t Task) Task {
	t.ID = l.nextID
	l.nextID++
	l.tasks = append(l.tasks, t)
	return t
}

// AddLoaded stores a task that already carries an id, bumping the counter
// past it. Used when restoring from a snapshot.
func (l *List) AddLoaded(t Task) {
	if t.ID >= l.nextID {
		l.nextID = t.ID + 1
	}
	l.tasks = append(l.tasks, t)
}

// NextID returns the id the next added task will receive.
func (l *List) NextID() int {
	return l.nextID
}

// SetNextID raises the id counter floor. Lower values are ignored so the
// counter stays monotonic.
func (l *List) SetNextID(n int) {
	if n > l.nextID {
		l.nextID = n
	}
}

// Get returns the task with the given id, or nil if not found.
func (l *List) Get(id int) *Task {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			return &l.tasks[i]
		}
	}
	return nil
}

// All returns the tasks in insertion order. The returned slice is a copy
// so callers cannot disturb the internal order.
func (l *List) All() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Len returns the number of stored tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Delete removes the task with the given id. Returns whether anything was
// removed. The id is never reassigned.
func (l *List) Delete(id int) bool {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// MarkComplete sets the completion flag. Returns false if the task does
// not exist; marking an already complete task is a no-op that still
// returns true.
func (l *List) MarkComplete(id int) bool {
	t := l.Get(id)
	if t == nil {
		return false
	}
	t.Completed = true
	return true
}

// MarkIncomplete clears the completion flag. Idempotent like MarkComplete.
func (l *List) MarkIncomplete(id int) bool {
	t := l.Get(id)
	if t == nil {
		return false
	}
	t.Completed = false
	return true
}

// Move adjusts the task's manual-order value by delta. Storage order is
// untouched; only the manual sort key changes.
func (l *List) Move(id, delta int) bool {
	t := l.Get(id)
	if t == nil {
		return false
	}
	t.Order += delta
	return true
}
