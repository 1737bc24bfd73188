package task

import "testing"

func TestFilterMatches(t *testing.T) {
	pending := Task{Title: "write report", Priority: PriorityHigh, Tags: []string{"work"}}
	done := Task{Title: "buy milk", Completed: true, Priority: PriorityLow, Tags: []string{"home"}}

	tests := []struct {
		name   string
		filter Filter
		task   *Task
		want   bool
	}{
		{name: "default matches everything", filter: NewFilter(), task: &pending, want: true},
		{name: "pending matches pending", filter: Filter{Status: StatusPending, Priority: PriorityAll}, task: &pending, want: true},
		{name: "pending rejects complete", filter: Filter{Status: StatusPending, Priority: PriorityAll}, task: &done, want: false},
		{name: "complete matches complete", filter: Filter{Status: StatusComplete, Priority: PriorityAll}, task: &done, want: true},
		{name: "priority match", filter: Filter{Status: StatusAll, Priority: string(PriorityHigh)}, task: &pending, want: true},
		{name: "priority mismatch", filter: Filter{Status: StatusAll, Priority: string(PriorityHigh)}, task: &done, want: false},
		{name: "tag match", filter: Filter{Status: StatusAll, Priority: PriorityAll, Tag: "work"}, task: &pending, want: true},
		{name: "tag mismatch", filter: Filter{Status: StatusAll, Priority: PriorityAll, Tag: "work"}, task: &done, want: false},
		{
			name:   "conjunction requires all criteria",
			filter: Filter{Status: StatusPending, Priority: string(PriorityHigh), Tag: "home"},
			task:   &pending,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(tt.task); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterActiveAndReset(t *testing.T) {
	f := NewFilter()
	if f.Active() {
		t.Error("fresh filter reports active")
	}

	f.Tag = "work"
	if !f.Active() {
		t.Error("filter with tag not active")
	}

	f.Reset()
	if f.Active() {
		t.Error("reset filter still active")
	}
	if f.Status != StatusAll || f.Priority != PriorityAll || f.Tag != "" {
		t.Errorf("Reset() left %+v", f)
	}
}
