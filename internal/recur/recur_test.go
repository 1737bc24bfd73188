package recur

import (
	"testing"

	"github.com/taskline/taskline/internal/task"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name  string
		value string
		rule  task.Recurrence
		want  string
		ok    bool
	}{
		{name: "daily date", value: "2026-01-07", rule: task.RecurrenceDaily, want: "2026-01-08", ok: true},
		{name: "daily datetime keeps time", value: "2026-01-07 09:00", rule: task.RecurrenceDaily, want: "2026-01-08 09:00", ok: true},
		{name: "daily across month end", value: "2026-01-31", rule: task.RecurrenceDaily, want: "2026-02-01", ok: true},
		{name: "weekly", value: "2026-01-07", rule: task.RecurrenceWeekly, want: "2026-01-14", ok: true},
		{name: "weekly across year end", value: "2025-12-29", rule: task.RecurrenceWeekly, want: "2026-01-05", ok: true},
		{name: "monthly", value: "2026-03-15", rule: task.RecurrenceMonthly, want: "2026-04-15", ok: true},
		{name: "monthly clamps to short month", value: "2026-01-31", rule: task.RecurrenceMonthly, want: "2026-02-28", ok: true},
		{name: "monthly clamp in leap year", value: "2024-01-31", rule: task.RecurrenceMonthly, want: "2024-02-29", ok: true},
		{name: "monthly clamp from clamped date", value: "2026-02-28", rule: task.RecurrenceMonthly, want: "2026-03-28", ok: true},
		{name: "monthly datetime clamps", value: "2026-01-31 18:30", rule: task.RecurrenceMonthly, want: "2026-02-28 18:30", ok: true},
		{name: "monthly december rolls the year", value: "2026-12-31", rule: task.RecurrenceMonthly, want: "2027-01-31", ok: true},
		{name: "none rule", value: "2026-01-07", rule: task.RecurrenceNone},
		{name: "empty value", value: "", rule: task.RecurrenceDaily},
		{name: "unparseable value", value: "soonish", rule: task.RecurrenceDaily},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Next(tt.value, tt.rule)
			if ok != tt.ok {
				t.Fatalf("Next(%q, %s) ok = %v, want %v", tt.value, tt.rule, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Next(%q, %s) = %q, want %q", tt.value, tt.rule, got, tt.want)
			}
		})
	}
}
