package task

import (
	"reflect"
	"testing"
)

func ids(tasks []Task) []int {
	out := make([]int, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestSort(t *testing.T) {
	base := []Task{
		{ID: 1, Title: "zebra", Priority: PriorityLow, Order: 1},
		{ID: 2, Title: "apple", Priority: PriorityHigh, Order: 2},
		{ID: 3, Title: "Mango", Priority: PriorityHigh, Order: 3},
	}

	tests := []struct {
		name string
		mode SortMode
		want []int
	}{
		{name: "priority high first then order", mode: SortPriority, want: []int{2, 3, 1}},
		{name: "alpha is case insensitive", mode: SortAlpha, want: []int{2, 3, 1}},
		{name: "date added newest first", mode: SortDateAdded, want: []int{3, 2, 1}},
		{name: "manual follows order", mode: SortManual, want: []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := make([]Task, len(base))
			copy(tasks, base)
			Sort(tasks, tt.mode)
			if got := ids(tasks); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sort(%s) order = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestSortPriorityTieBreaksOnID(t *testing.T) {
	tasks := []Task{
		{ID: 5, Title: "b", Priority: PriorityMedium, Order: 1},
		{ID: 2, Title: "a", Priority: PriorityMedium, Order: 1},
	}
	Sort(tasks, SortPriority)
	if got := ids(tasks); !reflect.DeepEqual(got, []int{2, 5}) {
		t.Errorf("tie-break order = %v, want [2 5]", got)
	}
}

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		input   string
		want    SortMode
		wantErr bool
	}{
		{input: "priority", want: SortPriority},
		{input: " Alpha ", want: SortAlpha},
		{input: "DATE_ADDED", want: SortDateAdded},
		{input: "manual", want: SortManual},
		{input: "newest", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseSortMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseSortMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseSortMode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
