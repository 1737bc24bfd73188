// Package task defines the task model, field validation, and the in-memory
// task store.
//
// A task serializes to JSON as:
//
//	{
//	  "id": 1,
//	  "title": "Pay rent",
//	  "description": "",
//	  "completed": false,
//	  "priority": "MEDIUM",
//	  "tags": ["home"],
//	  "due_date": "2026-02-01",
//	  "due_datetime": "2026-02-01 09:00",
//	  "recurrence": "MONTHLY",
//	  "parent_id": 0,
//	  "reminder_sent": false,
//	  "order": 0
//	}
//
// # Validation rules
//
//   - Priority: HIGH, MEDIUM, or LOW; empty input defaults to MEDIUM;
//     anything else is an error.
//   - Tags: at most 5, each lowercase with optional hyphens
//     ("work-projects"); duplicates after normalization are dropped,
//     preserving first-seen order.
//   - Due date (legacy): YYYY-MM-DD; malformed input is silently nulled,
//     never an error.
//   - Due datetime: YYYY-MM-DD HH:MM, re-serialized in canonical form;
//     malformed input is silently nulled.
//   - Recurrence: NONE, DAILY, WEEKLY, or MONTHLY; empty input defaults
//     to NONE; anything else is an error.
//
// # Identifiers
//
// The List store assigns ids sequentially starting at 1. Deleting a task
// never frees its id for reuse.
package task
