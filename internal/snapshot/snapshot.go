// Package snapshot reads and writes the persisted task collection.
//
// The snapshot is a single JSON document holding the full task list, the
// id counter, and the saved filter and sort state. Every save rewrites the
// whole document. Loading is deliberately lenient: a missing file is an
// empty collection, a malformed file logs a warning and starts empty, and
// an unrecognized version logs a warning but still loads.
package snapshot

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/taskline/taskline/internal/task"
)

// Version is the current snapshot format version. Loaders accept any
// version with the same major number.
const Version = "2.0"

//go:embed snapshot.schema.json
var schemaJSON string

var snapshotSchema = jsonschema.MustCompileString("snapshot.schema.json", schemaJSON)

// Document is the full persisted state.
type Document struct {
	Version     string      `json:"version"`
	NextID      int         `json:"next_id"`
	Tasks       []task.Task `json:"tasks"`
	FilterState task.Filter `json:"filter_state"`
	SortMode    string      `json:"sort_mode"`
}

// Empty returns a document representing a fresh, empty collection.
func Empty() *Document {
	return &Document{
		Version:     Version,
		NextID:      1,
		Tasks:       []task.Task{},
		FilterState: task.NewFilter(),
		SortMode:    string(task.DefaultSortMode),
	}
}

// Save writes the document to path with 2-space indentation and a
// trailing newline, creating parent directories as needed.
func Save(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Load reads the document at path. It never fails: problems are logged as
// warnings and degrade to an empty or partially cleaned document.
func Load(path string, logger *log.Logger) *Document {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("could not read snapshot, starting empty", "path", path, "err", err)
		}
		return Empty()
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Warn("malformed snapshot, starting empty", "path", path, "err", err)
		return Empty()
	}

	if !strings.HasPrefix(doc.Version, "2.") {
		logger.Warn("unknown snapshot version, attempting to load anyway", "version", doc.Version)
	}

	for _, warning := range schemaWarnings(data) {
		logger.Warn("snapshot schema check", "detail", warning)
	}

	for i := range doc.Tasks {
		sanitizeTask(&doc.Tasks[i], logger)
	}

	switch doc.FilterState.Status {
	case task.StatusAll, task.StatusPending, task.StatusComplete:
	default:
		doc.FilterState.Status = task.StatusAll
	}
	switch doc.FilterState.Priority {
	case task.PriorityAll, string(task.PriorityHigh), string(task.PriorityMedium), string(task.PriorityLow):
	default:
		doc.FilterState.Priority = task.PriorityAll
	}
	if _, err := task.ParseSortMode(doc.SortMode); err != nil {
		if doc.SortMode != "" {
			logger.Warn("unknown sort mode in snapshot, using default", "sort_mode", doc.SortMode)
		}
		doc.SortMode = string(task.DefaultSortMode)
	}
	if doc.NextID < 1 {
		doc.NextID = 1
	}

	return &doc
}

// schemaWarnings validates the raw document against the embedded schema.
// Schema violations never block loading; they surface as warnings so a
// hand-edited snapshot still opens.
func schemaWarnings(data []byte) []string {
	var generic interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&generic); err != nil {
		return nil
	}

	err := snapshotSchema.Validate(generic)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{err.Error()}
	}

	var warnings []string
	collectLeafCauses(ve, &warnings)
	return warnings
}

func collectLeafCauses(err *jsonschema.ValidationError, out *[]string) {
	if len(err.Causes) == 0 {
		loc := strings.TrimPrefix(err.InstanceLocation, "/")
		if loc == "" {
			*out = append(*out, err.Message)
		} else {
			*out = append(*out, fmt.Sprintf("%s: %s", loc, err.Message))
		}
		return
	}
	for _, cause := range err.Causes {
		collectLeafCauses(cause, out)
	}
}

// sanitizeTask re-validates stored fields, degrading bad values instead of
// refusing the whole document.
func sanitizeTask(t *task.Task, logger *log.Logger) {
	t.Description = strings.TrimSpace(t.Description)

	if p, err := task.ValidatePriority(string(t.Priority)); err != nil {
		logger.Warn("invalid stored priority, using MEDIUM", "task", t.ID, "priority", t.Priority)
		t.Priority = task.PriorityMedium
	} else {
		t.Priority = p
	}

	if tags, err := task.ValidateTags(t.Tags); err != nil {
		kept := keepValidTags(t.Tags)
		logger.Warn("invalid stored tags, keeping valid subset", "task", t.ID, "kept", len(kept))
		t.Tags = kept
	} else {
		t.Tags = tags
	}

	t.DueDate = task.ValidateDueDate(t.DueDate)
	t.DueDateTime = task.ValidateDueDateTime(t.DueDateTime)

	r, ok := task.CoerceRecurrence(string(t.Recurrence))
	if !ok {
		logger.Warn("invalid stored recurrence, using NONE", "task", t.ID, "recurrence", t.Recurrence)
	}
	t.Recurrence = r
}

// keepValidTags salvages the valid tags from a list that failed
// validation as a whole.
func keepValidTags(tags []string) []string {
	var kept []string
	for _, tag := range tags {
		if len(kept) == task.MaxTags {
			break
		}
		valid, err := task.ValidateTags([]string{tag})
		if err != nil || len(valid) == 0 {
			continue
		}
		if !contains(kept, valid[0]) {
			kept = append(kept, valid[0])
		}
	}
	return kept
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
