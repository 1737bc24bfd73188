package cmd

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/taskline/taskline/internal/config"
	"github.com/taskline/taskline/internal/service"
)

// addCommand creates a new task.
func addCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskline add", flag.ContinueOnError)
	desc := fs.String("desc", "", "Task description")
	priority := fs.String("priority", "", "Priority (HIGH|MEDIUM|LOW, default MEDIUM)")
	tags := fs.String("tags", "", "Comma-separated tags (max 5, lowercase with hyphens)")
	due := fs.String("due", "", "Due date (YYYY-MM-DD)")
	dueAt := fs.String("due-at", "", "Due date and time (\"YYYY-MM-DD HH:MM\")")
	recurrence := fs.String("recur", "", "Recurrence (NONE|DAILY|WEEKLY|MONTHLY)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	title := strings.Join(fs.Args(), " ")

	mgr := newManager(cfg, logger)
	t, err := mgr.Add(service.AddOptions{
		Title:       title,
		Description: *desc,
		Priority:    *priority,
		Tags:        splitAndTrim(*tags, ","),
		DueDate:     *due,
		DueDateTime: *dueAt,
		Recurrence:  *recurrence,
	})
	if err != nil {
		return err
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Added task #%d: %s", t.ID, t.Title)))
	return nil
}

// editCommand applies a partial update to one task. Only flags that were
// explicitly set on the command line are applied.
func editCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskline edit", flag.ContinueOnError)
	title := fs.String("title", "", "New title")
	desc := fs.String("desc", "", "New description")
	priority := fs.String("priority", "", "New priority (HIGH|MEDIUM|LOW)")
	tags := fs.String("tags", "", "New comma-separated tags (empty clears)")
	due := fs.String("due", "", "New due date (YYYY-MM-DD, empty clears)")
	dueAt := fs.String("due-at", "", "New due date and time (empty clears)")
	recurrence := fs.String("recur", "", "New recurrence (NONE|DAILY|WEEKLY|MONTHLY)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: taskline edit [flags] <id>")
	}
	id, err := parseID(fs.Arg(0))
	if err != nil {
		return err
	}

	var opts service.UpdateOptions
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			opts.Title = title
		case "desc":
			opts.Description = desc
		case "priority":
			opts.Priority = priority
		case "tags":
			parsed := splitAndTrim(*tags, ",")
			if parsed == nil {
				parsed = []string{}
			}
			opts.Tags = parsed
		case "due":
			opts.DueDate = due
		case "due-at":
			opts.DueDateTime = dueAt
		case "recur":
			opts.Recurrence = recurrence
		}
	})

	mgr := newManager(cfg, logger)
	t, err := mgr.Update(id, opts)
	if err != nil {
		return err
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Updated task #%d", t.ID)))
	return nil
}

// doneCommand marks tasks complete.
func doneCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	mgr := newManager(cfg, logger)
	for _, id := range ids {
		if !mgr.Complete(id) {
			return &service.NotFoundError{ID: id}
		}
		fmt.Println(styleSuccess.Render(fmt.Sprintf("Completed task #%d", id)))
	}
	return nil
}

// undoneCommand marks tasks incomplete.
func undoneCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	mgr := newManager(cfg, logger)
	for _, id := range ids {
		if !mgr.Incomplete(id) {
			return &service.NotFoundError{ID: id}
		}
		fmt.Println(styleSuccess.Render(fmt.Sprintf("Reopened task #%d", id)))
	}
	return nil
}

// rmCommand deletes tasks.
func rmCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	mgr := newManager(cfg, logger)
	for _, id := range ids {
		if !mgr.Delete(id) {
			return &service.NotFoundError{ID: id}
		}
		fmt.Println(styleSuccess.Render(fmt.Sprintf("Deleted task #%d", id)))
	}
	return nil
}

// moveCommand adjusts a task's manual sort order.
func moveCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: taskline move <id> up|down")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	mgr := newManager(cfg, logger)
	t, err := mgr.Move(id, args[1])
	if err != nil {
		return err
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Moved task #%d %s", t.ID, args[1])))
	return nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}

func parseIDs(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("expected at least one task id")
	}
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
