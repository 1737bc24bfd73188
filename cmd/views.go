package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/taskline/taskline/internal/config"
	"github.com/taskline/taskline/internal/notify"
	"github.com/taskline/taskline/internal/service"
	"github.com/taskline/taskline/internal/task"
)

// listCommand renders the current view.
func listCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskline list", flag.ContinueOnError)
	all := fs.Bool("all", false, "Ignore the saved filter and show every task")

	if err := fs.Parse(args); err != nil {
		return err
	}

	mgr := newManager(cfg, logger)
	if *all {
		renderTasks(mgr.AllTasks())
		return nil
	}

	renderView(mgr.ViewState(), mgr.Tasks())
	return nil
}

// showCommand prints one task in full.
func showCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: taskline show <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	mgr := newManager(cfg, logger)
	t, ok := mgr.Task(id)
	if !ok {
		return &service.NotFoundError{ID: id}
	}

	renderDetail(t)
	return nil
}

// searchCommand narrows the view by keyword for this invocation.
func searchCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	keyword := strings.Join(args, " ")

	mgr := newManager(cfg, logger)
	tasks, err := mgr.Search(keyword)
	if err != nil {
		return err
	}

	renderView(mgr.ViewState(), tasks)
	return nil
}

// filterCommand updates the persistent filter. Filter changes are not a
// collection mutation, so they are saved here explicitly.
func filterCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: taskline filter <status|priority|tag> <value>")
	}

	mgr := newManager(cfg, logger)
	tasks, err := mgr.FilterBy(args[0], args[1])
	if err != nil {
		return err
	}
	if err := mgr.Save(); err != nil {
		return err
	}

	renderView(mgr.ViewState(), tasks)
	return nil
}

// sortCommand switches the persistent sort mode.
func sortCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: taskline sort <%s>", strings.Join(task.SortModes(), "|"))
	}

	mgr := newManager(cfg, logger)
	tasks, err := mgr.SortBy(args[0])
	if err != nil {
		return err
	}
	if err := mgr.Save(); err != nil {
		return err
	}

	renderView(mgr.ViewState(), tasks)
	return nil
}

// clearCommand resets the filter and search.
func clearCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	mgr := newManager(cfg, logger)
	tasks := mgr.ClearFilters()
	if err := mgr.Save(); err != nil {
		return err
	}

	fmt.Println(styleSuccess.Render("Filters cleared"))
	renderTasks(tasks)
	return nil
}

// remindCommand fires due-soon notifications.
func remindCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	var notifier notify.Notifier
	if cfg.Notifications {
		notifier = notify.NewDesktop(cfg.AppName)
	} else {
		notifier = &notify.Terminal{}
	}

	mgr := newManager(cfg, logger)
	reminded := mgr.CheckReminders(notifier)
	if reminded == 0 {
		fmt.Println(styleMeta.Render("Nothing due in the next 15 minutes"))
		return nil
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Sent %d reminder(s)", reminded)))
	return nil
}

// overdueCommand lists incomplete tasks past their due time.
func overdueCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	mgr := newManager(cfg, logger)
	overdue := mgr.Overdue()
	if len(overdue) == 0 {
		fmt.Println(styleMeta.Render("Nothing overdue"))
		return nil
	}

	fmt.Println(styleOverdue.Render(fmt.Sprintf("%d task(s) overdue:", len(overdue))))
	renderTasks(overdue)
	return nil
}

// renderView prints the view-state header followed by the tasks.
func renderView(vs service.ViewState, tasks []task.Task) {
	var parts []string
	if vs.SearchTerm != "" {
		parts = append(parts, fmt.Sprintf("search %q", vs.SearchTerm))
	}
	if vs.Filter.Active() {
		if vs.Filter.Status != task.StatusAll {
			parts = append(parts, "status "+vs.Filter.Status)
		}
		if vs.Filter.Priority != task.PriorityAll {
			parts = append(parts, "priority "+vs.Filter.Priority)
		}
		if vs.Filter.Tag != "" {
			parts = append(parts, "tag "+vs.Filter.Tag)
		}
	}
	parts = append(parts, "sort "+string(vs.SortMode))

	header := fmt.Sprintf("%s  (%d/%d)", strings.Join(parts, ", "), vs.MatchingCount, vs.TotalCount)
	fmt.Println(styleHeader.Render(header))
	renderTasks(tasks)
}

// renderTasks prints one line per task.
func renderTasks(tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Println(styleMeta.Render("No tasks"))
		return
	}
	for _, t := range tasks {
		fmt.Println(renderLine(t))
	}
}

func renderLine(t task.Task) string {
	check := " "
	if t.Completed {
		check = "x"
	}

	title := styleTitle.Render(t.Title)
	if t.Completed {
		title = styleDone.Render(t.Title)
	}

	line := fmt.Sprintf("%s [%s] %s %s",
		styleID.Render(fmt.Sprintf("%3d", t.ID)),
		check,
		priorityBadge(t.Priority),
		title,
	)

	if due := dueDisplay(t); due != "" {
		line += "  " + due
	}
	for _, tag := range t.Tags {
		line += " " + styleTag.Render("#"+tag)
	}
	if t.Recurrence != task.RecurrenceNone {
		line += " " + styleMeta.Render("↻"+strings.ToLower(string(t.Recurrence)))
	}
	return line
}

// renderDetail prints every field of a task.
func renderDetail(t task.Task) {
	fmt.Println(renderLine(t))
	if t.Description != "" {
		fmt.Println("    " + styleMeta.Render(t.Description))
	}
	if t.ParentID != 0 {
		fmt.Println("    " + styleMeta.Render(fmt.Sprintf("spawned from task #%d", t.ParentID)))
	}
	if t.ReminderSent {
		fmt.Println("    " + styleMeta.Render("reminder sent"))
	}
	fmt.Println("    " + styleMeta.Render(fmt.Sprintf("manual order %d", t.Order)))
}

func priorityBadge(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return badgeHigh.Render("H")
	case task.PriorityLow:
		return badgeLow.Render("L")
	default:
		return badgeMedium.Render("M")
	}
}

func dueDisplay(t task.Task) string {
	switch {
	case t.DueDateTime != "":
		return styleMeta.Render("due " + t.DueDateTime)
	case t.DueDate != "":
		return styleMeta.Render("due " + t.DueDate)
	default:
		return ""
	}
}
