// Package cmd implements the CLI command structure for taskline.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/taskline/taskline/internal/config"
	"github.com/taskline/taskline/internal/logging"
	"github.com/taskline/taskline/internal/service"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the taskline CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("taskline", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	// Determine the subcommand; default to showing the list
	subcommand := "list"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	logger := logging.FromConfig(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps)

	switch subcommand {
	case "add":
		return addCommand(cfg, logger, remainingArgs)
	case "list", "ls":
		return listCommand(cfg, logger, remainingArgs)
	case "show":
		return showCommand(cfg, logger, remainingArgs)
	case "edit":
		return editCommand(cfg, logger, remainingArgs)
	case "done":
		return doneCommand(cfg, logger, remainingArgs)
	case "undone":
		return undoneCommand(cfg, logger, remainingArgs)
	case "rm":
		return rmCommand(cfg, logger, remainingArgs)
	case "move":
		return moveCommand(cfg, logger, remainingArgs)
	case "search":
		return searchCommand(cfg, logger, remainingArgs)
	case "filter":
		return filterCommand(cfg, logger, remainingArgs)
	case "sort":
		return sortCommand(cfg, logger, remainingArgs)
	case "clear":
		return clearCommand(cfg, logger, remainingArgs)
	case "remind":
		return remindCommand(cfg, logger, remainingArgs)
	case "overdue":
		return overdueCommand(cfg, logger, remainingArgs)
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// newManager loads the snapshot and wires the auto-save listener. Every
// mutating command persists the full collection; a failed auto-save is
// logged and never blocks the command.
func newManager(cfg *config.Config, logger *log.Logger) *service.Manager {
	mgr := service.New(cfg.SnapshotFile, logger)
	mgr.Load()
	mgr.AddListener(mgr.Save)
	return mgr
}

func versionCommand() error {
	fmt.Printf("taskline %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `taskline - personal task manager

Usage:
  taskline [flags] <command> [args]

Commands:
  add <title>          Add a task (-desc, -priority, -tags, -due, -due-at, -recur)
  list                 Show tasks under the active search, filter, and sort
  show <id>            Show one task in full
  edit <id>            Edit task fields (same flags as add, plus -title)
  done <id>...         Mark tasks complete (spawns the next recurring instance)
  undone <id>...       Mark tasks incomplete
  rm <id>...           Delete tasks
  move <id> up|down    Adjust manual sort order
  search <keyword>     Search titles and descriptions
  filter <type> <val>  Filter by status, priority, or tag
  sort <mode>          Sort by priority, alpha, date_added, or manual
  clear                Clear the active filter and search
  remind               Send reminders for tasks due in the next 15 minutes
  overdue              List incomplete tasks past their due time
  version              Show version

Flags:
`)
	fs.SetOutput(w)
	fs.PrintDefaults()
}

// splitAndTrim splits s by sep and trims whitespace from each element,
// dropping empties.
func splitAndTrim(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
