// Package notify delivers task reminders to the user.
package notify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gen2brain/beeep"
)

// Notifier delivers a short message to the user. Implementations report
// whether delivery succeeded and must never panic; callers treat any
// failure as "not delivered" and move on.
type Notifier interface {
	Notify(title, message string) bool
}

// Desktop sends system notifications, falling back to a terminal banner
// when the desktop bus is unavailable (headless and WSL systems).
type Desktop struct {
	AppName  string
	Fallback *Terminal
}

// NewDesktop creates a desktop notifier with a stderr terminal fallback.
func NewDesktop(appName string) *Desktop {
	return &Desktop{AppName: appName, Fallback: &Terminal{}}
}

// Notify sends the notification. Returns true only when the system
// notification was delivered; the fallback path returns false.
func (d *Desktop) Notify(title, message string) bool {
	full := title
	if d.AppName != "" {
		full = fmt.Sprintf("%s: %s", d.AppName, title)
	}
	if err := beeep.Notify(full, message, ""); err != nil {
		if d.Fallback != nil {
			d.Fallback.Notify(title, message)
		}
		return false
	}
	return true
}

// Terminal prints a reminder banner, for terminals without a desktop bus.
type Terminal struct {
	W io.Writer
}

// Notify writes the banner. Always reports delivered.
func (t *Terminal) Notify(title, message string) bool {
	w := t.W
	if w == nil {
		w = os.Stderr
	}
	bar := strings.Repeat("!", 40)
	fmt.Fprintf(w, "\n%s\n!!! REMINDER: %s !!!\n!!! %s\n%s\n\n", bar, strings.ToUpper(title), message, bar)
	return true
}

// Discard drops every notification. Useful in tests and quiet mode.
type Discard struct{}

// Notify reports not delivered.
func (Discard) Notify(title, message string) bool {
	return false
}
