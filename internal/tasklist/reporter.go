package tasklist

import (
	"log"

	"github.com/gen2brain/beeep"
)

// Reporter receives failed operations. It is the operator diagnostic
// channel; end users only see that the change did not happen.
type Reporter interface {
	Report(op Op, err error)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(op Op, err error)

// Report implements Reporter.
func (f ReporterFunc) Report(op Op, err error) { f(op, err) }

// Discard drops every report.
var Discard Reporter = ReporterFunc(func(Op, error) {})

// LogReporter writes one line per failure.
type LogReporter struct {
	Logger *log.Logger
}

// Report implements Reporter.
func (r LogReporter) Report(op Op, err error) {
	if r.Logger == nil {
		return
	}
	r.Logger.Printf("%s failed: %v", op, err)
}

type notifyFunc func(title, message string) error

func beeepNotify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// NotifyReporter raises a desktop notification per failure. The zero value
// notifies through beeep and drops notification errors.
type NotifyReporter struct {
	Title  string
	notify notifyFunc
	// Logger receives notification errors; may be nil.
	Logger *log.Logger
}

// NewNotifyReporter returns a NotifyReporter using beeep.
func NewNotifyReporter(title string, logger *log.Logger) *NotifyReporter {
	return &NotifyReporter{Title: title, notify: beeepNotify, Logger: logger}
}

// Report implements Reporter.
func (r *NotifyReporter) Report(op Op, err error) {
	if err := r.notifier()(r.Title, "Failed to "+string(op)+" task: "+err.Error()); err != nil && r.Logger != nil {
		r.Logger.Printf("failed to send notification: %v", err)
	}
}

func (r *NotifyReporter) notifier() notifyFunc {
	if r.notify == nil {
		return beeepNotify
	}
	return r.notify
}

// Reporters fans a report out to each reporter in turn.
type Reporters []Reporter

// Report implements Reporter.
func (rs Reporters) Report(op Op, err error) {
	for _, r := range rs {
		if r != nil {
			r.Report(op, err)
		}
	}
}
