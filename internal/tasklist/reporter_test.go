package tasklist

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	r := LogReporter{Logger: log.New(&buf, "", 0)}

	r.Report(OpCreate, errors.New("connection refused"))

	assert.Equal(t, "create failed: connection refused\n", buf.String())

	// A reporter without a logger is a no-op.
	LogReporter{}.Report(OpLoad, errors.New("ignored"))
}

func TestNotifyReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewNotifyReporter("Tasks", log.New(&buf, "", 0))

	var title, message string
	r.notify = func(ti, m string) error {
		title, message = ti, m
		return nil
	}
	r.Report(OpDelete, errors.New("status 500"))

	assert.Equal(t, "Tasks", title)
	assert.Equal(t, "Failed to delete task: status 500", message)
	assert.Empty(t, buf.String())

	r.notify = func(string, string) error { return errors.New("no dbus") }
	r.Report(OpUpdate, errors.New("status 500"))
	assert.Contains(t, buf.String(), "failed to send notification: no dbus")
}

func TestNotifyReporterZeroValue(t *testing.T) {
	var r NotifyReporter
	assert.NotNil(t, r.notifier())
}

func TestReporters(t *testing.T) {
	var got []Op
	collect := ReporterFunc(func(op Op, err error) { got = append(got, op) })

	Reporters{collect, nil, collect}.Report(OpLoad, errors.New("x"))

	assert.Equal(t, []Op{OpLoad, OpLoad}, got)
}

func TestOpError(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := &OpError{Op: OpLoad, Err: cause}

	assert.Equal(t, "load failed: dial tcp: refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Zero(t, err.StatusCode())
}
