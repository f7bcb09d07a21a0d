// Package tasklist keeps the client-side copy of the task list in sync with
// the remote task store.
//
// Every operation performs exactly one store request and applies its outcome
// to local state only after the request resolves. Failures leave state
// untouched and are handed to a Reporter.
package tasklist

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hy4ri/tasks-tui/internal/api"
)

var (
	// ErrTaskNotFound is returned when an operation names an id that is not
	// in the local collection. No request is sent.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskBusy is returned when a completion or delete request for the
	// same task is still in flight. No request is sent.
	ErrTaskBusy = errors.New("task has a request in flight")

	// ErrDeleteDeclined is returned when the confirmation was declined.
	ErrDeleteDeclined = errors.New("delete declined")

	// ErrDuplicateTask is returned when the store hands back a created task
	// whose id is already in the collection.
	ErrDuplicateTask = errors.New("task id already present")
)

// Store is the remote task service.
type Store interface {
	ListTasks(ctx context.Context) ([]api.Task, error)
	CreateTask(ctx context.Context, name string) (api.Task, error)
	UpdateTask(ctx context.Context, id string, complete bool) error
	DeleteTask(ctx context.Context, id string) error
}

// Confirmer is asked before a task is deleted. Returning false cancels the
// delete.
type Confirmer func(task api.Task) bool

// Controller owns the local task collection and the pending input.
// It is safe for concurrent use; the lock is never held across a request.
type Controller struct {
	store    Store
	reporter Reporter

	mu      sync.Mutex
	tasks   []api.Task
	pending string
	busy    map[string]Op
}

// New creates a Controller with an empty collection. A nil reporter
// discards failures.
func New(store Store, reporter Reporter) *Controller {
	if reporter == nil {
		reporter = Discard
	}
	return &Controller{
		store:    store,
		reporter: reporter,
		tasks:    make([]api.Task, 0),
		busy:     make(map[string]Op),
	}
}

// Tasks returns a copy of the current collection.
func (c *Controller) Tasks() []api.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]api.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Task returns the task with the given id.
func (c *Controller) Task(id string) (api.Task, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return api.Task{}, false
	}
	return c.tasks[i], true
}

// PendingInput returns the not-yet-submitted task name.
func (c *Controller) PendingInput() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// SetPendingInput replaces the not-yet-submitted task name.
func (c *Controller) SetPendingInput(s string) {
	c.mu.Lock()
	c.pending = s
	c.mu.Unlock()
}

// Pending reports whether a completion or delete request for id is in
// flight, and which one.
func (c *Controller) Pending(id string) (Op, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	op, ok := c.busy[id]
	return op, ok
}

// InitialLoad fetches every task and replaces the collection with the
// result. On failure the collection is left as it was.
func (c *Controller) InitialLoad(ctx context.Context) error {
	tasks, err := c.store.ListTasks(ctx)
	if err != nil {
		return c.fail(OpLoad, err)
	}

	replaced := make([]api.Task, len(tasks))
	copy(replaced, tasks)

	c.mu.Lock()
	c.tasks = replaced
	c.mu.Unlock()
	return nil
}

// CreateTask submits the current pending input as a new task. On success
// the returned task is appended and the pending input is cleared. The name
// is sent as-is; validation is up to the store. A returned id that is
// already present fails the create and leaves state unchanged.
func (c *Controller) CreateTask(ctx context.Context) (api.Task, error) {
	name := c.PendingInput()

	task, err := c.store.CreateTask(ctx, name)
	if err != nil {
		return api.Task{}, c.fail(OpCreate, err)
	}

	c.mu.Lock()
	if c.indexOf(task.ID) >= 0 {
		c.mu.Unlock()
		return api.Task{}, c.fail(OpCreate, fmt.Errorf("task %s: %w", task.ID, ErrDuplicateTask))
	}
	c.tasks = append(c.tasks, task)
	c.pending = ""
	c.mu.Unlock()
	return task, nil
}

// SetCompletion sets the completion flag of a task once the store has
// confirmed it.
func (c *Controller) SetCompletion(ctx context.Context, id string, complete bool) error {
	if err := c.acquire(id, OpUpdate); err != nil {
		return err
	}
	defer c.release(id)

	if err := c.store.UpdateTask(ctx, id, complete); err != nil {
		return c.fail(OpUpdate, err)
	}

	c.mu.Lock()
	// The task may have been removed by a racing load; last write wins.
	if i := c.indexOf(id); i >= 0 {
		c.tasks[i].Complete = complete
	}
	c.mu.Unlock()
	return nil
}

// DeleteTask asks confirm and, if approved, deletes the task and removes it
// from the collection. A nil confirm approves unconditionally.
func (c *Controller) DeleteTask(ctx context.Context, id string, confirm Confirmer) error {
	task, ok := c.Task(id)
	if !ok {
		return fmt.Errorf("%s %s: %w", OpDelete, id, ErrTaskNotFound)
	}
	if _, busy := c.Pending(id); busy {
		return fmt.Errorf("%s %s: %w", OpDelete, id, ErrTaskBusy)
	}

	if confirm != nil && !confirm(task) {
		return ErrDeleteDeclined
	}

	if err := c.acquire(id, OpDelete); err != nil {
		return err
	}
	defer c.release(id)

	if err := c.store.DeleteTask(ctx, id); err != nil {
		return c.fail(OpDelete, err)
	}

	c.mu.Lock()
	if i := c.indexOf(id); i >= 0 {
		c.tasks = append(c.tasks[:i:i], c.tasks[i+1:]...)
	}
	c.mu.Unlock()
	return nil
}

// acquire marks id as having op in flight.
func (c *Controller) acquire(id string, op Op) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indexOf(id) < 0 {
		return fmt.Errorf("%s %s: %w", op, id, ErrTaskNotFound)
	}
	if _, busy := c.busy[id]; busy {
		return fmt.Errorf("%s %s: %w", op, id, ErrTaskBusy)
	}
	c.busy[id] = op
	return nil
}

func (c *Controller) release(id string) {
	c.mu.Lock()
	delete(c.busy, id)
	c.mu.Unlock()
}

// fail reports err and wraps it with the operation name.
func (c *Controller) fail(op Op, err error) error {
	c.reporter.Report(op, err)
	return &OpError{Op: op, Err: err}
}

// indexOf must be called with mu held.
func (c *Controller) indexOf(id string) int {
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
