// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"strconv"
	"sync"

	"github.com/hy4ri/tasks-tui/internal/api"
)

// FakeStore is an in-memory task store for testing.
type FakeStore struct {
	mu     sync.Mutex
	tasks  []api.Task
	nextID int
	calls  []string

	// Error injection for testing
	ListErr   error
	CreateErr error
	UpdateErr error
	DeleteErr error

	// Hooks run before a request resolves, outside the lock. They let tests
	// hold a request in flight.
	ListHook   func()
	CreateHook func(name string)
	UpdateHook func(id string)
	DeleteHook func(id string)
}

// NewFakeStore creates a FakeStore holding the given tasks.
func NewFakeStore(tasks ...api.Task) *FakeStore {
	f := &FakeStore{nextID: 1}
	f.tasks = append(f.tasks, tasks...)
	f.nextID += len(tasks)
	return f
}

// Tasks returns a copy of the stored tasks.
func (f *FakeStore) Tasks() []api.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]api.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// Calls returns the requests received, in order, as "op" or "op:arg".
func (f *FakeStore) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *FakeStore) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

// ListTasks implements tasklist.Store.
func (f *FakeStore) ListTasks(ctx context.Context) ([]api.Task, error) {
	f.record("list")
	if f.ListHook != nil {
		f.ListHook()
	}
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.Tasks(), nil
}

// CreateTask implements tasklist.Store.
func (f *FakeStore) CreateTask(ctx context.Context, name string) (api.Task, error) {
	f.record("create:" + name)
	if f.CreateHook != nil {
		f.CreateHook(name)
	}
	if f.CreateErr != nil {
		return api.Task{}, f.CreateErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	task := api.Task{ID: strconv.Itoa(f.nextID), Name: name}
	f.nextID++
	f.tasks = append(f.tasks, task)
	return task, nil
}

// UpdateTask implements tasklist.Store.
func (f *FakeStore) UpdateTask(ctx context.Context, id string, complete bool) error {
	f.record("update:" + id)
	if f.UpdateHook != nil {
		f.UpdateHook(id)
	}
	if f.UpdateErr != nil {
		return f.UpdateErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Complete = complete
			return nil
		}
	}
	return &api.APIError{StatusCode: 404, Message: "task not found"}
}

// DeleteTask implements tasklist.Store.
func (f *FakeStore) DeleteTask(ctx context.Context, id string) error {
	f.record("delete:" + id)
	if f.DeleteHook != nil {
		f.DeleteHook(id)
	}
	if f.DeleteErr != nil {
		return f.DeleteErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return &api.APIError{StatusCode: 404, Message: "task not found"}
}
