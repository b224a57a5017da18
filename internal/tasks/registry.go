// Package tasks tracks the named units of concurrent work attached to the
// host process. The registry exists for observability at shutdown: units
// still alive and not marked background when the process intends to restart
// indicate a leak. It controls nothing; owners register on start and call
// Done when finished.
package tasks

import "sync"

// Info is a read-only snapshot of one registered unit.
type Info struct {
	Name       string
	Background bool
}

// Task is a live registration handle.
type Task struct {
	reg  *Registry
	name string
	bg   bool
}

// Name returns the name the unit registered under.
func (t *Task) Name() string { return t.name }

// Done removes the unit from its registry. Safe to call more than once.
func (t *Task) Done() {
	if t.reg == nil {
		return
	}
	t.reg.mu.Lock()
	delete(t.reg.live, t)
	t.reg.mu.Unlock()
	t.reg = nil
}

// Registry holds the currently alive units. Safe for concurrent use.
type Registry struct {
	mu   sync.Mutex
	live map[*Task]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{live: make(map[*Task]struct{})}
}

// Default is the process-wide registry the host runtime registers into.
var Default = NewRegistry()

// Add registers a unit of work. Background units are expected to be
// abandoned at exit and are excluded from the lingering count.
func (r *Registry) Add(name string, background bool) *Task {
	t := &Task{reg: r, name: name, bg: background}
	r.mu.Lock()
	r.live[t] = struct{}{}
	r.mu.Unlock()
	return t
}

// Snapshot enumerates the currently alive units.
func (r *Registry) Snapshot() []Info {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Info, 0, len(r.live))
	for t := range r.live {
		out = append(out, Info{Name: t.name, Background: t.bg})
	}
	return out
}
