// Package scope tracks the stack of component scopes during a depth-first walk.
package scope

import "github.com/yacobolo/jsxlint/internal/syntax"

// Kind distinguishes class components from function (hook) components.
type Kind int

const (
	// Class is a class extending a component base type.
	Class Kind = iota
	// Hook is a capitalized function or arrow holding effect registrations.
	Hook
)

func (k Kind) String() string {
	if k == Hook {
		return "hook"
	}
	return "class"
}

// State is the lifecycle state of a scope.
type State int

// Scope states. A scope moves from Open to Finalized exactly once.
const (
	Open State = iota
	Finalized
)

// ID identifies a scope within one Tracker.
type ID int

// Scope is one entry of the tracker stack.
type Scope struct {
	ID     ID
	Kind   Kind
	Node   *syntax.Node
	Parent *Scope
	State  State
}

// Observer is notified when a scope is exited, before it is discarded.
type Observer func(*Scope)

// Tracker is a stack of open scopes. It is not safe for concurrent use;
// create one per file.
type Tracker struct {
	stack     []*Scope
	observers []Observer
	nextID    ID
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Observe registers an exit observer. Observers run in registration order.
func (t *Tracker) Observe(o Observer) {
	t.observers = append(t.observers, o)
}

// Enter pushes a new open scope and returns its id.
func (t *Tracker) Enter(kind Kind, node *syntax.Node) ID {
	t.nextID++
	s := &Scope{ID: t.nextID, Kind: kind, Node: node, Parent: t.Current(), State: Open}
	t.stack = append(t.stack, s)
	return s.ID
}

// Exit pops the current scope, finalizes it and notifies observers.
// Exiting with no open scope is a programming error and panics.
func (t *Tracker) Exit() *Scope {
	if len(t.stack) == 0 {
		panic("scope: Exit called with no open scope")
	}
	s := t.stack[len(t.stack)-1]
	for _, o := range t.observers {
		o(s)
	}
	s.State = Finalized
	t.stack = t.stack[:len(t.stack)-1]
	return s
}

// Current returns the innermost open scope, or nil.
func (t *Tracker) Current() *Scope {
	if len(t.stack) == 0 {
		return nil
	}
	return t.stack[len(t.stack)-1]
}

// Depth returns the number of open scopes.
func (t *Tracker) Depth() int {
	return len(t.stack)
}

// Reset discards all scopes without notifying observers.
func (t *Tracker) Reset() {
	t.stack = nil
}
