// Package ledger balances event listener registrations against
// deregistrations within component scopes.
//
// Handlers are compared by token fingerprint: the same channel and the same
// token sequence (kind and value) of the handler expression. Equivalent
// handlers written differently, for example with different parentheses,
// do not match and are reported.
package ledger

import (
	"github.com/yacobolo/jsxlint/internal/scope"
	"github.com/yacobolo/jsxlint/internal/syntax"
)

// Subscription is one observed registration or deregistration call.
type Subscription struct {
	Channel    string
	Handler    syntax.Fingerprint
	Provenance syntax.Span
}

func (s Subscription) matches(o Subscription) bool {
	return s.Channel == o.Channel && s.Handler == o.Handler
}

// Finding is a registration left unmatched when its scope was exited.
type Finding struct {
	Subscription Subscription
	ScopeKind    scope.Kind
	ScopeNode    *syntax.Node
}

// Ledger keeps per-scope subscription lists. Create one per file.
type Ledger struct {
	tracker *scope.Tracker
	report  func(Finding)
	active  map[scope.ID][]Subscription
	pending map[scope.ID][]Subscription
}

// New attaches a ledger to tracker. report is called once per unmatched
// registration when a scope is exited.
func New(tracker *scope.Tracker, report func(Finding)) *Ledger {
	l := &Ledger{
		tracker: tracker,
		report:  report,
		active:  make(map[scope.ID][]Subscription),
		pending: make(map[scope.ID][]Subscription),
	}
	tracker.Observe(l.finalize)
	return l
}

// RecordRegistration appends sub to the current scope. It returns false when
// no scope is open.
func (l *Ledger) RecordRegistration(sub Subscription) bool {
	cur := l.tracker.Current()
	if cur == nil {
		return false
	}
	l.active[cur.ID] = append(l.active[cur.ID], sub)
	return true
}

// RecordDeregistration removes the first matching registration of the
// current scope. A deregistration seen before its registration is held
// until the scope is exited, since component members may be declared in
// any order. Deregistrations that never find a registration are ignored.
func (l *Ledger) RecordDeregistration(sub Subscription) {
	cur := l.tracker.Current()
	if cur == nil {
		return
	}
	if !l.consume(cur.ID, sub) {
		l.pending[cur.ID] = append(l.pending[cur.ID], sub)
	}
}

func (l *Ledger) consume(id scope.ID, sub Subscription) bool {
	entries := l.active[id]
	for i, e := range entries {
		if e.matches(sub) {
			l.active[id] = append(entries[:i:i], entries[i+1:]...)
			return true
		}
	}
	return false
}

func (l *Ledger) finalize(s *scope.Scope) {
	for _, sub := range l.pending[s.ID] {
		l.consume(s.ID, sub)
	}
	for _, sub := range l.active[s.ID] {
		l.report(Finding{Subscription: sub, ScopeKind: s.Kind, ScopeNode: s.Node})
	}
	delete(l.active, s.ID)
	delete(l.pending, s.ID)
}

// Signature extracts a subscription from a registration or deregistration
// call. The call must have two or three arguments and a string literal
// first argument naming the channel; the second argument is the handler.
func Signature(f *syntax.File, call *syntax.Node) (Subscription, bool) {
	args := syntax.Arguments(call)
	if len(args) < 2 || len(args) > 3 {
		return Subscription{}, false
	}
	channel, ok := syntax.StringValue(f, args[0])
	if !ok {
		return Subscription{}, false
	}
	return Subscription{
		Channel:    channel,
		Handler:    syntax.FingerprintOf(f, args[1]),
		Provenance: call.Span(),
	}, true
}
