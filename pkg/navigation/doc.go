// Package navigation implements the navigation state model for terminal
// applications: a push/pop stack of destinations, three independent modal
// presentation slots (sheet, full-screen cover, popover), and two one-shot
// overlay slots (alert, confirmation dialog).
//
// The package is deliberately free of any rendering concern. A State is
// created per UI session, mutated by application event handlers through its
// operation set, and observed by a rendering layer (see pkg/tui) through the
// binding contract. User-driven dismissals reported through a binding and
// explicit Dismiss calls converge on the same clearing logic, so dismissal
// callbacks fire exactly once per presentation no matter which side initiated
// the close.
//
// All state mutation is single-threaded by contract: the container belongs to
// the UI loop of its session and holds no locks. Dismissal callbacks run
// synchronously and may themselves mutate the container.
package navigation
