package navigation

// Destination identifies a single navigable screen. Implementations must be
// immutable values whose ID is a pure function of the destination's variant
// and payload: two destinations with the same variant and payload produce the
// same ID, and every distinct (variant, payload) pair produces a distinct ID.
// Equality, containment checks, and map-key behavior are all defined in terms
// of the ID.
type Destination interface {
	// ID returns the stable, unique identifier for this destination.
	ID() string

	// Title returns a human-readable name for the destination, used by
	// rendering layers for headers and breadcrumbs.
	Title() string
}

// Dest is a ready-made comparable Destination for the common tagged-union
// case: a variant kind plus an optional string payload. Applications with
// richer payloads implement Destination directly and derive the ID from
// their own stable fields rather than from any formatted description of the
// payload, which is not guaranteed collision-free.
type Dest struct {
	// Kind is the variant tag, e.g. "profile" or "settings".
	Kind string

	// Param is the payload, e.g. a user ID. Empty for parameterless variants.
	Param string
}

// NewDest creates a parameterless destination of the given kind.
func NewDest(kind string) Dest {
	return Dest{Kind: kind}
}

// NewDestParam creates a destination of the given kind carrying a payload.
func NewDestParam(kind, param string) Dest {
	return Dest{Kind: kind, Param: param}
}

// ID implements Destination. The identifier is "kind" for parameterless
// destinations and "kind/param" otherwise, so IDs of distinct variants can
// never collide.
func (d Dest) ID() string {
	if d.Param == "" {
		return d.Kind
	}
	return d.Kind + "/" + d.Param
}

// Title implements Destination.
func (d Dest) Title() string {
	return d.Kind
}

// SameDestination reports whether two destinations are the same navigable
// target. Nil compares equal only to nil.
func SameDestination(a, b Destination) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}
