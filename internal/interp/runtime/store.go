package runtime

import (
	cpserrors "github.com/rljacobson/cps/internal/interp/errors"
)

func undefinedLocation(l Location, which string) error {
	return cpserrors.New(cpserrors.CategoryTypeMismatch, "fetch: location %d never written in %s map", l, which)
}

// Store is a persistent, append-only mapping from Location to Value (the
// "value map") and a parallel mapping from Location to machine integer
// (the "integer map"), plus the next-free location and the fixed handler
// location.
//
// Representation: each map is a chain of single-entry overlay layers
// (newest first). upd/updi push one new layer in front of the parent
// store's chain; fetch/fetchi walk the chain until they find a match.
// This gives true persistence (every store returned by upd/updi/alloc is
// an independent, immutable version; earlier versions are unaffected) with
// structural sharing, at the cost of O(depth) lookup — acceptable here
// because the store only ever grows by single-location writes along one
// evaluation, and no location is ever overwritten more than a handful of
// times in realistic CPS programs (ref cells, handler swaps).
type Store struct {
	next    Location
	values  *valueLayer
	ints    *intLayer
	handler Location
}

type valueLayer struct {
	loc    Location
	val    Value
	parent *valueLayer
}

type intLayer struct {
	loc    Location
	val    int64
	parent *intLayer
}

// NewStore returns an empty store whose first allocation yields location 1
// (location 0 is reserved for HandlerRef) and whose handler location is
// HandlerRef. The caller must write a Function denotation to HandlerRef
// via Upd before any primop reads it — pkg/cps.Engine.Eval does this
// before calling the evaluator's top-level driver.
func NewStore() Store {
	return Store{next: HandlerRef + 1, handler: HandlerRef}
}

// HandlerLoc returns the store's fixed handler location.
func (s Store) HandlerLoc() Location {
	return s.handler
}

// Fetch returns the value bound to l in the value map. Fetching a location
// that was never written is undefined (per spec) and panics here with an
// ImplementationError-shaped message, since that always indicates a
// malformed CPS program rather than a recoverable condition.
func (s Store) Fetch(l Location) Value {
	for layer := s.values; layer != nil; layer = layer.parent {
		if layer.loc == l {
			return layer.val
		}
	}
	panic(undefinedLocation(l, "value"))
}

// Fetchi returns the integer bound to l in the integer map. See Fetch for
// the undefined-location failure mode.
func (s Store) Fetchi(l Location) int64 {
	for layer := s.ints; layer != nil; layer = layer.parent {
		if layer.loc == l {
			return layer.val
		}
	}
	panic(undefinedLocation(l, "integer"))
}

// Upd returns a new store with the value map updated at l; the integer
// map, next-free location, and handler location are unchanged.
func (s Store) Upd(l Location, v Value) Store {
	s.values = &valueLayer{loc: l, val: v, parent: s.values}
	return s
}

// Updi returns a new store with the integer map updated at l; the value
// map, next-free location, and handler location are unchanged.
func (s Store) Updi(l Location, v int64) Store {
	s.ints = &intLayer{loc: l, val: v, parent: s.ints}
	return s
}

// Alloc returns a fresh location strictly greater than any previously
// allocated one, and the store advanced past it. Neither map is touched —
// callers follow Alloc with Upd/Updi to initialize the new location.
func (s Store) Alloc() (Location, Store) {
	l := s.next
	s.next = nextloc(l)
	return l, s
}
