// Package guard provides a defensive construction pattern for commands,
// queries, and value objects. Embedding a ConstructorGuard lets a type
// detect whether it was created through its designated constructor or as a
// zero value, so invariants established in the constructor cannot be
// bypassed.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether the embedding object was created through
// its constructor function. The zero value reports not constructed.
//
// Example:
//
//	type TrackOrderQuery struct {
//	    trackingID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewTrackOrderQuery(id kernel.UUID) (TrackOrderQuery, error) {
//	    if err := id.Validate(); err != nil {
//	        return TrackOrderQuery{}, err
//	    }
//	    return TrackOrderQuery{trackingID: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (q TrackOrderQuery) Validate() error {
//	    return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the embedding object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
