package theory

import "errors"

// ErrInvalidModulus is returned when a modulus is zero or negative.
var ErrInvalidModulus = errors.New("invalid modulus")

// ErrModulusMismatch is returned when values over different moduli are combined.
var ErrModulusMismatch = errors.New("modulus mismatch")

// ErrEmptyCycle is returned when a cycle or scale has zero degrees.
var ErrEmptyCycle = errors.New("empty cycle")

// ErrRootNotInSet is returned when a chord's root lies outside its
// pitch-class set under the strict root policy.
var ErrRootNotInSet = errors.New("root not in set")

// ErrVoicingMismatch is returned when a chord's voicing order does not
// contain exactly the chord's pitch classes.
var ErrVoicingMismatch = errors.New("voicing does not match set")

// ErrOutOfRange is returned when a degenerate zero-span scale is queried
// for a pitch.
var ErrOutOfRange = errors.New("out of range")
