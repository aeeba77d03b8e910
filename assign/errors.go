// SPDX-License-Identifier: MIT
// Package: kmnpairs/assign
//
// errors.go — sentinel errors for the assign package.
//
// Error policy:
//   • Callers MUST branch with errors.Is(err, ErrX); messages are not a contract.
//   • Context is attached with %w at the call site ("<Method>: ...: %w").
//   • Multi-violation checks (Validate) return errors.Join of wrapped
//     violations; every element matches the same sentinel.
//   • Nothing in this package panics on caller input. The only panic is the
//     switching bookkeeping assertion, which signals a bug in this package.

package assign

import "errors"

// ErrIndexOutOfRange indicates a left id ≥ m, a right id ≥ n, or a negative id.
var ErrIndexOutOfRange = errors.New("assign: index out of range")

// ErrDuplicateForbidden indicates that a forbidden pair is already present.
var ErrDuplicateForbidden = errors.New("assign: forbidden pair already present")

// ErrInvalidAssignment indicates a structural invariant violation of the
// realized pairs (size, left degree, right degree, duplicates).
var ErrInvalidAssignment = errors.New("assign: invalid assignment")

// ErrNoBackup indicates that no backup has been captured yet.
var ErrNoBackup = errors.New("assign: no backup")

// ErrBadSubset indicates a projection subset that is empty, out of range or
// contains duplicates.
var ErrBadSubset = errors.New("assign: bad subset")

// ErrSwitchRejected indicates that the switching result failed structural
// re-validation and the previous skeleton was kept.
var ErrSwitchRejected = errors.New("assign: switching result rejected")

// ErrBadSnapshot indicates a snapshot that cannot be loaded at all
// (non-positive sizes or ids outside the declared ranges).
var ErrBadSnapshot = errors.New("assign: bad snapshot")

// ErrUnknownStrategy indicates a Strategy or Selector value outside the
// declared constants.
var ErrUnknownStrategy = errors.New("assign: unknown search strategy")
