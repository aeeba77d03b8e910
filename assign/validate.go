// SPDX-License-Identifier: MIT
// Package: kmnpairs/assign
//
// validate.go — structural validation and advisory forbidden checks.
//
// ValidatePairs is pure: it reports every violation it finds, joined, so a
// single call surfaces all problems. CheckForbidden never fails; it returns
// warnings that a zero-forbidden assignment may be infeasible.

package assign

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kmnpairs/skeleton"
)

// Validate checks the current realized pairs. See ValidatePairs.
func (e *Engine) Validate() error {
	return ValidatePairs(e.kmn, e.RealizedPairs())
}

// ValidatePairs checks that pairs form a balanced assignment for prm:
//   - len(pairs) == p·m and every id is in range;
//   - every left id has exactly p distinct partners;
//   - every right id has k or k+1 distinct partners;
//   - both degree sums equal p·m;
//   - exactly m·p − k·n right ids have degree k+1.
//
// Every violation wraps ErrInvalidAssignment; nil means valid.
func ValidatePairs(prm skeleton.Params, pairs []skeleton.Pair) error {
	k, m, n, p := prm.K, prm.M, prm.N, prm.P()
	var errs []error
	bad := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidAssignment, fmt.Sprintf(format, args...)))
	}

	if len(pairs) != p*m {
		bad("pairs count %d != p*m = %d", len(pairs), p*m)
	}
	for i, pr := range pairs {
		if pr.L < 0 || int(pr.L) >= m || pr.R < 0 || int(pr.R) >= n {
			bad("pair #%d %v out of range (m=%d, n=%d)", i, pr, m, n)
		}
	}

	leftNbrs := make([][]skeleton.Right, max(m, 0))
	rightNbrs := make([][]skeleton.Left, max(n, 0))
	seen := make(skeleton.Set, len(pairs))
	for _, pr := range pairs {
		if pr.L < 0 || int(pr.L) >= m || pr.R < 0 || int(pr.R) >= n {
			continue
		}
		if seen.Has(pr) {
			bad("duplicate pair %v", pr)
			continue
		}
		seen[pr] = struct{}{}
		leftNbrs[pr.L] = append(leftNbrs[pr.L], pr.R)
		rightNbrs[pr.R] = append(rightNbrs[pr.R], pr.L)
	}

	leftSum, rightSum, heavy := 0, 0, 0
	for l, nb := range leftNbrs {
		leftSum += len(nb)
		if len(nb) != p {
			bad("left %d has %d partners, want %d", l, len(nb), p)
		}
	}
	for r, nb := range rightNbrs {
		rightSum += len(nb)
		switch len(nb) {
		case k:
		case k + 1:
			heavy++
		default:
			bad("right %d has %d partners, want %d or %d", r, len(nb), k, k+1)
		}
	}
	if leftSum != p*m {
		bad("left degree sum %d != p*m = %d", leftSum, p*m)
	}
	if rightSum != p*m {
		bad("right degree sum %d != p*m = %d", rightSum, p*m)
	}
	if want := prm.Excess(); heavy != want {
		bad("%d right ids have degree k+1, want m*p-k*n = %d", heavy, want)
	}

	return errors.Join(errs...)
}

// WarningKind classifies an advisory forbidden-set finding.
type WarningKind int

const (
	// WarnTooManyForbidden: |F| > m·n − m·p.
	WarnTooManyForbidden WarningKind = iota
	// WarnLeftStarved: a left id has fewer than p allowed rights.
	WarnLeftStarved
	// WarnRightStarved: a right id has fewer than k allowed lefts.
	WarnRightStarved
	// WarnHeavyShortage: too few right ids can take k+1 partners.
	WarnHeavyShortage
)

var warningKindNames = [...]string{"too-many-forbidden", "left-starved", "right-starved", "heavy-shortage"}

func (w WarningKind) String() string {
	if w < 0 || int(w) >= len(warningKindNames) {
		return fmt.Sprintf("WarningKind(%d)", int(w))
	}
	return warningKindNames[w]
}

// Warning is one advisory finding of CheckForbidden. ID is the left or
// right id concerned, or -1 for set-wide findings.
type Warning struct {
	Kind    WarningKind
	ID      int
	Message string
}

func (w Warning) String() string { return w.Kind.String() + ": " + w.Message }

// CheckForbidden flags cases where a zero-forbidden assignment is known to
// be impossible. It never blocks further operations; every finding is also
// logged at Warn level.
func (e *Engine) CheckForbidden() []Warning {
	k, m, n, p := e.kmn.K, e.kmn.M, e.kmn.N, e.P()
	var out []Warning
	warn := func(kind WarningKind, id int, format string, args ...interface{}) {
		w := Warning{Kind: kind, ID: id, Message: fmt.Sprintf(format, args...)}
		e.log.Warn("forbidden check", "kind", kind, "id", id, "detail", w.Message)
		out = append(out, w)
	}

	if budget := m*n - m*p; len(e.forbidden) > budget {
		warn(WarnTooManyForbidden, -1, "%d forbidden pairs exceed the avoidable budget m*n-m*p = %d", len(e.forbidden), budget)
	}
	lf, rf := e.forbiddenDegrees()
	for l, d := range lf {
		if n-d < p {
			warn(WarnLeftStarved, l, "left %d has %d allowed rights, needs %d", l, n-d, p)
		}
	}
	heavyCapable := 0
	for r, d := range rf {
		if m-d < k {
			warn(WarnRightStarved, r, "right %d has %d allowed lefts, needs %d", r, m-d, k)
		}
		if m-d >= k+1 {
			heavyCapable++
		}
	}
	if excess := e.kmn.Excess(); heavyCapable < excess {
		warn(WarnHeavyShortage, -1, "%d right ids can take k+1 = %d partners, %d needed", heavyCapable, k+1, excess)
	}
	return out
}
