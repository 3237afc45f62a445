package offer

import (
	"fmt"
	"strconv"
	"strings"
)

// Status is the lifecycle stage of an offer. Values are ordered and only ever
// increase over the life of a record. They are spaced so that intermediate
// administrative stages can be inserted later without renumbering.
type Status int16

const (
	StatusCreated     Status = 0
	StatusAcceptedByA Status = 10
	StatusClaimedByB  Status = 20
	StatusConfirmedB  Status = 30
	StatusSettled     Status = 40
	StatusCancelled   Status = 90
)

var statusNames = map[Status]string{
	StatusCreated:     "CREATED",
	StatusAcceptedByA: "ACCEPTED_BY_A",
	StatusClaimedByB:  "CLAIMED_BY_B",
	StatusConfirmedB:  "CONFIRMED_BY_B",
	StatusSettled:     "SETTLED",
	StatusCancelled:   "CANCELLED",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int16(s))
}

// Valid reports whether s is a known lifecycle stage.
func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// Reserved reports whether s may only be reached through a party-specific
// rule (trader acceptance, claim, fulfiller confirmation).
func (s Status) Reserved() bool {
	switch s {
	case StatusAcceptedByA, StatusClaimedByB, StatusConfirmedB:
		return true
	default:
		return false
	}
}

// ParseStatus accepts either the integer value or the stage name
// (case-insensitive).
func ParseStatus(v string) (Status, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, fmt.Errorf("empty status")
	}
	if n, err := strconv.ParseInt(v, 10, 16); err == nil {
		s := Status(n)
		if !s.Valid() {
			return 0, fmt.Errorf("unknown status %d", n)
		}
		return s, nil
	}
	upper := strings.ToUpper(v)
	for s, name := range statusNames {
		if name == upper {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown status %q", v)
}

// CheckAdvance rejects unknown stages and any move to a lower stage.
// Re-requesting the current stage is allowed.
func CheckAdvance(current, requested Status) error {
	if !requested.Valid() {
		return fmt.Errorf("%w: unknown status %d", ErrInvalidTransition, int16(requested))
	}
	if requested < current {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, requested)
	}
	return nil
}
