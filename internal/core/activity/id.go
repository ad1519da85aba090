package activity

import (
	"errors"
	"math"
	"strconv"
)

// ErrIDSpaceExhausted is returned when no further numeric ID can be issued.
var ErrIDSpaceExhausted = errors.New("activity ID space exhausted")

// ParseIDNumber extracts the number from a numeric activity ID.
// Returns false for IDs that are not plain decimal digits or that do not fit
// below math.MaxInt.
func ParseIDNumber(id string) (int, bool) {
	if id == "" {
		return 0, false
	}
	for _, c := range id {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(id)
	if err != nil || n == math.MaxInt {
		return 0, false
	}
	return n, true
}

// NextID picks the ID for a new activity.
// seq is the last number handed out (0 if none was recorded). The result is one
// past the larger of seq and the highest numeric existing ID, so it can never
// collide: IDs ignored by ParseIDNumber are never issued.
// Returns the new ID and the number to record as the new seq.
func NextID(seq int, existing []string) (string, int, error) {
	high := seq
	for _, id := range existing {
		if n, ok := ParseIDNumber(id); ok && n > high {
			high = n
		}
	}

	if high >= math.MaxInt-1 {
		return "", seq, ErrIDSpaceExhausted
	}
	next := high + 1
	return strconv.Itoa(next), next, nil
}
