//
// Documentation Last Review: 10.02.2025
//

package vote

import "time"

// Status indicates whether a ballot may be cast at a given instant.
type Status int

const (
	// NotYetOpen means the voting window has not opened. The opening
	// instant is available on the definition for display.
	NotYetOpen Status = iota

	// Eligible means a ballot may be cast now.
	Eligible

	// Closed means the voting window has passed.
	Closed
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case NotYetOpen:
		return "not yet open"
	case Eligible:
		return "open"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// CheckEligible compares the clock against the voting window. The window is
// inclusive on both ends. The comparison is purely instant-based, so bounds
// and clock can be in different time zones.
func (d *Definition) CheckEligible(now time.Time) Status {
	if now.Before(d.start) {
		return NotYetOpen
	}

	if now.After(d.end) {
		return Closed
	}

	return Eligible
}
