package booking

import "strings"

// BookingStatus is the lifecycle state of a booking. The vocabulary is open:
// these constants cover the states the service itself assigns, but callers
// may set any non-empty value and it is preserved verbatim.
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCompleted BookingStatus = "Completed"
	StatusCancelled BookingStatus = "Cancelled"
)

// IsKnown reports whether the status is one of the well-known constants,
// ignoring case.
func (s BookingStatus) IsKnown() bool {
	for _, known := range []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		if s.Equals(known) {
			return true
		}
	}
	return false
}

// Equals compares two statuses case-insensitively.
func (s BookingStatus) Equals(other BookingStatus) bool {
	return strings.EqualFold(string(s), string(other))
}

func (s BookingStatus) String() string {
	return string(s)
}
