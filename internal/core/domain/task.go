package domain

import "strconv"

// TaskID identifies one search task for the lifetime of a run.
// For in-process tasks it is a sequence number, for worker processes the PID.
type TaskID int

// String returns the decimal form used in result lines.
func (id TaskID) String() string {
	return strconv.Itoa(int(id))
}
