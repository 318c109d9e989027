package enums

import "fmt"

// AttendanceStatus records a member's presence in a session roster.
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
	AttendanceStatusExcused AttendanceStatus = "excused"
)

var validAttendanceStatuses = []AttendanceStatus{
	AttendanceStatusPresent,
	AttendanceStatusAbsent,
	AttendanceStatusLate,
	AttendanceStatusExcused,
}

// String implements fmt.Stringer.
func (a AttendanceStatus) String() string {
	return string(a)
}

// IsValid reports whether the value matches a known AttendanceStatus.
func (a AttendanceStatus) IsValid() bool {
	for _, candidate := range validAttendanceStatuses {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAttendanceStatus converts raw input into an AttendanceStatus.
func ParseAttendanceStatus(value string) (AttendanceStatus, error) {
	for _, candidate := range validAttendanceStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid attendance status %q", value)
}
