package types

import (
	"time"

	"github.com/HasanBocek/KTUTennisCRM/pkg/enums"
)

// AttendanceRecord is one (user, status, note) entry of a session roster.
type AttendanceRecord struct {
	User   UserSummary            `json:"user"`
	Status enums.AttendanceStatus `json:"status"`
	Note   string                 `json:"note,omitempty"`
}

// Session is one scheduled occurrence of a group with its attendance
// roster. Roster users are nominally members of the session's group;
// the backend enforces that.
type Session struct {
	ID         string             `json:"_id"`
	Group      Group              `json:"group"`
	Coaches    []Coach            `json:"coaches"`
	Status     string             `json:"status"`
	StartTime  time.Time          `json:"startTime"`
	EndTime    time.Time          `json:"endTime"`
	Notes      string             `json:"notes,omitempty"`
	Attendance []AttendanceRecord `json:"attendance"`
	IsActive   bool               `json:"isActive"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

func (s Session) EntityID() string { return s.ID }

// MySessionAttendance is the caller's own attendance entry inside a
// personal session listing.
type MySessionAttendance struct {
	Status enums.AttendanceStatus `json:"status"`
	Note   string                 `json:"note,omitempty"`
}

// MySession is a session as seen from one member's point of view.
type MySession struct {
	ID         string              `json:"_id"`
	Coaches    []Coach             `json:"coaches"`
	Notes      string              `json:"notes,omitempty"`
	Status     string              `json:"status"`
	StartTime  time.Time           `json:"startTime"`
	EndTime    time.Time           `json:"endTime"`
	Attendance MySessionAttendance `json:"attendance"`
}
