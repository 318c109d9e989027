package types

import "github.com/shopspring/decimal"

// Coach is the trimmed user reference embedded in groups and sessions.
type Coach struct {
	ID          string `json:"_id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

// ScheduleEntry is one weekly occurrence slot of a group.
type ScheduleEntry struct {
	DayOfWeek string `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  int    `json:"duration"`
}

// PaymentTerms describe what joining a group costs. Display data only:
// payment execution belongs to the backend.
type PaymentTerms struct {
	Amount            decimal.Decimal `json:"amount"`
	BillingCycle      string          `json:"billingCycle"`
	IncludesEquipment bool            `json:"includesEquipment"`
	Notes             string          `json:"notes,omitempty"`
}

// Group is a coaching group with its weekly schedule and capacity.
type Group struct {
	ID             string          `json:"_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Coaches        []Coach         `json:"coaches"`
	Schedule       []ScheduleEntry `json:"schedule"`
	MaxMembers     int             `json:"maxMembers"`
	MembershipOpen bool            `json:"membershipOpen"`
	Payment        PaymentTerms    `json:"payment"`
	Notes          string          `json:"notes,omitempty"`
}

func (g Group) EntityID() string { return g.ID }
