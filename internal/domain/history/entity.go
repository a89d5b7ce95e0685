package history

// Leave types as the backend reports them.
const (
	LeaveFullDay    = "Full Day"
	LeaveHalfDay    = "Half Day"
	LeaveShortLeave = "Short Leave"
)

// DefaultLeaveReason is substituted when a leave record carries no reason
// under any of its aliases.
const DefaultLeaveReason = "Leave"

// RawRecord is one attendance or leave record as the backend returns it.
// The backend emits several shapes depending on the endpoint and record age,
// so every known alias is declared here and resolved by Normalize with an
// ordered fallback chain per logical attribute.
type RawRecord struct {
	Date     string `json:"date,omitempty"`
	FromDate string `json:"from_date,omitempty"`
	ToDate   string `json:"to_date,omitempty"`

	TimeIn  string `json:"time_in,omitempty"`
	TimeOut string `json:"time_out,omitempty"`

	Absent  bool   `json:"absent,omitempty"`
	Status  string `json:"status,omitempty"`
	Type    string `json:"type,omitempty"`
	IsLeave bool   `json:"is_leave,omitempty"`
	Leave   bool   `json:"leave,omitempty"`

	Reason      string `json:"reason,omitempty"`
	LeaveReason string `json:"leave_reason,omitempty"`
	Remarks     string `json:"remarks,omitempty"`

	LeaveType  string `json:"leave_type,omitempty"`
	HalfDay    bool   `json:"half_day,omitempty"`
	ShortLeave bool   `json:"short_leave,omitempty"`
}

// DayRecord is the canonical, deduplicated representation of one employee's
// status for one calendar date. Exactly one DayRecord exists per date after
// Dedupe. IsLeave and a present TimeIn are mutually exclusive.
type DayRecord struct {
	Date        string  `json:"date"`
	IsLeave     bool    `json:"is_leave"`
	LeaveType   string  `json:"leave_type,omitempty"`
	LeaveReason string  `json:"leave_reason,omitempty"`
	TimeIn      *string `json:"time_in"`
	TimeOut     *string `json:"time_out"`
}

// DerivedStats are aggregate figures over a window of DayRecords.
type DerivedStats struct {
	TotalDays   int     `json:"total_days"`
	PresentDays int     `json:"present_days"`
	LeaveDays   int     `json:"leave_days"`
	TotalHours  float64 `json:"total_hours"`
	AvgHours    float64 `json:"avg_hours"`
}

// Payload is the raw history response shape from the History Provider.
type Payload struct {
	Attendance []RawRecord `json:"attendance"`
	Leaves     []RawRecord `json:"leaves,omitempty"`
}
