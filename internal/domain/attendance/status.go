package attendance

// Status is the attendance state of a day. The set is closed.
type Status string

const (
	StatusPresent     Status = "present"
	StatusHalfDay     Status = "half_day"
	StatusAbsent      Status = "absent"
	StatusPaidLeave   Status = "paid_leave"
	StatusUnpaidLeave Status = "unpaid_leave"
	StatusSickLeave   Status = "sick_leave"
	StatusExcuse      Status = "excuse"
	StatusWeekend     Status = "weekend"
	StatusHoliday     Status = "holiday"
)

type statusDisplay struct {
	label string
	color string
}

var statusOrder = []Status{
	StatusPresent,
	StatusHalfDay,
	StatusAbsent,
	StatusPaidLeave,
	StatusUnpaidLeave,
	StatusSickLeave,
	StatusExcuse,
	StatusWeekend,
	StatusHoliday,
}

var statusDisplays = map[Status]statusDisplay{
	StatusPresent:     {label: "Present", color: "#22c55e"},
	StatusHalfDay:     {label: "Half Day", color: "#84cc16"},
	StatusAbsent:      {label: "Absent", color: "#ef4444"},
	StatusPaidLeave:   {label: "Paid Leave", color: "#3b82f6"},
	StatusUnpaidLeave: {label: "Unpaid Leave", color: "#6366f1"},
	StatusSickLeave:   {label: "Sick Leave", color: "#f97316"},
	StatusExcuse:      {label: "Excuse", color: "#eab308"},
	StatusWeekend:     {label: "Weekend", color: "#9ca3af"},
	StatusHoliday:     {label: "Holiday", color: "#a855f7"},
}

// Statuses returns every status in display order.
func Statuses() []Status {
	out := make([]Status, len(statusOrder))
	copy(out, statusOrder)
	return out
}

func (s Status) IsValid() bool {
	_, ok := statusDisplays[s]
	return ok
}

func (s Status) Label() string {
	return statusDisplays[s].label
}

func (s Status) Color() string {
	return statusDisplays[s].color
}
