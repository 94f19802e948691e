package schedule

type Status string

const (
	StatusProvisional Status = "provisional"
	StatusConfirmed   Status = "confirmed"
	StatusModified    Status = "modified"
	// Set by external cancellation flows; canceled bookings never block a slot.
	StatusCanceled Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusProvisional, StatusConfirmed, StatusModified, StatusCanceled:
		return true
	default:
		return false
	}
}

// Contact fields are carried for the host and never inspected here.
type Contact struct {
	Name  string
	Phone string
	Email string
	Note  string
}
