package order

// Status is where an order is in its lifecycle. Orders only move forward:
//
//	pending -> preparing -> out-for-delivery -> delivered
type Status string

const (
	StatusPending        Status = "pending"
	StatusPreparing      Status = "preparing"
	StatusOutForDelivery Status = "out-for-delivery"
	StatusDelivered      Status = "delivered"
)

var statusRank = map[Status]int{
	StatusPending:        1,
	StatusPreparing:      2,
	StatusOutForDelivery: 3,
	StatusDelivered:      4,
}

// ParseStatus returns v as a Status when it is one of the known values.
func ParseStatus(v any) (Status, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	st := Status(s)
	_, known := statusRank[st]
	return st, known
}

// CanMoveTo reports whether an order may go from s to next. Staying put is
// allowed; nothing leaves delivered.
func (s Status) CanMoveTo(next Status) bool {
	if s == StatusDelivered {
		return false
	}
	from, okFrom := statusRank[s]
	to, okTo := statusRank[next]
	if !okFrom {
		return okTo
	}
	return okTo && to >= from
}

// Deletable reports whether an order in this status may be removed.
func (s Status) Deletable() bool {
	return s == StatusPending
}
