package catalog

// RequestStatus is the closed set of part-request lifecycle states. Any state
// may move to any other; values outside the set are rejected at the boundary.
type RequestStatus string

const (
	StatusNew       RequestStatus = "new"
	StatusInWork    RequestStatus = "in_work"
	StatusOrdered   RequestStatus = "ordered"
	StatusReceived  RequestStatus = "received"
	StatusCancelled RequestStatus = "cancelled"
)

// RequestStatuses lists all valid states in display order.
var RequestStatuses = []RequestStatus{
	StatusNew,
	StatusInWork,
	StatusOrdered,
	StatusReceived,
	StatusCancelled,
}

// ParseRequestStatus validates a raw status value. The boolean is false for
// anything outside the allowed enumeration, including the empty string.
func ParseRequestStatus(raw string) (RequestStatus, bool) {
	for _, s := range RequestStatuses {
		if string(s) == raw {
			return s, true
		}
	}
	return "", false
}
