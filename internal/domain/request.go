package domain

import "time"

type RequestStatus string

const (
	RequestStatusSubmitted RequestStatus = "submitted"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusRejected  RequestStatus = "rejected"
)

// IsTerminal reports whether no further status change is allowed.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

type Request struct {
	ID         int64         `json:"id"`
	OwnerID    int64         `json:"owner_id"`
	Seq        int32         `json:"seq"` // per-owner, starts at 1
	Category   string        `json:"category"`
	Text       string        `json:"text"`
	Status     RequestStatus `json:"status"`
	Response   *string       `json:"response,omitempty"`
	AssigneeID *int64        `json:"assignee_id,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  *time.Time    `json:"updated_at,omitempty"`

	// Populated by list queries only.
	AssigneeName *string      `json:"assignee_name,omitempty"`
	Submitter    *Participant `json:"submitter,omitempty"`
}

// StatusUpdate carries the three update shapes of a request: status only,
// response only, or both. AssigneeID, when set, is written by the same
// statement so a rejected transition leaves the assignee untouched.
type StatusUpdate struct {
	Status     *RequestStatus `json:"status,omitempty"`
	Response   *string        `json:"response,omitempty"`
	AssigneeID *int64         `json:"-"`
}
