package domain

import "time"

// Feedback is an anonymous message. OwnerID is kept for routing replies and is
// never serialized.
type Feedback struct {
	ID          int64      `json:"id"`
	OwnerID     int64      `json:"-"`
	Text        string     `json:"text"`
	Response    *string    `json:"response,omitempty"`
	AssigneeID  *int64     `json:"assignee_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`

	AssigneeName *string `json:"assignee_name,omitempty"`
}

func (f *Feedback) IsProcessed() bool {
	return f.Response != nil
}
