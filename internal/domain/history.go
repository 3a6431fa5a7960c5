package domain

import "time"

type HistoryKind string

const (
	HistoryKindRequest  HistoryKind = "request"
	HistoryKindFeedback HistoryKind = "feedback"
)

type HistoryScope string

const (
	HistoryScopeUser     HistoryScope = "user"
	HistoryScopeElevated HistoryScope = "elevated"
)

// HistoryItem is one entry of the merged history feed. Exactly one of Request
// and Feedback is set.
type HistoryItem struct {
	Kind     HistoryKind `json:"kind"`
	Request  *Request    `json:"request,omitempty"`
	Feedback *Feedback   `json:"feedback,omitempty"`
	SortAt   time.Time   `json:"sort_at"`
}

type HistoryPage struct {
	Items        []HistoryItem `json:"items"`
	Offset       int           `json:"offset"`
	Total        int           `json:"total"`
	HasPrev      bool          `json:"has_prev"`
	HasNext      bool          `json:"has_next"`
	PrevOffset   int           `json:"prev_offset,omitempty"`
	NextOffset   int           `json:"next_offset,omitempty"`
	EmptyMessage string        `json:"empty_message,omitempty"`
}
