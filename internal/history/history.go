// Package history merges requests and feedback into one reverse-chronological
// feed and cuts it into fixed-size pages.
package history

import (
	"fmt"
	"sort"
	"time"

	"hr-intake-backend/internal/domain"
)

const (
	PageSize     = 10
	EmptyMessage = "No history yet."
)

// Merge builds the unsorted feed. Each item's SortAt is its last change time,
// falling back to creation.
func Merge(requests []domain.Request, feedback []domain.Feedback) []domain.HistoryItem {
	items := make([]domain.HistoryItem, 0, len(requests)+len(feedback))
	for i := range requests {
		r := requests[i]
		at := r.CreatedAt
		if r.UpdatedAt != nil {
			at = *r.UpdatedAt
		}
		items = append(items, domain.HistoryItem{Kind: domain.HistoryKindRequest, Request: &r, SortAt: at})
	}
	for i := range feedback {
		f := feedback[i]
		at := f.CreatedAt
		if f.RespondedAt != nil {
			at = *f.RespondedAt
		}
		items = append(items, domain.HistoryItem{Kind: domain.HistoryKindFeedback, Feedback: &f, SortAt: at})
	}
	return items
}

// Sort orders items newest first. Ties fall back to creation time, then
// requests before feedback, then the higher id.
func Sort(items []domain.HistoryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.SortAt.Equal(b.SortAt) {
			return a.SortAt.After(b.SortAt)
		}
		if ca, cb := createdAt(a), createdAt(b); !ca.Equal(cb) {
			return ca.After(cb)
		}
		if a.Kind != b.Kind {
			return a.Kind == domain.HistoryKindRequest
		}
		return itemID(a) > itemID(b)
	})
}

// Paginate merges, sorts and returns the page starting at offset.
func Paginate(requests []domain.Request, feedback []domain.Feedback, offset int) (*domain.HistoryPage, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", domain.ErrValidation)
	}
	items := Merge(requests, feedback)
	Sort(items)

	page := &domain.HistoryPage{Offset: offset, Total: len(items), Items: []domain.HistoryItem{}}
	if offset >= len(items) {
		page.EmptyMessage = EmptyMessage
		return page, nil
	}

	end := offset + PageSize
	if end > len(items) {
		end = len(items)
	}
	page.Items = items[offset:end]
	if offset >= PageSize {
		page.HasPrev = true
		page.PrevOffset = offset - PageSize
	}
	if offset+PageSize < len(items) {
		page.HasNext = true
		page.NextOffset = offset + PageSize
	}
	return page, nil
}

func createdAt(it domain.HistoryItem) time.Time {
	if it.Request != nil {
		return it.Request.CreatedAt
	}
	return it.Feedback.CreatedAt
}

func itemID(it domain.HistoryItem) int64 {
	if it.Request != nil {
		return it.Request.ID
	}
	return it.Feedback.ID
}
