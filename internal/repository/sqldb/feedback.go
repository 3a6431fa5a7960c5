package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hr-intake-backend/internal/domain"
	"hr-intake-backend/internal/logger"
	"hr-intake-backend/internal/repository"
)

type feedbackRepository struct {
	db *sql.DB
}

func NewFeedbackRepository(db *sql.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, fb *domain.Feedback) error {
	query := `INSERT INTO feedback (owner_id, text, created_at) VALUES ($1, $2, $3) RETURNING id`
	fb.CreatedAt = nowFunc()
	fb.Response = nil
	fb.RespondedAt = nil
	if err := r.db.QueryRowContext(ctx, query, fb.OwnerID, fb.Text, fb.CreatedAt).Scan(&fb.ID); err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// ListPending never selects the owner.
func (r *feedbackRepository) ListPending(ctx context.Context) ([]domain.Feedback, error) {
	query := `SELECT id, text, created_at FROM feedback WHERE response IS NULL ORDER BY created_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending feedback: %w", err)
	}
	defer rows.Close()

	var out []domain.Feedback
	for rows.Next() {
		var fb domain.Feedback
		if err := rows.Scan(&fb.ID, &fb.Text, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		fb.CreatedAt = fb.CreatedAt.UTC()
		out = append(out, fb)
	}
	return out, rows.Err()
}

func (r *feedbackRepository) list(ctx context.Context, where string, args ...any) ([]domain.Feedback, error) {
	query := `SELECT f.id, f.text, f.response, f.assignee_id, f.created_at, f.responded_at, a.full_name
		FROM feedback f LEFT JOIN participants a ON a.id = f.assignee_id
		WHERE ` + where + `
		ORDER BY f.created_at DESC, f.id DESC`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Feedback
	for rows.Next() {
		var (
			fb           domain.Feedback
			response     sql.NullString
			assignee     sql.NullInt64
			respondedAt  sql.NullTime
			assigneeName sql.NullString
		)
		if err := rows.Scan(&fb.ID, &fb.Text, &response, &assignee, &fb.CreatedAt, &respondedAt, &assigneeName); err != nil {
			return nil, err
		}
		fb.CreatedAt = fb.CreatedAt.UTC()
		fb.Response = nullStringPtr(response)
		fb.AssigneeID = nullInt64Ptr(assignee)
		fb.RespondedAt = nullTimePtr(respondedAt)
		fb.AssigneeName = nullStringPtr(assigneeName)
		out = append(out, fb)
	}
	return out, rows.Err()
}

func (r *feedbackRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Feedback, error) {
	out, err := r.list(ctx, `f.owner_id = $1`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback for owner: %w", err)
	}
	for i := range out {
		out[i].OwnerID = ownerID
	}
	return out, nil
}

func (r *feedbackRepository) ListProcessed(ctx context.Context) ([]domain.Feedback, error) {
	out, err := r.list(ctx, `f.response IS NOT NULL`)
	if err != nil {
		return nil, fmt.Errorf("failed to list processed feedback: %w", err)
	}
	return out, nil
}

func (r *feedbackRepository) Respond(ctx context.Context, id int64, response string, responderID int64) error {
	query := `UPDATE feedback SET response = $1, assignee_id = $2, responded_at = $3 WHERE id = $4 AND response IS NULL`
	logger.DatabaseCall("respond_feedback", query, "id", id)
	res, err := r.db.ExecContext(ctx, query, response, responderID, nowFunc(), id)
	if err != nil {
		logger.DatabaseResult("respond_feedback", 0, err)
		return fmt.Errorf("failed to respond to feedback: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to respond to feedback: %w", err)
	}
	logger.DatabaseResult("respond_feedback", n, nil)
	if n > 0 {
		return nil
	}

	var one int
	err = r.db.QueryRowContext(ctx, `SELECT 1 FROM feedback WHERE id = $1`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: feedback %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to look up feedback: %w", err)
	}
	return fmt.Errorf("%w: feedback %d", domain.ErrAlreadyResponded, id)
}

func (r *feedbackRepository) GetOwner(ctx context.Context, id int64) (int64, error) {
	var owner int64
	err := r.db.QueryRowContext(ctx, `SELECT owner_id FROM feedback WHERE id = $1`, id).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: feedback %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get feedback owner: %w", err)
	}
	return owner, nil
}

func (r *feedbackRepository) CountPendingOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM feedback WHERE response IS NULL AND created_at < $1`, cutoff.UTC()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending feedback: %w", err)
	}
	return n, nil
}
