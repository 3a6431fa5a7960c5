package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"hr-intake-backend/internal/domain"
	"hr-intake-backend/internal/logger"
	"hr-intake-backend/internal/repository"
)

// maxSeqAttempts bounds retries when two submits by the same owner race for
// the same sequence number.
const maxSeqAttempts = 3

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

const insertRequestQuery = `INSERT INTO requests (owner_id, seq, category, text, status, created_at)
	SELECT $1, COALESCE(MAX(seq), 0) + 1, $2, $3, 'submitted', $4 FROM requests WHERE owner_id = $1
	RETURNING id, seq`

func (r *requestRepository) Create(ctx context.Context, req *domain.Request) error {
	req.Status = domain.RequestStatusSubmitted
	req.CreatedAt = nowFunc()
	req.UpdatedAt = nil

	var err error
	for attempt := 1; attempt <= maxSeqAttempts; attempt++ {
		err = r.db.QueryRowContext(ctx, insertRequestQuery, req.OwnerID, req.Category, req.Text, req.CreatedAt).Scan(&req.ID, &req.Seq)
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return fmt.Errorf("failed to create request: %w", err)
		}
		logger.Warn("Request sequence collision, retrying", "owner_id", req.OwnerID, "attempt", attempt)
	}
	return fmt.Errorf("failed to create request after %d attempts: %w", maxSeqAttempts, err)
}

const requestColumns = `r.id, r.owner_id, r.seq, r.category, r.text, r.status, r.response, r.assignee_id, r.created_at, r.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner, extra ...any) (*domain.Request, error) {
	var (
		req       domain.Request
		status    string
		response  sql.NullString
		assignee  sql.NullInt64
		updatedAt sql.NullTime
	)
	dest := append([]any{&req.ID, &req.OwnerID, &req.Seq, &req.Category, &req.Text, &status, &response, &assignee, &req.CreatedAt, &updatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	req.Status = domain.RequestStatus(status)
	req.Response = nullStringPtr(response)
	req.AssigneeID = nullInt64Ptr(assignee)
	req.CreatedAt = req.CreatedAt.UTC()
	req.UpdatedAt = nullTimePtr(updatedAt)
	return &req, nil
}

func (r *requestRepository) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests r WHERE r.id = $1`
	req, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: request %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return req, nil
}

func (r *requestRepository) ListPending(ctx context.Context) ([]domain.Request, error) {
	query := `SELECT ` + requestColumns + `, p.full_name, p.department, p.position
		FROM requests r LEFT JOIN participants p ON p.id = r.owner_id
		WHERE r.status = 'submitted'
		ORDER BY r.created_at ASC, r.id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	defer rows.Close()

	var out []domain.Request
	for rows.Next() {
		var name, dept, pos sql.NullString
		req, err := scanRequest(rows, &name, &dept, &pos)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		if name.Valid {
			req.Submitter = &domain.Participant{ID: req.OwnerID, FullName: name.String, Department: dept.String, Position: pos.String}
		}
		out = append(out, *req)
	}
	return out, rows.Err()
}

func (r *requestRepository) listWithAssignee(ctx context.Context, where string, args ...any) ([]domain.Request, error) {
	query := `SELECT ` + requestColumns + `, a.full_name
		FROM requests r LEFT JOIN participants a ON a.id = r.assignee_id
		WHERE ` + where + `
		ORDER BY r.created_at DESC, r.id DESC`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Request
	for rows.Next() {
		var assigneeName sql.NullString
		req, err := scanRequest(rows, &assigneeName)
		if err != nil {
			return nil, err
		}
		req.AssigneeName = nullStringPtr(assigneeName)
		out = append(out, *req)
	}
	return out, rows.Err()
}

func (r *requestRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Request, error) {
	out, err := r.listWithAssignee(ctx, `r.owner_id = $1`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests for owner: %w", err)
	}
	return out, nil
}

func (r *requestRepository) ListProcessed(ctx context.Context) ([]domain.Request, error) {
	out, err := r.listWithAssignee(ctx, `r.status <> 'submitted'`)
	if err != nil {
		return nil, fmt.Errorf("failed to list processed requests: %w", err)
	}
	return out, nil
}

// UpdateStatus applies a status change, a response, or both in one statement,
// together with the assignee when one is given. A status change only applies
// while the request is still submitted; otherwise nothing is written.
func (r *requestRepository) UpdateStatus(ctx context.Context, id int64, update domain.StatusUpdate) error {
	if update.Status == nil && update.Response == nil {
		return fmt.Errorf("%w: status or response is required", domain.ErrValidation)
	}
	if update.Status != nil && !update.Status.IsTerminal() {
		return fmt.Errorf("%w: status must be approved or rejected", domain.ErrValidation)
	}

	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if update.Status != nil {
		set("status", string(*update.Status))
	}
	if update.Response != nil {
		set("response", *update.Response)
	}
	if update.AssigneeID != nil {
		set("assignee_id", *update.AssigneeID)
	}
	set("updated_at", nowFunc())
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE requests SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))
	if update.Status != nil {
		query += ` AND status = 'submitted'`
	}

	logger.DatabaseCall("update_request_status", query, "id", id)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult("update_request_status", 0, err)
		return fmt.Errorf("failed to update request: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update request: %w", err)
	}
	logger.DatabaseResult("update_request_status", n, nil)
	if n > 0 {
		return nil
	}

	var status string
	err = r.db.QueryRowContext(ctx, `SELECT status FROM requests WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: request %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to look up request: %w", err)
	}
	return fmt.Errorf("%w: request %d is %s", domain.ErrInvalidTransition, id, status)
}

func (r *requestRepository) Assign(ctx context.Context, id, assigneeID int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE requests SET assignee_id = $1 WHERE id = $2`, assigneeID, id)
	if err != nil {
		return fmt.Errorf("failed to assign request: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to assign request: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: request %d", domain.ErrNotFound, id)
	}
	return nil
}

func (r *requestRepository) CountPendingOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM requests WHERE status = 'submitted' AND created_at < $1`, cutoff.UTC()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending requests: %w", err)
	}
	return n, nil
}
