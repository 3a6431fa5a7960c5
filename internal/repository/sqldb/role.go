package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hr-intake-backend/internal/domain"
	"hr-intake-backend/internal/repository"
)

type roleRepository struct {
	db *sql.DB
}

func NewRoleRepository(db *sql.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

const grantRoleQuery = `INSERT INTO roles (participant_id, role) VALUES ($1, $2) ON CONFLICT (participant_id) DO NOTHING`

// grantRole reports whether a row was inserted; an existing role is left as is.
func grantRole(ctx context.Context, q execer, participantID int64, role domain.Role) (bool, error) {
	res, err := q.ExecContext(ctx, grantRoleQuery, participantID, string(role))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *roleRepository) Grant(ctx context.Context, participantID int64, role domain.Role) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM participants WHERE id = $1`, participantID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("%w: participant %d", domain.ErrNotFound, participantID)
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up participant: %w", err)
	}
	granted, err := grantRole(ctx, r.db, participantID, role)
	if err != nil {
		return false, fmt.Errorf("failed to grant role: %w", err)
	}
	return granted, nil
}

func (r *roleRepository) ListElevatedIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT participant_id FROM roles WHERE role = $1 ORDER BY participant_id`, string(domain.RoleElevated))
	if err != nil {
		return nil, fmt.Errorf("failed to list elevated participants: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan participant id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

const countElevatedQuery = `SELECT COUNT(*) FROM roles WHERE role = $1`

func (r *roleRepository) CountElevated(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countElevatedQuery, string(domain.RoleElevated)).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count elevated participants: %w", err)
	}
	return n, nil
}
