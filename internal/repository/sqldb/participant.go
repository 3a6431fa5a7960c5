package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hr-intake-backend/internal/domain"
	"hr-intake-backend/internal/logger"
	"hr-intake-backend/internal/repository"
)

type participantRepository struct {
	db *sql.DB
}

func NewParticipantRepository(db *sql.DB) repository.ParticipantRepository {
	return &participantRepository{db: db}
}

const upsertParticipantQuery = `INSERT INTO participants (id, full_name, department, position)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (id) DO UPDATE SET full_name = EXCLUDED.full_name, department = EXCLUDED.department, position = EXCLUDED.position`

func upsertParticipant(ctx context.Context, q execer, p *domain.Participant) error {
	_, err := q.ExecContext(ctx, upsertParticipantQuery, p.ID, p.FullName, p.Department, p.Position)
	return err
}

func (r *participantRepository) Upsert(ctx context.Context, p *domain.Participant) error {
	if err := upsertParticipant(ctx, r.db, p); err != nil {
		return fmt.Errorf("failed to upsert participant: %w", err)
	}
	return nil
}

func (r *participantRepository) GetByID(ctx context.Context, id int64) (*domain.Participant, error) {
	query := `SELECT p.id, p.full_name, p.department, p.position, COALESCE(r.role, 'none')
		FROM participants p LEFT JOIN roles r ON r.participant_id = p.id
		WHERE p.id = $1`
	p := &domain.Participant{}
	var role string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.FullName, &p.Department, &p.Position, &role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: participant %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	p.Role = domain.Role(role)
	return p, nil
}

func (r *participantRepository) List(ctx context.Context) ([]domain.Participant, error) {
	query := `SELECT p.id, p.full_name, p.department, p.position, COALESCE(r.role, 'none')
		FROM participants p LEFT JOIN roles r ON r.participant_id = p.id
		ORDER BY p.full_name, p.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var out []domain.Participant
	for rows.Next() {
		var p domain.Participant
		var role string
		if err := rows.Scan(&p.ID, &p.FullName, &p.Department, &p.Position, &role); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		p.Role = domain.Role(role)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *participantRepository) UpdateProfile(ctx context.Context, id int64, update domain.ProfileUpdate) error {
	if update.IsEmpty() {
		return fmt.Errorf("%w: profile update has no fields", domain.ErrValidation)
	}
	query := `UPDATE participants SET
		full_name = COALESCE($1, full_name),
		department = COALESCE($2, department),
		position = COALESCE($3, position)
		WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, update.FullName, update.Department, update.Position, id)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: participant %d", domain.ErrNotFound, id)
	}
	return nil
}

func (r *participantRepository) Delete(ctx context.Context, id int64) error {
	logger.DatabaseCall("delete_participant", "DELETE FROM roles/participants", "id", id)
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM roles WHERE participant_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM participants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: participant %d", domain.ErrNotFound, id)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	logger.DatabaseResult("delete_participant", n, nil)
	return nil
}
