package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"hr-intake-backend/internal/domain"
	"hr-intake-backend/internal/repository"
)

type registrationRepository struct {
	db *sql.DB
}

func NewRegistrationRepository(db *sql.DB) repository.RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Register(ctx context.Context, code string, p *domain.Participant) (*domain.RegistrationToken, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	token, err := redeemToken(ctx, tx, code, p.ID)
	if err != nil {
		return nil, err
	}
	if err := upsertParticipant(ctx, tx, p); err != nil {
		return nil, fmt.Errorf("failed to store participant: %w", err)
	}
	if token.Elevated {
		if _, err := grantRole(ctx, tx, p.ID, domain.RoleElevated); err != nil {
			return nil, fmt.Errorf("failed to grant role: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	p.Role = domain.RoleNone
	if token.Elevated {
		p.Role = domain.RoleElevated
	}
	return token, nil
}

func (r *registrationRepository) Bootstrap(ctx context.Context, p *domain.Participant) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var n int
	if err := tx.QueryRowContext(ctx, countElevatedQuery, string(domain.RoleElevated)).Scan(&n); err != nil {
		return fmt.Errorf("failed to count elevated participants: %w", err)
	}
	if n > 0 {
		return domain.ErrAlreadyBootstrapped
	}
	if err := upsertParticipant(ctx, tx, p); err != nil {
		return fmt.Errorf("failed to store participant: %w", err)
	}
	if _, err := grantRole(ctx, tx, p.ID, domain.RoleElevated); err != nil {
		return fmt.Errorf("failed to grant role: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	p.Role = domain.RoleElevated
	return nil
}
