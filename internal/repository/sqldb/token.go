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

type tokenRepository struct {
	db *sql.DB
}

func NewTokenRepository(db *sql.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, token *domain.RegistrationToken) error {
	query := `INSERT INTO registration_tokens (code, used, elevated, issued_by, created_at)
		VALUES ($1, FALSE, $2, $3, $4)`
	token.CreatedAt = nowFunc()
	token.Used = false
	_, err := r.db.ExecContext(ctx, query, token.Code, token.Elevated, token.IssuedBy, token.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: token code", repository.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}
	return nil
}

const redeemTokenQuery = `UPDATE registration_tokens SET used = TRUE, used_by = $1, used_at = $2
	WHERE code = $3 AND used = FALSE
	RETURNING elevated, issued_by`

// redeemToken flips an unused token to used. The WHERE guard makes the flip
// happen at most once per code.
func redeemToken(ctx context.Context, q execer, code string, usedBy int64) (*domain.RegistrationToken, error) {
	now := nowFunc()
	token := &domain.RegistrationToken{Code: code, Used: true, UsedBy: &usedBy, UsedAt: &now}
	var issuedBy sql.NullInt64
	logger.DatabaseCall("redeem_token", redeemTokenQuery)
	err := q.QueryRowContext(ctx, redeemTokenQuery, usedBy, now, code).Scan(&token.Elevated, &issuedBy)
	if errors.Is(err, sql.ErrNoRows) {
		logger.DatabaseResult("redeem_token", 0, nil)
		return nil, domain.ErrInvalidToken
	}
	if err != nil {
		logger.DatabaseResult("redeem_token", 0, err)
		return nil, fmt.Errorf("failed to redeem token: %w", err)
	}
	logger.DatabaseResult("redeem_token", 1, nil)
	token.IssuedBy = nullInt64Ptr(issuedBy)
	return token, nil
}

func (r *tokenRepository) Redeem(ctx context.Context, code string, usedBy int64) (*domain.RegistrationToken, error) {
	return redeemToken(ctx, r.db, code, usedBy)
}
