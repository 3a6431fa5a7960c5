// Package sqldb implements the repositories on database/sql. Queries are
// written to run unchanged on PostgreSQL (lib/pq) and SQLite (modernc).
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hr-intake-backend/internal/repository"

	"github.com/lib/pq"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store bundles every repository over one handle.
type Store struct {
	db            *sql.DB
	Participants  repository.ParticipantRepository
	Roles         repository.RoleRepository
	Tokens        repository.TokenRepository
	Registrations repository.RegistrationRepository
	Requests      repository.RequestRepository
	Feedback      repository.FeedbackRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:            db,
		Participants:  NewParticipantRepository(db),
		Roles:         NewRoleRepository(db),
		Tokens:        NewTokenRepository(db),
		Registrations: NewRegistrationRepository(db),
		Requests:      NewRequestRepository(db),
		Feedback:      NewFeedbackRepository(db),
	}
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var nowFunc = func() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	return false
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func nullInt64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
