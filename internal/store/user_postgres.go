package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type PostgresUserStore struct {
	db database.DB
}

func NewPostgresUserStore(db database.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

func (s *PostgresUserStore) Create(ctx context.Context, u *model.User) error {
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	_, err := s.db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role, is_approved, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.IsApproved,
		u.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("CreateUser: %w", err)
	}
	return nil
}

func (s *PostgresUserStore) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.get(ctx,
		`SELECT id, email, password_hash, role, is_approved, created_at
		 FROM users WHERE id = $1`, id)
}

func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.get(ctx,
		`SELECT id, email, password_hash, role, is_approved, created_at
		 FROM users WHERE email = $1`, email)
}

func (s *PostgresUserStore) get(ctx context.Context, sql string, arg any) (*model.User, error) {
	row := s.db.QueryRow(ctx, sql, arg)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.IsApproved,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUser: %w", err)
	}
	return u, nil
}

func (s *PostgresUserStore) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, email, password_hash, role, is_approved, created_at
		 FROM users WHERE role = $1 ORDER BY created_at`,
		role,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsersByRole: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID,
			&u.Email,
			&u.PasswordHash,
			&u.Role,
			&u.IsApproved,
			&u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListUsersByRole: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *PostgresUserStore) UpdateEmail(ctx context.Context, id, email string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE users SET email = $1 WHERE id = $2`,
		email,
		id,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("UpdateUserEmail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresUserStore) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE users SET password_hash = $1 WHERE id = $2`,
		passwordHash,
		id,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserPassword: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresUserStore) SetApproved(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE users SET is_approved = TRUE WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("SetUserApproved: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresUserStore) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM users WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
