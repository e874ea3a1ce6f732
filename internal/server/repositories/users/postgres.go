package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/webauth/internal/common"
	"github.com/dmitrijs2005/webauth/internal/dbx"
	"github.com/dmitrijs2005/webauth/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new account row.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (id, name, number, email, password_hash)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Name, user.Number, user.Email, user.PasswordHash).Scan(&user.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// FindByEmail returns the account registered under email.
// If none exists, it returns common.ErrorNotFound.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx,
		`SELECT id, name, number, email, password_hash, created_at FROM users
		 WHERE email = $1
		 `, email)
}

// FindByNumber returns the account registered under the phone number.
// If none exists, it returns common.ErrorNotFound.
func (r *PostgresRepository) FindByNumber(ctx context.Context, number string) (*models.User, error) {
	return r.findOne(ctx,
		`SELECT id, name, number, email, password_hash, created_at FROM users
		 WHERE number = $1
		 `, number)
}

// FindByID returns the account with its active token list, oldest first.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	user, err := r.findOne(ctx,
		`SELECT id, name, number, email, password_hash, created_at FROM users
		 WHERE id = $1
		 `, id)
	if err != nil {
		return nil, err
	}

	query :=
		`SELECT token FROM user_tokens
		 WHERE user_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		user.Tokens = append(user.Tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// AppendToken records a session token for the account.
func (r *PostgresRepository) AppendToken(ctx context.Context, userID string, token string) error {
	query :=
		`INSERT INTO user_tokens (token, user_id)
		 VALUES ($1, $2)
		 `

	if _, err := r.db.ExecContext(ctx, query, token, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// RemoveToken deletes one session token. Deleting an absent token is a
// no-op, which makes logout idempotent.
func (r *PostgresRepository) RemoveToken(ctx context.Context, userID string, token string) error {
	query :=
		`DELETE FROM user_tokens
		 WHERE token = $1 AND user_id = $2
		 `

	if _, err := r.db.ExecContext(ctx, query, token, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, arg string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Name, &user.Number, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
