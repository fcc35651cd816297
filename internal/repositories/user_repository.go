package repository

import (
	"context"
	"database/sql"
	"fmt"

	models "github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/utils"
	"github.com/google/uuid"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserById(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	UpdateMFA(ctx context.Context, id uuid.UUID, enabled bool, secret string) error
	ListUsers(ctx context.Context, page, size int) ([]*models.User, int, error)
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepo(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

const userColumns = `id, email, password, name, name_ar, phone, role, active, newsletter, preferred_language,
		avatar_url, mfa_enabled, mfa_secret, created_at, updated_at`

func scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}

	err := row.Scan(&user.ID, &user.Email, &user.Password, &user.Name, &user.NameAr, &user.Phone, &user.Role, &user.Active,
		&user.Newsletter, &user.PreferredLanguage, &user.AvatarURL, &user.MFAEnabled, &user.MFASecret, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO users(email, password, name, name_ar, role, active, preferred_language, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, user.Email, user.Password, user.Name, user.NameAr, user.Role, user.Active, user.PreferredLanguage).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return scanUser(r.DB.QueryRowContext(dbCtx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))

}

func (r *userRepository) GetUserById(ctx context.Context, id uuid.UUID) (*models.User, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return scanUser(r.DB.QueryRowContext(dbCtx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))

}

// UpdateUser writes the profile and admin-managed fields. Credentials have
// their own methods.
func (r *userRepository) UpdateUser(ctx context.Context, user *models.User) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE users SET name = $1, name_ar = $2, phone = $3, newsletter = $4, preferred_language = $5,
			avatar_url = $6, role = $7, active = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query, user.Name, user.NameAr, user.Phone, user.Newsletter, user.PreferredLanguage,
		user.AvatarURL, user.Role, user.Active, user.ID).Scan(&user.UpdatedAt)

}

func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return r.execOne(dbCtx, `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`, hash, id)

}

// UpdateMFA stores the TOTP secret; a secret with enabled=false is a setup
// awaiting confirmation.
func (r *userRepository) UpdateMFA(ctx context.Context, id uuid.UUID, enabled bool, secret string) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return r.execOne(dbCtx, `UPDATE users SET mfa_enabled = $1, mfa_secret = $2, updated_at = NOW() WHERE id = $3`, enabled, secret, id)

}

func (r *userRepository) ListUsers(ctx context.Context, page, size int) ([]*models.User, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	rows, err := r.DB.QueryContext(dbCtx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`, size, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	var users []*models.User

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return users, total, nil

}

func (r *userRepository) execOne(ctx context.Context, query string, args ...any) error {
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updated == 0 {
		return sql.ErrNoRows
	}

	return nil
}
