package repository

import (
	"context"
	"fmt"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
	UpsertAdmin(ctx context.Context, user *entity.User) error
}

type userRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewUserRepository(db database.Querier, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (phone, password, first_name, last_name, date_of_birth,
		                   email, gender, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := ur.db.Exec(ctx, query,
		user.Phone,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.DateOfBirth,
		user.Email,
		user.Gender,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("phone", user.Phone),
		)
		return fmt.Errorf("create user %s: %w", user.Phone, err)
	}

	return nil
}

func (ur *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	query := `
		SELECT phone, password, first_name, last_name, date_of_birth,
		       email, gender, role, created_at, updated_at
		FROM users
		WHERE phone = $1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, phone).Scan(
		&user.Phone,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.DateOfBirth,
		&user.Email,
		&user.Gender,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by phone",
			zap.Error(err),
			zap.String("phone", phone),
		)
		return nil, fmt.Errorf("find user by phone %s: %w", phone, err)
	}

	return &user, nil
}

// UpsertAdmin creates the reserved administrator account or refreshes its
// password and role.
func (ur *userRepository) UpsertAdmin(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (phone, password, first_name, last_name, date_of_birth,
		                   email, gender, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'admin', $8, $8)
		ON CONFLICT (phone) DO UPDATE
		SET password = EXCLUDED.password,
		    role = 'admin',
		    updated_at = EXCLUDED.updated_at
	`

	_, err := ur.db.Exec(ctx, query,
		user.Phone,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.DateOfBirth,
		user.Email,
		user.Gender,
		user.UpdatedAt,
	)
	if err != nil {
		ur.log.Error("Failed to upsert admin", zap.Error(err), zap.String("phone", user.Phone))
		return fmt.Errorf("upsert admin %s: %w", user.Phone, err)
	}

	return nil
}
