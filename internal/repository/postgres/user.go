package postgres

import (
	"context"
	"database/sql"
	"time"

	"atlasrent-backend/internal/domain"
	"atlasrent-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (email, password_hash, name, phone, role, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, user.Email, user.PasswordHash, user.Name, user.Phone, user.Role, now, now).Scan(&user.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	user := &domain.User{}
	query := `SELECT id, email, password_hash, name, phone, role, created_on, updated_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.Phone, &user.Role, &user.CreatedOn, &user.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}
	query := `SELECT id, email, password_hash, name, phone, role, created_on, updated_on FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.Phone, &user.Role, &user.CreatedOn, &user.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET name=$1, phone=$2, password_hash=$3, updated_on=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, user.Name, user.Phone, user.PasswordHash, time.Now(), user.ID)
	return err
}
