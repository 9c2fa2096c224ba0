package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"atlasrent-backend/internal/domain"
	"atlasrent-backend/internal/security"
)

func authServiceWithMocks() (AuthService, *MockUserRepo) {
	users := new(MockUserRepo)
	tokens := security.NewTokenManager("test-secret", 60)
	return NewAuthService(users, tokens), users
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, users := authServiceWithMocks()
		users.On("GetByEmail", ctx, "new@b.ma").Return(nil, sql.ErrNoRows)
		users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "new@b.ma" && u.Role == domain.UserRoleCustomer && u.PasswordHash != "secret"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 9
		}).Return(nil)

		user, token, err := svc.Register(ctx, "  New@B.ma ", "secret", "Amina", "0600000000")
		assert.NoError(t, err)
		assert.Equal(t, "new@b.ma", user.Email)
		assert.NotEmpty(t, token)
	})

	t.Run("EmailTaken", func(t *testing.T) {
		svc, users := authServiceWithMocks()
		users.On("GetByEmail", ctx, "taken@b.ma").Return(&domain.User{ID: 1, Email: "taken@b.ma"}, nil)

		_, _, err := svc.Register(ctx, "taken@b.ma", "secret", "Amina", "")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc, _ := authServiceWithMocks()
		_, _, err := svc.Register(ctx, "", "secret", "Amina", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)

	t.Run("Success", func(t *testing.T) {
		svc, users := authServiceWithMocks()
		users.On("GetByEmail", ctx, "a@b.ma").Return(&domain.User{
			ID: 9, Email: "a@b.ma", PasswordHash: string(hash), Role: domain.UserRoleCustomer,
		}, nil)

		user, token, err := svc.Login(ctx, "a@b.ma", "secret")
		assert.NoError(t, err)
		assert.Equal(t, int32(9), user.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc, users := authServiceWithMocks()
		users.On("GetByEmail", ctx, "a@b.ma").Return(&domain.User{
			ID: 9, Email: "a@b.ma", PasswordHash: string(hash),
		}, nil)

		_, _, err := svc.Login(ctx, "a@b.ma", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		svc, users := authServiceWithMocks()
		users.On("GetByEmail", ctx, "nobody@b.ma").Return(nil, sql.ErrNoRows)

		_, _, err := svc.Login(ctx, "nobody@b.ma", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
