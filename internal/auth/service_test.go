// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/gearstore/internal/core"
)

type fakeUsers struct {
	byEmail map[string]*UserInfo
	byID    map[string]*UserInfo
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		byEmail: map[string]*UserInfo{},
		byID:    map[string]*UserInfo{},
	}
}

func (f *fakeUsers) GetByEmail(
	_ context.Context,
	email string,
) (*UserInfo, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*UserInfo, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	return u, nil
}

func (f *fakeUsers) Create(
	_ context.Context,
	name, email, passwordHash string,
) (*UserInfo, error) {
	if _, exists := f.byEmail[email]; exists {
		return nil, fmt.Errorf("create user: %w", core.ErrDuplicateKey)
	}

	u := &UserInfo{
		ID:           fmt.Sprintf("user-%d", len(f.byID)+1),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         "user",
	}
	f.byEmail[email] = u
	f.byID[u.ID] = u
	return u, nil
}

func TestSignupAndLogin(t *testing.T) {
	svc := NewService(newTestJWTManager(t), newFakeUsers())
	ctx := context.Background()

	resp, err := svc.Signup(ctx, SignupRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.Equal(t, "user", resp.User.Role)

	login, err := svc.Login(ctx, LoginRequest{
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
	assert.NotEmpty(t, login.Token)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := NewService(newTestJWTManager(t), newFakeUsers())
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, SignupRequest{
		Name:     "Eve",
		Email:    "ada@example.com",
		Password: "another pass",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewService(newTestJWTManager(t), newFakeUsers())
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewService(newTestJWTManager(t), newFakeUsers())

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever pass",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
