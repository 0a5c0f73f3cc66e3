// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/gearstore/internal/core"
)

type fakeRepository struct {
	byID    map[string]*User
	byEmail map[string]*User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byID:    map[string]*User{},
		byEmail: map[string]*User{},
	}
}

func (f *fakeRepository) Create(_ context.Context, u *User) error {
	if _, exists := f.byEmail[u.Email]; exists {
		return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
	}
	stored := *u
	f.byID[u.ID] = &stored
	f.byEmail[u.Email] = &stored
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	out := *u
	return &out, nil
}

func (f *fakeRepository) GetByEmail(
	_ context.Context,
	email string,
) (*User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	out := *u
	return &out, nil
}

func (f *fakeRepository) Update(_ context.Context, u *User) error {
	current, ok := f.byID[u.ID]
	if !ok {
		return fmt.Errorf("update user: %w", core.ErrNotFound)
	}

	delete(f.byEmail, current.Email)
	stored := *u
	f.byID[u.ID] = &stored
	f.byEmail[u.Email] = &stored
	return nil
}

func (f *fakeRepository) ExistsByEmail(
	_ context.Context,
	email string,
) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func seedUser(t *testing.T, svc *Service, name, email string) string {
	t.Helper()

	info, err := svc.Create(context.Background(), name, email, "hash")
	require.NoError(t, err)
	return info.ID
}

func TestCreateLowercasesEmail(t *testing.T) {
	svc := NewService(newFakeRepository())

	info, err := svc.Create(context.Background(), "Ada", "Ada@Example.COM", "hash")
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", info.Email)
	assert.Equal(t, RoleUser, info.Role)
	assert.NotEmpty(t, info.ID)
}

func TestGetProfileRequiresUserID(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.GetProfile(context.Background(), "")
	assert.ErrorIs(t, err, core.ErrUnauthorized)
}

func TestUpdateProfilePartial(t *testing.T) {
	svc := NewService(newFakeRepository())
	id := seedUser(t, svc, "Ada", "ada@example.com")

	name := "Ada Lovelace"
	updated, err := svc.UpdateProfile(context.Background(), id, UpdateProfileRequest{
		Name: &name,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", updated.Name)
	assert.Equal(t, "ada@example.com", updated.Email, "email unchanged")
}

func TestUpdateProfileEmailTaken(t *testing.T) {
	svc := NewService(newFakeRepository())
	id := seedUser(t, svc, "Ada", "ada@example.com")
	seedUser(t, svc, "Eve", "eve@example.com")

	email := "eve@example.com"
	_, err := svc.UpdateProfile(context.Background(), id, UpdateProfileRequest{
		Email: &email,
	})
	assert.ErrorIs(t, err, core.ErrDuplicateKey)
}

func TestUpdateProfileSameEmailIsNoop(t *testing.T) {
	svc := NewService(newFakeRepository())
	id := seedUser(t, svc, "Ada", "ada@example.com")

	email := "ADA@example.com"
	updated, err := svc.UpdateProfile(context.Background(), id, UpdateProfileRequest{
		Email: &email,
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", updated.Email)
}
