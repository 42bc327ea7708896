package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ttkcys/milliyetciler/internal/apperror"
	"github.com/ttkcys/milliyetciler/internal/user/domain"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{byEmail: make(map[string]*domain.User)}
	for _, u := range users {
		repo.byEmail[u.Email] = u
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }
func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperror.NotFound("user")
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperror.NotFound("user")
}
func (f *fakeUserRepo) FindAll(ctx context.Context, filter domain.ListFilter) ([]domain.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Count(ctx context.Context, filter domain.ListFilter) (int64, error) {
	return 0, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, user *domain.User) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id uint) error           { return nil }

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepo(&domain.User{
		ID:       1,
		Name:     "Ali",
		Email:    "ali@example.com",
		Password: hashPassword(t, "sifre123"),
	})
	handler := NewLoginUserHandler(repo, time.Hour)

	resp, err := handler.Handle(context.Background(), LoginUserCommand{
		Email:    "ali@example.com",
		Password: "sifre123",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), resp.User.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginLegacyPlainPassword(t *testing.T) {
	repo := newFakeUserRepo(&domain.User{
		ID:       2,
		Email:    "eski@example.com",
		Password: "duzmetin",
	})
	handler := NewLoginUserHandler(repo, time.Hour)

	_, err := handler.Handle(context.Background(), LoginUserCommand{
		Email:    "eski@example.com",
		Password: "duzmetin",
	})
	assert.NoError(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo(&domain.User{
		ID:       1,
		Email:    "ali@example.com",
		Password: hashPassword(t, "sifre123"),
	})
	handler := NewLoginUserHandler(repo, time.Hour)

	_, err := handler.Handle(context.Background(), LoginUserCommand{
		Email:    "ali@example.com",
		Password: "yanlis",
	})
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	repo := newFakeUserRepo()
	handler := NewLoginUserHandler(repo, time.Hour)

	_, err := handler.Handle(context.Background(), LoginUserCommand{
		Email:    "yok@example.com",
		Password: "x",
	})
	// Must not leak whether the account exists.
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}

func TestLoginMissingFields(t *testing.T) {
	handler := NewLoginUserHandler(newFakeUserRepo(), time.Hour)

	_, err := handler.Handle(context.Background(), LoginUserCommand{Email: "", Password: "x"})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = handler.Handle(context.Background(), LoginUserCommand{Email: "a@b.c", Password: ""})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
