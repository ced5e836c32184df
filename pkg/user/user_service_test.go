package user

import (
	"context"
	"testing"

	"Recipe-Manager-Backend/domain"
	"Recipe-Manager-Backend/entities"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	r.users[user.ID.String()] = user
	return nil
}

type fakeJWTService struct{}

func (s *fakeJWTService) GenerateTokenUser(userId string, role string) string {
	return "token-" + userId
}

func (s *fakeJWTService) ValidateTokenUser(token string) (*jwtlib.Token, error) {
	return nil, nil
}

func (s *fakeJWTService) GetUserIDByToken(token string) (string, string, error) {
	return "", "", nil
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepository()
	service := NewUserService(repo, &fakeJWTService{})

	registered, err := service.Register(ctx, domain.UserRegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", registered.Name)

	// Passwords are stored hashed, never verbatim.
	stored := repo.users[registered.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct horse battery", stored.Password)

	login, err := service.Login(ctx, domain.UserLoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-"+registered.ID, login.Token)
	assert.Equal(t, registered.ID, login.User.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	service := NewUserService(newFakeUserRepository(), &fakeJWTService{})

	_, err := service.Register(ctx, domain.UserRegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	_, err = service.Register(ctx, domain.UserRegisterRequest{
		Name:     "Another Alice",
		Email:    "alice@example.com",
		Password: "different password",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_WrongCredentials(t *testing.T) {
	ctx := context.Background()
	service := NewUserService(newFakeUserRepository(), &fakeJWTService{})

	_, err := service.Register(ctx, domain.UserRegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	_, err = service.Login(ctx, domain.UserLoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	// An unknown email reports the same error as a wrong password.
	_, err = service.Login(ctx, domain.UserLoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	service := NewUserService(newFakeUserRepository(), &fakeJWTService{})

	registered, err := service.Register(ctx, domain.UserRegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	updated, err := service.UpdateUser(ctx, domain.UserUpdateRequest{Name: "Alicia"}, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)

	me, err := service.Me(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", me.Name)
}
