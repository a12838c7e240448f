package application

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/tanzeemhub/reports-go/internal/api/middleware"
	"github.com/tanzeemhub/reports-go/internal/domain/org"
	"github.com/tanzeemhub/reports-go/internal/domain/user"
	"github.com/tanzeemhub/reports-go/internal/repository"
	"github.com/tanzeemhub/reports-go/internal/repository/mock"
	"github.com/tanzeemhub/reports-go/pkg/apperr"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		User: mockUser,
	}
	svc := NewUserService(repos)
	return svc, mockUser
}

// --------------------- Register ---------------------
func TestRegister_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	input := user.CreateUserInput{
		Username: "alice",
		Password: "123456",
		Email:    "alice@test.com",
		FullName: "Alice",
	}

	mockUser.EXPECT().GetUserByUsername("alice").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.Equal(t, org.LevelMuqam, u.Level)
		assert.NotEqual(t, "123456", u.Password)
		return nil
	})

	err := svc.Register(input)
	assert.NoError(t, err)
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("admin").Return(user.User{ID: 1}, nil)

	input := user.CreateUserInput{Username: "admin", Password: "123456"}
	err := svc.Register(input)
	assert.Equal(t, ErrUsernameTaken, err)
}

func TestRegister_ExplicitLevel(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("zonelead").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.Equal(t, org.LevelZone, u.Level)
		return nil
	})

	input := user.CreateUserInput{
		Username: "zonelead",
		Password: "123456",
		Level:    "zone",
		ZoneID:   ptrUint(3),
	}
	err := svc.Register(input)
	assert.NoError(t, err)
}

// --------------------- Login ---------------------
func TestLogin_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	password := "123456"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	usr := user.User{ID: 1, Username: "bob", Password: string(hashed)}

	mockUser.EXPECT().GetUserByUsername("bob").Return(usr, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(u *user.User, expireDuration time.Duration) (string, error) {
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, err := svc.Login("bob", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, "token123", token)
}

func TestLogin_InvalidPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	usr := user.User{ID: 1, Username: "bob", Password: string(hashed)}

	mockUser.EXPECT().GetUserByUsername("bob").Return(usr, nil)

	u, token, err := svc.Login("bob", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
	assert.Equal(t, user.User{}, u)
	assert.Empty(t, token)
}

func TestLogin_UserNotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)
	mockUser.EXPECT().GetUserByUsername("notexist").Return(user.User{}, errors.New("not found"))

	u, token, err := svc.Login("notexist", "123")
	assert.Equal(t, ErrInvalidCredentials, err)
	assert.Equal(t, user.User{}, u)
	assert.Empty(t, token)
}

// --------------------- Update ---------------------
func TestUpdate_ChangePassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("oldpass"), bcrypt.DefaultCost)
	existing := user.User{ID: 1, Password: string(hashed)}

	mockUser.EXPECT().GetUserByID(uint(1)).Return(existing, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)

	updated, err := svc.Update(1, user.UpdateUserInput{
		OldPassword: ptrString("oldpass"),
		Password:    ptrString("newpass"),
	})
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpass")))
}

func TestUpdate_WrongOldPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("oldpass"), bcrypt.DefaultCost)
	existing := user.User{ID: 1, Password: string(hashed)}

	mockUser.EXPECT().GetUserByID(uint(1)).Return(existing, nil)

	_, err := svc.Update(1, user.UpdateUserInput{
		OldPassword: ptrString("nope"),
		Password:    ptrString("newpass"),
	})
	assert.True(t, apperr.IsAuthorization(err))
}

func TestUpdate_PasswordWithoutOld(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(1)).Return(user.User{ID: 1}, nil)

	_, err := svc.Update(1, user.UpdateUserInput{Password: ptrString("newpass")})
	assert.True(t, apperr.IsValidation(err))
}

func TestUpdate_MoveAnchor(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	existing := user.User{ID: 2, Level: org.LevelMuqam, MuqamID: ptrUint(5)}
	mockUser.EXPECT().GetUserByID(uint(2)).Return(existing, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)

	updated, err := svc.Update(2, user.UpdateUserInput{
		Level:  ptrString("dila"),
		DilaID: ptrUint(7),
	})
	assert.NoError(t, err)
	assert.Equal(t, org.LevelDila, updated.Level)
	assert.Equal(t, uint(7), *updated.DilaID)
}

func TestGet_NotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(99)).Return(user.User{}, gorm.ErrRecordNotFound)

	_, err := svc.Get(99)
	assert.True(t, apperr.IsNotFound(err))
}
