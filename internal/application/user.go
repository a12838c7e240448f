package application

import (
	"errors"
	"time"

	"github.com/tanzeemhub/reports-go/internal/api/middleware"
	"github.com/tanzeemhub/reports-go/internal/domain/org"
	"github.com/tanzeemhub/reports-go/internal/domain/user"
	"github.com/tanzeemhub/reports-go/internal/repository"
	"github.com/tanzeemhub/reports-go/pkg/apperr"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken       = errors.New("username already taken")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) Register(input user.CreateUserInput) error {
	_, err := s.Repos.User.GetUserByUsername(input.Username)
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	if err == nil {
		return ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}

	level := org.LevelMuqam
	if input.Level != "" {
		level = org.Level(input.Level)
	}

	usr := user.User{
		Username:     input.Username,
		Password:     string(hashed),
		FullName:     input.FullName,
		Email:        input.Email,
		MembershipNo: input.MembershipNo,
		Level:        level,
		MuqamID:      input.MuqamID,
		DilaID:       input.DilaID,
		ZoneID:       input.ZoneID,
	}
	return s.Repos.User.SaveUser(&usr)
}

func (s *UserService) Login(username, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(&usr, 24*time.Hour)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

func (s *UserService) Get(id uint) (*user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return &usr, nil
}

func (s *UserService) ListPaging(page, limit int) ([]user.User, int64, error) {
	return s.Repos.User.ListUsersPaging(page, limit)
}

func (s *UserService) Update(id uint, input user.UpdateUserInput) (*user.User, error) {
	usr, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Password != nil {
		if input.OldPassword == nil {
			return nil, apperr.Validation("old password is required to change password")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(*input.OldPassword)); err != nil {
			return nil, apperr.Authorization("old password is incorrect")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, ErrPasswordHashFailure
		}
		usr.Password = string(hashed)
	}
	if input.FullName != nil {
		usr.FullName = *input.FullName
	}
	if input.Email != nil {
		usr.Email = *input.Email
	}
	if input.Level != nil {
		usr.Level = org.Level(*input.Level)
	}
	if input.MuqamID != nil {
		usr.MuqamID = input.MuqamID
	}
	if input.DilaID != nil {
		usr.DilaID = input.DilaID
	}
	if input.ZoneID != nil {
		usr.ZoneID = input.ZoneID
	}
	return usr, s.Repos.User.SaveUser(usr)
}
