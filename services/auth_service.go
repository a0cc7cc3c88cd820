package services

import (
	"errors"
	"strings"
	"time"

	"github.com/quark1412/FoodyRush-sub000/entity"
	"github.com/quark1412/FoodyRush-sub000/repository"
	"github.com/quark1412/FoodyRush-sub000/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrAccountDisabled    = errors.New("account is disabled")
)

type AuthService struct {
	userRepo   *repository.UserRepository
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:   repo,
		jwtSecret:  secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *AuthService) Register(email, password, fullName, phone string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	role, err := s.userRepo.FindRoleByName("customer")
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		FullName: strings.TrimSpace(fullName),
		Phone:    strings.TrimSpace(phone),
		IsActive: true,
		RoleID:   role.ID,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	user.Role = *role
	return user, nil
}

func (s *AuthService) Login(email, password string) (*utils.TokenPair, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, nil, ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := utils.GenerateTokenPair(
		user.ID, user.Role.Name, user.Role.PermissionNames(),
		s.jwtSecret, s.accessTTL, s.refreshTTL,
	)
	if err != nil {
		return nil, nil, errors.New("cannot generate token")
	}
	return pair, user, nil
}

// Refresh trades a valid refresh token for a fresh pair. Role and
// permissions are reloaded so a role change takes effect on rotation.
func (s *AuthService) Refresh(refreshToken string) (*utils.TokenPair, error) {
	claims, err := utils.ParseToken(refreshToken, s.jwtSecret)
	if err != nil || claims.TokenType != utils.TokenTypeRefresh {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	return utils.GenerateTokenPair(
		user.ID, user.Role.Name, user.Role.PermissionNames(),
		s.jwtSecret, s.accessTTL, s.refreshTTL,
	)
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	if err := s.userRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(userID)
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
