package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/myflat/internal/dto"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/models"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

const (
	AdminUsername = "admin"
	AdminEmail    = "admin@myflat.com"
	AdminPhone    = "1234567890"
)

type AuthService struct {
	db       *gorm.DB
	sessions *session.Manager
}

func NewAuthService(db *gorm.DB, sessions *session.Manager) *AuthService {
	return &AuthService{db: db, sessions: sessions}
}

// LoginResult is a freshly issued session for an authenticated user.
type LoginResult struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterForm) (*models.User, error) {
	if err := s.checkUnique(ctx, req.Username, req.Email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// Lost a race with a concurrent registration: report which field collided.
		if uerr := s.checkUnique(ctx, req.Username, req.Email); uerr != nil {
			return nil, uerr
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// checkUnique reports a taken username before a taken email.
func (s *AuthService) checkUnique(ctx context.Context, username, email string) error {
	db := s.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if count > 0 {
		return ErrUsernameTaken
	}
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return ErrEmailTaken
	}
	return nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginForm) (*LoginResult, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expires, err := s.sessions.Issue(&user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: &user, Token: token, ExpiresAt: expires}, nil
}

func (s *AuthService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

func (s *AuthService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// EnsureAdmin creates the bootstrap admin account unless a user named
// "admin" already exists. It reports whether a row was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, password string) (bool, error) {
	_, err := s.GetByUsername(ctx, AdminUsername)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := models.User{
		Username:     AdminUsername,
		Email:        AdminEmail,
		Phone:        AdminPhone,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := s.db.WithContext(ctx).Create(&admin).Error; err != nil {
		return false, fmt.Errorf("failed to create admin user: %w", err)
	}

	slog.Info("admin user created", "username", AdminUsername)
	return true, nil
}

// Promote grants the admin flag to an existing user.
func (s *AuthService) Promote(ctx context.Context, username string) (*models.User, error) {
	user, err := s.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(user).Update("is_admin", true).Error; err != nil {
		return nil, fmt.Errorf("failed to promote user: %w", err)
	}
	user.IsAdmin = true
	return user, nil
}
