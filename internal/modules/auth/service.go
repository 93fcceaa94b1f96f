package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/geridir/core/internal/models"
	sessionpkg "github.com/geridir/core/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service implements registration and email+password login with
// DB-backed sessions.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Register creates an account. Emails are stored lowercased; a duplicate
// reports ErrEmailTaken.
func (s *Service) Register(ctx context.Context, name, email, password string) (*models.UserModel, error) {
	email = normalizeEmail(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.UserModel{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hash),
	}
	err = s.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a session-bound JWT. The stored
// last-login fields are updated best-effort.
func (s *Service) Login(ctx context.Context, email, password, ip, ua string) (string, *models.UserModel, error) {
	email = normalizeEmail(email)

	var user models.UserModel
	err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, _, err := sessionpkg.Issue(s.db.WithContext(ctx), user.ID, ip, ua, sessionpkg.DefaultTTL)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	_ = s.db.WithContext(ctx).Model(&user).Updates(map[string]interface{}{
		"last_login_time": &now,
		"last_login_ip":   ip,
	}).Error

	return token, &user, nil
}

// Logout revokes the session behind the presented token.
func (s *Service) Logout(ctx context.Context, userID, sessionID string) error {
	err := sessionpkg.Revoke(s.db.WithContext(ctx), userID, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil // already revoked or expired
	}
	return err
}

// Profile loads the current user with favorites preloaded. Returns
// (nil, nil) when the account no longer exists.
func (s *Service) Profile(ctx context.Context, userID string) (*models.UserModel, error) {
	var user models.UserModel
	err := s.db.WithContext(ctx).
		Preload("Favorites").
		Preload("Favorites.Geriatric").
		First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
