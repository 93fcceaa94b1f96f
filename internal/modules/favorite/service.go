package favorite

import (
	"context"
	"errors"

	"github.com/geridir/core/internal/models"
	"gorm.io/gorm"
)

var (
	ErrAlreadyFavorited = errors.New("listing already favorited")
	ErrNotFavorited     = errors.New("listing is not favorited")
	ErrListingNotFound  = errors.New("listing not found")
)

// Service manages the (user, listing) favorite pairs. The pair is unique
// in the schema, so a toggle is a plain create/delete of one row.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Add favorites a listing for a user. Duplicate adds report a conflict;
// the unique index guarantees a single row either way.
func (s *Service) Add(ctx context.Context, userID, geriatricID string) (*models.FavoriteModel, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.GeriatricModel{}).
		Where("id = ?", geriatricID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrListingNotFound
	}

	f := &models.FavoriteModel{UserID: userID, GeriatricID: geriatricID}
	err = s.db.WithContext(ctx).Create(f).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrAlreadyFavorited
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Remove deletes the favorite pair. Removing an absent pair reports
// ErrNotFavorited.
func (s *Service) Remove(ctx context.Context, userID, geriatricID string) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND geriatric_id = ?", userID, geriatricID).
		Delete(&models.FavoriteModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFavorited
	}
	return nil
}

// List returns a user's favorites with their listings, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]models.FavoriteModel, error) {
	var rows []models.FavoriteModel
	err := s.db.WithContext(ctx).
		Preload("Geriatric").
		Preload("Geriatric.Images").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
