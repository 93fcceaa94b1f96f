package review

import (
	"context"
	"errors"

	"github.com/geridir/core/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 10")
)

// Service manages listing reviews and keeps the denormalized rating
// aggregate on the listing in sync.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create inserts a review and folds its rating into the listing aggregate
// in one transaction. The listing row is locked so concurrent reviews do
// not lose updates.
func (s *Service) Create(ctx context.Context, geriatricID, userID string, rating int, comment string) (*models.ReviewModel, error) {
	if rating < 1 || rating > 10 {
		return nil, ErrInvalidRating
	}

	r := &models.ReviewModel{
		GeriatricID: geriatricID,
		UserID:      userID,
		Rating:      rating,
		Comment:     comment,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var g models.GeriatricModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&g, "id = ?", geriatricID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListingNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.Create(r).Error; err != nil {
			return err
		}

		newRating, newCount := foldRating(g.Rating, g.ReviewCount, rating)
		return tx.Model(&g).Updates(map[string]interface{}{
			"rating":       newRating,
			"review_count": newCount,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// foldRating folds one new review rating into the stored aggregate.
// A listing with zero reviews starts from 0, never NaN.
func foldRating(rating float64, count, added int) (float64, int) {
	if count < 0 {
		count = 0
	}
	newCount := count + 1
	return (rating*float64(count) + float64(added)) / float64(newCount), newCount
}

// ListByGeriatric returns a listing's reviews, newest first.
func (s *Service) ListByGeriatric(ctx context.Context, geriatricID string) ([]models.ReviewModel, error) {
	var rows []models.ReviewModel
	err := s.db.WithContext(ctx).
		Where("geriatric_id = ?", geriatricID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
