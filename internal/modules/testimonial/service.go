package testimonial

import (
	"context"

	"github.com/geridir/core/internal/models"
	"gorm.io/gorm"
)

const (
	defaultTake = 8
	maxTake     = 50
)

// Service serves the landing-page testimonials.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Window is a skip/take slice of the testimonial list.
type Window struct {
	Skip int
	Take int
}

// Clamp normalizes client-supplied values to sane bounds.
func (w Window) Clamp() Window {
	if w.Skip < 0 {
		w.Skip = 0
	}
	if w.Take < 1 {
		w.Take = defaultTake
	}
	if w.Take > maxTake {
		w.Take = maxTake
	}
	return w
}

// List fetches one row past the window so hasMore needs no count query.
func (s *Service) List(ctx context.Context, w Window) ([]models.TestimonialModel, bool, error) {
	w = w.Clamp()

	var rows []models.TestimonialModel
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(w.Skip).
		Limit(w.Take + 1).
		Find(&rows).Error
	if err != nil {
		return nil, false, err
	}

	hasMore := len(rows) > w.Take
	if hasMore {
		rows = rows[:w.Take]
	}
	return rows, hasMore, nil
}

// Create stores a testimonial.
func (s *Service) Create(ctx context.Context, t *models.TestimonialModel) error {
	return s.db.WithContext(ctx).Create(t).Error
}
