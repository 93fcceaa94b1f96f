package search

import (
	"context"

	"github.com/geridir/core/internal/models"
	"github.com/geridir/core/internal/pkg/pagination"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// secondaryLimit bounds the fallback suggestion list.
const secondaryLimit = 5

// Service executes faceted listing searches.
type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// Search runs the count, page and secondary queries for one request.
// The secondary list is always populated (up to secondaryLimit rows
// excluding the primary page's ids), so an empty primary result still
// offers alternatives.
func (s *Service) Search(ctx context.Context, f Filters, q pagination.Query) (*Result, error) {
	pred := BuildPredicate(f)

	var total int64
	if err := pred.Apply(s.listings(ctx)).Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []models.GeriatricModel
	err := pred.Apply(s.listings(ctx)).
		Preload("Images").
		Preload("Therapies").
		Order("rating DESC, review_count DESC, id ASC").
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	primaryIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		primaryIDs = append(primaryIDs, row.ID)
	}

	secondary, err := s.secondaryResults(ctx, primaryIDs)
	if err != nil {
		return nil, err
	}

	return &Result{
		Geriatrics:       toListingViews(rows),
		SecondaryResults: toListingViews(secondary),
		Pagination:       q.Meta(total),
	}, nil
}

func (s *Service) secondaryResults(ctx context.Context, excludeIDs []string) ([]models.GeriatricModel, error) {
	query := s.listings(ctx).
		Preload("Images").
		Preload("Therapies").
		Order("rating DESC, review_count DESC, id ASC").
		Limit(secondaryLimit)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var rows []models.GeriatricModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// LogSearch persists an applied filter set and its hit count.
func (s *Service) LogSearch(ctx context.Context, filters map[string]interface{}, resultsCount int, ip string) error {
	entry := &models.SearchLogModel{
		Filters:      filters,
		ResultsCount: resultsCount,
		IP:           ip,
	}
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *Service) listings(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Model(&models.GeriatricModel{})
}
