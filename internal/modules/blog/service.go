package blog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/geridir/core/internal/models"
	"github.com/geridir/core/internal/pkg/pagination"
	"github.com/geridir/core/internal/pkg/response"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidStatus    = errors.New("invalid post status")
)

// Service manages the admin blog: categories and posts.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Categories lists all categories alphabetically.
func (s *Service) Categories(ctx context.Context) ([]models.BlogCategoryModel, error) {
	var rows []models.BlogCategoryModel
	err := s.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateCategory stores a category with a slug derived from its name.
func (s *Service) CreateCategory(ctx context.Context, name string) (*models.BlogCategoryModel, error) {
	cat := &models.BlogCategoryModel{
		Name: strings.TrimSpace(name),
		Slug: slugify(name),
	}
	if err := s.db.WithContext(ctx).Create(cat).Error; err != nil {
		return nil, err
	}
	return cat, nil
}

// List returns a page of posts. Non-admin readers only see PUBLISHED
// posts; search spans title, excerpt, content, author, tags and the
// category name.
func (s *Service) List(ctx context.Context, q pagination.Query, lq ListQuery, includeDrafts bool) ([]models.BlogPostModel, response.Pagination, error) {
	query := s.db.WithContext(ctx).
		Model(&models.BlogPostModel{}).
		Joins("LEFT JOIN blog_categories ON blog_categories.id = blog_posts.category_id AND blog_categories.deleted_at IS NULL").
		Preload("Category").
		Order("blog_posts.created_at DESC")

	if !includeDrafts {
		query = query.Where("blog_posts.status = ?", models.PostPublished)
	}
	if search := strings.TrimSpace(lq.Search); search != "" {
		needle := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(blog_posts.title) LIKE ? OR LOWER(blog_posts.excerpt) LIKE ?"+
				" OR LOWER(blog_posts.content) LIKE ? OR LOWER(blog_posts.author) LIKE ?"+
				" OR LOWER(blog_posts.tags) LIKE ? OR LOWER(blog_categories.name) LIKE ?",
			needle, needle, needle, needle, needle, needle)
	}
	if category := strings.TrimSpace(lq.Category); category != "" {
		query = query.Where("blog_categories.slug = ?", category)
	}

	var rows []models.BlogPostModel
	pag, err := pagination.Paginate(query, q, &rows)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	return rows, pag, nil
}

// Get loads one post by slug or id. Returns (nil, nil) when absent or,
// for non-admin readers, unpublished.
func (s *Service) Get(ctx context.Context, identifier string, includeDrafts bool) (*models.BlogPostModel, error) {
	query := s.db.WithContext(ctx).Preload("Category")
	if !includeDrafts {
		query = query.Where("status = ?", models.PostPublished)
	}

	var post models.BlogPostModel
	err := query.Where("slug = ? OR id = ?", identifier, identifier).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Create stores a post. The slug derives from the title; a taken slug is
// disambiguated with a millisecond timestamp suffix.
func (s *Service) Create(ctx context.Context, dto *CreatePostDTO) (*models.BlogPostModel, error) {
	status, err := resolveStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	if err := s.categoryExists(ctx, dto.CategoryID); err != nil {
		return nil, err
	}

	postSlug, err := s.uniqueSlug(ctx, slugify(dto.Title), "")
	if err != nil {
		return nil, err
	}

	post := &models.BlogPostModel{
		Title:      dto.Title,
		Slug:       postSlug,
		Excerpt:    dto.Excerpt,
		Content:    dto.Content,
		Author:     dto.Author,
		AuthorRole: dto.AuthorRole,
		Tags:       joinTags(dto.Tags),
		ReadTime:   readTime(dto.Content),
		Image:      dto.Image,
		Status:     status,
		CategoryID: dto.CategoryID,
	}
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, post.ID, true)
}

// Update patches a post. The slug is re-derived only when the title
// actually changes; readTime follows the content. Returns (nil, nil)
// when the post does not exist.
func (s *Service) Update(ctx context.Context, id string, dto *UpdatePostDTO) (*models.BlogPostModel, error) {
	var post models.BlogPostModel
	err := s.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if dto.Status != nil {
		status, err := resolveStatus(*dto.Status)
		if err != nil {
			return nil, err
		}
		post.Status = status
	}
	if dto.CategoryID != nil && *dto.CategoryID != post.CategoryID {
		if err := s.categoryExists(ctx, *dto.CategoryID); err != nil {
			return nil, err
		}
		post.CategoryID = *dto.CategoryID
	}
	if dto.Title != nil && *dto.Title != post.Title {
		post.Title = *dto.Title
		newSlug, err := s.uniqueSlug(ctx, slugify(post.Title), post.ID)
		if err != nil {
			return nil, err
		}
		post.Slug = newSlug
	}
	if dto.Excerpt != nil {
		post.Excerpt = *dto.Excerpt
	}
	if dto.Content != nil {
		post.Content = *dto.Content
		post.ReadTime = readTime(post.Content)
	}
	if dto.Author != nil {
		post.Author = *dto.Author
	}
	if dto.AuthorRole != nil {
		post.AuthorRole = *dto.AuthorRole
	}
	if dto.Tags != nil {
		post.Tags = joinTags(*dto.Tags)
	}
	if dto.Image != nil {
		post.Image = *dto.Image
	}

	if err := s.db.WithContext(ctx).Save(&post).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, post.ID, true)
}

// Delete soft-deletes a post. Returns gorm.ErrRecordNotFound when absent.
func (s *Service) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.BlogPostModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Service) categoryExists(ctx context.Context, id string) error {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.BlogCategoryModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// uniqueSlug returns base unless another post (excluding excludeID)
// already holds it, in which case a timestamp suffix disambiguates.
func (s *Service) uniqueSlug(ctx context.Context, base, excludeID string) (string, error) {
	query := s.db.WithContext(ctx).
		Model(&models.BlogPostModel{}).
		Where("slug = ?", base)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return base, nil
	}
	return collisionSlug(base, time.Now()), nil
}

func resolveStatus(raw string) (models.PostStatus, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.PostDraft, nil
	}
	status := models.PostStatus(strings.ToUpper(raw))
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
