package blog

import (
	"github.com/geridir/core/internal/models"
	"github.com/geridir/core/internal/pkg/response"
)

// CreatePostDTO is the admin create-post payload.
type CreatePostDTO struct {
	Title      string   `json:"title" binding:"required"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content" binding:"required"`
	Author     string   `json:"author"`
	AuthorRole string   `json:"authorRole"`
	Tags       []string `json:"tags"`
	Image      string   `json:"image"`
	Status     string   `json:"status"`
	CategoryID string   `json:"categoryId" binding:"required"`
}

// UpdatePostDTO is the admin update-post payload; nil fields stay as-is.
type UpdatePostDTO struct {
	Title      *string   `json:"title"`
	Excerpt    *string   `json:"excerpt"`
	Content    *string   `json:"content"`
	Author     *string   `json:"author"`
	AuthorRole *string   `json:"authorRole"`
	Tags       *[]string `json:"tags"`
	Image      *string   `json:"image"`
	Status     *string   `json:"status"`
	CategoryID *string   `json:"categoryId"`
}

// CreateCategoryDTO is the admin create-category payload.
type CreateCategoryDTO struct {
	Name string `json:"name" binding:"required"`
}

// ListQuery carries the list endpoint's filter parameters.
type ListQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
}

// postResponse is a post with tags expanded and, on detail reads, the
// markdown rendered to HTML.
type postResponse struct {
	models.BlogPostModel
	Tags        []string `json:"tags"`
	ContentHTML string   `json:"contentHtml,omitempty"`
}

// listResponse bundles posts with the category set so the client renders
// the filter bar from one request.
type listResponse struct {
	Posts      []postResponse             `json:"posts"`
	Categories []models.BlogCategoryModel `json:"categories"`
	Pagination response.Pagination        `json:"pagination"`
}

func toPostResponse(p models.BlogPostModel, withHTML bool) postResponse {
	resp := postResponse{
		BlogPostModel: p,
		Tags:          splitTags(p.Tags),
	}
	if withHTML {
		resp.ContentHTML = renderMarkdown(p.Content)
	}
	return resp
}

func toPostResponses(posts []models.BlogPostModel) []postResponse {
	items := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		items = append(items, toPostResponse(p, false))
	}
	return items
}
