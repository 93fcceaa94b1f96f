package search

import (
	"github.com/geridir/core/internal/models"
	"github.com/geridir/core/internal/pkg/response"
)

// ListingView is a search-result row: the listing with image and therapy
// associations flattened to plain value lists.
type ListingView struct {
	models.GeriatricModel
	Images    []string         `json:"images"`
	Therapies []models.Therapy `json:"therapies"`
}

// Result is the search response body.
type Result struct {
	Geriatrics       []ListingView       `json:"geriatrics"`
	SecondaryResults []ListingView       `json:"secondaryResults"`
	Pagination       response.Pagination `json:"pagination"`
}

// toListingView flattens associations and guards the rating aggregate:
// a listing with zero reviews reports 0, whatever the stored value says.
func toListingView(g models.GeriatricModel) ListingView {
	images := make([]string, 0, len(g.Images))
	for _, img := range g.Images {
		images = append(images, img.URL)
	}
	therapies := make([]models.Therapy, 0, len(g.Therapies))
	for _, t := range g.Therapies {
		therapies = append(therapies, t.Therapy)
	}

	if g.ReviewCount == 0 {
		g.Rating = 0
	}
	g.Images = nil
	g.Therapies = nil
	g.Reviews = nil

	return ListingView{
		GeriatricModel: g,
		Images:         images,
		Therapies:      therapies,
	}
}

func toListingViews(rows []models.GeriatricModel) []ListingView {
	views := make([]ListingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toListingView(row))
	}
	return views
}
