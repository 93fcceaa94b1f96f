package models

// ReviewModel is a user review of a residence. Reviews are immutable once
// created; there is no update or delete path.
type ReviewModel struct {
	Base
	GeriatricID string `json:"geriatricId" gorm:"index;not null"`
	UserID      string `json:"userId"      gorm:"index;not null"`
	Rating      int    `json:"rating"      gorm:"not null"` // 1-10
	Comment     string `json:"comment"     gorm:"type:text"`
}

func (ReviewModel) TableName() string { return "reviews" }

// FavoriteModel marks a residence a user saved. The (user, geriatric) pair
// is unique; toggling is create/delete of this row.
type FavoriteModel struct {
	Base
	UserID      string `json:"userId"      gorm:"not null;uniqueIndex:uniq_user_geriatric"`
	GeriatricID string `json:"geriatricId" gorm:"not null;uniqueIndex:uniq_user_geriatric"`

	Geriatric *GeriatricModel `json:"geriatric,omitempty" gorm:"foreignKey:GeriatricID"`
}

func (FavoriteModel) TableName() string { return "favorites" }

// TestimonialModel is a site-wide testimonial shown on the landing pages.
type TestimonialModel struct {
	Base
	Author  string `json:"author"`
	Role    string `json:"role"`
	Content string `json:"content" gorm:"type:text;not null"`
	Avatar  string `json:"avatar"`
}

func (TestimonialModel) TableName() string { return "testimonials" }

// SearchLogModel records an applied filter set and how many results it hit.
type SearchLogModel struct {
	Base
	Filters      map[string]interface{} `json:"filters"      gorm:"type:longtext;serializer:json"`
	ResultsCount int                    `json:"resultsCount" gorm:"default:0"`
	IP           string                 `json:"-"`
}

func (SearchLogModel) TableName() string { return "search_logs" }
