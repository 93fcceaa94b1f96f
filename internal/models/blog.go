package models

// PostStatus is the lifecycle state of a blog post.
type PostStatus string

const (
	PostDraft     PostStatus = "DRAFT"
	PostPublished PostStatus = "PUBLISHED"
	PostArchived  PostStatus = "ARCHIVED"
)

// Valid reports whether s is one of the declared lifecycle states.
func (s PostStatus) Valid() bool {
	switch s {
	case PostDraft, PostPublished, PostArchived:
		return true
	}
	return false
}

// BlogCategoryModel groups blog posts.
type BlogCategoryModel struct {
	Base
	Name string `json:"name" gorm:"not null"`
	Slug string `json:"slug" gorm:"uniqueIndex;not null"`
}

func (BlogCategoryModel) TableName() string { return "blog_categories" }

// BlogPostModel is an admin-authored article.
// Tags are stored as a comma-delimited string; ReadTime is minutes derived
// from the content word count at write time.
type BlogPostModel struct {
	Base
	Title      string             `json:"title"   gorm:"not null"`
	Slug       string             `json:"slug"    gorm:"uniqueIndex;not null"`
	Excerpt    string             `json:"excerpt" gorm:"type:text"`
	Content    string             `json:"content" gorm:"type:longtext;not null"`
	Author     string             `json:"author"`
	AuthorRole string             `json:"authorRole"`
	Tags       string             `json:"tags"`
	ReadTime   int                `json:"readTime" gorm:"default:1"`
	Image      string             `json:"image"`
	Status     PostStatus         `json:"status" gorm:"type:varchar(16);default:'DRAFT';index"`
	CategoryID string             `json:"categoryId" gorm:"index;not null"`
	Category   *BlogCategoryModel `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

func (BlogPostModel) TableName() string { return "blog_posts" }
