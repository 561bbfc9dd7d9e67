package models

import "time"

// BlogSortMode selects the ordering of the blog pipeline.
type BlogSortMode string

const (
	SortLatest  BlogSortMode = "latest"
	SortPopular BlogSortMode = "popular"
)

// BlogPostView is a catalog post overlaid with the viewer's like/save state.
// Likes here is the displayed count: base likes plus one when the viewer has
// liked the post. The catalog record is never mutated.
type BlogPostView struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Excerpt  string    `json:"excerpt"`
	Content  string    `json:"content"`
	Image    string    `json:"image"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
	ReadTime string    `json:"read_time"`
	Likes    int       `json:"likes"`
	Comments int       `json:"comments"`
	Tags     []string  `json:"tags"`
	Liked    bool      `json:"liked"`
	Saved    bool      `json:"saved"`
}

// NewBlogPostView overlays viewer state onto a catalog post.
func NewBlogPostView(post BlogPost, liked, saved bool) BlogPostView {
	likes := post.Likes
	if liked {
		likes++
	}
	return BlogPostView{
		ID:       post.ID,
		Title:    post.Title,
		Excerpt:  post.Excerpt,
		Content:  post.Content,
		Image:    post.Image,
		Category: post.Category,
		Date:     post.Date,
		ReadTime: post.ReadTime,
		Likes:    likes,
		Comments: post.Comments,
		Tags:     post.Tags,
		Liked:    liked,
		Saved:    saved,
	}
}

// BlogPage is one page of the filter/sort/paginate pipeline.
type BlogPage struct {
	Posts      []BlogPostView `json:"posts"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	Total      int            `json:"total"`
	TotalPages int            `json:"total_pages"`
}
