package services

import (
	"context"
	"sort"
	"strings"

	"studio-service/catalog"
	"studio-service/database"
	"studio-service/models"

	"go.uber.org/zap"
)

const (
	DefaultPageSize = 3
	MaxPageSize     = 100
)

// BlogQuery is the input to the filter/sort/paginate pipeline.
type BlogQuery struct {
	Category string
	Query    string
	Sort     models.BlogSortMode
	Page     int
	PageSize int
}

// BlogService runs the blog pipeline over the catalog and layers the
// session's like/save overlays on top. The catalog is never written.
type BlogService struct {
	store  database.SessionStore
	logger *zap.Logger
}

func NewBlogService(store database.SessionStore, logger *zap.Logger) *BlogService {
	return &BlogService{store: store, logger: logger}
}

// FilterPosts keeps posts matching the category (or "All") whose title or
// any tag contains the query, case-insensitively. Category and query filters
// commute and the filter is idempotent.
func FilterPosts(posts []models.BlogPost, category, query string) []models.BlogPost {
	query = strings.ToLower(query)
	out := make([]models.BlogPost, 0, len(posts))
	for _, post := range posts {
		if category != "" && category != "All" && post.Category != category {
			continue
		}
		if query != "" && !matchesQuery(post, query) {
			continue
		}
		out = append(out, post)
	}
	return out
}

func matchesQuery(post models.BlogPost, query string) bool {
	if strings.Contains(strings.ToLower(post.Title), query) {
		return true
	}
	for _, tag := range post.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// SortPosts orders by date descending for latest, by base likes descending
// for popular. Viewer likes never influence the order.
func SortPosts(posts []models.BlogPost, mode models.BlogSortMode) []models.BlogPost {
	out := make([]models.BlogPost, len(posts))
	copy(out, posts)
	sort.SliceStable(out, func(i, j int) bool {
		if mode == models.SortPopular {
			return out[i].Likes > out[j].Likes
		}
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// PaginatePosts slices out one page. A page past the end returns an empty
// slice; filters changing never implicitly reset the page.
func PaginatePosts(posts []models.BlogPost, page, pageSize int) []models.BlogPost {
	start := (page - 1) * pageSize
	if start >= len(posts) || start < 0 {
		return []models.BlogPost{}
	}
	end := start + pageSize
	if end > len(posts) {
		end = len(posts)
	}
	return posts[start:end]
}

// Page runs the full pipeline for a session.
func (s *BlogService) Page(ctx context.Context, sessionID string, q BlogQuery) (models.BlogPage, *ServiceError) {
	if q.Category == "" {
		q.Category = "All"
	}
	if q.Sort == "" {
		q.Sort = models.SortLatest
	}
	if q.Sort != models.SortLatest && q.Sort != models.SortPopular {
		return models.BlogPage{}, &ServiceError{StatusCode: 400, Message: "Sort must be latest or popular"}
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}

	filtered := SortPosts(FilterPosts(catalog.BlogPosts, q.Category, q.Query), q.Sort)
	pagePosts := PaginatePosts(filtered, q.Page, q.PageSize)

	var page models.BlogPage
	serr := mutateSession(ctx, s.store, sessionID, func(session *models.Session) *ServiceError {
		views := make([]models.BlogPostView, 0, len(pagePosts))
		for _, post := range pagePosts {
			views = append(views, models.NewBlogPostView(post, session.LikedPosts[post.ID], session.SavedPosts[post.ID]))
		}
		page = models.BlogPage{
			Posts:      views,
			Page:       q.Page,
			PageSize:   q.PageSize,
			Total:      len(filtered),
			TotalPages: (len(filtered) + q.PageSize - 1) / q.PageSize,
		}
		return nil
	})
	if serr != nil {
		return models.BlogPage{}, serr
	}
	return page, nil
}

// Categories returns the fixed category list.
func (s *BlogService) Categories() []string {
	return catalog.BlogCategories
}

// ToggleLike flips the viewer's like overlay for a post and returns the
// post as the viewer now sees it.
func (s *BlogService) ToggleLike(ctx context.Context, sessionID, postID string) (models.BlogPostView, *ServiceError) {
	return s.toggle(ctx, sessionID, postID, true)
}

// ToggleSave flips the viewer's save overlay for a post.
func (s *BlogService) ToggleSave(ctx context.Context, sessionID, postID string) (models.BlogPostView, *ServiceError) {
	return s.toggle(ctx, sessionID, postID, false)
}

func (s *BlogService) toggle(ctx context.Context, sessionID, postID string, like bool) (models.BlogPostView, *ServiceError) {
	post, ok := catalog.PostByID(postID)
	if !ok {
		return models.BlogPostView{}, &ServiceError{StatusCode: 404, Message: "Post not found"}
	}

	var view models.BlogPostView
	serr := mutateSession(ctx, s.store, sessionID, func(session *models.Session) *ServiceError {
		overlay := session.SavedPosts
		if like {
			overlay = session.LikedPosts
		}
		if overlay[postID] {
			delete(overlay, postID)
		} else {
			overlay[postID] = true
		}
		view = models.NewBlogPostView(post, session.LikedPosts[postID], session.SavedPosts[postID])
		return nil
	})
	if serr != nil {
		if serr.StatusCode == 500 {
			s.logger.Error("Failed to save blog overlay", zap.String("session_id", sessionID))
		}
		return models.BlogPostView{}, serr
	}
	return view, nil
}
