package services_test

import (
	"context"
	"testing"
	"time"

	"studio-service/catalog"
	"studio-service/database"
	"studio-service/models"
	"studio-service/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBlogService() *services.BlogService {
	store := database.NewMemorySessionStore(time.Minute)
	return services.NewBlogService(store, zap.NewNop())
}

func postIDs(posts []models.BlogPost) []string {
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}

func TestFilterPosts(t *testing.T) {
	t.Run("category only", func(t *testing.T) {
		got := services.FilterPosts(catalog.BlogPosts, "Hair Care", "")
		require.Len(t, got, 1)
		assert.Equal(t, "1", got[0].ID)
	})

	t.Run("All passes everything", func(t *testing.T) {
		got := services.FilterPosts(catalog.BlogPosts, "All", "")
		assert.Len(t, got, len(catalog.BlogPosts))
	})

	t.Run("query matches title case-insensitively", func(t *testing.T) {
		got := services.FilterPosts(catalog.BlogPosts, "All", "BRIDAL")
		require.Len(t, got, 1)
		assert.Equal(t, "2", got[0].ID)
	})

	t.Run("query matches tags", func(t *testing.T) {
		got := services.FilterPosts(catalog.BlogPosts, "All", "wedding")
		require.Len(t, got, 1)
		assert.Equal(t, "2", got[0].ID)
	})

	t.Run("category and query commute", func(t *testing.T) {
		byCategory := services.FilterPosts(catalog.BlogPosts, "Skincare", "")
		catThenQuery := services.FilterPosts(byCategory, "All", "natural")

		byQuery := services.FilterPosts(catalog.BlogPosts, "All", "natural")
		queryThenCat := services.FilterPosts(byQuery, "Skincare", "")

		assert.Equal(t, postIDs(catThenQuery), postIDs(queryThenCat))
	})

	t.Run("filtering is idempotent", func(t *testing.T) {
		once := services.FilterPosts(catalog.BlogPosts, "Hair Care", "hair")
		twice := services.FilterPosts(once, "Hair Care", "hair")
		assert.Equal(t, postIDs(once), postIDs(twice))
	})
}

func TestSortPosts(t *testing.T) {
	t.Run("latest is descending by date", func(t *testing.T) {
		got := services.SortPosts(catalog.BlogPosts, models.SortLatest)
		for i := 1; i < len(got); i++ {
			assert.False(t, got[i-1].Date.Before(got[i].Date))
		}
	})

	t.Run("popular is descending by base likes", func(t *testing.T) {
		got := services.SortPosts(catalog.BlogPosts, models.SortPopular)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Likes, got[i].Likes)
		}
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		firstBefore := catalog.BlogPosts[0].ID
		_ = services.SortPosts(catalog.BlogPosts, models.SortPopular)
		assert.Equal(t, firstBefore, catalog.BlogPosts[0].ID)
	})
}

func TestPaginatePosts(t *testing.T) {
	posts := services.SortPosts(catalog.BlogPosts, models.SortLatest)

	page1 := services.PaginatePosts(posts, 1, 2)
	assert.Len(t, page1, 2)

	page2 := services.PaginatePosts(posts, 2, 2)
	assert.Len(t, page2, 1)

	// past the end: empty, not clamped
	page9 := services.PaginatePosts(posts, 9, 2)
	assert.Empty(t, page9)
}

func TestBlogPage(t *testing.T) {
	ctx := context.Background()

	t.Run("single Hair Care post regardless of sort", func(t *testing.T) {
		svc := newBlogService()
		for _, mode := range []models.BlogSortMode{models.SortLatest, models.SortPopular} {
			page, serr := svc.Page(ctx, "tab-1", services.BlogQuery{Category: "Hair Care", Sort: mode})
			require.Nil(t, serr)
			require.Len(t, page.Posts, 1)
			assert.Equal(t, "1", page.Posts[0].ID)
			assert.Equal(t, 1, page.Total)
		}
	})

	t.Run("defaults fill in", func(t *testing.T) {
		svc := newBlogService()
		page, serr := svc.Page(ctx, "tab-1", services.BlogQuery{})
		require.Nil(t, serr)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, services.DefaultPageSize, page.PageSize)
		assert.Equal(t, len(catalog.BlogPosts), page.Total)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("rejects unknown sort mode", func(t *testing.T) {
		svc := newBlogService()
		_, serr := svc.Page(ctx, "tab-1", services.BlogQuery{Sort: "trending"})
		require.NotNil(t, serr)
		assert.Equal(t, 400, serr.StatusCode)
	})

	t.Run("page past the range is empty but reports totals", func(t *testing.T) {
		svc := newBlogService()
		page, serr := svc.Page(ctx, "tab-1", services.BlogQuery{Page: 5})
		require.Nil(t, serr)
		assert.Empty(t, page.Posts)
		assert.Equal(t, len(catalog.BlogPosts), page.Total)
	})
}

func TestLikeAndSaveOverlays(t *testing.T) {
	ctx := context.Background()
	svc := newBlogService()

	base, ok := catalog.PostByID("3")
	require.True(t, ok)

	view, serr := svc.ToggleLike(ctx, "tab-1", "3")
	require.Nil(t, serr)
	assert.True(t, view.Liked)
	assert.Equal(t, base.Likes+1, view.Likes)

	// the catalog record itself never moves
	after, _ := catalog.PostByID("3")
	assert.Equal(t, base.Likes, after.Likes)

	// toggling back restores the base count
	view, serr = svc.ToggleLike(ctx, "tab-1", "3")
	require.Nil(t, serr)
	assert.False(t, view.Liked)
	assert.Equal(t, base.Likes, view.Likes)

	view, serr = svc.ToggleSave(ctx, "tab-1", "3")
	require.Nil(t, serr)
	assert.True(t, view.Saved)
	assert.False(t, view.Liked)

	_, serr = svc.ToggleLike(ctx, "tab-1", "nope")
	require.NotNil(t, serr)
	assert.Equal(t, 404, serr.StatusCode)
}

func TestViewerLikeDoesNotAffectPopularOrder(t *testing.T) {
	ctx := context.Background()
	svc := newBlogService()

	before, serr := svc.Page(ctx, "tab-1", services.BlogQuery{Sort: models.SortPopular})
	require.Nil(t, serr)

	// like the least popular post; order must not change
	least := before.Posts[len(before.Posts)-1].ID
	_, serr = svc.ToggleLike(ctx, "tab-1", least)
	require.Nil(t, serr)

	after, serr := svc.Page(ctx, "tab-1", services.BlogQuery{Sort: models.SortPopular})
	require.Nil(t, serr)

	for i := range before.Posts {
		assert.Equal(t, before.Posts[i].ID, after.Posts[i].ID)
	}
}
