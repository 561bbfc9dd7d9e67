package services

import (
	"strings"

	"studio-service/catalog"
	"studio-service/models"
)

// MinQueryLength mirrors the storefront: shorter queries return nothing.
const MinQueryLength = 2

// SearchService filters the static search index. There is no real search
// backend behind it.
type SearchService struct{}

func NewSearchService() *SearchService {
	return &SearchService{}
}

// Search returns index entries whose title or description contains the
// query, case-insensitively.
func (s *SearchService) Search(query string) []models.SearchResult {
	if len(query) < MinQueryLength {
		return []models.SearchResult{}
	}

	query = strings.ToLower(query)
	results := []models.SearchResult{}
	for _, result := range catalog.SearchIndex {
		if strings.Contains(strings.ToLower(result.Title), query) ||
			strings.Contains(strings.ToLower(result.Description), query) {
			results = append(results, result)
		}
	}
	return results
}
