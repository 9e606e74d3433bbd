// internal/domain/blog/service.go
package blog

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when no post exists for the requested id.
var ErrNotFound = errors.New("blog post not found")

// Service serves the static blog content.
type Service struct {
	posts      []Post
	categories []string
}

// NewService returns a service backed by the built-in articles.
func NewService() *Service {
	return &Service{posts: posts, categories: categories}
}

// NewServiceWith builds a service over custom content.
func NewServiceWith(p []Post, c []string) *Service {
	return &Service{posts: p, categories: c}
}

// List returns posts filtered by a search term and a category.
// The search matches case-insensitive substrings of the title,
// excerpt and tags. Category "All" or "" matches everything.
func (s *Service) List(search, category string) []Post {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]Post, 0, len(s.posts))
	for _, p := range s.posts {
		if category != "" && category != "All" && p.Category != category {
			continue
		}
		if needle != "" && !matchesPost(p, needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Get returns a single post by id.
func (s *Service) Get(id string) (Post, error) {
	for _, p := range s.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}

// Categories returns the category filter options, starting with "All".
func (s *Service) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

func matchesPost(p Post, needle string) bool {
	if strings.Contains(strings.ToLower(p.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Excerpt), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
