// internal/domain/blog/entity.go
package blog

// Post is a health article shown on the storefront blog.
type Post struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Author      string   `json:"author"`
	PublishDate string   `json:"publishDate"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	ReadTime    string   `json:"readTime"`
	Tags        []string `json:"tags"`
}
