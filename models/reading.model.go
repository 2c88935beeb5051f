package models

// Reading categories
const (
	ReadingNews          = "News"
	ReadingInternational = "International"
	ReadingBooks         = "Books"
)

type ReadingItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Excerpt     string `json:"excerpt"`
	Author      string `json:"author"`
	PublishDate string `json:"publish_date"`
}
