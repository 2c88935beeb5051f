package models

// Course levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Course is static catalog data.
type Course struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Level       string  `json:"level"` // Beginner, Intermediate, Advanced
	Language    string  `json:"language"`
	Duration    string  `json:"duration"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Enrolled    int     `json:"enrolled"`
	Rating      float64 `json:"rating"`
}

// CourseGroup is a category with its courses, in catalog order.
type CourseGroup struct {
	Category string   `json:"category"`
	Courses  []Course `json:"courses"`
}
