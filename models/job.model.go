package models

type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"` // YOLO Star, Elite, Infinity Certification
	Description string `json:"description"`
	Image       string `json:"image"`
	LiveClass   bool   `json:"live_class"`
	StartDate   string `json:"start_date"`
}

type CommunityStats struct {
	ActiveStudents       int `json:"active_students"`
	Faculties            int `json:"faculties"`
	TechnicalControllers int `json:"technical_controllers"`
}
