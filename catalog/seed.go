package catalog

import "learnhub/models"

const pexels = "https://images.pexels.com/photos/"

func seedCourses() []models.Course {
	return []models.Course{
		// IT & Engineering
		{ID: "python-programming", Title: "Python Programming", Author: "Dr. Sarah Johnson", Level: models.LevelBeginner, Language: "English", Duration: "8 weeks", Category: "IT & Engineering", Subcategory: "Programming", Image: pexels + "1181671/pexels-photo-1181671.jpeg?auto=compress&cs=tinysrgb&w=400", Description: "Learn Python from scratch with hands-on projects and real-world applications.", Enrolled: 1250, Rating: 4.8},
		{ID: "blockchain-basics", Title: "Blockchain Basics", Author: "Prof. Michael Chen", Level: models.LevelIntermediate, Language: "English", Duration: "6 weeks", Category: "IT & Engineering", Subcategory: "Blockchain", Image: pexels + "730547/pexels-photo-730547.jpeg?auto=compress&cs=tinysrgb&w=400", Description: "Understanding blockchain technology and its applications in modern business.", Enrolled: 890, Rating: 4.6},
		{ID: "c-tutorial", Title: "C Programming Tutorial", Author: "John Martinez", Level: models.LevelBeginner, Language: "English", Duration: "10 weeks", Category: "IT & Engineering", Subcategory: "Programming", Image: pexels + "574071/pexels-photo-574071.jpeg?auto=compress&cs=tinysrgb&w=400", Description: "Master C programming language with comprehensive tutorials and exercises.", Enrolled: 2100, Rating: 4.7},
		{ID: "embedded-c", Title: "Embedded C Programming", Author: "Emily Watson", Level: models.LevelAdvanced, Language: "English", Duration: "12 weeks", Category: "IT & Engineering", Subcategory: "Embedded Systems", Image: pexels + "163100/circuit-circuit-board-resistor-computer-163100.jpeg?auto=compress&cs=tinysrgb&w=400", Description: "Advanced embedded C programming for microcontrollers and IoT devices.", Enrolled: 450, Rating: 4.9},

		// Business & Entrepreneurship
		{ID: "mathematical-optimization", Title: "Mathematical Optimization", Author: "Dr. Robert Kim", Level: models.LevelIntermediate, Language: "English", Duration: "8 weeks", Category: "Business & Entrepreneurship", Subcategory: "Analytics", Image: pexels + "590022/pexels-photo-590022.jpeg?auto=compress&cs=tinysrgb&w=400", Description: "Apply mathematical optimization techniques to solve business problems.", Enrolled: 320, Rating: 4.4},
		{ID: "import-export", Title: "Import & Export Business", Author: "Lisa Thompson", Level: models.LevelBeginner, Language: "English", Duration: "6 weeks", Category: "Business & Entrepreneurship", Subcategory: "International Trade", Image: pexels + "906494/pexels-photo-906494.jpeg?auto=compress&cs=tinysrgb&w=400", Description: "Learn the fundamentals of international trade and import-export business.", Enrolled: 780, Rating: 4.5},

		// Core to Future Tech
		{ID: "matlab-programming", Title: "Matlab Programming", Author: "Dr. Alex Rivera", Level: models.LevelIntermediate, Language: "English", Duration: "10 weeks", Category: "Core to Future Tech", Subcategory: "Scientific Computing", Image: pexels + "577585/pexels-photo-577585.jpeg?auto=compress&cs=tinysrgb&w=400", Description: "Master MATLAB for scientific computing and data analysis.", Enrolled: 560, Rating: 4.6},
		{ID: "quantum-computing", Title: "Quantum Computing", Author: "Prof. Maria Gonzalez", Level: models.LevelAdvanced, Language: "English", Duration: "14 weeks", Category: "Core to Future Tech", Subcategory: "Quantum Technology", Image: pexels + "73833/wormhole-space-time-portal-vortex-73833.jpeg?auto=compress&cs=tinysrgb&w=400", Description: "Explore the fundamentals of quantum computing and quantum algorithms.", Enrolled: 180, Rating: 4.8},

		// Language + Soft Skill
		{ID: "spoken-english", Title: "Spoken English", Author: "Jennifer Davis", Level: models.LevelBeginner, Language: "English", Duration: "8 weeks", Category: "Language + Soft Skill", Subcategory: "Communication", Image: pexels + "1181244/pexels-photo-1181244.jpeg?auto=compress&cs=tinysrgb&w=400", Description: "Improve your English speaking skills with practical conversation practice.", Enrolled: 1800, Rating: 4.7},
		{ID: "soft-skills", Title: "Professional Soft Skills", Author: "Mark Wilson", Level: models.LevelBeginner, Language: "English", Duration: "6 weeks", Category: "Language + Soft Skill", Subcategory: "Professional Development", Image: pexels + "1181396/pexels-photo-1181396.jpeg?auto=compress&cs=tinysrgb&w=400", Description: "Develop essential soft skills for professional success.", Enrolled: 950, Rating: 4.5},

		// Yolo Extra Courses
		{ID: "digital-marketing", Title: "Digital Marketing Mastery", Author: "Anna Rodriguez", Level: models.LevelIntermediate, Language: "English", Duration: "8 weeks", Category: "Yolo Extra Courses", Subcategory: "Marketing", Image: pexels + "267350/pexels-photo-267350.jpeg?auto=compress&cs=tinysrgb&w=400", Description: "Master digital marketing strategies and tools for modern businesses.", Enrolled: 1100, Rating: 4.6},
	}
}

func seedExams() []models.Exam {
	return []models.Exam{
		{
			ID:           "python-exam",
			CourseID:     "python-programming",
			CourseName:   "Python Programming",
			TimeLimit:    60,
			PassingScore: 70,
			Questions: []models.Question{
				{ID: "1", Question: "What is the correct way to create a list in Python?", Options: []string{"list = []", "list = ()", "list = {}", `list = ""`}, CorrectAnswer: 0},
				{ID: "2", Question: "Which keyword is used to create a function in Python?", Options: []string{"function", "def", "create", "func"}, CorrectAnswer: 1},
				{ID: "3", Question: "What does the len() function do?", Options: []string{"Returns the length of an object", "Creates a new list", "Converts to string", "None of the above"}, CorrectAnswer: 0},
				{ID: "4", Question: "How do you insert comments in Python code?", Options: []string{"// This is a comment", "/* This is a comment */", "# This is a comment", "<!-- This is a comment -->"}, CorrectAnswer: 2},
				{ID: "5", Question: "What is the output of print(2 ** 3)?", Options: []string{"6", "8", "9", "5"}, CorrectAnswer: 1},
			},
		},
		{
			ID:           "blockchain-exam",
			CourseID:     "blockchain-basics",
			CourseName:   "Blockchain Basics",
			TimeLimit:    45,
			PassingScore: 75,
			Questions: []models.Question{
				{ID: "1", Question: "What is a blockchain?", Options: []string{"A type of database", "A distributed ledger", "A cryptocurrency", "A mining algorithm"}, CorrectAnswer: 1},
				{ID: "2", Question: "Who created Bitcoin?", Options: []string{"Vitalik Buterin", "Satoshi Nakamoto", "Charlie Lee", "Roger Ver"}, CorrectAnswer: 1},
				{ID: "3", Question: "What is a smart contract?", Options: []string{"A legal document", "Self-executing contract with code", "A mining contract", "A trading agreement"}, CorrectAnswer: 1},
			},
		},
	}
}

func seedReading() []models.ReadingItem {
	return []models.ReadingItem{
		{ID: "news-1", Title: "The Future of Artificial Intelligence in Education", Category: models.ReadingNews, Image: pexels + "8386434/pexels-photo-8386434.jpeg?auto=compress&cs=tinysrgb&w=400", Excerpt: "How AI is transforming the learning experience and making education more personalized...", Author: "Tech Today", PublishDate: "2024-01-15"},
		{ID: "news-2", Title: "Online Learning Trends for 2024", Category: models.ReadingNews, Image: pexels + "4144923/pexels-photo-4144923.jpeg?auto=compress&cs=tinysrgb&w=400", Excerpt: "Discover the latest trends shaping online education and e-learning platforms...", Author: "Education Weekly", PublishDate: "2024-01-10"},
		{ID: "international-1", Title: "Global Education Initiatives Making Impact", Category: models.ReadingInternational, Image: pexels + "6209509/pexels-photo-6209509.jpeg?auto=compress&cs=tinysrgb&w=400", Excerpt: "Exploring educational programs that are making a difference worldwide...", Author: "World Education Report", PublishDate: "2024-01-12"},
		{ID: "international-2", Title: "Cross-Cultural Learning in the Digital Age", Category: models.ReadingInternational, Image: pexels + "6207584/pexels-photo-6207584.jpeg?auto=compress&cs=tinysrgb&w=400", Excerpt: "How technology is breaking down barriers in international education...", Author: "Global Learning Network", PublishDate: "2024-01-08"},
		{ID: "books-1", Title: "Essential Books for Tech Professionals", Category: models.ReadingBooks, Image: pexels + "159711/books-bookstore-book-reading-159711.jpeg?auto=compress&cs=tinysrgb&w=400", Excerpt: "A curated list of must-read books for anyone in the technology field...", Author: "Book Review Digest", PublishDate: "2024-01-14"},
		{ID: "books-2", Title: "Learning Through Literature: A New Approach", Category: models.ReadingBooks, Image: pexels + "1106468/pexels-photo-1106468.jpeg?auto=compress&cs=tinysrgb&w=400", Excerpt: "How classic literature can enhance modern learning experiences...", Author: "Literary Education Review", PublishDate: "2024-01-11"},
	}
}

func seedJobs() []models.Job {
	return []models.Job{
		{ID: "yolo-star-1", Title: "YOLO Star Certification Program", Type: "YOLO Star", Description: "Become a certified expert in your field with our comprehensive certification program.", Image: pexels + "3184357/pexels-photo-3184357.jpeg?auto=compress&cs=tinysrgb&w=400", LiveClass: true, StartDate: "2024-02-01"},
		{ID: "elite-1", Title: "Elite Professional Development", Type: "Elite", Description: "Advanced professional development for industry leaders and senior professionals.", Image: pexels + "3184436/pexels-photo-3184436.jpeg?auto=compress&cs=tinysrgb&w=400", LiveClass: true, StartDate: "2024-02-15"},
		{ID: "infinity-1", Title: "Infinity Tech Certification", Type: "Infinity Certification", Description: "Master cutting-edge technologies with our advanced certification track.", Image: pexels + "3184328/pexels-photo-3184328.jpeg?auto=compress&cs=tinysrgb&w=400", LiveClass: false, StartDate: "2024-03-01"},
		{ID: "yolo-star-2", Title: "YOLO Star Leadership Program", Type: "YOLO Star", Description: "Develop leadership skills and advance your career with our exclusive program.", Image: pexels + "3184339/pexels-photo-3184339.jpeg?auto=compress&cs=tinysrgb&w=400", LiveClass: true, StartDate: "2024-02-20"},
	}
}

func seedStats() models.CommunityStats {
	return models.CommunityStats{
		ActiveStudents:       15420,
		Faculties:            180,
		TechnicalControllers: 25,
	}
}
