package models

// Course описывает одну запись каталога. JSON-теги совпадают один в один
// с форматом data/courses.json, менять их нельзя.
type Course struct {
	CourseID      int      `json:"courseId"`
	Title         string   `json:"title"`
	Instructor    string   `json:"instructor"`
	Description   string   `json:"description"`
	Level         string   `json:"level"` // Beginner, Intermediate, Advanced
	Duration      string   `json:"duration"`
	Thumbnail     string   `json:"thumbnail"` // вычисляется один раз при создании
	Category      string   `json:"category"`
	Rating        float64  `json:"rating"`
	Students      int      `json:"students"`
	Prerequisites []string `json:"prerequisites"`
	Syllabus      []string `json:"syllabus"` // порядок элементов = порядок показа
	Language      string   `json:"language"`
	Certificate   bool     `json:"certificate"`
	LastUpdated   string   `json:"lastUpdated"` // YYYY-MM-DD
}
