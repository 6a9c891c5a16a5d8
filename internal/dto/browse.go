package dto

// BrowseFilter captures the optional AND-combined browse filters.
type BrowseFilter struct {
	Location   string
	CategoryID string
	Search     string
	Page       int
	PageSize   int
}

// TeacherEntry annotates a teaching user inside a browse group.
type TeacherEntry struct {
	UserID          string  `json:"id"`
	Username        string  `json:"username"`
	Location        string  `json:"location"`
	ExperienceLevel string  `json:"experience_level"`
	AvgRating       float64 `json:"avg_rating"`
}

// SkillGroup is one browse result: a skill with every matching teacher.
type SkillGroup struct {
	SkillID     string         `json:"id"`
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Teachers    []TeacherEntry `json:"teachers"`
}

// TeachingRow is the flat shape returned by the browse query before grouping.
type TeachingRow struct {
	SkillID          string `db:"skill_id"`
	SkillName        string `db:"skill_name"`
	CategoryName     string `db:"category_name"`
	SkillDescription string `db:"skill_description"`
	UserID           string `db:"user_id"`
	Username         string `db:"username"`
	Location         string `db:"location"`
	ExperienceLevel  string `db:"experience_level"`
}
