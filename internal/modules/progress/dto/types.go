package dto

import "time"

type ChapterOutput struct {
	ID        string
	SubjectID string
	Title     string
	Seen      bool
	Favorite  bool
}

type DashboardOutput struct {
	Completed int
	Total     int
	Percent   int
	// LastSeen is empty until a chapter is marked seen.
	LastSeen  string
	Favorites []string
	ExamAt    time.Time
	Days      int
	Hours     int
	Mins      int
}
