package domain

import (
	"math"
	"slices"
	"time"
)

const (
	KeySeen      = "najah_seen_lessons"
	KeyFavorites = "najah_favorite_lessons"
	KeyLastSeen  = "najah_last_seen"
)

type Chapter struct {
	ID        string
	SubjectID string
	Title     string
}

var chapters = []Chapter{
	{ID: "math-ch1", SubjectID: "math", Title: "Limites et Continuité"},
	{ID: "math-ch2", SubjectID: "math", Title: "Dérivabilité"},
	{ID: "pc-ch1", SubjectID: "pc", Title: "Ondes Mécaniques Progressives"},
}

// Chapters lists every chapter that counts towards completion.
func Chapters() []Chapter { return slices.Clone(chapters) }

func FindChapter(chapterID string) (Chapter, bool) {
	idx := slices.IndexFunc(chapters, func(c Chapter) bool { return c.ID == chapterID })
	if idx < 0 {
		return Chapter{}, false
	}
	return chapters[idx], true
}

// Progress is the per-user study state. Seen and Favorites keep the order
// in which chapters were marked.
type Progress struct {
	Seen      []string
	Favorites []string
	LastSeen  string
}

func (p Progress) IsSeen(chapterID string) bool     { return slices.Contains(p.Seen, chapterID) }
func (p Progress) IsFavorite(chapterID string) bool { return slices.Contains(p.Favorites, chapterID) }

// Toggle removes chapterID from ids when present and appends it otherwise.
func Toggle(ids []string, chapterID string) []string {
	if idx := slices.Index(ids, chapterID); idx >= 0 {
		return slices.Delete(slices.Clone(ids), idx, idx+1)
	}
	return append(slices.Clone(ids), chapterID)
}

type Summary struct {
	Completed int
	Total     int
	Percent   int
}

// Summarize counts every stored seen id, rounding the share half up.
func Summarize(seen []string, total int) Summary {
	denominator := total
	if denominator == 0 {
		denominator = 1
	}
	return Summary{
		Completed: len(seen),
		Total:     total,
		Percent:   int(math.Round(float64(len(seen)) / float64(denominator) * 100)),
	}
}

type Countdown struct {
	Days  int
	Hours int
	Mins  int
}

// CountdownTo splits the time left until target; a past target is zero.
func CountdownTo(now, target time.Time) Countdown {
	left := target.Sub(now)
	if left <= 0 {
		return Countdown{}
	}
	return Countdown{
		Days:  int(left / (24 * time.Hour)),
		Hours: int(left/time.Hour) % 24,
		Mins:  int(left/time.Minute) % 60,
	}
}

// Dashboard is the overview shown on the home screen.
type Dashboard struct {
	Summary   Summary
	LastSeen  *Chapter
	Favorites []Chapter
	ExamAt    time.Time
	Countdown Countdown
}
