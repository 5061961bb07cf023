package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	StorageKey = "najah_planner_tasks"
	DateLayout = "2006-01-02"
)

type Task struct {
	ID        string
	Text      string
	Completed bool
	DueDate   string
}

// NewTask starts an open task due on the UTC date of now. Text is kept as
// typed; only a blank one is refused.
func NewTask(taskID, text string, now time.Time) (Task, error) {
	t := Task{ID: taskID, Text: text, DueDate: now.UTC().Format(DateLayout)}
	if err := t.Validate(); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (t Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(t.Text) == "" {
		return fmt.Errorf("text is required")
	}
	return nil
}

func Seed() []Task {
	return []Task{
		{ID: "1", Text: "Réviser les limites - Math", DueDate: "2024-10-25"},
		{ID: "2", Text: "Faire l'exercice 4 - Physique", Completed: true, DueDate: "2024-10-24"},
		{ID: "3", Text: "Lire le chapitre sur la Radioactivité", DueDate: "2024-10-26"},
	}
}
