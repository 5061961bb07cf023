package usecase

import (
	"context"

	"najah/internal/modules/progress/domain"
	"najah/internal/modules/progress/dto"
	progressin "najah/internal/modules/progress/port/in"
	"najah/internal/modules/progress/service"
)

type Interactor struct {
	svc *service.ProgressService
}

func NewInteractor(svc *service.ProgressService) progressin.Usecase {
	return &Interactor{svc: svc}
}

// Chapters lists chapters with their marks; an empty subjectID lists all.
func (i *Interactor) Chapters(ctx context.Context, subjectID string) ([]dto.ChapterOutput, error) {
	p, err := i.svc.Get(ctx)
	if err != nil {
		return nil, err
	}
	var out []dto.ChapterOutput
	for _, c := range domain.Chapters() {
		if subjectID != "" && c.SubjectID != subjectID {
			continue
		}
		out = append(out, toOutput(c, p))
	}
	return out, nil
}

func (i *Interactor) ToggleSeen(ctx context.Context, chapterID string) (dto.ChapterOutput, error) {
	if _, err := i.svc.ToggleSeen(ctx, chapterID); err != nil {
		return dto.ChapterOutput{}, err
	}
	return i.chapter(ctx, chapterID)
}

func (i *Interactor) ToggleFavorite(ctx context.Context, chapterID string) (dto.ChapterOutput, error) {
	if _, err := i.svc.ToggleFavorite(ctx, chapterID); err != nil {
		return dto.ChapterOutput{}, err
	}
	return i.chapter(ctx, chapterID)
}

func (i *Interactor) Dashboard(ctx context.Context) (dto.DashboardOutput, error) {
	d, err := i.svc.Dashboard(ctx)
	if err != nil {
		return dto.DashboardOutput{}, err
	}
	out := dto.DashboardOutput{
		Completed: d.Summary.Completed,
		Total:     d.Summary.Total,
		Percent:   d.Summary.Percent,
		ExamAt:    d.ExamAt,
		Days:      d.Countdown.Days,
		Hours:     d.Countdown.Hours,
		Mins:      d.Countdown.Mins,
	}
	if d.LastSeen != nil {
		out.LastSeen = d.LastSeen.Title
	}
	for _, c := range d.Favorites {
		out.Favorites = append(out.Favorites, c.Title)
	}
	return out, nil
}

func (i *Interactor) chapter(ctx context.Context, chapterID string) (dto.ChapterOutput, error) {
	p, err := i.svc.Get(ctx)
	if err != nil {
		return dto.ChapterOutput{}, err
	}
	c, _ := domain.FindChapter(chapterID)
	return toOutput(c, p), nil
}

func toOutput(c domain.Chapter, p domain.Progress) dto.ChapterOutput {
	return dto.ChapterOutput{
		ID:        c.ID,
		SubjectID: c.SubjectID,
		Title:     c.Title,
		Seen:      p.IsSeen(c.ID),
		Favorite:  p.IsFavorite(c.ID),
	}
}
