package note

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-gateway-go/internal/domain/note"
)

type NoteServiceImpl struct {
	note.NoteRepository
	now func() time.Time
}

func NewNoteService(repo note.NoteRepository) note.NoteService {
	return &NoteServiceImpl{
		NoteRepository: repo,
		now:            time.Now,
	}
}

// Put implements note.NoteService.
func (s *NoteServiceImpl) Put(ctx context.Context, req note.PutNoteRequest) (note.Note, error) {
	if err := req.Validate(); err != nil {
		return note.Note{}, err
	}

	saved, err := s.NoteRepository.Upsert(ctx, note.Note{Date: req.Date, Text: req.Text})
	if err != nil {
		return note.Note{}, fmt.Errorf("failed to save note: %w", err)
	}

	return saved, nil
}

// Get implements note.NoteService.
func (s *NoteServiceImpl) Get(ctx context.Context, date string) (note.Note, error) {
	return s.NoteRepository.FindByDate(ctx, date)
}

// Delete implements note.NoteService.
func (s *NoteServiceImpl) Delete(ctx context.Context, date string) error {
	return s.NoteRepository.Delete(ctx, date)
}

// List implements note.NoteService.
func (s *NoteServiceImpl) List(ctx context.Context) ([]note.Note, error) {
	notes, err := s.NoteRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return notes, nil
}

// GetStats implements note.NoteService.
func (s *NoteServiceImpl) GetStats(ctx context.Context) (note.Stats, error) {
	total, err := s.NoteRepository.CountAll(ctx)
	if err != nil {
		return note.Stats{}, fmt.Errorf("failed to count notes: %w", err)
	}

	thisMonth, err := s.NoteRepository.CountByMonth(ctx, s.now().Format("2006-01"))
	if err != nil {
		return note.Stats{}, fmt.Errorf("failed to count notes for current month: %w", err)
	}

	return note.Stats{Total: total, ThisMonth: thisMonth}, nil
}
