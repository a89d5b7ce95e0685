package note

import "context"

type NoteRepository interface {
	Upsert(ctx context.Context, n Note) (Note, error)
	FindByDate(ctx context.Context, date string) (Note, error)
	Delete(ctx context.Context, date string) error
	FindAll(ctx context.Context) ([]Note, error)
	CountAll(ctx context.Context) (int, error)
	CountByMonth(ctx context.Context, prefix string) (int, error)
}
