package note

import "context"

// NoteService stores per-date notes in the local store.
type NoteService interface {
	Put(ctx context.Context, req PutNoteRequest) (Note, error)
	Get(ctx context.Context, date string) (Note, error)
	Delete(ctx context.Context, date string) error
	List(ctx context.Context) ([]Note, error)
	GetStats(ctx context.Context) (Stats, error)
}
