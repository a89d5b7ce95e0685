package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/attendly/attendance-gateway-go/internal/domain/note"
	"github.com/attendly/attendance-gateway-go/internal/pkg/database"
)

type noteRepositoryImpl struct {
	db *database.DB
}

func NewNoteRepository(db *database.DB) note.NoteRepository {
	return &noteRepositoryImpl{db: db}
}

// Upsert implements note.NoteRepository.
func (r *noteRepositoryImpl) Upsert(ctx context.Context, n note.Note) (note.Note, error) {
	query := `
		INSERT INTO notes (date, text, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(date) DO UPDATE SET text = excluded.text, updated_at = datetime('now')
	`

	if _, err := r.db.ExecContext(ctx, query, n.Date, n.Text); err != nil {
		return note.Note{}, err
	}

	return n, nil
}

// FindByDate implements note.NoteRepository.
func (r *noteRepositoryImpl) FindByDate(ctx context.Context, date string) (note.Note, error) {
	var n note.Note
	err := r.db.QueryRowContext(ctx, `SELECT date, text FROM notes WHERE date = ?`, date).
		Scan(&n.Date, &n.Text)
	if errors.Is(err, sql.ErrNoRows) {
		return note.Note{}, note.ErrNoteNotFound
	}
	if err != nil {
		return note.Note{}, err
	}

	return n, nil
}

// Delete implements note.NoteRepository.
func (r *noteRepositoryImpl) Delete(ctx context.Context, date string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE date = ?`, date)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return note.ErrNoteNotFound
	}

	return nil
}

// FindAll implements note.NoteRepository.
func (r *noteRepositoryImpl) FindAll(ctx context.Context) ([]note.Note, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT date, text FROM notes ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []note.Note
	for rows.Next() {
		var n note.Note
		if err := rows.Scan(&n.Date, &n.Text); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}

	return notes, rows.Err()
}

// CountAll implements note.NoteRepository.
func (r *noteRepositoryImpl) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes`).Scan(&count)
	return count, err
}

// CountByMonth implements note.NoteRepository.
func (r *noteRepositoryImpl) CountByMonth(ctx context.Context, prefix string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes WHERE date LIKE ? || '%'`, prefix).
		Scan(&count)
	return count, err
}
