package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/attendly/attendance-gateway-go/internal/domain/auth"
	"github.com/attendly/attendance-gateway-go/internal/pkg/database"
)

type registeredUserRepositoryImpl struct {
	db *database.DB
}

func NewRegisteredUserRepository(db *database.DB) auth.RegisteredUserRepository {
	return &registeredUserRepositoryImpl{db: db}
}

// Save implements auth.RegisteredUserRepository.
func (r *registeredUserRepositoryImpl) Save(ctx context.Context, u auth.RegisteredUser) (auth.RegisteredUser, error) {
	query := `
		INSERT INTO registered_users (id, name, emp_code, pin_hash)
		VALUES (?, ?, ?, ?)
	`

	if _, err := r.db.ExecContext(ctx, query, u.ID, u.Name, u.EmpCode, u.PINHash); err != nil {
		return auth.RegisteredUser{}, err
	}

	return u, nil
}

// FindByID implements auth.RegisteredUserRepository.
func (r *registeredUserRepositoryImpl) FindByID(ctx context.Context, id string) (auth.RegisteredUser, error) {
	var u auth.RegisteredUser
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, emp_code, pin_hash FROM registered_users WHERE id = ?`, id).
		Scan(&u.ID, &u.Name, &u.EmpCode, &u.PINHash)
	if errors.Is(err, sql.ErrNoRows) {
		return auth.RegisteredUser{}, auth.ErrUserNotRegistered
	}
	if err != nil {
		return auth.RegisteredUser{}, err
	}

	return u, nil
}

// FindAll implements auth.RegisteredUserRepository.
func (r *registeredUserRepositoryImpl) FindAll(ctx context.Context) ([]auth.RegisteredUser, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, emp_code, pin_hash FROM registered_users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []auth.RegisteredUser
	for rows.Next() {
		var u auth.RegisteredUser
		if err := rows.Scan(&u.ID, &u.Name, &u.EmpCode, &u.PINHash); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// Delete implements auth.RegisteredUserRepository.
func (r *registeredUserRepositoryImpl) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM registered_users WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return auth.ErrUserNotRegistered
	}

	return nil
}
