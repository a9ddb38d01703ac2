package readstore

import (
	"context"

	"cafe-reservation/internal/infra"
	"cafe-reservation/internal/infra/db"
	"cafe-reservation/internal/pkg/pgconv"
	"cafe-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	var view queries.UserView
	var hash string
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role, active
		FROM users
		WHERE email = $1`, email).
		Scan(&view.ID, &view.Email, &hash, &view.Role, &view.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, hash, nil
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var view queries.UserView
	err := r.db.QueryRow(ctx, `
		SELECT id, email, role, active
		FROM users
		WHERE id = $1`, id).
		Scan(&view.ID, &view.Email, &view.Role, &view.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}
