package store

// MemberStore implementation (Postgres)

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lendingapi/internal/entity"
	"lendingapi/internal/library"
)

type MemberPG struct {
	db *pgxpool.Pool
}

func NewMemberPG(db *pgxpool.Pool) *MemberPG {
	return &MemberPG{db: db}
}

func (r *MemberPG) Save(ctx context.Context, m entity.Member) (entity.Member, error) {
	const query = `
	INSERT INTO members (id, name, email, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		email = EXCLUDED.email,
		updated_at = EXCLUDED.updated_at
	RETURNING id, name, email, created_at, updated_at
	`
	var saved entity.Member
	err := r.db.QueryRow(ctx, query,
		m.ID, m.Name, m.Email, m.CreatedAt, m.UpdatedAt,
	).Scan(&saved.ID, &saved.Name, &saved.Email, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		return entity.Member{}, fmt.Errorf("save member: %w", err)
	}
	return saved, nil
}

func (r *MemberPG) FindByID(ctx context.Context, id string) (entity.Member, error) {
	const query = `
	SELECT id, name, email, created_at, updated_at
	FROM members WHERE id = $1 LIMIT 1
	`
	var m entity.Member
	err := r.db.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.Email, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Member{}, library.NotFound(library.EntityMember, id)
		}
		return entity.Member{}, fmt.Errorf("find member: %w", err)
	}
	return m, nil
}

func (r *MemberPG) FindAll(ctx context.Context) ([]entity.Member, error) {
	const query = `
	SELECT id, name, email, created_at, updated_at
	FROM members
	ORDER BY name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var members []entity.Member
	for rows.Next() {
		var m entity.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

func (r *MemberPG) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM members WHERE email = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists by email: %w", err)
	}
	return exists, nil
}

func (r *MemberPG) ExistsByID(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM members WHERE id = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists by id: %w", err)
	}
	return exists, nil
}
