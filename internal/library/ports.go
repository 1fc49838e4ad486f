package library

import (
	"context"

	"lendingapi/internal/entity"
)

//go:generate mockgen -source=ports.go -destination=../store/mocks/stores.go -package=mocks

// CatalogStore defines the contract for book persistence. FindByID returns a
// KindNotFound error when no book has the given ID. Each method must be
// atomic for a single row; cross-call atomicity is the service's job.
type CatalogStore interface {
	Save(ctx context.Context, b entity.Book) (entity.Book, error)
	FindByID(ctx context.Context, id string) (entity.Book, error)
	FindAll(ctx context.Context) ([]entity.Book, error)
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	DeleteByID(ctx context.Context, id string) error
}

// MemberStore defines the contract for member persistence. Members are never
// deleted, so no delete method exists.
type MemberStore interface {
	Save(ctx context.Context, m entity.Member) (entity.Member, error)
	FindByID(ctx context.Context, id string) (entity.Member, error)
	FindAll(ctx context.Context) ([]entity.Member, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
}
