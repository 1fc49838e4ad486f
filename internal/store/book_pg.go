package store

// CatalogStore implementation (Postgres)

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lendingapi/internal/entity"
	"lendingapi/internal/library"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

// Save upserts the book row. The service assigns IDs before saving, so
// insert and update share one statement.
func (r *BookPG) Save(ctx context.Context, b entity.Book) (entity.Book, error) {
	const query = `
	INSERT INTO books (id, title, author, isbn, borrowed, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO UPDATE SET
		title = EXCLUDED.title,
		author = EXCLUDED.author,
		isbn = EXCLUDED.isbn,
		borrowed = EXCLUDED.borrowed,
		updated_at = EXCLUDED.updated_at
	RETURNING id, title, author, isbn, borrowed, created_at, updated_at
	`
	var saved entity.Book
	err := r.db.QueryRow(ctx, query,
		b.ID, b.Title, b.Author, b.ISBN, b.Borrowed, b.CreatedAt, b.UpdatedAt,
	).Scan(&saved.ID, &saved.Title, &saved.Author, &saved.ISBN, &saved.Borrowed, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		return entity.Book{}, fmt.Errorf("save book: %w", err)
	}
	return saved, nil
}

func (r *BookPG) FindByID(ctx context.Context, id string) (entity.Book, error) {
	const query = `
	SELECT id, title, author, isbn, borrowed, created_at, updated_at
	FROM books WHERE id = $1 LIMIT 1
	`
	var b entity.Book
	err := r.db.QueryRow(ctx, query, id).Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Borrowed, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, library.NotFound(library.EntityBook, id)
		}
		return entity.Book{}, fmt.Errorf("find book: %w", err)
	}
	return b, nil
}

func (r *BookPG) FindAll(ctx context.Context) ([]entity.Book, error) {
	const query = `
	SELECT id, title, author, isbn, borrowed, created_at, updated_at
	FROM books
	ORDER BY title
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Borrowed, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (r *BookPG) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM books WHERE isbn = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, isbn).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists by isbn: %w", err)
	}
	return exists, nil
}

func (r *BookPG) ExistsByID(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists by id: %w", err)
	}
	return exists, nil
}

func (r *BookPG) DeleteByID(ctx context.Context, id string) error {
	const query = `DELETE FROM books WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}
