package library

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"lendingapi/internal/entity"
)

// Service orchestrates catalog, member and lending operations on top of the
// stores. Every check-then-write sequence runs under a per-key lock so that
// concurrent requests touching the same book, ISBN or email serialize, while
// operations on disjoint entities proceed in parallel. Operations are
// request-scoped and hold no state between calls.
type Service struct {
	catalog CatalogStore
	members MemberStore
	locks   *keyMutex
}

func NewService(catalog CatalogStore, members MemberStore) *Service {
	return &Service{
		catalog: catalog,
		members: members,
		locks:   newKeyMutex(),
	}
}

// Lock key namespaces. A book row, an ISBN and an email are independent
// resources; prefixes keep them from colliding.
const (
	bookKeyPrefix   = "book:"
	memberKeyPrefix = "member:"
	isbnKeyPrefix   = "isbn:"
	emailKeyPrefix  = "email:"
)

// CreateBookInput carries the writable fields of a book. The request layer
// has already validated shape; the service only enforces consistency rules.
type CreateBookInput struct {
	Title  string
	Author string
	ISBN   string
}

// UpdateBookInput mirrors CreateBookInput; all fields are applied.
type UpdateBookInput struct {
	Title  string
	Author string
	ISBN   string
}

// RegisterMemberInput carries the writable fields of a member.
type RegisterMemberInput struct {
	Name  string
	Email string
}

// UpdateMemberInput mirrors RegisterMemberInput.
type UpdateMemberInput struct {
	Name  string
	Email string
}

// CreateBook adds a new catalog entry. Fails with a duplicate-key error when
// another book already carries the ISBN.
func (s *Service) CreateBook(ctx context.Context, in CreateBookInput) (entity.Book, error) {
	s.locks.Lock(isbnKeyPrefix + in.ISBN)
	defer s.locks.Unlock(isbnKeyPrefix + in.ISBN)

	exists, err := s.catalog.ExistsByISBN(ctx, in.ISBN)
	if err != nil {
		return entity.Book{}, wrap(err)
	}
	if exists {
		return entity.Book{}, DuplicateISBN(in.ISBN)
	}

	now := time.Now().UTC()
	book := entity.Book{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Author:    in.Author,
		ISBN:      in.ISBN,
		Borrowed:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	saved, err := s.catalog.Save(ctx, book)
	if err != nil {
		return entity.Book{}, wrap(err)
	}
	log.Printf("book created book_id=%s isbn=%s", saved.ID, saved.ISBN)
	return saved, nil
}

// ListBooks returns every catalog entry.
func (s *Service) ListBooks(ctx context.Context) ([]entity.Book, error) {
	books, err := s.catalog.FindAll(ctx)
	if err != nil {
		return nil, wrap(err)
	}
	return books, nil
}

// GetBook returns a single catalog entry by ID.
func (s *Service) GetBook(ctx context.Context, id string) (entity.Book, error) {
	book, err := s.catalog.FindByID(ctx, id)
	if err != nil {
		return entity.Book{}, wrap(err)
	}
	return book, nil
}

// UpdateBook replaces a book's title, author and ISBN. ISBN uniqueness is
// re-checked only when the ISBN actually changes, so updating other fields
// never conflicts with the book's own ISBN. The borrowed flag is untouched.
func (s *Service) UpdateBook(ctx context.Context, id string, in UpdateBookInput) (entity.Book, error) {
	s.locks.Lock(bookKeyPrefix + id)
	defer s.locks.Unlock(bookKeyPrefix + id)

	book, err := s.catalog.FindByID(ctx, id)
	if err != nil {
		return entity.Book{}, wrap(err)
	}

	if book.ISBN != in.ISBN {
		s.locks.Lock(isbnKeyPrefix + in.ISBN)
		defer s.locks.Unlock(isbnKeyPrefix + in.ISBN)

		exists, err := s.catalog.ExistsByISBN(ctx, in.ISBN)
		if err != nil {
			return entity.Book{}, wrap(err)
		}
		if exists {
			return entity.Book{}, DuplicateISBN(in.ISBN)
		}
	}

	book.Title = in.Title
	book.Author = in.Author
	book.ISBN = in.ISBN
	book.UpdatedAt = time.Now().UTC()

	saved, err := s.catalog.Save(ctx, book)
	if err != nil {
		return entity.Book{}, wrap(err)
	}
	return saved, nil
}

// DeleteBook removes a catalog entry. Deleting a currently borrowed book is
// permitted; the per-book lock keeps a concurrent borrow from writing to a
// row that is going away.
func (s *Service) DeleteBook(ctx context.Context, id string) error {
	s.locks.Lock(bookKeyPrefix + id)
	defer s.locks.Unlock(bookKeyPrefix + id)

	exists, err := s.catalog.ExistsByID(ctx, id)
	if err != nil {
		return wrap(err)
	}
	if !exists {
		return NotFound(EntityBook, id)
	}
	if err := s.catalog.DeleteByID(ctx, id); err != nil {
		return wrap(err)
	}
	log.Printf("book deleted book_id=%s", id)
	return nil
}

// RegisterMember adds a new member. Fails with a duplicate-key error when
// another member already uses the email.
func (s *Service) RegisterMember(ctx context.Context, in RegisterMemberInput) (entity.Member, error) {
	s.locks.Lock(emailKeyPrefix + in.Email)
	defer s.locks.Unlock(emailKeyPrefix + in.Email)

	exists, err := s.members.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return entity.Member{}, wrap(err)
	}
	if exists {
		return entity.Member{}, DuplicateEmail(in.Email)
	}

	now := time.Now().UTC()
	member := entity.Member{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	saved, err := s.members.Save(ctx, member)
	if err != nil {
		return entity.Member{}, wrap(err)
	}
	log.Printf("member registered member_id=%s", saved.ID)
	return saved, nil
}

// ListMembers returns every registered member.
func (s *Service) ListMembers(ctx context.Context) ([]entity.Member, error) {
	members, err := s.members.FindAll(ctx)
	if err != nil {
		return nil, wrap(err)
	}
	return members, nil
}

// GetMember returns a single member by ID.
func (s *Service) GetMember(ctx context.Context, id string) (entity.Member, error) {
	member, err := s.members.FindByID(ctx, id)
	if err != nil {
		return entity.Member{}, wrap(err)
	}
	return member, nil
}

// UpdateMember replaces a member's name and email, re-checking email
// uniqueness only when the email changes. Members cannot be deleted.
func (s *Service) UpdateMember(ctx context.Context, id string, in UpdateMemberInput) (entity.Member, error) {
	s.locks.Lock(memberKeyPrefix + id)
	defer s.locks.Unlock(memberKeyPrefix + id)

	member, err := s.members.FindByID(ctx, id)
	if err != nil {
		return entity.Member{}, wrap(err)
	}

	if member.Email != in.Email {
		s.locks.Lock(emailKeyPrefix + in.Email)
		defer s.locks.Unlock(emailKeyPrefix + in.Email)

		exists, err := s.members.ExistsByEmail(ctx, in.Email)
		if err != nil {
			return entity.Member{}, wrap(err)
		}
		if exists {
			return entity.Member{}, DuplicateEmail(in.Email)
		}
	}

	member.Name = in.Name
	member.Email = in.Email
	member.UpdatedAt = time.Now().UTC()

	saved, err := s.members.Save(ctx, member)
	if err != nil {
		return entity.Member{}, wrap(err)
	}
	return saved, nil
}

// Borrow transitions a book from available to borrowed on behalf of a
// member. Precondition order is part of the contract: book existence is
// checked before member existence, and the availability check comes last, so
// a request naming a missing book always reports the book as not found.
// Exactly one of N concurrent borrows of the same book can succeed; the
// per-book lock makes the read-check-write sequence indivisible.
func (s *Service) Borrow(ctx context.Context, bookID, memberID string) (entity.Book, error) {
	s.locks.Lock(bookKeyPrefix + bookID)
	defer s.locks.Unlock(bookKeyPrefix + bookID)

	book, err := s.catalog.FindByID(ctx, bookID)
	if err != nil {
		return entity.Book{}, wrap(err)
	}

	memberExists, err := s.members.ExistsByID(ctx, memberID)
	if err != nil {
		return entity.Book{}, wrap(err)
	}
	if !memberExists {
		return entity.Book{}, NotFound(EntityMember, memberID)
	}

	if book.Borrowed {
		return entity.Book{}, AlreadyBorrowed(bookID)
	}

	book.Borrowed = true
	book.UpdatedAt = time.Now().UTC()
	saved, err := s.catalog.Save(ctx, book)
	if err != nil {
		return entity.Book{}, wrap(err)
	}
	log.Printf("book borrowed book_id=%s member_id=%s", bookID, memberID)
	return saved, nil
}

// Return transitions a book from borrowed back to available.
func (s *Service) Return(ctx context.Context, bookID string) (entity.Book, error) {
	s.locks.Lock(bookKeyPrefix + bookID)
	defer s.locks.Unlock(bookKeyPrefix + bookID)

	book, err := s.catalog.FindByID(ctx, bookID)
	if err != nil {
		return entity.Book{}, wrap(err)
	}

	if !book.Borrowed {
		return entity.Book{}, NotBorrowed(bookID)
	}

	book.Borrowed = false
	book.UpdatedAt = time.Now().UTC()
	saved, err := s.catalog.Save(ctx, book)
	if err != nil {
		return entity.Book{}, wrap(err)
	}
	log.Printf("book returned book_id=%s", bookID)
	return saved, nil
}

// wrap passes domain errors through untouched and hides everything else
// behind an internal error, so a store failure can never masquerade as a
// precondition failure or leak driver detail.
func wrap(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return Internal(err)
}
