package store

// In-memory store implementations. Each method is atomic under the store's
// mutex, matching the single-row guarantees of the Postgres stores. Used by
// tests and by the api server when no database is configured.

import (
	"context"
	"sync"

	"lendingapi/internal/entity"
	"lendingapi/internal/library"
)

type BookMemory struct {
	mu    sync.RWMutex
	books map[string]entity.Book
}

func NewBookMemory() *BookMemory {
	return &BookMemory{books: make(map[string]entity.Book)}
}

func (r *BookMemory) Save(_ context.Context, b entity.Book) (entity.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.books[b.ID] = b
	return b, nil
}

func (r *BookMemory) FindByID(_ context.Context, id string) (entity.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.books[id]
	if !ok {
		return entity.Book{}, library.NotFound(library.EntityBook, id)
	}
	return b, nil
}

func (r *BookMemory) FindAll(_ context.Context) ([]entity.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	books := make([]entity.Book, 0, len(r.books))
	for _, b := range r.books {
		books = append(books, b)
	}
	return books, nil
}

func (r *BookMemory) ExistsByISBN(_ context.Context, isbn string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.books {
		if b.ISBN == isbn {
			return true, nil
		}
	}
	return false, nil
}

func (r *BookMemory) ExistsByID(_ context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.books[id]
	return ok, nil
}

func (r *BookMemory) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.books, id)
	return nil
}

type MemberMemory struct {
	mu      sync.RWMutex
	members map[string]entity.Member
}

func NewMemberMemory() *MemberMemory {
	return &MemberMemory{members: make(map[string]entity.Member)}
}

func (r *MemberMemory) Save(_ context.Context, m entity.Member) (entity.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[m.ID] = m
	return m, nil
}

func (r *MemberMemory) FindByID(_ context.Context, id string) (entity.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.members[id]
	if !ok {
		return entity.Member{}, library.NotFound(library.EntityMember, id)
	}
	return m, nil
}

func (r *MemberMemory) FindAll(_ context.Context) ([]entity.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	members := make([]entity.Member, 0, len(r.members))
	for _, m := range r.members {
		members = append(members, m)
	}
	return members, nil
}

func (r *MemberMemory) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.members {
		if m.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemberMemory) ExistsByID(_ context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.members[id]
	return ok, nil
}
