package entity

import "time"

// Book represents a catalog entry in the library.
//
// Borrowed is the only record of an active loan: the borrowing member is
// validated when the loan starts but not retained. The flag is mutated
// exclusively by the lending operations, never by catalog updates.
type Book struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	ISBN      string    `json:"isbn"`
	Borrowed  bool      `json:"borrowed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
