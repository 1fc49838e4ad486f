package http

import (
	"net/http"

	"lendingapi/internal/httpx"
	"lendingapi/internal/library"
)

// LendingHandler exposes the borrow/return operations.
type LendingHandler struct {
	svc *library.Service
}

func NewLendingHandler(svc *library.Service) *LendingHandler {
	return &LendingHandler{svc: svc}
}

// @Summary Borrow a book
// @Tags lending
// @Produce json
// @Param bookId path string true "Book ID"
// @Param memberId path string true "Member ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /api/borrow/{bookId}/member/{memberId} [post]
func (h *LendingHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	book, err := h.svc.Borrow(r.Context(), r.PathValue("bookId"), r.PathValue("memberId"))
	if err != nil {
		writeDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, book, "Book borrowed successfully")
}

// @Summary Return a book
// @Tags lending
// @Produce json
// @Param bookId path string true "Book ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/return/{bookId} [post]
func (h *LendingHandler) Return(w http.ResponseWriter, r *http.Request) {
	book, err := h.svc.Return(r.Context(), r.PathValue("bookId"))
	if err != nil {
		writeDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, book, "Book returned successfully")
}
