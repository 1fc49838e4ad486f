package http

import (
	"encoding/json"
	"net/http"

	"lendingapi/internal/httpx"
	"lendingapi/internal/library"
)

type BookHandler struct {
	svc *library.Service
}

func NewBookHandler(svc *library.Service) *BookHandler {
	return &BookHandler{svc: svc}
}

type BookRequest struct {
	Title  string `json:"title" validate:"required,max=255"`
	Author string `json:"author" validate:"required,max=255"`
	ISBN   string `json:"isbn" validate:"required,max=32"`
}

// @Summary Add a new book
// @Tags books
// @Accept json
// @Produce json
// @Param book body BookRequest true "Book payload"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /api/books [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON", nil)
		return
	}
	if details := ValidateStruct(req); details != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "validation_failed", "Validation failed", details)
		return
	}

	book, err := h.svc.CreateBook(r.Context(), library.CreateBookInput{
		Title:  req.Title,
		Author: req.Author,
		ISBN:   req.ISBN,
	})
	if err != nil {
		writeDomainError(r, w, err)
		return
	}
	httpx.JSONSuccessCreated(r, w, book, "Book created successfully")
}

// @Summary Get all books
// @Tags books
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /api/books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.ListBooks(r.Context())
	if err != nil {
		writeDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, books, "Books retrieved successfully")
}

// @Summary Get book by ID
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/books/{id} [get]
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	book, err := h.svc.GetBook(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, book, "Book retrieved successfully")
}

// @Summary Update book
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param book body BookRequest true "Book payload"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /api/books/{id} [put]
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON", nil)
		return
	}
	if details := ValidateStruct(req); details != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "validation_failed", "Validation failed", details)
		return
	}

	book, err := h.svc.UpdateBook(r.Context(), r.PathValue("id"), library.UpdateBookInput{
		Title:  req.Title,
		Author: req.Author,
		ISBN:   req.ISBN,
	})
	if err != nil {
		writeDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, book, "Book updated successfully")
}

// @Summary Delete book
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/books/{id} [delete]
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteBook(r.Context(), r.PathValue("id")); err != nil {
		writeDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, nil, "Book deleted successfully")
}
