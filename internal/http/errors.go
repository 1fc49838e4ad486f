package http

import (
	"errors"
	"log"
	"net/http"

	"lendingapi/internal/httpx"
	"lendingapi/internal/library"
)

// writeDomainError translates the closed error set of the library service
// into HTTP statuses. The mapping is fixed; every kind lands on exactly one
// status and unknown errors never surface more than a generic message.
func writeDomainError(r *http.Request, w http.ResponseWriter, err error) {
	var domainErr *library.Error
	if !errors.As(err, &domainErr) {
		log.Printf("unhandled error: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONError(r, w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred", nil)
		return
	}

	switch domainErr.Kind {
	case library.KindNotFound:
		code := "book_not_found"
		if domainErr.Entity == library.EntityMember {
			code = "member_not_found"
		}
		httpx.JSONError(r, w, http.StatusNotFound, code, domainErr.Error(), nil)
	case library.KindDuplicateKey:
		httpx.JSONError(r, w, http.StatusConflict, "duplicate_resource", domainErr.Error(), nil)
	case library.KindAlreadyBorrowed:
		httpx.JSONError(r, w, http.StatusConflict, "book_already_borrowed", domainErr.Error(), nil)
	case library.KindNotBorrowed:
		httpx.JSONError(r, w, http.StatusBadRequest, "book_not_borrowed", domainErr.Error(), nil)
	default:
		log.Printf("internal error: request_id=%s error=%v", httpx.RequestIDFrom(r), errors.Unwrap(domainErr))
		httpx.JSONError(r, w, http.StatusInternalServerError, "internal_error", domainErr.Error(), nil)
	}
}
