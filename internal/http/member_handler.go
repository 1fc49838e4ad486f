package http

import (
	"encoding/json"
	"net/http"

	"lendingapi/internal/httpx"
	"lendingapi/internal/library"
)

type MemberHandler struct {
	svc *library.Service
}

func NewMemberHandler(svc *library.Service) *MemberHandler {
	return &MemberHandler{svc: svc}
}

type MemberRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email"`
}

// @Summary Register a new member
// @Tags members
// @Accept json
// @Produce json
// @Param member body MemberRequest true "Member payload"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /api/members [post]
func (h *MemberHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON", nil)
		return
	}
	if details := ValidateStruct(req); details != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "validation_failed", "Validation failed", details)
		return
	}

	member, err := h.svc.RegisterMember(r.Context(), library.RegisterMemberInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		writeDomainError(r, w, err)
		return
	}
	httpx.JSONSuccessCreated(r, w, member, "Member registered successfully")
}

// @Summary Get all members
// @Tags members
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /api/members [get]
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.ListMembers(r.Context())
	if err != nil {
		writeDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, members, "Members retrieved successfully")
}

// @Summary Get member by ID
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/members/{id} [get]
func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	member, err := h.svc.GetMember(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, member, "Member retrieved successfully")
}

// @Summary Update member
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param member body MemberRequest true "Member payload"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /api/members/{id} [put]
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON", nil)
		return
	}
	if details := ValidateStruct(req); details != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "validation_failed", "Validation failed", details)
		return
	}

	member, err := h.svc.UpdateMember(r.Context(), r.PathValue("id"), library.UpdateMemberInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		writeDomainError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, member, "Member updated successfully")
}
