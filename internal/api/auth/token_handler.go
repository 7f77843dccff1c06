package auth

import (
	"encoding/json"
	"net/http"
)

type TokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type ErrorResponse struct {
	Error string `json:"error" example:"unauthorized"`
}

type Handler struct {
	service *TokenService
}

func NewHandler(service *TokenService) *Handler {
	return &Handler{service: service}
}

// IssueToken godoc
// @Summary		Issue a bearer token
// @Description	Issue a signed bearer token valid for one hour
// @Tags			auth
// @Produce		json
// @Success		200	{object}	TokenResponse	"Token issued"
// @Failure		500	{object}	ErrorResponse	"Internal server error"
// @Router			/token [post]
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.service.Issue()
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(TokenResponse{Token: token})
}

func (h *Handler) sendError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
