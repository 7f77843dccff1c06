package user

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	store    *Store
	validate bool
}

// NewHandler wires the CRUD handlers to a store. When validate is false the
// input rules are skipped entirely (the bare variant of the service).
func NewHandler(store *Store, validate bool) *Handler {
	return &Handler{
		store:    store,
		validate: validate,
	}
}

type ErrorResponse struct {
	Error string `json:"error" example:"User with ID 1 not found."`
}

// ListUsers godoc
// @Summary		List all users
// @Description	Retrieve every user currently in the directory
// @Tags			users
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		User			"All users"
// @Failure		401	{object}	ErrorResponse	"Unauthorized - invalid or missing token"
// @Router			/users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(w, http.StatusOK, h.store.List())
}

// GetUser godoc
// @Summary		Get user by ID
// @Description	Retrieve a single user by its numeric ID
// @Tags			users
// @Produce		json
// @Security		BearerAuth
// @Param			id	path		int				true	"User ID"	example(1)
// @Success		200	{object}	User			"User found"
// @Failure		400	{object}	ErrorResponse	"Bad request - invalid user ID"
// @Failure		401	{object}	ErrorResponse	"Unauthorized - invalid or missing token"
// @Failure		404	{object}	ErrorResponse	"User not found"
// @Router			/users/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	u, err := h.store.Get(id)
	if err != nil {
		h.sendStoreError(w, err)
		return
	}

	h.sendJSON(w, http.StatusOK, u)
}

// CreateUser godoc
// @Summary		Create a new user
// @Description	Create a new user with name and email
// @Tags			users
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			user	body		UserInput		true	"User data"
// @Success		201		{object}	User			"User created"
// @Failure		400		{array}		Violation		"Validation failed"
// @Failure		401		{object}	ErrorResponse	"Unauthorized - invalid or missing token"
// @Router			/users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var input UserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.sendError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if h.validate {
		if violations := Validate(input); len(violations) > 0 {
			h.sendJSON(w, http.StatusBadRequest, violations)
			return
		}
	}

	u := h.store.Create(input)

	w.Header().Set("Location", fmt.Sprintf("/users/%d", u.ID))
	h.sendJSON(w, http.StatusCreated, u)
}

// UpdateUser godoc
// @Summary		Update a user
// @Description	Replace the name and email of an existing user
// @Tags			users
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			id		path		int			true	"User ID"	example(1)
// @Param			user	body		UserInput	true	"User data"
// @Success		200		{object}	User			"User updated"
// @Failure		400		{array}		Violation		"Validation failed"
// @Failure		401		{object}	ErrorResponse	"Unauthorized - invalid or missing token"
// @Failure		404		{object}	ErrorResponse	"User not found"
// @Router			/users/{id} [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var input UserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.sendError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if h.validate {
		if violations := Validate(input); len(violations) > 0 {
			h.sendJSON(w, http.StatusBadRequest, violations)
			return
		}
	}

	u, err := h.store.Update(id, input)
	if err != nil {
		h.sendStoreError(w, err)
		return
	}

	h.sendJSON(w, http.StatusOK, u)
}

// DeleteUser godoc
// @Summary		Delete a user
// @Description	Remove a user from the directory
// @Tags			users
// @Produce		json
// @Security		BearerAuth
// @Param			id	path	int	true	"User ID"	example(1)
// @Success		204	"User deleted"
// @Failure		400	{object}	ErrorResponse	"Bad request - invalid user ID"
// @Failure		401	{object}	ErrorResponse	"Unauthorized - invalid or missing token"
// @Failure		404	{object}	ErrorResponse	"User not found"
// @Router			/users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if !h.store.Delete(id) {
		h.sendError(w, http.StatusNotFound, (&NotFoundError{ID: id}).Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Helpers

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "Invalid user ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) sendStoreError(w http.ResponseWriter, err error) {
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		h.sendError(w, http.StatusNotFound, notFound.Error())
		return
	}
	h.sendError(w, http.StatusInternalServerError, err.Error())
}

func (h *Handler) sendError(w http.ResponseWriter, statusCode int, message string) {
	h.sendJSON(w, statusCode, ErrorResponse{Error: message})
}

func (h *Handler) sendJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}
