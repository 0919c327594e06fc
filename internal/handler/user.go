package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/seap-dev/subscription-api/internal/service"
)

const userNotFoundMsg = "No user found."

type UserHandler struct {
	services service.UserServiceInterface
	log      *slog.Logger
}

func NewUserHandler(services service.UserServiceInterface, log *slog.Logger) *UserHandler {
	return &UserHandler{
		services: services,
		log:      log.With(slog.String("component", "delivery/http")),
	}
}

type emailPayload struct {
	Email string `json:"email"`
}

// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param or_return query bool false "return the existing user instead of failing on a duplicate email"
// @Param body body emailPayload true "user email"
// @Success 202 {object} domain.User
// @Failure 422 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /users [post]
func (h *UserHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var input emailPayload
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.log.Error("failed to decode request body", slog.String("error", err.Error()))
		writeError(w, http.StatusUnprocessableEntity, "User couldn't be parsed from provided json.")
		return
	}

	orReturn, _ := strconv.ParseBool(r.URL.Query().Get("or_return"))

	user, err := h.services.Create(r.Context(), input.Email, orReturn)
	if err != nil {
		h.log.Error("failed to create user", slog.String("error", err.Error()))
		respondError(w, err, userNotFoundMsg)
		return
	}

	writeJSON(w, http.StatusAccepted, user)
}

// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param id path int true "user id"
// @Success 202 {object} domain.User
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /users/{id} [get]
func (h *UserHandler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	user, err := h.services.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err, userNotFoundMsg)
		return
	}

	writeJSON(w, http.StatusAccepted, user)
}

// @Summary List users or look one up by email
// @Description Requires exactly one of: start_index+count, or email.
// @Tags users
// @Produce json
// @Param start_index query int false "pagination offset"
// @Param count query int false "pagination limit"
// @Param email query string false "lookup by email"
// @Success 202 {array} domain.User
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /users [get]
func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	pagination, hasPagination, err := parsePagination(q)
	hasEmail := q.Has("email")

	switch {
	case hasPagination && hasEmail:
		writeError(w, http.StatusUnprocessableEntity, "Expected either an email or pagination query params.")
	case err != nil:
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case hasPagination:
		users, err := h.services.List(r.Context(), pagination)
		if err != nil {
			h.log.Error("failed to list users", slog.String("error", err.Error()))
			respondError(w, err, userNotFoundMsg)
			return
		}
		writeJSON(w, http.StatusAccepted, users)
	case hasEmail:
		user, err := h.services.GetByEmail(r.Context(), q.Get("email"))
		if err != nil {
			respondError(w, err, userNotFoundMsg)
			return
		}
		writeJSON(w, http.StatusAccepted, user)
	default:
		writeError(w, http.StatusUnprocessableEntity, "Expected either an email or pagination query params.")
	}
}

// @Summary Update a user's email
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "user id"
// @Param body body emailPayload true "new email"
// @Success 202 {object} domain.User
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /users/{id} [put]
func (h *UserHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var input emailPayload
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "User couldn't be parsed from provided json.")
		return
	}

	user, err := h.services.Update(r.Context(), id, input.Email)
	if err != nil {
		h.log.Error("failed to update user", slog.Int64("id", id), slog.String("error", err.Error()))
		respondError(w, err, userNotFoundMsg)
		return
	}

	writeJSON(w, http.StatusAccepted, user)
}

// @Summary Delete a user by id
// @Tags users
// @Produce json
// @Param id path int true "user id"
// @Success 202 {object} domain.User
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	user, err := h.services.Delete(r.Context(), id)
	if err != nil {
		respondError(w, err, userNotFoundMsg)
		return
	}

	writeJSON(w, http.StatusAccepted, user)
}

// @Summary Delete a user by email
// @Tags users
// @Produce json
// @Param email query string true "user email"
// @Success 202 {object} domain.User
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /users [delete]
func (h *UserHandler) deleteUserByEmail(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("email") {
		writeError(w, http.StatusUnprocessableEntity, "Expected an email query param.")
		return
	}

	user, err := h.services.DeleteByEmail(r.Context(), q.Get("email"))
	if err != nil {
		respondError(w, err, userNotFoundMsg)
		return
	}

	writeJSON(w, http.StatusAccepted, user)
}
