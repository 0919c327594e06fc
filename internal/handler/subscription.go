package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/seap-dev/subscription-api/internal/domain"
	"github.com/seap-dev/subscription-api/internal/service"
)

const subscriptionNotFoundMsg = "No subscription found with this id."

type SubscriptionHandler struct {
	services service.SubscriptionServiceInterface
	log      *slog.Logger
}

func NewSubscriptionHandler(services service.SubscriptionServiceInterface, log *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		services: services,
		log:      log.With(slog.String("component", "delivery/http")),
	}
}

// @Summary Create a subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param body body domain.SubscriptionDraft true "subscription without id"
// @Success 202 {object} domain.Subscription
// @Failure 422 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /subscriptions [post]
func (h *SubscriptionHandler) createSubscription(w http.ResponseWriter, r *http.Request) {
	var draft domain.SubscriptionDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.log.Error("failed to decode request body", slog.String("error", err.Error()))
		writeError(w, http.StatusUnprocessableEntity, "Subscription couldn't be parsed from provided json.")
		return
	}

	sub, err := h.services.Create(r.Context(), draft)
	if err != nil {
		h.log.Error("failed to create subscription", slog.String("error", err.Error()))
		respondError(w, err, subscriptionNotFoundMsg)
		return
	}

	writeJSON(w, http.StatusAccepted, sub)
}

// @Summary Get a subscription by id
// @Tags subscriptions
// @Produce json
// @Param id path int true "subscription id"
// @Success 202 {object} domain.Subscription
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /subscriptions/{id} [get]
func (h *SubscriptionHandler) getSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	sub, err := h.services.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err, subscriptionNotFoundMsg)
		return
	}

	writeJSON(w, http.StatusAccepted, sub)
}

// @Summary List subscriptions or list by owner email
// @Description Requires exactly one of: start_index+count, or email.
// @Tags subscriptions
// @Produce json
// @Param start_index query int false "pagination offset"
// @Param count query int false "pagination limit"
// @Param email query string false "owner email"
// @Success 202 {array} domain.Subscription
// @Failure 422 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /subscriptions [get]
func (h *SubscriptionHandler) listSubscriptions(w http.ResponseWriter, r *http.Request) {
	const ambiguousMsg = "Expected either: pagination query params, an email query param or an id path param."

	q := r.URL.Query()

	pagination, hasPagination, err := parsePagination(q)
	hasEmail := q.Has("email")

	switch {
	case hasPagination && hasEmail:
		writeError(w, http.StatusUnprocessableEntity, ambiguousMsg)
	case err != nil:
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case hasPagination:
		subs, err := h.services.List(r.Context(), pagination)
		if err != nil {
			h.log.Error("failed to list subscriptions", slog.String("error", err.Error()))
			respondError(w, err, subscriptionNotFoundMsg)
			return
		}
		writeJSON(w, http.StatusAccepted, subs)
	case hasEmail:
		subs, err := h.services.GetAllOfEmail(r.Context(), q.Get("email"))
		if err != nil {
			respondError(w, err, subscriptionNotFoundMsg)
			return
		}
		writeJSON(w, http.StatusAccepted, subs)
	default:
		writeError(w, http.StatusUnprocessableEntity, ambiguousMsg)
	}
}

// @Summary Replace a subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param id path int true "subscription id"
// @Param body body domain.SubscriptionDraft true "replacement fields"
// @Success 202 {object} domain.Subscription
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /subscriptions/{id} [put]
func (h *SubscriptionHandler) updateSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	// the path parameter is authoritative, any id in the body is ignored
	var draft domain.SubscriptionDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Subscription couldn't be parsed from provided json.")
		return
	}

	sub, err := h.services.Update(r.Context(), draft.WithID(id))
	if err != nil {
		h.log.Error("failed to update subscription", slog.Int64("id", id), slog.String("error", err.Error()))
		respondError(w, err, subscriptionNotFoundMsg)
		return
	}

	writeJSON(w, http.StatusAccepted, sub)
}

// @Summary Delete a subscription by id
// @Tags subscriptions
// @Produce json
// @Param id path int true "subscription id"
// @Success 202 {object} domain.Subscription
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /subscriptions/{id} [delete]
func (h *SubscriptionHandler) deleteSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	sub, err := h.services.Delete(r.Context(), id)
	if err != nil {
		respondError(w, err, subscriptionNotFoundMsg)
		return
	}

	writeJSON(w, http.StatusAccepted, sub)
}
