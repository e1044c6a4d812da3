package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/social-network/internal/errors"
)

// SendFriendRequest — POST /user/{userId}/friend-request.
func (h *Handlers) SendFriendRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "userId")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	fr, err := h.svc.SendFriendRequest(r.Context(), actor(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusCreated, map[string]any{"requestId": fr.ID})
}

// AcceptFriendRequest — PATCH /user/friend-request/{requestId}/accept.
func (h *Handlers) AcceptFriendRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "requestId")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.svc.AcceptFriendRequest(r.Context(), actor(r), id); err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusOK, nil)
}
