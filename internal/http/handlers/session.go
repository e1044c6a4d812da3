package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/social-network/internal/errors"
	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/service"
)

// credentials — тело ответа с парой токенов.
type credentials struct {
	Credentials models.TokenPair `json:"credentials"`
}

// RefreshToken — POST /user/refresh-token (refresh-токен в Authorization).
func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	p := principal(r)

	pair, err := h.svc.Refresh(r.Context(), p.Account, p.Claims)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusCreated, credentials{Credentials: pair})
}

// Logout — POST /user/logout. Тело {flag} необязательно, по умолчанию "only".
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	var in logoutRequest
	if err := decodeOptional(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	p := principal(r)
	if err := h.svc.Logout(r.Context(), p.Account, p.Claims, in.Flag); err != nil {
		h.fail(w, r, err)
		return
	}

	status := http.StatusCreated
	if in.Flag == service.LogoutAll {
		status = http.StatusOK
	}

	apierrors.WriteSuccess(w, status, nil)
}
