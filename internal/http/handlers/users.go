package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	apierrors "github.com/pribylovaa/social-network/internal/errors"
	"github.com/pribylovaa/social-network/internal/service"
)

// Profile — GET /user.
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Profile(r.Context(), actor(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusOK, map[string]any{"user": p})
}

// PublicProfile — GET /user/{userId}.
func (h *Handlers) PublicProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "userId")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	p, err := h.svc.PublicProfile(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusOK, map[string]any{"user": p})
}

// ProfileImage — PATCH /user/profile-image: presigned PUT для нового аватара.
func (h *Handlers) ProfileImage(w http.ResponseWriter, r *http.Request) {
	var in profileImageRequest
	if err := decodeStrict(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	up, err := h.svc.ProfileImageUpload(r.Context(), actor(r), in.ContentType, in.OriginalName)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusOK, up)
}

// CoverImages — PATCH /user/cover-images (multipart, поле images).
func (h *Handlers) CoverImages(w http.ResponseWriter, r *http.Request) {
	form, err := h.parseForm(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	files, release, err := openImages(form, "images", service.MaxCoverImages)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	defer release()

	keys, err := h.svc.CoverImages(r.Context(), actor(r), files)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusOK, map[string]any{"coverImages": keys})
}

// Freeze — DELETE /user/freeze и DELETE /user/{userId}/freeze.
func (h *Handlers) Freeze(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userId")
	if id != "" {
		if err := validation.Validate(id, is.UUID); err != nil {
			h.fail(w, r, validationError(validation.Errors{"userId": err}))
			return
		}
	}

	if err := h.svc.Freeze(r.Context(), actor(r), id); err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusOK, nil)
}

// Restore — PATCH /user/{userId}/restore.
func (h *Handlers) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "userId")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.svc.Restore(r.Context(), actor(r), id); err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusOK, nil)
}

// HardDelete — DELETE /user/{userId}.
func (h *Handlers) HardDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "userId")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.svc.HardDelete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusOK, nil)
}

// ChangeRole — PATCH /user/{userId}/change-role.
func (h *Handlers) ChangeRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "userId")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var in changeRoleRequest
	if err := decodeStrict(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.svc.ChangeRole(r.Context(), actor(r), id, in.Role); err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusOK, nil)
}

// AssetURL — GET /user/asset?key=...: presigned GET.
func (h *Handlers) AssetURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if err := validation.Validate(key, validation.Required); err != nil {
		h.fail(w, r, validationError(validation.Errors{"key": err}))
		return
	}

	url, err := h.svc.AssetURL(r.Context(), key)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusOK, map[string]any{"url": url})
}
