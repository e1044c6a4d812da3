package handlers

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"

	apierrors "github.com/pribylovaa/social-network/internal/errors"
	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/service"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// CreatePost — POST /post (multipart: content, availability, allowComments, tags, attachments).
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	form, err := h.parseForm(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	files, release, err := openImages(form, "attachments", service.MaxAttachments)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	defer release()

	in := postForm{
		Content:       formValue(form, "content"),
		Availability:  models.Availability(formValue(form, "availability")),
		AllowComments: models.AllowComments(formValue(form, "allowComments")),
		Tags:          formValues(form, "tags"),
		files:         len(files),
	}
	if err := validate(in); err != nil {
		h.fail(w, r, err)
		return
	}

	p, err := h.svc.CreatePost(r.Context(), actor(r), service.CreatePostInput{
		Content:       in.Content,
		Availability:  in.Availability,
		AllowComments: in.AllowComments,
		Tags:          in.Tags,
		Attachments:   files,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusCreated, map[string]any{"postId": p.ID})
}

// LikePost — PATCH /post/{postId}/like?action=like|unlike.
func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "postId")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	action := models.LikeAction(r.URL.Query().Get("action"))
	if action == "" {
		action = models.ActionLike
	}
	if err := validation.Validate(action, validation.In(models.ActionLike, models.ActionUnlike)); err != nil {
		h.fail(w, r, validationError(validation.Errors{"action": err}))
		return
	}

	if _, err := h.svc.LikePost(r.Context(), actor(r), id, action); err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusOK, nil)
}

// ListPosts — GET /post?page&size.
func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.svc.ListPosts(r.Context(), actor(r), page)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusOK, res)
}

func pageParams(r *http.Request) (models.PageParams, error) {
	p := models.PageParams{Page: 1, Size: defaultPageSize}
	errs := validation.Errors{}

	q := r.URL.Query()
	if v := q.Get("page"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 1 {
			errs["page"] = errors.New("must be a positive integer")
		}
		p.Page = n
	}

	if v := q.Get("size"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 1 || n > maxPageSize {
			errs["size"] = errors.New("must be between 1 and 100")
		}
		p.Size = n
	}

	if len(errs) > 0 {
		return models.PageParams{}, validationError(errs)
	}

	return p, nil
}
