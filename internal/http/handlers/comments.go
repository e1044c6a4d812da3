package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/social-network/internal/errors"
	"github.com/pribylovaa/social-network/internal/service"
)

// CreateComment — POST /post/{postId}/comment (multipart: content, tags, attachments).
func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.comment(w, r, postID, "")
}

// ReplyOnComment — POST /post/{postId}/comment/{commentId}/reply.
func (h *Handlers) ReplyOnComment(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	commentID, err := pathID(r, "commentId")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.comment(w, r, postID, commentID)
}

func (h *Handlers) comment(w http.ResponseWriter, r *http.Request, postID, commentID string) {
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
		Content: formValue(form, "content"),
		Tags:    formValues(form, "tags"),
		files:   len(files),
	}
	if err := validate(in); err != nil {
		h.fail(w, r, err)
		return
	}

	ci := service.CommentInput{Content: in.Content, Tags: in.Tags, Attachments: files}

	var id string
	if commentID == "" {
		c, err := h.svc.CreateComment(r.Context(), actor(r), postID, ci)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		id = c.ID
	} else {
		c, err := h.svc.ReplyOnComment(r.Context(), actor(r), postID, commentID, ci)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		id = c.ID
	}

	apierrors.WriteSuccess(w, http.StatusCreated, map[string]any{"commentId": id})
}
