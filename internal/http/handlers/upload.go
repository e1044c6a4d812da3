package handlers

import (
	"mime/multipart"
	"net/http"
	"slices"

	apierrors "github.com/pribylovaa/social-network/internal/errors"
	"github.com/pribylovaa/social-network/internal/service"
	"github.com/pribylovaa/social-network/internal/storage"
)

var errInvalidFileType = apierrors.BadRequest("invalid file format")

// parseForm разбирает multipart-форму в пределах maxUpload.
func (h *Handlers) parseForm(r *http.Request) (*multipart.Form, error) {
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		return nil, errInvalidBody.WithCause(err.Error())
	}

	return r.MultipartForm, nil
}

// openImages открывает не более limit изображений из поля field.
// Возвращённый release закрывает файлы и удаляет временные копии формы.
func openImages(form *multipart.Form, field string, limit int) ([]storage.Upload, func(), error) {
	headers := form.File[field]
	if len(headers) > limit {
		_ = form.RemoveAll()
		return nil, nil, service.ErrTooManyFiles
	}

	uploads := make([]storage.Upload, 0, len(headers))
	var files []multipart.File

	release := func() {
		for _, f := range files {
			_ = f.Close()
		}
		_ = form.RemoveAll()
	}

	for _, fh := range headers {
		ct := fh.Header.Get("Content-Type")
		if !slices.ContainsFunc(imageTypes, func(t any) bool { return t == ct }) {
			release()
			return nil, nil, errInvalidFileType.WithCause(fh.Filename)
		}

		f, err := fh.Open()
		if err != nil {
			release()
			return nil, nil, errInvalidBody.WithCause(err.Error())
		}
		files = append(files, f)

		uploads = append(uploads, storage.Upload{
			Name:        fh.Filename,
			ContentType: ct,
			Size:        fh.Size,
			Body:        f,
		})
	}

	return uploads, release, nil
}

// formValue — первое значение поля формы.
func formValue(form *multipart.Form, key string) string {
	if v := form.Value[key]; len(v) > 0 {
		return v[0]
	}

	return ""
}

// formValues собирает значения поля, принимая и "tags", и "tags[]".
func formValues(form *multipart.Form, key string) []string {
	return append(slices.Clone(form.Value[key]), form.Value[key+"[]"]...)
}
