package minio

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"

	"github.com/pribylovaa/social-network/internal/storage"
)

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// objectName оставляет в имени файла только безопасные символы.
func objectName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeName.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "file"
	}

	if len(name) > 100 {
		name = name[len(name)-100:]
	}

	return name
}

// prefix — "<app>/<path>".
func (o *Objects) prefix(p string) string {
	return path.Join(o.app, strings.Trim(p, "/"))
}

// newKey строит ключ вида "<app>/<path>/<uuid>_<name>".
func (o *Objects) newKey(p, name string) string {
	return o.prefix(p) + "/" + uuid.NewString() + "_" + objectName(name)
}

// Upload загружает один файл и возвращает его ключ.
func (o *Objects) Upload(ctx context.Context, p string, f storage.Upload) (string, error) {
	const op = "storage/minio/Upload"

	key := o.newKey(p, f.Name)

	size := f.Size
	if size <= 0 {
		size = -1
	}

	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := o.client.PutObject(ctx, o.cfg.Bucket, key, f.Body, size, mclient.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return key, nil
}

// UploadMany загружает файлы по очереди. При ошибке уже загруженные удаляются.
func (o *Objects) UploadMany(ctx context.Context, p string, files []storage.Upload) ([]string, error) {
	const op = "storage/minio/UploadMany"

	keys := make([]string, 0, len(files))
	for _, f := range files {
		key, err := o.Upload(ctx, p, f)
		if err != nil {
			_ = o.Delete(context.WithoutCancel(ctx), keys...)
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		keys = append(keys, key)
	}

	return keys, nil
}

// Delete удаляет объекты по ключам. Отсутствующие ключи не считаются ошибкой.
func (o *Objects) Delete(ctx context.Context, keys ...string) error {
	const op = "storage/minio/Delete"

	if len(keys) == 0 {
		return nil
	}

	ch := make(chan mclient.ObjectInfo, len(keys))
	for _, k := range keys {
		if k != "" {
			ch <- mclient.ObjectInfo{Key: k}
		}
	}
	close(ch)

	return o.removeAll(ctx, op, ch)
}

// DeletePrefix удаляет все объекты под "<app>/<path>/".
func (o *Objects) DeletePrefix(ctx context.Context, p string) error {
	const op = "storage/minio/DeletePrefix"

	if strings.Trim(p, "/") == "" {
		return fmt.Errorf("%s: empty prefix", op)
	}

	ch := make(chan mclient.ObjectInfo)
	listed := o.client.ListObjects(ctx, o.cfg.Bucket, mclient.ListObjectsOptions{
		Prefix:    o.prefix(p) + "/",
		Recursive: true,
	})

	var listErr error
	go func() {
		defer close(ch)
		for obj := range listed {
			if obj.Err != nil {
				listErr = obj.Err
				continue
			}
			ch <- obj
		}
	}()

	if err := o.removeAll(ctx, op, ch); err != nil {
		return err
	}

	if listErr != nil {
		return fmt.Errorf("%s: %w", op, listErr)
	}

	return nil
}

func (o *Objects) removeAll(ctx context.Context, op string, ch <-chan mclient.ObjectInfo) error {
	var firstErr error
	for rerr := range o.client.RemoveObjects(ctx, o.cfg.Bucket, ch, mclient.RemoveObjectsOptions{}) {
		if firstErr == nil && rerr.Err != nil && !isNotFound(rerr.Err) {
			firstErr = fmt.Errorf("%s: %s: %w", op, rerr.ObjectName, rerr.Err)
		}
	}

	return firstErr
}

// PresignUpload выдаёт presigned PUT URL для ключа "<app>/<path>/<uuid>_<name>".
func (o *Objects) PresignUpload(ctx context.Context, p, originalName, contentType string) (*storage.PresignedUpload, error) {
	const op = "storage/minio/PresignUpload"

	key := o.newKey(p, originalName)

	u, err := o.client.PresignedPutObject(ctx, o.cfg.Bucket, key, o.cfg.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &storage.PresignedUpload{URL: u.String(), Key: key, Expires: o.cfg.PresignTTL}, nil
}

// PresignDownload выдаёт presigned GET URL. Ключ вне префикса приложения — ErrNotFound.
func (o *Objects) PresignDownload(ctx context.Context, key string) (string, error) {
	const op = "storage/minio/PresignDownload"

	if !strings.HasPrefix(key, o.app+"/") || strings.Contains(key, "..") {
		return "", fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	ok, err := o.Exists(ctx, key)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if !ok {
		return "", fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	u, err := o.client.PresignedGetObject(ctx, o.cfg.Bucket, key, o.cfg.PresignTTL, nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return u.String(), nil
}

// Exists проверяет наличие объекта через StatObject.
func (o *Objects) Exists(ctx context.Context, key string) (bool, error) {
	const op = "storage/minio/Exists"

	_, err := o.client.StatObject(ctx, o.cfg.Bucket, key, mclient.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}

		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}

func isNotFound(err error) bool {
	resp := mclient.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.StatusCode == 404
}
