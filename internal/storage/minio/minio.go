// minio реализует storage.Objects поверх MinIO/S3.
// minio.go — конструктор клиента: нормализует endpoint, настраивает
// Secure/creds и проверяет наличие бакета.
// objects.go — загрузка, presigned URL, проверка и удаление объектов.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/pribylovaa/social-network/internal/config"
	"github.com/pribylovaa/social-network/internal/storage"
)

// Objects — адаптер MinIO для медиа сервиса.
// Все ключи начинаются с префикса приложения.
type Objects struct {
	cfg    config.S3Config
	app    string
	client *mclient.Client
}

// New создаёт клиент MinIO и выполняет fail-fast-проверку бакета.
// Схема в endpoint (http/https) имеет приоритет над UseSSL.
func New(ctx context.Context, cfg config.S3Config, app string) (*Objects, error) {
	const op = "storage/minio/New"

	endpoint := cfg.Endpoint
	secure := cfg.UseSSL

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" && u.Host != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, cfg.Bucket)
	}

	app = strings.Trim(app, "/")
	if app == "" {
		app = "social"
	}

	return &Objects{cfg: cfg, app: app, client: client}, nil
}

// Ping проверяет доступность бакета (readiness).
func (o *Objects) Ping(ctx context.Context) error {
	_, err := o.client.BucketExists(ctx, o.cfg.Bucket)
	return err
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.Objects = (*Objects)(nil)
