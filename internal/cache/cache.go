// cache — read-through кэш журнала отзыва jti поверх Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/pkg/log"
	"github.com/pribylovaa/social-network/internal/storage"
)

const (
	defaultPrefix      = "social:revoked:"
	defaultNegativeTTL = 30 * time.Second

	// Значения ключа: "1" — jti отозван, "0" — проверен и не отозван.
	revokedValue = "1"
	activeValue  = "0"
)

// Ledger оборачивает журнал отзыва кэшем Redis:
//   - положительный ответ хранится до истечения записи журнала;
//   - отрицательный — NegativeTTL и только если ключа ещё нет (SETNX);
//   - Record пишет в хранилище, затем в кэш.
//
// Ошибки Redis не ломают проверку: запрос уходит в хранилище.
// Отозванный jti не должен читаться из кэша как "0": если Record не смог
// записать "1", ключ удаляется, а при неудаче удаления возвращается ошибка.
type Ledger struct {
	rdb         *redis.Client
	store       storage.RevokedTokens
	prefix      string
	negativeTTL time.Duration
	now         func() time.Time
}

// NewRedisClient создаёт клиент Redis из URL (например, redis://:pass@host:6379/0)
// и проверяет соединение.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	const op = "cache.NewRedisClient"

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rdb, nil
}

// NewLedger создаёт кэширующий журнал. Пустой prefix — "social:revoked:".
func NewLedger(rdb *redis.Client, store storage.RevokedTokens, prefix string, negativeTTL time.Duration) *Ledger {
	if prefix == "" {
		prefix = defaultPrefix
	}

	if negativeTTL <= 0 {
		negativeTTL = defaultNegativeTTL
	}

	return &Ledger{
		rdb:         rdb,
		store:       store,
		prefix:      prefix,
		negativeTTL: negativeTTL,
		now:         time.Now,
	}
}

func (l *Ledger) key(jti string) string { return l.prefix + jti }

// Contains сначала смотрит в Redis, при промахе — в хранилище, и кэширует ответ.
func (l *Ledger) Contains(ctx context.Context, jti string) (bool, error) {
	const op = "cache.Ledger.Contains"

	lg := log.From(ctx)

	v, err := l.rdb.Get(ctx, l.key(jti)).Result()
	switch {
	case err == nil:
		return v == revokedValue, nil
	case !errors.Is(err, redis.Nil):
		lg.Warn("revocation_cache_get_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	rec, err := l.store.RevokedToken(ctx, jti)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		l.cacheActive(ctx, op, jti)
		return false, nil
	case err != nil:
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if ttl := rec.ExpiresAt.Sub(l.now()); ttl > 0 {
		_ = l.set(ctx, op, jti, revokedValue, ttl)
	}

	return true, nil
}

func (l *Ledger) set(ctx context.Context, op, jti, value string, ttl time.Duration) error {
	err := l.rdb.Set(ctx, l.key(jti), value, ttl).Err()
	if err != nil {
		log.From(ctx).Warn("revocation_cache_set_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	return err
}

// cacheActive кэширует отрицательный ответ, не затирая уже записанный "1".
func (l *Ledger) cacheActive(ctx context.Context, op, jti string) {
	if err := l.rdb.SetNX(ctx, l.key(jti), activeValue, l.negativeTTL).Err(); err != nil {
		log.From(ctx).Warn("revocation_cache_set_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}
}

// Record пишет запись в хранилище и кэширует её до ExpiresAt.
func (l *Ledger) Record(ctx context.Context, t models.RevokedToken) error {
	const op = "cache.Ledger.Record"

	if err := l.store.Record(ctx, t); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if ttl := t.ExpiresAt.Sub(l.now()); ttl > 0 && l.set(ctx, op, t.JTI, revokedValue, ttl) == nil {
		return nil
	}

	// Запись не закэширована: убираем возможный "0", чтобы следующий Contains пошёл в хранилище.
	if err := l.rdb.Del(ctx, l.key(t.JTI)).Err(); err != nil {
		return fmt.Errorf("%s: invalidate cache: %w", op, err)
	}

	return nil
}

// RevokedToken читает запись напрямую из хранилища.
func (l *Ledger) RevokedToken(ctx context.Context, jti string) (*models.RevokedToken, error) {
	return l.store.RevokedToken(ctx, jti)
}

// DeleteExpired делегирует очистку хранилищу: ключи Redis истекают сами.
func (l *Ledger) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return l.store.DeleteExpired(ctx, now)
}

// Close закрывает клиент Redis.
func (l *Ledger) Close() error { return l.rdb.Close() }

var _ storage.RevokedTokens = (*Ledger)(nil)
