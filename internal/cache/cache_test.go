package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/storage"
)

// memStore — in-memory журнал отзыва с подсчётом обращений.
type memStore struct {
	mu      sync.Mutex
	records map[string]models.RevokedToken
	lookups int
	err     error
}

func newMemStore() *memStore {
	return &memStore{records: map[string]models.RevokedToken{}}
}

func (s *memStore) Record(_ context.Context, t models.RevokedToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}

	if _, ok := s.records[t.JTI]; !ok {
		s.records[t.JTI] = t
	}

	return nil
}

func (s *memStore) Contains(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.records[jti]
	return ok, s.err
}

func (s *memStore) RevokedToken(_ context.Context, jti string) (*models.RevokedToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lookups++
	if s.err != nil {
		return nil, s.err
	}

	t, ok := s.records[jti]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &t, nil
}

func (s *memStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for k, t := range s.records {
		if !t.ExpiresAt.After(now) {
			delete(s.records, k)
			n++
		}
	}

	return n, nil
}

func (s *memStore) lookupCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookups
}

// startRedis поднимает Redis в контейнере. Запуск:
//
//	GO_TEST_INTEGRATION=1 go test ./internal/cache -v -count=1
func startRedis(t *testing.T) *redis.Client {
	t.Helper()

	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	rdb, err := NewRedisClient(ctx, fmt.Sprintf("redis://%s:%s/0", host, port.Port()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	return rdb
}

func TestNewRedisClient_BadURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "http://not-redis")
	require.Error(t, err)
}

func TestNewLedger_Defaults(t *testing.T) {
	l := NewLedger(nil, newMemStore(), "", 0)
	require.Equal(t, defaultPrefix, l.prefix)
	require.Equal(t, defaultNegativeTTL, l.negativeTTL)
	require.Equal(t, "social:revoked:abc", l.key("abc"))
}

func TestLedger_ReadThrough(t *testing.T) {
	rdb := startRedis(t)
	store := newMemStore()
	l := NewLedger(rdb, store, "test:revoked:", time.Minute)
	ctx := context.Background()

	// Промах: ответ хранилища кэшируется как "0".
	ok, err := l.Contains(ctx, "j1")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 1, store.lookupCount())

	ok, err = l.Contains(ctx, "j1")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 1, store.lookupCount())

	v, err := rdb.Get(ctx, "test:revoked:j1").Result()
	require.NoError(t, err)
	require.Equal(t, activeValue, v)

	// Record перезаписывает отрицательный ответ.
	require.NoError(t, l.Record(ctx, models.RevokedToken{
		JTI:       "j1",
		AccountID: "u1",
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}))

	ok, err = l.Contains(ctx, "j1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, store.lookupCount())

	ttl, err := rdb.TTL(ctx, "test:revoked:j1").Result()
	require.NoError(t, err)
	require.Greater(t, ttl, 50*time.Minute)
}

// Поздний отрицательный ответ конкурентного Contains не затирает отзыв.
func TestLedger_NegativeDoesNotOverwriteRevoked(t *testing.T) {
	rdb := startRedis(t)
	store := newMemStore()
	l := NewLedger(rdb, store, "test:revoked:", time.Minute)
	ctx := context.Background()

	require.NoError(t, l.Record(ctx, models.RevokedToken{JTI: "j6", ExpiresAt: time.Now().Add(time.Hour)}))
	l.cacheActive(ctx, "test", "j6")

	v, err := rdb.Get(ctx, "test:revoked:j6").Result()
	require.NoError(t, err)
	require.Equal(t, revokedValue, v)

	ok, err := l.Contains(ctx, "j6")
	require.NoError(t, err)
	require.True(t, ok)
}

// failSet отклоняет команды SET, остальные пропускает.
type failSet struct{}

func (failSet) DialHook(next redis.DialHook) redis.DialHook { return next }

func (failSet) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		if cmd.Name() == "set" {
			return errors.New("set refused")
		}
		return next(ctx, cmd)
	}
}

func (failSet) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

// Если "1" не записался, закэшированный "0" удаляется и отзыв виден сразу.
func TestLedger_RecordSetFails_DropsNegative(t *testing.T) {
	rdb := startRedis(t)
	store := newMemStore()
	l := NewLedger(rdb, store, "test:revoked:", time.Minute)
	ctx := context.Background()

	ok, err := l.Contains(ctx, "j7")
	require.NoError(t, err)
	require.False(t, ok)

	rdb.AddHook(failSet{})

	require.NoError(t, l.Record(ctx, models.RevokedToken{JTI: "j7", ExpiresAt: time.Now().Add(time.Hour)}))

	_, err = rdb.Get(ctx, "test:revoked:j7").Result()
	require.ErrorIs(t, err, redis.Nil)

	ok, err = l.Contains(ctx, "j7")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestLedger_PositiveFromStore(t *testing.T) {
	rdb := startRedis(t)
	store := newMemStore()
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, models.RevokedToken{JTI: "j2", ExpiresAt: time.Now().Add(time.Hour)}))

	l := NewLedger(rdb, store, "test:revoked:", time.Minute)

	ok, err := l.Contains(ctx, "j2")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = l.Contains(ctx, "j2")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, store.lookupCount())
}

func TestLedger_RecordExpired_NotCached(t *testing.T) {
	rdb := startRedis(t)
	store := newMemStore()
	l := NewLedger(rdb, store, "test:revoked:", time.Minute)
	ctx := context.Background()

	require.NoError(t, l.Record(ctx, models.RevokedToken{JTI: "old", ExpiresAt: time.Now().Add(-time.Minute)}))

	_, err := rdb.Get(ctx, "test:revoked:old").Result()
	require.ErrorIs(t, err, redis.Nil)

	n, err := l.DeleteExpired(ctx, time.Now())
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestLedger_StoreErrors(t *testing.T) {
	rdb := startRedis(t)
	store := newMemStore()
	store.err = errors.New("mongo down")
	l := NewLedger(rdb, store, "test:revoked:", time.Minute)
	ctx := context.Background()

	_, err := l.Contains(ctx, "j3")
	require.ErrorContains(t, err, "mongo down")

	err = l.Record(ctx, models.RevokedToken{JTI: "j3", ExpiresAt: time.Now().Add(time.Hour)})
	require.ErrorContains(t, err, "mongo down")

	_, err = rdb.Get(ctx, "test:revoked:j3").Result()
	require.ErrorIs(t, err, redis.Nil)
}

// Недоступный Redis не ломает проверку: ответ берётся из хранилища.
func TestLedger_RedisDown_FallsBackToStore(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer rdb.Close()

	store := newMemStore()
	ctx := context.Background()
	require.NoError(t, store.Record(ctx, models.RevokedToken{JTI: "j4", ExpiresAt: time.Now().Add(time.Hour)}))

	l := NewLedger(rdb, store, "", 0)

	ok, err := l.Contains(ctx, "j4")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = l.Contains(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	// Запись в хранилище прошла, но кэш не инвалидирован: Record сообщает об ошибке.
	err = l.Record(ctx, models.RevokedToken{JTI: "j5", ExpiresAt: time.Now().Add(time.Hour)})
	require.ErrorContains(t, err, "invalidate cache")
	rec, err := l.RevokedToken(ctx, "j5")
	require.NoError(t, err)
	require.Equal(t, "j5", rec.JTI)
}
