// outbox — очередь фоновых задач процесса: письма и сверка загрузок.
//
// Задача ставится в очередь неблокирующе и обрабатывается пулом воркеров.
// Повторов нет: ошибка обработчика логируется один раз. При переполнении
// очереди задача отбрасывается с записью в лог.
package outbox

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pribylovaa/social-network/internal/config"
	"github.com/pribylovaa/social-network/internal/pkg/log"
)

// Kind — тип задачи.
type Kind string

const (
	KindConfirmEmail      Kind = "send_confirm_email"
	KindResetPassword     Kind = "send_reset_password"
	KindTrackProfileImage Kind = "track_profile_image"
)

// EmailPayload — данные письма с OTP.
type EmailPayload struct {
	To   string
	Name string
	OTP  string
}

// ProfileImagePayload — данные сверки загрузки аватара.
type ProfileImagePayload struct {
	UserID string
	Key    string
	OldKey string
}

// Task — единица работы. NotBefore в будущем откладывает выполнение.
type Task struct {
	Kind      Kind
	Payload   any
	NotBefore time.Time

	logger *slog.Logger
}

// Handler обрабатывает задачу одного типа.
type Handler func(ctx context.Context, t Task) error

var tasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "outbox_tasks_total",
	Help: "Outbox tasks by kind and result.",
}, []string{"kind", "result"})

// Queue — ограниченная очередь с пулом воркеров.
type Queue struct {
	tasks       chan Task
	workers     int
	taskTimeout time.Duration
	logger      *slog.Logger
	now         func() time.Time

	mu       sync.RWMutex
	handlers map[Kind]Handler
	timers   map[*time.Timer]struct{}
	stopped  bool
}

// New создаёт очередь. Нулевые значения конфига заменяются на 1 воркер и ёмкость 64.
func New(cfg config.OutboxConfig, taskTimeout time.Duration, logger *slog.Logger) *Queue {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = 64
	}

	if taskTimeout <= 0 {
		taskTimeout = 30 * time.Second
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Queue{
		tasks:       make(chan Task, capacity),
		workers:     workers,
		taskTimeout: taskTimeout,
		logger:      logger,
		now:         time.Now,
		handlers:    make(map[Kind]Handler),
		timers:      make(map[*time.Timer]struct{}),
	}
}

// Handle регистрирует обработчик типа задачи. Повторная регистрация заменяет прежний.
func (q *Queue) Handle(kind Kind, h Handler) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[kind] = h
}

// Enqueue ставит задачу в очередь и сообщает, принята ли она.
// Логгер запроса из ctx сохраняется в задаче.
func (q *Queue) Enqueue(ctx context.Context, t Task) bool {
	const op = "outbox.Enqueue"

	if lg, ok := log.Lookup(ctx); ok {
		t.logger = lg
	}

	if delay := t.NotBefore.Sub(q.now()); delay > 0 {
		q.mu.Lock()
		defer q.mu.Unlock()

		if q.stopped {
			q.drop(op, t, "queue_stopped")
			return false
		}

		var timer *time.Timer
		timer = time.AfterFunc(delay, func() {
			q.mu.Lock()
			delete(q.timers, timer)
			q.mu.Unlock()

			q.push(op, t)
		})
		q.timers[timer] = struct{}{}

		return true
	}

	return q.push(op, t)
}

func (q *Queue) push(op string, t Task) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.stopped {
		q.drop(op, t, "queue_stopped")
		return false
	}

	select {
	case q.tasks <- t:
		return true
	default:
		q.drop(op, t, "queue_full")
		return false
	}
}

func (q *Queue) drop(op string, t Task, reason string) {
	tasksTotal.WithLabelValues(string(t.Kind), "dropped").Inc()

	t.log(q.logger).Warn("outbox_task_dropped",
		slog.String("op", op),
		slog.String("kind", string(t.Kind)),
		slog.String("reason", reason),
	)
}

func (t Task) log(fallback *slog.Logger) *slog.Logger {
	if t.logger != nil {
		return t.logger
	}

	return fallback
}

// Run запускает воркеров и блокируется до отмены ctx.
// После отмены новые задачи не принимаются, отложенные таймеры
// останавливаются, выполняющиеся обработчики дорабатывают.
func (q *Queue) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	for i := 0; i < q.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.work(ctx)
		}()
	}

	<-ctx.Done()

	q.mu.Lock()
	q.stopped = true
	for timer := range q.timers {
		timer.Stop()
	}
	pending := len(q.timers) + len(q.tasks)
	q.timers = make(map[*time.Timer]struct{})
	q.mu.Unlock()

	wg.Wait()

	if pending > 0 {
		q.logger.Warn("outbox_stopped_with_pending_tasks", slog.Int("pending", pending))
	}

	return nil
}

func (q *Queue) work(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-q.tasks:
			q.process(t)
		}
	}
}

// process выполняет одну задачу с собственным таймаутом, не связанным с Run.
func (q *Queue) process(t Task) {
	const op = "outbox.process"

	lg := t.log(q.logger)

	q.mu.RLock()
	h, ok := q.handlers[t.Kind]
	q.mu.RUnlock()

	if !ok {
		tasksTotal.WithLabelValues(string(t.Kind), "unhandled").Inc()
		lg.Error("outbox_handler_missing",
			slog.String("op", op),
			slog.String("kind", string(t.Kind)),
		)
		return
	}

	ctx, cancel := context.WithTimeout(log.Into(context.Background(), lg), q.taskTimeout)
	defer cancel()

	if err := q.safeCall(ctx, h, t); err != nil {
		tasksTotal.WithLabelValues(string(t.Kind), "failed").Inc()
		lg.Error("outbox_task_failed",
			slog.String("op", op),
			slog.String("kind", string(t.Kind)),
			slog.String("err", err.Error()),
		)
		return
	}

	tasksTotal.WithLabelValues(string(t.Kind), "done").Inc()
	lg.Debug("outbox_task_done", slog.String("op", op), slog.String("kind", string(t.Kind)))
}

func (q *Queue) safeCall(ctx context.Context, h Handler, t Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return h(ctx, t)
}
