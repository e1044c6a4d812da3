package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	apierrors "github.com/pribylovaa/social-network/internal/errors"
	"github.com/pribylovaa/social-network/internal/http/handlers"
	"github.com/pribylovaa/social-network/internal/http/middleware"
	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
	// Debug добавляет стек в ответы с ошибкой (env local/dev).
	Debug          bool
	MaxUploadBytes int64
	// Limiter — лимит запросов на IP; nil отключает ограничение.
	Limiter *middleware.IPLimiter
	// Metrics — HTTP-метрики; nil отключает инструментирование.
	Metrics  *middleware.Metrics
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, dec middleware.Decoder, opts Options) http.Handler {
	errs := apierrors.Writer{Debug: opts.Debug}

	root := chi.NewRouter()

	// Внешний -> внутренний: RequestID до Logging, чтобы id попал в логгер.
	root.Use(
		chimw.RealIP,
		middleware.RequestID(),
		middleware.Logging(opts.Logger),
		middleware.Recover(errs),
	)
	if opts.Metrics != nil {
		root.Use(opts.Metrics.Instrument())
	}
	if opts.Limiter != nil {
		root.Use(middleware.RateLimit(opts.Limiter, errs))
	}
	root.Use(
		middleware.Timeout(opts.Timeout),
		middleware.MaxBodyBytes(opts.MaxUploadBytes),
	)

	root.NotFound(func(w http.ResponseWriter, r *http.Request) {
		errs.WriteError(w, r, apierrors.NotFound("invalid application routing"))
	})
	root.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		errs.WriteError(w, r, apierrors.NotFound("invalid application routing"))
	})

	h := handlers.New(svc, handlers.Options{Errors: errs, MaxUploadBytes: opts.MaxUploadBytes})

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, dec, errs)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, dec, errs)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, dec middleware.Decoder, errs apierrors.Writer) {
	access := middleware.Authenticate(dec, models.TokenAccess, errs)
	admins := middleware.Authorize(errs, models.RoleAdmin, models.RoleSuperAdmin)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/resend-confirm-email", h.ResendConfirmEmail)
		r.Patch("/confirm-email", h.ConfirmEmail)
		r.Post("/login", h.Login)
		r.Post("/signup/gmail", h.GoogleSignup)
		r.Post("/login/gmail", h.GoogleLogin)
		r.Post("/google/exchange", h.GoogleExchange)
		r.Patch("/send-forgot-password", h.SendForgotPassword)
		r.Patch("/verify-forgot-password", h.VerifyForgotPassword)
		r.Patch("/reset-forgot-password", h.ResetForgotPassword)
	})

	r.Route("/user", func(r chi.Router) {
		r.With(middleware.Authenticate(dec, models.TokenRefresh, errs)).Post("/refresh-token", h.RefreshToken)

		r.Group(func(r chi.Router) {
			r.Use(access)

			r.Get("/", h.Profile)
			r.Get("/asset", h.AssetURL)
			r.Post("/logout", h.Logout)
			r.Patch("/profile-image", h.ProfileImage)
			r.Patch("/cover-images", h.CoverImages)
			r.Delete("/freeze", h.Freeze)
			r.Patch("/friend-request/{requestId}/accept", h.AcceptFriendRequest)

			r.Get("/{userId}", h.PublicProfile)
			r.Delete("/{userId}/freeze", h.Freeze)
			r.Post("/{userId}/friend-request", h.SendFriendRequest)

			r.With(admins).Patch("/{userId}/restore", h.Restore)
			r.With(admins).Delete("/{userId}", h.HardDelete)
			r.With(admins).Patch("/{userId}/change-role", h.ChangeRole)
		})
	})

	r.Route("/post", func(r chi.Router) {
		r.Use(access)

		r.Post("/", h.CreatePost)
		r.Get("/", h.ListPosts)
		r.Patch("/{postId}/like", h.LikePost)
		r.Post("/{postId}/comment", h.CreateComment)
		r.Post("/{postId}/comment/{commentId}/reply", h.ReplyOnComment)
	})
}
