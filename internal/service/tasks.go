package service

import (
	"context"
	"fmt"

	"github.com/pribylovaa/social-network/internal/mail"
	"github.com/pribylovaa/social-network/internal/outbox"
)

// TaskRegistry — регистрация обработчиков фоновых задач.
type TaskRegistry interface {
	Handle(kind outbox.Kind, h outbox.Handler)
}

// RegisterTasks подключает обработчики писем и сверки аватара.
func (s *Service) RegisterTasks(r TaskRegistry) {
	r.Handle(outbox.KindConfirmEmail, s.emailTask(mail.SubjectConfirmEmail))
	r.Handle(outbox.KindResetPassword, s.emailTask(mail.SubjectResetPassword))
	r.Handle(outbox.KindTrackProfileImage, s.trackProfileImageTask)
}

func (s *Service) emailTask(subject string) outbox.Handler {
	return func(ctx context.Context, t outbox.Task) error {
		const op = "service.tasks.email"

		p, ok := t.Payload.(outbox.EmailPayload)
		if !ok {
			return fmt.Errorf("%s: unexpected payload %T", op, t.Payload)
		}

		html, err := s.mailer.RenderOTP(subject, p.Name, p.OTP)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if err := s.mailer.Send(ctx, p.To, subject, html); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		return nil
	}
}

func (s *Service) trackProfileImageTask(ctx context.Context, t outbox.Task) error {
	p, ok := t.Payload.(outbox.ProfileImagePayload)
	if !ok {
		return fmt.Errorf("service.tasks.trackProfileImage: unexpected payload %T", t.Payload)
	}

	return s.TrackProfileImage(ctx, p)
}
