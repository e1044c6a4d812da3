package service

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/social-network/internal/mail"
	"github.com/pribylovaa/social-network/internal/outbox"
)

type registry map[outbox.Kind]outbox.Handler

func (r registry) Handle(kind outbox.Kind, h outbox.Handler) { r[kind] = h }

func TestRegisterTasks(t *testing.T) {
	s, d := newServiceWithMocks(t)

	r := registry{}
	s.RegisterTasks(r)
	require.Len(t, r, 3)

	t.Run("confirm_email", func(t *testing.T) {
		d.mailer.EXPECT().RenderOTP(mail.SubjectConfirmEmail, "Ann Lee", "123456").Return("<p>123456</p>", nil)
		d.mailer.EXPECT().Send(gomock.Any(), "ann@x.com", mail.SubjectConfirmEmail, "<p>123456</p>").Return(nil)

		err := r[outbox.KindConfirmEmail](bg(), outbox.Task{
			Kind:    outbox.KindConfirmEmail,
			Payload: outbox.EmailPayload{To: "ann@x.com", Name: "Ann Lee", OTP: "123456"},
		})
		require.NoError(t, err)
	})

	t.Run("reset_password_send_fails", func(t *testing.T) {
		d.mailer.EXPECT().RenderOTP(mail.SubjectResetPassword, gomock.Any(), gomock.Any()).Return("<p/>", nil)
		d.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp: 421"))

		err := r[outbox.KindResetPassword](bg(), outbox.Task{Payload: outbox.EmailPayload{To: "ann@x.com"}})
		require.ErrorContains(t, err, "smtp: 421")
	})

	t.Run("wrong_payload", func(t *testing.T) {
		require.Error(t, r[outbox.KindConfirmEmail](bg(), outbox.Task{Payload: "oops"}))
		require.Error(t, r[outbox.KindTrackProfileImage](bg(), outbox.Task{Payload: outbox.EmailPayload{}}))
	})

	t.Run("track_profile_image", func(t *testing.T) {
		d.obj.EXPECT().Exists(gomock.Any(), "k").Return(false, nil)
		d.st.EXPECT().RollbackProfileImage(gomock.Any(), "u1", "k", "").Return(nil)

		err := r[outbox.KindTrackProfileImage](bg(), outbox.Task{
			Payload: outbox.ProfileImagePayload{UserID: "u1", Key: "k"},
		})
		require.NoError(t, err)
	})
}
