package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/social-network/internal/errors"
	"github.com/pribylovaa/social-network/internal/service"
)

// Signup — POST /auth/signup.
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var in signupRequest
	if err := decodeStrict(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	if _, err := h.svc.Signup(r.Context(), service.SignupInput{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		Phone:     in.Phone,
		Gender:    in.Gender,
	}); err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusCreated, nil)
}

// ResendConfirmEmail — POST /auth/resend-confirm-email.
func (h *Handlers) ResendConfirmEmail(w http.ResponseWriter, r *http.Request) {
	var in emailRequest
	if err := decodeStrict(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.svc.ResendConfirmEmail(r.Context(), in.Email); err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusOK, nil)
}

// ConfirmEmail — PATCH /auth/confirm-email.
func (h *Handlers) ConfirmEmail(w http.ResponseWriter, r *http.Request) {
	var in otpRequest
	if err := decodeStrict(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.svc.ConfirmEmail(r.Context(), in.Email, in.OTP); err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusOK, nil)
}

// Login — POST /auth/login.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeStrict(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	pair, err := h.svc.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusOK, credentials{Credentials: pair})
}

// SendForgotPassword — PATCH /auth/send-forgot-password.
func (h *Handlers) SendForgotPassword(w http.ResponseWriter, r *http.Request) {
	var in emailRequest
	if err := decodeStrict(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.svc.SendForgotPassword(r.Context(), in.Email); err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusOK, nil)
}

// VerifyForgotPassword — PATCH /auth/verify-forgot-password.
func (h *Handlers) VerifyForgotPassword(w http.ResponseWriter, r *http.Request) {
	var in otpRequest
	if err := decodeStrict(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.svc.VerifyForgotPassword(r.Context(), in.Email, in.OTP); err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusOK, nil)
}

// ResetForgotPassword — PATCH /auth/reset-forgot-password.
func (h *Handlers) ResetForgotPassword(w http.ResponseWriter, r *http.Request) {
	var in resetPasswordRequest
	if err := decodeStrict(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.svc.ResetForgotPassword(r.Context(), in.Email, in.OTP, in.Password); err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusOK, nil)
}

// GoogleSignup — POST /auth/signup/gmail. 201 для нового аккаунта, 200 для входа.
func (h *Handlers) GoogleSignup(w http.ResponseWriter, r *http.Request) {
	var in idTokenRequest
	if err := decodeStrict(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.svc.GoogleSignup(r.Context(), in.IDToken)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeGoogleResult(w, res)
}

// GoogleLogin — POST /auth/login/gmail.
func (h *Handlers) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var in idTokenRequest
	if err := decodeStrict(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	pair, err := h.svc.GoogleLogin(r.Context(), in.IDToken)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	apierrors.WriteSuccess(w, http.StatusOK, credentials{Credentials: pair})
}

// GoogleExchange — POST /auth/google/exchange.
func (h *Handlers) GoogleExchange(w http.ResponseWriter, r *http.Request) {
	var in codeRequest
	if err := decodeStrict(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.svc.GoogleExchange(r.Context(), in.Code)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeGoogleResult(w, res)
}

func writeGoogleResult(w http.ResponseWriter, res service.GoogleResult) {
	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}

	apierrors.WriteSuccess(w, status, credentials{Credentials: res.Pair})
}
