package handlers

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/service"
)

var (
	otpRe   = regexp.MustCompile(`^[0-9]{6}$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

	imageTypes = []any{"image/jpeg", "image/png", "image/gif"}
)

// strongPassword — не короче 8 символов, есть цифра, строчная и заглавная буквы.
func strongPassword(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	var digit, lower, upper bool
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		}
	}

	if len([]rune(s)) < 8 || !digit || !lower || !upper {
		return errors.New("must be at least 8 characters with a digit, a lowercase and an uppercase letter")
	}

	return nil
}

func equals(other string) validation.RuleFunc {
	return func(value any) error {
		if s, _ := value.(string); s != other {
			return errors.New("password and confirm password do not match")
		}
		return nil
	}
}

type signupRequest struct {
	FirstName       string        `json:"firstName"`
	LastName        string        `json:"lastName"`
	Email           string        `json:"email"`
	Password        string        `json:"password"`
	ConfirmPassword string        `json:"confirmPassword"`
	Phone           string        `json:"phone"`
	Gender          models.Gender `json:"gender"`
}

func (r signupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.RuneLength(2, 20)),
		validation.Field(&r.LastName, validation.Required, validation.RuneLength(2, 20)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.By(strongPassword)),
		validation.Field(&r.ConfirmPassword, validation.Required, validation.By(equals(r.Password))),
		validation.Field(&r.Phone, validation.Match(phoneRe)),
		validation.Field(&r.Gender, validation.In(models.GenderMale, models.GenderFemale)),
	)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type emailRequest struct {
	Email string `json:"email"`
}

func (r emailRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

type otpRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (r otpRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.OTP, validation.Required, validation.Match(otpRe).Error("invalid otp format")),
	)
}

type resetPasswordRequest struct {
	Email           string `json:"email"`
	OTP             string `json:"otp"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r resetPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.OTP, validation.Required, validation.Match(otpRe).Error("invalid otp format")),
		validation.Field(&r.Password, validation.Required, validation.By(strongPassword)),
		validation.Field(&r.ConfirmPassword, validation.Required, validation.By(equals(r.Password))),
	)
}

type idTokenRequest struct {
	IDToken string `json:"idToken"`
}

func (r idTokenRequest) Validate() error {
	return validation.ValidateStruct(&r, validation.Field(&r.IDToken, validation.Required))
}

type codeRequest struct {
	Code string `json:"code"`
}

func (r codeRequest) Validate() error {
	return validation.ValidateStruct(&r, validation.Field(&r.Code, validation.Required))
}

type logoutRequest struct {
	Flag service.LogoutFlag `json:"flag"`
}

func (r logoutRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Flag, validation.In(service.LogoutOnly, service.LogoutAll)),
	)
}

type changeRoleRequest struct {
	Role models.Role `json:"role"`
}

func (r changeRoleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Role, validation.Required,
			validation.In(models.RoleUser, models.RoleAdmin, models.RoleSuperAdmin)),
	)
}

type profileImageRequest struct {
	ContentType  string `json:"contentType"`
	OriginalName string `json:"originalName"`
}

func (r profileImageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ContentType, validation.Required, validation.In(imageTypes...)),
		validation.Field(&r.OriginalName, validation.Required, validation.RuneLength(1, 255)),
	)
}

// postForm — текстовые поля multipart-формы поста или комментария.
type postForm struct {
	Content       string
	Availability  models.Availability
	AllowComments models.AllowComments
	Tags          []string
	files         int
}

func (f postForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Content, validation.RuneLength(2, 500000), validation.By(contentOrFiles(f.files))),
		validation.Field(&f.Availability,
			validation.In(models.AvailabilityPublic, models.AvailabilityOnlyMe, models.AvailabilityFriends)),
		validation.Field(&f.AllowComments, validation.In(models.CommentsAllow, models.CommentsDeny)),
		validation.Field(&f.Tags, validation.Length(0, service.MaxTags), validation.By(uniqueIDs)),
	)
}

func contentOrFiles(files int) validation.RuleFunc {
	return func(value any) error {
		if s, _ := value.(string); strings.TrimSpace(s) == "" && files == 0 {
			return errors.New("either content or attachments must be provided")
		}
		return nil
	}
}

func uniqueIDs(value any) error {
	ids, _ := value.([]string)

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if err := is.UUID.Validate(id); err != nil {
			return errors.New("invalid tag id")
		}

		if _, dup := seen[id]; dup {
			return errors.New("duplicated tagged users")
		}
		seen[id] = struct{}{}
	}

	return nil
}
