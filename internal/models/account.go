// models содержит доменные сущности сервиса.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role — роль аккаунта.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superAdmin"
)

// Valid сообщает, известна ли роль.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// Provider — источник учётной записи.
type Provider string

const (
	ProviderSystem Provider = "SYSTEM"
	ProviderGoogle Provider = "GOOGLE"
)

// Gender — пол пользователя.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Account — зарегистрированная учётная запись.
//
// Инварианты:
//   - Email уникален (уникальный индекс в хранилище);
//   - у аккаунта с ProviderSystem всегда есть Password (bcrypt-хэш);
//   - FreezedAt и RestoredAt взаимоисключающие: выставление одного снимает другой.
type Account struct {
	ID                  string     `bson:"_id" json:"id"`
	FirstName           string     `bson:"firstName" json:"firstName"`
	LastName            string     `bson:"lastName" json:"lastName"`
	Email               string     `bson:"email" json:"email"`
	Password            string     `bson:"password,omitempty" json:"-"`
	ConfirmEmailOTP     string     `bson:"confirmEmailOtp,omitempty" json:"-"`
	ResetPasswordOTP    string     `bson:"resetPasswordOtp,omitempty" json:"-"`
	ConfirmedAt         *time.Time `bson:"confirmedAt,omitempty" json:"confirmedAt,omitempty"`
	ChangeCredentialsAt *time.Time `bson:"changeCredentialsAt,omitempty" json:"-"`
	Phone               string     `bson:"phone,omitempty" json:"phone,omitempty"`
	Address             string     `bson:"address,omitempty" json:"address,omitempty"`
	ProfileImage        string     `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	TempProfileImage    string     `bson:"tempProfileImage,omitempty" json:"-"`
	CoverImages         []string   `bson:"coverImages,omitempty" json:"coverImages,omitempty"`
	Gender              Gender     `bson:"gender" json:"gender"`
	Role                Role       `bson:"role" json:"role"`
	Provider            Provider   `bson:"provider" json:"provider"`
	Friends             []string   `bson:"friends,omitempty" json:"-"`
	FreezedAt           *time.Time `bson:"freezedAt,omitempty" json:"freezedAt,omitempty"`
	FreezedBy           string     `bson:"freezedBy,omitempty" json:"-"`
	RestoredAt          *time.Time `bson:"restoredAt,omitempty" json:"restoredAt,omitempty"`
	RestoredBy          string     `bson:"restoredBy,omitempty" json:"-"`
	CreatedAt           time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// NewAccountParams — входные данные для конструктора аккаунта.
type NewAccountParams struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Gender    Gender
	Provider  Provider
	// PasswordHash обязателен для ProviderSystem.
	PasswordHash string
	// ProfileImage — внешний URL аватара (Google).
	ProfileImage string
}

// NewAccount собирает новый аккаунт с нормализованным email и ролью user.
// Аккаунты внешних провайдеров создаются уже подтверждёнными.
func NewAccount(p NewAccountParams, now time.Time) *Account {
	now = now.UTC().Truncate(time.Millisecond)

	gender := p.Gender
	if gender == "" {
		gender = GenderMale
	}

	provider := p.Provider
	if provider == "" {
		provider = ProviderSystem
	}

	a := &Account{
		ID:           uuid.NewString(),
		FirstName:    strings.TrimSpace(p.FirstName),
		LastName:     strings.TrimSpace(p.LastName),
		Email:        NormalizeEmail(p.Email),
		Password:     p.PasswordHash,
		Phone:        strings.TrimSpace(p.Phone),
		ProfileImage: p.ProfileImage,
		Gender:       gender,
		Role:         RoleUser,
		Provider:     provider,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if provider != ProviderSystem {
		a.ConfirmedAt = &now
	}

	return a
}

// NormalizeEmail приводит email к каноническому виду (trim + lower).
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Username — отображаемое имя.
func (a *Account) Username() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// Confirmed сообщает, подтверждён ли email.
func (a *Account) Confirmed() bool { return a.ConfirmedAt != nil }

// Frozen сообщает, заморожен ли аккаунт.
func (a *Account) Frozen() bool { return a.FreezedAt != nil }

// Federated — аккаунт внешнего провайдера (без пароля).
func (a *Account) Federated() bool { return a.Provider != ProviderSystem }

// HasFriend проверяет, есть ли id в списке друзей.
func (a *Account) HasFriend(id string) bool {
	for _, f := range a.Friends {
		if f == id {
			return true
		}
	}

	return false
}

// Friend — краткая карточка друга в профиле.
type Friend struct {
	ID           string `bson:"_id" json:"id"`
	FirstName    string `bson:"firstName" json:"firstName"`
	LastName     string `bson:"lastName" json:"lastName"`
	Email        string `bson:"email" json:"email"`
	Gender       Gender `bson:"gender" json:"gender"`
	ProfileImage string `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
}

// Profile — профиль аккаунта с раскрытым списком друзей.
type Profile struct {
	*Account
	DisplayName string   `json:"username"`
	Friends     []Friend `json:"friends"`
}
