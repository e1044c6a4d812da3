package models

import "time"

// TokenKind — назначение токена.
type TokenKind string

const (
	TokenAccess  TokenKind = "access"
	TokenRefresh TokenKind = "refresh"
)

// SignatureLevel — уровень подписи, определяет пару секретов.
type SignatureLevel string

const (
	LevelBearer SignatureLevel = "Bearer"
	LevelSystem SignatureLevel = "System"
)

// LevelForRole возвращает уровень подписи для роли.
// Административные роли подписываются секретами System.
func LevelForRole(r Role) SignatureLevel {
	switch r {
	case RoleAdmin, RoleSuperAdmin:
		return LevelSystem
	default:
		return LevelBearer
	}
}

// TokenPair — пара токенов, выдаваемая при входе/обновлении.
// Оба токена несут один и тот же jti.
type TokenPair struct {
	AccessToken      string    `json:"access_token"`
	RefreshToken     string    `json:"refresh_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

// RevokedToken — запись журнала отзыва.
type RevokedToken struct {
	JTI       string    `bson:"jti"`
	AccountID string    `bson:"userId"`
	ExpiresAt time.Time `bson:"expiresAt"`
	CreatedAt time.Time `bson:"createdAt"`
}
