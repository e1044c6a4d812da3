// security содержит криптографическую часть сервиса: хэширование паролей
// и OTP, генерацию OTP, выпуск и проверку пар JWT.
package security

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// Hasher — bcrypt-хэширование с настраиваемой стоимостью.
// Пустые строки отсекаются валидацией на входе, сюда не доходят.
type Hasher struct {
	cost int
}

// NewHasher создаёт Hasher. Стоимость вне допустимого диапазона заменяется на bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &Hasher{cost: cost}
}

// Hash возвращает bcrypt-хэш строки.
func (h *Hasher) Hash(plain string) (string, error) {
	const op = "security.hasher.Hash"

	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(b), nil
}

// Verify сравнивает строку с хэшем. Любая ошибка трактуется как несовпадение.
func (h *Hasher) Verify(plain, digest string) bool {
	if digest == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

// OTPLength — длина одноразового кода.
const OTPLength = 6

// GenerateOTP возвращает случайный шестизначный код (с ведущими нулями).
func GenerateOTP() (string, error) {
	const op = "security.GenerateOTP"

	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Sprintf("%0*d", OTPLength, n.Int64()), nil
}
