package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/outbox"
	"github.com/pribylovaa/social-network/internal/pkg/log"
	"github.com/pribylovaa/social-network/internal/pkg/redact"
	"github.com/pribylovaa/social-network/internal/storage"
)

// MaxCoverImages — предел числа обложек профиля.
const MaxCoverImages = 2

// Profile возвращает профиль аккаунта с раскрытым списком друзей.
func (s *Service) Profile(ctx context.Context, acc *models.Account) (*models.Profile, error) {
	const op = "service.users.Profile"

	friends, err := s.storage.FriendsOf(ctx, acc.Friends)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.Profile{Account: acc, DisplayName: acc.Username(), Friends: friends}, nil
}

// PublicProfile возвращает профиль другого незамороженного аккаунта.
func (s *Service) PublicProfile(ctx context.Context, userID string) (*models.Profile, error) {
	const op = "service.users.PublicProfile"

	acc, err := s.storage.AccountByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrProfileNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if acc.Frozen() {
		return nil, fmt.Errorf("%s: %w", op, ErrProfileNotFound)
	}

	p, err := s.Profile(ctx, acc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// ProfileImageUpload выдаёт presigned PUT для нового аватара, сразу записывает
// ключ в профиль (предыдущий — во временное поле) и откладывает сверку загрузки.
func (s *Service) ProfileImageUpload(ctx context.Context, acc *models.Account, contentType, originalName string) (*storage.PresignedUpload, error) {
	const op = "service.users.ProfileImageUpload"

	up, err := s.objects.PresignUpload(ctx, userPath(acc.ID), originalName, contentType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.SetProfileImage(ctx, acc.ID, up.Key, acc.ProfileImage); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.tasks.Enqueue(ctx, outbox.Task{
		Kind: outbox.KindTrackProfileImage,
		Payload: outbox.ProfileImagePayload{
			UserID: acc.ID,
			Key:    up.Key,
			OldKey: acc.ProfileImage,
		},
		NotBefore: s.now().Add(s.profileImageGrace),
	})

	return up, nil
}

// TrackProfileImage сверяет загрузку аватара после отсрочки:
//   - объект загружен — временное поле снимается, старый объект удаляется;
//   - объекта нет — в профиль возвращается старый ключ.
//
// Условные обновления не трогают профиль, если аватар с тех пор сменили.
func (s *Service) TrackProfileImage(ctx context.Context, p outbox.ProfileImagePayload) error {
	const op = "service.users.TrackProfileImage"

	lg := log.From(ctx).With(slog.String("op", op), slog.String("user_id", p.UserID))

	ok, err := s.objects.Exists(ctx, p.Key)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !ok {
		if err := s.storage.RollbackProfileImage(ctx, p.UserID, p.Key, p.OldKey); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, err)
		}

		lg.Info("profile_image_rolled_back", slog.String("key", redact.Key(p.Key)))
		return nil
	}

	if err := s.storage.CommitProfileImage(ctx, p.UserID, p.Key); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if p.OldKey != "" && p.OldKey != p.Key && !isExternalURL(p.OldKey) {
		if err := s.objects.Delete(ctx, p.OldKey); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	lg.Info("profile_image_committed", slog.String("key", redact.Key(p.Key)))
	return nil
}

// CoverImages загружает обложки, сохраняет ключи и удаляет предыдущие объекты.
func (s *Service) CoverImages(ctx context.Context, acc *models.Account, files []storage.Upload) ([]string, error) {
	const op = "service.users.CoverImages"

	if len(files) == 0 || len(files) > MaxCoverImages {
		return nil, fmt.Errorf("%s: %w", op, ErrTooManyFiles)
	}

	keys, err := s.objects.UploadMany(ctx, userPath(acc.ID)+"/cover", files)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.SetCoverImages(ctx, acc.ID, keys); err != nil {
		s.cleanup(ctx, op, keys)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cleanup(ctx, op, acc.CoverImages)

	return keys, nil
}

// Freeze замораживает аккаунт userID (пустой — собственный аккаунт actor).
// Замораживать чужие аккаунты могут только admin и superAdmin.
func (s *Service) Freeze(ctx context.Context, actor *models.Account, userID string) error {
	const op = "service.users.Freeze"

	target := userID
	if target == "" {
		target = actor.ID
	}

	if target != actor.ID && !isAdmin(actor.Role) {
		return fmt.Errorf("%s: %w", op, ErrNotAuthorizedAccount)
	}

	if err := s.storage.Freeze(ctx, target, actor.ID, s.now()); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrAlreadyFrozen)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Restore размораживает аккаунт. Аккаунт, замороженный владельцем или самим
// actor, восстановить нельзя.
func (s *Service) Restore(ctx context.Context, actor *models.Account, userID string) error {
	const op = "service.users.Restore"

	exclude := []string{actor.ID, userID}
	if err := s.storage.Restore(ctx, userID, actor.ID, exclude, s.now()); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrFrozenByOwner)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// HardDelete удаляет замороженный аккаунт и все его объекты.
func (s *Service) HardDelete(ctx context.Context, userID string) error {
	const op = "service.users.HardDelete"

	if err := s.storage.DeleteFrozen(ctx, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFrozen)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.objects.DeletePrefix(ctx, userPath(userID)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ChangeRole меняет роль аккаунта. Нельзя назначить текущую роль и трогать
// superAdmin; admin к тому же не может менять роль другим admin.
func (s *Service) ChangeRole(ctx context.Context, actor *models.Account, userID string, role models.Role) error {
	const op = "service.users.ChangeRole"

	if !role.Valid() {
		return fmt.Errorf("%s: %w", op, ErrInvalidRole)
	}

	deny := []models.Role{role, models.RoleSuperAdmin}
	if actor.Role == models.RoleAdmin {
		deny = append(deny, models.RoleAdmin)
	}

	if err := s.storage.ChangeRole(ctx, userID, role, deny); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AssetURL возвращает presigned GET для объекта сервиса.
func (s *Service) AssetURL(ctx context.Context, key string) (string, error) {
	const op = "service.users.AssetURL"

	url, err := s.objects.PresignDownload(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", fmt.Errorf("%s: %w", op, ErrInvalidAssetKey)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	return url, nil
}

// cleanup удаляет объекты, оставшиеся без ссылок. Ошибка только логируется.
func (s *Service) cleanup(ctx context.Context, op string, keys []string) {
	keys = slices.DeleteFunc(slices.Clone(keys), isExternalURL)
	if len(keys) == 0 {
		return
	}

	if err := s.objects.Delete(ctx, keys...); err != nil {
		log.From(ctx).Warn("objects_cleanup_failed",
			slog.String("op", op),
			slog.Int("count", len(keys)),
			slog.String("err", err.Error()),
		)
	}
}

func isAdmin(r models.Role) bool {
	return r == models.RoleAdmin || r == models.RoleSuperAdmin
}

// isExternalURL — аватар внешнего провайдера (Google), а не ключ хранилища.
func isExternalURL(key string) bool {
	return strings.HasPrefix(key, "https://") || strings.HasPrefix(key, "http://")
}
