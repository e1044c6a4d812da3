package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/social-network/internal/models"
	"github.com/pribylovaa/social-network/internal/outbox"
	"github.com/pribylovaa/social-network/internal/storage"
)

func TestProfile(t *testing.T) {
	s, d := newServiceWithMocks(t)

	acc := mustAccount(t, d, "u1", models.RoleUser)
	acc.Friends = []string{"u2"}

	d.st.EXPECT().FriendsOf(gomock.Any(), []string{"u2"}).Return([]models.Friend{{ID: "u2", FirstName: "Bo"}}, nil)

	p, err := s.Profile(bg(), acc)
	require.NoError(t, err)
	require.Equal(t, "Ann Lee", p.DisplayName)
	require.Len(t, p.Friends, 1)
}

func TestPublicProfile(t *testing.T) {
	s, d := newServiceWithMocks(t)

	d.st.EXPECT().AccountByID(gomock.Any(), "none").Return(nil, storage.ErrNotFound)
	_, err := s.PublicProfile(bg(), "none")
	require.ErrorIs(t, err, ErrProfileNotFound)

	frozen := mustAccount(t, d, "u2", models.RoleUser)
	frozen.FreezedAt = &testNow
	d.st.EXPECT().AccountByID(gomock.Any(), "u2").Return(frozen, nil)
	_, err = s.PublicProfile(bg(), "u2")
	require.ErrorIs(t, err, ErrProfileNotFound)

	d.st.EXPECT().AccountByID(gomock.Any(), "u3").Return(mustAccount(t, d, "u3", models.RoleUser), nil)
	d.st.EXPECT().FriendsOf(gomock.Any(), gomock.Any()).Return(nil, nil)
	p, err := s.PublicProfile(bg(), "u3")
	require.NoError(t, err)
	require.Equal(t, "u3", p.ID)
}

func TestFreeze(t *testing.T) {
	s, d := newServiceWithMocks(t)

	user := mustAccount(t, d, "u1", models.RoleUser)
	admin := mustAccount(t, d, "a1", models.RoleAdmin)

	t.Run("self", func(t *testing.T) {
		d.st.EXPECT().Freeze(gomock.Any(), "u1", "u1", testNow).Return(nil)
		require.NoError(t, s.Freeze(bg(), user, ""))
	})

	t.Run("user_cannot_freeze_others", func(t *testing.T) {
		require.ErrorIs(t, s.Freeze(bg(), user, "u2"), ErrNotAuthorizedAccount)
	})

	t.Run("admin_freezes_other", func(t *testing.T) {
		d.st.EXPECT().Freeze(gomock.Any(), "u2", "a1", testNow).Return(nil)
		require.NoError(t, s.Freeze(bg(), admin, "u2"))
	})

	t.Run("already_frozen", func(t *testing.T) {
		d.st.EXPECT().Freeze(gomock.Any(), "u2", "a1", testNow).Return(storage.ErrNotFound)
		require.ErrorIs(t, s.Freeze(bg(), admin, "u2"), ErrAlreadyFrozen)
	})
}

// Восстановить аккаунт нельзя, если его заморозил владелец или сам actor.
func TestRestore_ExcludesOwnerAndActor(t *testing.T) {
	s, d := newServiceWithMocks(t)

	admin := mustAccount(t, d, "a1", models.RoleAdmin)

	d.st.EXPECT().Restore(gomock.Any(), "u2", "a1", []string{"a1", "u2"}, testNow).Return(nil)
	require.NoError(t, s.Restore(bg(), admin, "u2"))

	d.st.EXPECT().Restore(gomock.Any(), "u3", "a1", []string{"a1", "u3"}, testNow).Return(storage.ErrNotFound)
	require.ErrorIs(t, s.Restore(bg(), admin, "u3"), ErrFrozenByOwner)
}

func TestHardDelete(t *testing.T) {
	s, d := newServiceWithMocks(t)

	d.st.EXPECT().DeleteFrozen(gomock.Any(), "u1").Return(storage.ErrNotFound)
	require.ErrorIs(t, s.HardDelete(bg(), "u1"), ErrNotFrozen)

	gomock.InOrder(
		d.st.EXPECT().DeleteFrozen(gomock.Any(), "u2").Return(nil),
		d.obj.EXPECT().DeletePrefix(gomock.Any(), "users/u2").Return(nil),
	)
	require.NoError(t, s.HardDelete(bg(), "u2"))
}

func TestChangeRole(t *testing.T) {
	s, d := newServiceWithMocks(t)

	admin := mustAccount(t, d, "a1", models.RoleAdmin)
	super := mustAccount(t, d, "s1", models.RoleSuperAdmin)

	t.Run("invalid_role", func(t *testing.T) {
		require.ErrorIs(t, s.ChangeRole(bg(), super, "u1", "root"), ErrInvalidRole)
	})

	t.Run("admin_cannot_touch_admins", func(t *testing.T) {
		d.st.EXPECT().ChangeRole(gomock.Any(), "u1", models.RoleUser,
			[]models.Role{models.RoleUser, models.RoleSuperAdmin, models.RoleAdmin}).Return(storage.ErrNotFound)
		require.ErrorIs(t, s.ChangeRole(bg(), admin, "u1", models.RoleUser), ErrUserNotFound)
	})

	t.Run("super_admin", func(t *testing.T) {
		d.st.EXPECT().ChangeRole(gomock.Any(), "u1", models.RoleAdmin,
			[]models.Role{models.RoleAdmin, models.RoleSuperAdmin}).Return(nil)
		require.NoError(t, s.ChangeRole(bg(), super, "u1", models.RoleAdmin))
	})
}

func TestProfileImageUpload(t *testing.T) {
	s, d := newServiceWithMocks(t)

	acc := mustAccount(t, d, "u1", models.RoleUser)
	acc.ProfileImage = "social/users/u1/old.png"

	up := &storage.PresignedUpload{URL: "http://minio/put", Key: "social/users/u1/new.png"}
	d.obj.EXPECT().PresignUpload(gomock.Any(), "users/u1", "a.png", "image/png").Return(up, nil)
	d.st.EXPECT().SetProfileImage(gomock.Any(), "u1", up.Key, "social/users/u1/old.png").Return(nil)
	d.tasks.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, task outbox.Task) bool {
		require.Equal(t, outbox.KindTrackProfileImage, task.Kind)
		require.Equal(t, testNow.Add(testGrace), task.NotBefore)
		require.Equal(t, outbox.ProfileImagePayload{UserID: "u1", Key: up.Key, OldKey: acc.ProfileImage}, task.Payload)
		return true
	})

	got, err := s.ProfileImageUpload(bg(), acc, "image/png", "a.png")
	require.NoError(t, err)
	require.Equal(t, up, got)
}

func TestTrackProfileImage(t *testing.T) {
	s, d := newServiceWithMocks(t)

	p := outbox.ProfileImagePayload{UserID: "u1", Key: "k-new", OldKey: "k-old"}

	t.Run("uploaded", func(t *testing.T) {
		d.obj.EXPECT().Exists(gomock.Any(), "k-new").Return(true, nil)
		d.st.EXPECT().CommitProfileImage(gomock.Any(), "u1", "k-new").Return(nil)
		d.obj.EXPECT().Delete(gomock.Any(), "k-old").Return(nil)
		require.NoError(t, s.TrackProfileImage(bg(), p))
	})

	t.Run("missing_rolls_back", func(t *testing.T) {
		d.obj.EXPECT().Exists(gomock.Any(), "k-new").Return(false, nil)
		d.st.EXPECT().RollbackProfileImage(gomock.Any(), "u1", "k-new", "k-old").Return(nil)
		require.NoError(t, s.TrackProfileImage(bg(), p))
	})

	t.Run("replaced_meanwhile", func(t *testing.T) {
		d.obj.EXPECT().Exists(gomock.Any(), "k-new").Return(false, nil)
		d.st.EXPECT().RollbackProfileImage(gomock.Any(), "u1", "k-new", "k-old").Return(storage.ErrNotFound)
		require.NoError(t, s.TrackProfileImage(bg(), p))
	})

	t.Run("external_old_kept", func(t *testing.T) {
		ext := outbox.ProfileImagePayload{UserID: "u1", Key: "k-new", OldKey: "https://lh3.googleusercontent.com/a/pic"}
		d.obj.EXPECT().Exists(gomock.Any(), "k-new").Return(true, nil)
		d.st.EXPECT().CommitProfileImage(gomock.Any(), "u1", "k-new").Return(nil)
		require.NoError(t, s.TrackProfileImage(bg(), ext))
	})

	t.Run("exists_error", func(t *testing.T) {
		d.obj.EXPECT().Exists(gomock.Any(), "k-new").Return(false, errors.New("s3 down"))
		require.ErrorContains(t, s.TrackProfileImage(bg(), p), "s3 down")
	})
}

func upload(name string) storage.Upload {
	return storage.Upload{Name: name, ContentType: "image/png", Size: 3, Body: strings.NewReader("png")}
}

func TestCoverImages(t *testing.T) {
	s, d := newServiceWithMocks(t)

	acc := mustAccount(t, d, "u1", models.RoleUser)
	acc.CoverImages = []string{"c-old"}

	t.Run("too_many", func(t *testing.T) {
		_, err := s.CoverImages(bg(), acc, []storage.Upload{upload("a"), upload("b"), upload("c")})
		require.ErrorIs(t, err, ErrTooManyFiles)
	})

	t.Run("ok_replaces_previous", func(t *testing.T) {
		d.obj.EXPECT().UploadMany(gomock.Any(), "users/u1/cover", gomock.Len(2)).Return([]string{"c1", "c2"}, nil)
		d.st.EXPECT().SetCoverImages(gomock.Any(), "u1", []string{"c1", "c2"}).Return(nil)
		d.obj.EXPECT().Delete(gomock.Any(), "c-old").Return(nil)

		keys, err := s.CoverImages(bg(), acc, []storage.Upload{upload("a"), upload("b")})
		require.NoError(t, err)
		require.Equal(t, []string{"c1", "c2"}, keys)
	})

	t.Run("store_fails_cleans_new", func(t *testing.T) {
		d.obj.EXPECT().UploadMany(gomock.Any(), "users/u1/cover", gomock.Len(1)).Return([]string{"c3"}, nil)
		d.st.EXPECT().SetCoverImages(gomock.Any(), "u1", []string{"c3"}).Return(errors.New("mongo down"))
		d.obj.EXPECT().Delete(gomock.Any(), "c3").Return(nil)

		_, err := s.CoverImages(bg(), acc, []storage.Upload{upload("a")})
		require.ErrorContains(t, err, "mongo down")
	})
}

func TestAssetURL(t *testing.T) {
	s, d := newServiceWithMocks(t)

	d.obj.EXPECT().PresignDownload(gomock.Any(), "missing").Return("", storage.ErrNotFound)
	_, err := s.AssetURL(bg(), "missing")
	require.ErrorIs(t, err, ErrInvalidAssetKey)

	d.obj.EXPECT().PresignDownload(gomock.Any(), "k").Return("http://minio/get", nil)
	url, err := s.AssetURL(bg(), "k")
	require.NoError(t, err)
	require.Equal(t, "http://minio/get", url)
}
