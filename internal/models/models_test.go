package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLevelForRole(t *testing.T) {
	require.Equal(t, LevelBearer, LevelForRole(RoleUser))
	require.Equal(t, LevelSystem, LevelForRole(RoleAdmin))
	require.Equal(t, LevelSystem, LevelForRole(RoleSuperAdmin))
	require.Equal(t, LevelBearer, LevelForRole("guest"))

	require.True(t, RoleSuperAdmin.Valid())
	require.False(t, Role("root").Valid())
}

func TestNewAccount(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	sys := NewAccount(NewAccountParams{FirstName: " Ann ", LastName: "Lee", Email: " Ann@X.com "}, now)
	require.NotEmpty(t, sys.ID)
	require.Equal(t, "ann@x.com", sys.Email)
	require.Equal(t, "Ann Lee", sys.Username())
	require.Equal(t, RoleUser, sys.Role)
	require.Equal(t, GenderMale, sys.Gender)
	require.False(t, sys.Federated())
	require.False(t, sys.Confirmed())
	require.False(t, sys.Frozen())

	g := NewAccount(NewAccountParams{Email: "g@x.com", Provider: ProviderGoogle}, now)
	require.True(t, g.Federated())
	require.True(t, g.Confirmed())
}

func TestPost_VisibleTo(t *testing.T) {
	author := &Account{ID: "a"}
	friend := &Account{ID: "f", Friends: []string{"a"}}
	stranger := &Account{ID: "s"}
	tagged := &Account{ID: "t"}

	post := func(av Availability, tags ...string) *Post {
		return &Post{CreatedBy: "a", Availability: av, Tags: tags}
	}

	tests := []struct {
		name   string
		post   *Post
		viewer *Account
		want   bool
	}{
		{"public_anonymous", post(AvailabilityPublic), nil, true},
		{"only_me_owner", post(AvailabilityOnlyMe), author, true},
		{"only_me_stranger", post(AvailabilityOnlyMe), stranger, false},
		{"only_me_anonymous", post(AvailabilityOnlyMe), nil, false},
		{"friends_friend", post(AvailabilityFriends), friend, true},
		{"friends_owner", post(AvailabilityFriends), author, true},
		{"friends_stranger", post(AvailabilityFriends), stranger, false},
		{"tagged_sees_private", post(AvailabilityOnlyMe, "t"), tagged, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.post.VisibleTo(tt.viewer))
		})
	}
}

func TestNewPost_Defaults(t *testing.T) {
	p := NewPost(NewPostParams{CreatedBy: "a", Content: "  hi  "}, time.Now())

	require.Equal(t, "hi", p.Content)
	require.Equal(t, AvailabilityPublic, p.Availability)
	require.Equal(t, CommentsAllow, p.AllowComments)
	require.Equal(t, time.UTC, p.CreatedAt.Location())
}
