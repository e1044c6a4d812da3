package redact

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmail_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii_local_gt_2", "foobar@example.com", "fo***@example.com"},
		{"ascii_local_len_2", "ab@ex.com", "***@ex.com"},
		{"no_at", "no-at-here", "***"},
		{"multiple_at", "a@b@c", "***"},
		{"empty", "", "***"},
		{"unicode_local", "юзер@пример.рф", "юз***@пример.рф"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Email(tt.in))
		})
	}
}

func TestKey(t *testing.T) {
	t.Parallel()

	require.Equal(t, "app/users/42/***", Key("app/users/42/cover/uuid_a.png"))
	require.Equal(t, "***", Key("app/other/x.png"))
	require.Equal(t, "***", Key("users"))
}
