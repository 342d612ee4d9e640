package repo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-user-api/internal/domain"
)

func TestDupKeyError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		dup  bool
		want error
	}{
		{
			"postgres username constraint",
			errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_username" (SQLSTATE 23505)`),
			true, domain.ErrUsernameExists,
		},
		{
			"postgres email constraint",
			errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`),
			true, domain.ErrEmailExists,
		},
		{
			"mysql email key",
			errors.New(`Error 1062 (23000): Duplicate entry 'a@b.com' for key 'users.idx_users_email'`),
			true, domain.ErrEmailExists,
		},
		{
			"translated gorm error",
			gorm.ErrDuplicatedKey,
			true, domain.ErrUsernameExists,
		},
		{
			"unrelated error",
			errors.New("connection refused"),
			false, nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dup, err := dupKeyError(tc.err)
			require.Equal(t, tc.dup, dup)
			if tc.dup {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}
