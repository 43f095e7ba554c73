package adminuser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earg-org/earg-api/internal/db/dbtest"
)

func TestEnsureInitial(t *testing.T) {
	db := dbtest.Open(t)

	_, err := EnsureInitial(db, "", "secret")
	require.ErrorIs(t, err, ErrCredentialsEmpty)

	created, err := EnsureInitial(db, "admin", "changeme")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = EnsureInitial(db, "other", "changeme")
	require.NoError(t, err)
	assert.False(t, created, "only an empty table is seeded")

	u, err := GetByUsername(db, "admin")
	require.NoError(t, err)
	assert.True(t, u.Active)
	assert.NotEqual(t, "changeme", u.Password)
	assert.True(t, u.VerifyPassword("changeme"))
	assert.False(t, u.VerifyPassword("wrong"))

	_, err = GetByUsername(db, "other")
	require.ErrorIs(t, err, ErrUserNotFound)

	byID, err := GetByID(db, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", byID.Username)

	_, err = GetByID(db, 999)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestSetPassword(t *testing.T) {
	db := dbtest.Open(t)

	require.ErrorIs(t, SetPassword(db, "admin", ""), ErrCredentialsEmpty)

	require.NoError(t, SetPassword(db, "editor", "first"))
	require.NoError(t, SetPassword(db, "editor", "second"))

	u, err := GetByUsername(db, "editor")
	require.NoError(t, err)
	assert.True(t, u.VerifyPassword("second"))
	assert.False(t, u.VerifyPassword("first"))
}
