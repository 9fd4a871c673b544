package sqlite

import (
	"testing"

	"SmartMedia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertUser(t *testing.T) {
	setupTestDB(t)

	user := &models.User{Username: "alice", Password: "secret"}
	require.NoError(t, InsertUser(user))
	require.NotZero(t, user.ID)

	// 用户名唯一
	dup := &models.User{Username: "alice", Password: "other"}
	err := InsertUser(dup)
	require.Error(t, err)
	assert.Equal(t, ErrorUserExit, err.Error())
}

func TestGetUserByName(t *testing.T) {
	setupTestDB(t)

	user := &models.User{Username: "bob", Password: "secret"}
	require.NoError(t, InsertUser(user))

	got, err := GetUserByName("bob")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "secret", got.Password)

	_, err = GetUserByName("nobody")
	require.Error(t, err)
	assert.Equal(t, ErrorUserNotExit, err.Error())
}
