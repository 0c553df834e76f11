package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"project/backend/models"
)

func TestMemoryUserStore(t *testing.T) {
	store := NewMemoryUserStore()

	user := models.User{Username: "alice", Email: "a@x.com", PasswordHash: "hash"}
	assert.NoError(t, store.Create(&user))
	assert.NotZero(t, user.ID)

	found, err := store.FindByUsername("alice")
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", found.Email)

	_, err = store.FindByUsername("bob")
	assert.ErrorIs(t, err, ErrUserNotFound)

	dup := models.User{Username: "alice", Email: "other@x.com", PasswordHash: "hash"}
	assert.ErrorIs(t, store.Create(&dup), ErrDuplicateUser)
}

func TestMemoryUserStoreDuplicateEmail(t *testing.T) {
	store := NewMemoryUserStore()

	first := models.User{Username: "alice", Email: "a@x.com", PasswordHash: "hash"}
	assert.NoError(t, store.Create(&first))

	// Email is unique too: a different username with the same email is
	// rejected the same way the gorm store's unique column rejects it.
	dup := models.User{Username: "bob", Email: "a@x.com", PasswordHash: "hash"}
	assert.ErrorIs(t, store.Create(&dup), ErrDuplicateUser)
}
