package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kudoswall/kudos-wall-backend/internal/infrastructure/memory"
)

func TestGetRecipientsExcludesCaller(t *testing.T) {
	roles := memory.NewRoleRepository()
	users := memory.NewUserRepository(roles)

	alice := seedUser(t, users, "Alice", "alice@example.com", 1)
	seedUser(t, users, "Bob", "bob@example.com", 2)
	seedUser(t, users, "Carol", "carol@example.com", 2)

	svc := NewUserService(users)
	got, err := svc.GetRecipients(context.Background(), alice.ID)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Bob", got[0].Name)
	assert.Equal(t, "Carol", got[1].Name)
	for _, r := range got {
		assert.NotEqual(t, alice.ID, r.ID)
		assert.NotEmpty(t, r.Email)
	}
}

func TestGetRecipientsEmptyRoster(t *testing.T) {
	users := memory.NewUserRepository(memory.NewRoleRepository())
	svc := NewUserService(users)

	got, err := svc.GetRecipients(context.Background(), "anyone")
	require.NoError(t, err)
	assert.Empty(t, got)
}
