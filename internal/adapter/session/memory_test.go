package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"taskcheck/internal/adapter/session"
	"taskcheck/internal/core/domain"
)

func TestMemoryStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	_, ok, err := store.Get(ctx, 1)
	require.NoError(t, err)
	require.False(t, ok)

	want := domain.WizardSession{Step: domain.StepAwaitingPoints, Name: "Report", Description: "Finish Q3 report"}
	require.NoError(t, store.Put(ctx, 1, want))

	got, ok, err := store.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)

	require.NoError(t, store.Delete(ctx, 1))
	_, ok, err = store.Get(ctx, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStore_UsersAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	require.NoError(t, store.Put(ctx, 1, domain.WizardSession{Step: domain.StepAwaitingName, Name: "mine"}))
	require.NoError(t, store.Put(ctx, 2, domain.WizardSession{Step: domain.StepAwaitingDeadline, Name: "yours"}))

	first, ok, err := store.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "mine", first.Name)

	require.NoError(t, store.Delete(ctx, 1))

	second, ok, err := store.Get(ctx, 2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "yours", second.Name)
}

func TestMemoryStore_DeleteMissingIsNoop(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Delete(context.Background(), 42))
}
