package sqlitekv_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-task-manager/internal/task/repository/sqlitekv"
)

func openBackend(t *testing.T) *sqlitekv.Backend {
	t.Helper()

	b, err := sqlitekv.Open(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b
}

func TestLoadEmptySlot(t *testing.T) {
	b := openBackend(t)

	payload, err := b.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	b := openBackend(t)

	want := []byte(`[{"id":"01A"}]`)
	require.NoError(t, b.Save(ctx, want))

	got, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveUpserts(t *testing.T) {
	ctx := context.Background()
	b := openBackend(t)

	require.NoError(t, b.Save(ctx, []byte(`first`)))
	require.NoError(t, b.Save(ctx, []byte(`second`)))

	got, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`second`), got)
}

func TestReopenKeepsPayload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.db")

	b, err := sqlitekv.Open(path)
	require.NoError(t, err)
	require.NoError(t, b.Save(ctx, []byte(`persisted`)))
	require.NoError(t, b.Close())

	reopened, err := sqlitekv.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`persisted`), got)
}
