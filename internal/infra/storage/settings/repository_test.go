package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazilop/CarCleanTGApp2/internal/domain"
	"github.com/kazilop/CarCleanTGApp2/internal/infra/storage/kv"
)

func TestRepository_Get_MissingRecordGivesDefaults(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore())

	settings, err := repo.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestRepository_Get_CorruptRecordGivesDefaults(t *testing.T) {
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), storageKey, "{not json"))

	repo := NewRepository(store)

	settings, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestRepository_Get_PartialRecordMergedOverDefaults(t *testing.T) {
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), storageKey, `{"startHour": 8, "postsCount": 3}`))

	repo := NewRepository(store)

	settings, err := repo.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 8, settings.StartHour)
	assert.Equal(t, 3, settings.PostsCount)
	assert.Equal(t, domain.DefaultEndHour, settings.EndHour)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, settings.SlotDurationMinutes)
}

func TestRepository_SaveAndGet_RoundTrip(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore())
	ctx := context.Background()

	saved := domain.Settings{
		StartHour:           8,
		EndHour:             22,
		SlotDurationMinutes: 60,
		PostsCount:          3,
		AdditionalAdminIDs:  []int64{111, 222},
		BotToken:            "token",
		ChannelID:           "@channel",
	}
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestRepository_Save_SanitizesBrokenValues(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.Settings{
		StartHour:           -1,
		EndHour:             99,
		SlotDurationMinutes: 0,
		PostsCount:          0,
	}))

	loaded, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStartHour, loaded.StartHour)
	assert.Equal(t, domain.DefaultEndHour, loaded.EndHour)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, loaded.SlotDurationMinutes)
	assert.Equal(t, domain.MinPostsCount, loaded.PostsCount)
}

func TestRepository_Save_OverwritesWholesale(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.Settings{
		StartHour:           8,
		EndHour:             22,
		SlotDurationMinutes: 30,
		PostsCount:          2,
		AdditionalAdminIDs:  []int64{111},
	}))

	// Повторная запись без списка админов затирает его
	require.NoError(t, repo.Save(ctx, domain.Settings{
		StartHour:           10,
		EndHour:             20,
		SlotDurationMinutes: 30,
		PostsCount:          2,
	}))

	loaded, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, loaded.StartHour)
	assert.Empty(t, loaded.AdditionalAdminIDs)
}
