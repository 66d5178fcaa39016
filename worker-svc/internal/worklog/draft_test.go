package worklog

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func testDraftStore(t *testing.T) *DraftStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewDraftStore(client)
}

func TestDraftStore_SaveAndLoad(t *testing.T) {
	store := testDraftStore(t)
	ctx := context.Background()

	saved := validEntry()
	assert.NoError(t, store.Save(ctx, "王大明", saved))

	loaded, err := store.Load(ctx, "王大明")
	assert.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Equal(t, saved, *loaded)
}

func TestDraftStore_LoadMissing(t *testing.T) {
	store := testDraftStore(t)

	loaded, err := store.Load(context.Background(), "無草稿的人")
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestDraftStore_DraftsArePerUser(t *testing.T) {
	store := testDraftStore(t)
	ctx := context.Background()

	entry := validEntry()
	assert.NoError(t, store.Save(ctx, "王大明", entry))

	loaded, err := store.Load(ctx, "李小華")
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestDraftStore_Clear(t *testing.T) {
	store := testDraftStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, "王大明", validEntry()))
	assert.NoError(t, store.Clear(ctx, "王大明"))

	loaded, err := store.Load(ctx, "王大明")
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}
