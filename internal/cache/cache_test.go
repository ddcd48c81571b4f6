package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

type siteName struct {
	Name string `json:"name"`
}

func TestAsideFetchesOnceThenServesFromCache(t *testing.T) {
	mr := useMiniredis(t)
	ctx := context.Background()
	calls := 0
	fetch := func(dest *siteName) func() error {
		return func() error {
			calls++
			dest.Name = "NHAF Nepal"
			return nil
		}
	}

	var first siteName
	require.NoError(t, Aside(ctx, SettingsKey(SettingsSite), &first, SettingsTTL, fetch(&first)))
	var second siteName
	require.NoError(t, Aside(ctx, SettingsKey(SettingsSite), &second, SettingsTTL, fetch(&second)))

	assert.Equal(t, 1, calls)
	assert.Equal(t, "NHAF Nepal", second.Name)
	assert.Equal(t, SettingsTTL, mr.TTL("settings:site"))

	InvalidateSettings(ctx, SettingsSite)
	assert.False(t, mr.Exists("settings:site"))
}

func TestAsidePropagatesFetchError(t *testing.T) {
	useMiniredis(t)
	var dest siteName
	err := Aside(context.Background(), "k", &dest, time.Minute, func() error { return errors.New("db down") })
	assert.EqualError(t, err, "db down")
}

func TestHelpersWithoutClient(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	found, err := GetJSON(ctx, "k", &siteName{})
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, SetJSON(ctx, "k", siteName{}, time.Minute))

	calls := 0
	require.NoError(t, Aside(ctx, "k", &siteName{}, time.Minute, func() error { calls++; return nil }))
	assert.Equal(t, 1, calls)
	Invalidate(ctx, "k")
}

func TestInvalidateDonationPageClearsFees(t *testing.T) {
	mr := useMiniredis(t)
	require.NoError(t, mr.Set(DonationPageKey, "{}"))
	require.NoError(t, mr.Set(MembershipFeesKey, "[]"))

	InvalidateDonationPage(context.Background())

	assert.False(t, mr.Exists(DonationPageKey))
	assert.False(t, mr.Exists(MembershipFeesKey))
}

func TestParseAddr(t *testing.T) {
	opts, err := parseAddr("localhost:6379")
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", opts.Addr)

	opts, err = parseAddr("redis://:secret@cache.internal:6380/2")
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)

	_, err = parseAddr("redis://cache.internal:6380/notadb")
	assert.Error(t, err)
}

func TestInitRedisUnreachableLeavesClientNil(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	assert.Nil(t, InitRedis(addr))
	assert.Nil(t, GetClient())
}

func TestKeyFamily(t *testing.T) {
	assert.Equal(t, "settings", keyFamily(SettingsKey(SettingsSite)))
	assert.Equal(t, "members", keyFamily(PublicDirectoryKey))
	assert.Equal(t, "plain", keyFamily("plain"))
}

func TestInvalidateContent(t *testing.T) {
	mr := useMiniredis(t)
	ctx := context.Background()
	for _, page := range []string{ContentHome, ContentGallery, ContentNav} {
		require.NoError(t, SetJSON(ctx, ContentKey(page), siteName{Name: page}, ContentTTL))
	}

	InvalidateContent(ctx, ContentHome, ContentGallery)
	assert.False(t, mr.Exists("content:home"))
	assert.False(t, mr.Exists("content:gallery"))
	assert.True(t, mr.Exists("content:nav"))

	InvalidateContent(ctx)
	assert.True(t, mr.Exists("content:nav"), "no pages is a no-op")
}
