package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campuscache/campuscache/internal/handlers/testutil"
	"github.com/campuscache/campuscache/internal/services"
)

func TestLeaderboard(t *testing.T) {
	env := testutil.NewEnv(t)
	owner, _ := env.CreateUser("correct-horse")
	_, busyToken := env.CreateUser("correct-horse")
	_, casualToken := env.CreateUser("correct-horse")

	first := env.CreateCache(owner.ID, "First")
	second := env.CreateCache(owner.ID, "Second")

	for _, cacheID := range []uint{first.ID, second.ID} {
		w := env.Request(http.MethodPost, "/api/logs", map[string]any{"cache_id": cacheID}, busyToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}
	w := env.Request(http.MethodPost, "/api/logs", map[string]any{"cache_id": first.ID}, casualToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.Request(http.MethodGet, "/api/leaderboard", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := testutil.DecodeResponse(t, w)
	var entries []services.LeaderboardEntry
	testutil.DecodeInto(t, resp.Data, &entries)
	require.Len(t, entries, 3)
	require.EqualValues(t, 2, entries[0].Finds)
	require.EqualValues(t, 1, entries[1].Finds)
	require.EqualValues(t, 0, entries[2].Finds)
}

func TestLeaderboardReflectsCascadeDelete(t *testing.T) {
	env := testutil.NewEnv(t)
	owner, ownerToken := env.CreateUser("correct-horse")
	finder, finderToken := env.CreateUser("correct-horse")

	cache := env.CreateCache(owner.ID, "Doomed")

	w := env.Request(http.MethodPost, "/api/logs", map[string]any{"cache_id": cache.ID}, finderToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Deleting the cache deletes its logs, which the leaderboard reflects.
	w = env.Request(http.MethodDelete, withID("/api/caches/%d", cache.ID), nil, ownerToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.Request(http.MethodGet, "/api/leaderboard", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := testutil.DecodeResponse(t, w)
	var entries []services.LeaderboardEntry
	testutil.DecodeInto(t, resp.Data, &entries)
	for _, entry := range entries {
		if entry.Username == finder.Username {
			require.Zero(t, entry.Finds)
		}
	}
}
