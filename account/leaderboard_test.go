package account_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unodesk/engine/account"
)

func seedResults(t *testing.T, store *account.FileStore) {
	t.Helper()
	// carol: 2 wins / 30 points, alice: 1 win / 50, bob: 1 win / 50.
	require.NoError(t, store.RecordResult("carol", true, 10))
	require.NoError(t, store.RecordResult("carol", true, 20))
	require.NoError(t, store.RecordResult("alice", true, 50))
	require.NoError(t, store.RecordResult("bob", true, 30))
	require.NoError(t, store.RecordResult("bob", false, 20))
}

func TestLeaderboardOrder(t *testing.T) {
	store, _ := newTestStore(t)
	seedResults(t, store)

	ranked := store.Leaderboard()
	require.Len(t, ranked, 3)

	// Wins first, then total score, then username for full ties.
	assert.Equal(t, "carol", ranked[0].Username)
	assert.Equal(t, "alice", ranked[1].Username)
	assert.Equal(t, "bob", ranked[2].Username)
}

func TestExportLeaderboard(t *testing.T) {
	store, _ := newTestStore(t)
	seedResults(t, store)

	var buffer bytes.Buffer
	require.NoError(t, store.ExportLeaderboard(&buffer))

	var entries []account.LeaderboardEntry
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &entries))
	require.Len(t, entries, 3)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "carol", entries[0].Username)
	assert.Equal(t, 2, entries[0].Wins)
	assert.Equal(t, 30, entries[0].TotalScore)
	assert.Equal(t, 3, entries[2].Rank)
}
