package account_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unodesk/engine/account"
	"github.com/unodesk/engine/consts"
)

func newTestStore(t *testing.T) (*account.FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.txt")
	store, err := account.NewFileStore(path)
	require.NoError(t, err)
	return store, path
}

func TestRegisterAndAuthenticate(t *testing.T) {
	store, _ := newTestStore(t)

	acct, err := store.Register("alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "alice", acct.Username)
	assert.True(t, account.IsHashed(acct.Password))

	authenticated, err := store.Authenticate("alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "alice", authenticated.Username)

	_, err = store.Authenticate("alice", "wrong")
	assert.Equal(t, consts.ErrWrongPassword, err)

	_, err = store.Authenticate("nobody", "hunter2")
	assert.Equal(t, consts.ErrUnknownUser, err)
}

func TestRegisterRejectsDuplicatesAndDelimiters(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Register("alice", "hunter2")
	require.NoError(t, err)

	_, err = store.Register("alice", "other")
	assert.Equal(t, consts.ErrUserExists, err)

	_, err = store.Register("a,b", "pw")
	assert.Error(t, err)
	_, err = store.Register("a:b", "pw")
	assert.Error(t, err)
}

func TestRecordsSurviveReopen(t *testing.T) {
	store, path := newTestStore(t)
	_, err := store.Register("alice", "hunter2")
	require.NoError(t, err)
	require.NoError(t, store.RecordResult("alice", true, 42))
	require.NoError(t, store.RecordResult("alice", false, 8))

	reopened, err := account.NewFileStore(path)
	require.NoError(t, err)

	acct, ok := reopened.Get("alice")
	require.True(t, ok)
	assert.Equal(t, 2, acct.GamesPlayed)
	assert.Equal(t, 1, acct.Wins)
	assert.Equal(t, 50, acct.TotalScore)

	// The hash survives the reload intact.
	_, err = reopened.Authenticate("alice", "hunter2")
	assert.NoError(t, err)
}

func TestRecordResultCreatesMissingAccount(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.RecordResult("drifter", true, 10))

	acct, ok := store.Get("drifter")
	require.True(t, ok)
	assert.Equal(t, 1, acct.GamesPlayed)
	assert.Equal(t, 1, acct.Wins)
	assert.Equal(t, 10, acct.TotalScore)
}

func TestLegacyPlaintextPasswordsStillAuthenticate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	require.NoError(t, os.WriteFile(path, []byte("alice,hunter2,3,1,60\n"), 0o644))

	store, err := account.NewFileStore(path)
	require.NoError(t, err)

	acct, err := store.Authenticate("alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, 3, acct.GamesPlayed)

	_, err = store.Authenticate("alice", "wrong")
	assert.Equal(t, consts.ErrWrongPassword, err)
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	content := strings.Join([]string{
		"alice,hunter2,3,1,60",
		"not a record",
		"bob,pw,zero,0,0",
		"carol,pw,1,0,5",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store, err := account.NewFileStore(path)
	require.NoError(t, err)

	_, ok := store.Get("alice")
	assert.True(t, ok)
	_, ok = store.Get("bob")
	assert.False(t, ok)
	_, ok = store.Get("carol")
	assert.True(t, ok)
}

func TestFlushWritesSortedAndLeavesNoTempFile(t *testing.T) {
	store, path := newTestStore(t)
	_, err := store.Register("mallory", "pw")
	require.NoError(t, err)
	_, err = store.Register("alice", "pw")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "alice,"))
	assert.True(t, strings.HasPrefix(lines[1], "mallory,"))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
