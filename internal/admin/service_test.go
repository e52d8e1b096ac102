package admin_test

import (
	"testing"

	"github.com/SlpAus/game-night-vote-backend/internal/admin"
	"github.com/SlpAus/game-night-vote-backend/internal/game"
	"github.com/SlpAus/game-night-vote-backend/internal/platform/database"
	"github.com/SlpAus/game-night-vote-backend/internal/testutil"
	"github.com/SlpAus/game-night-vote-backend/internal/user"
	"github.com/SlpAus/game-night-vote-backend/internal/vote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, database.DB.Model(model).Count(&n).Error)
	return n
}

func TestResetAll_ClearsLedgerAndSubmissions(t *testing.T) {
	testutil.SetupDB(t)
	testutil.SetupCatalog(t)
	builtinCount := game.Count()

	_, err := game.AddGame("Project Zomboid", "https://example.com/pz", "$19.99", "32", "")
	require.NoError(t, err)
	_, err = vote.RecordSubmission("alice", map[int]vote.Choice{1: vote.ChoiceInterested})
	require.NoError(t, err)
	_, err = vote.RecordSubmission("bob", map[int]vote.Choice{2: vote.ChoiceMaybe})
	require.NoError(t, err)

	require.NoError(t, admin.ResetAll())

	assert.Equal(t, int64(0), countRows(t, &vote.VoteEvent{}))
	assert.Equal(t, int64(0), countRows(t, &user.User{}))
	assert.Equal(t, int64(0), countRows(t, &game.SubmittedGame{}))

	// 内置目录保留，玩家提交的条目消失
	assert.Equal(t, builtinCount, game.Count())
	_, ok := game.GetByID(builtinCount + 1)
	assert.False(t, ok)
}

func TestResetAll_LedgerRestartsFromRevisionOne(t *testing.T) {
	testutil.SetupDB(t)
	testutil.SetupCatalog(t)

	rev, err := vote.RecordSubmission("alice", map[int]vote.Choice{1: vote.ChoiceInterested})
	require.NoError(t, err)
	require.Equal(t, 1, rev)
	rev, err = vote.RecordSubmission("alice", map[int]vote.Choice{1: vote.ChoiceMaybe})
	require.NoError(t, err)
	require.Equal(t, 2, rev)

	require.NoError(t, admin.ResetAll())

	rev, err = vote.RecordSubmission("alice", map[int]vote.Choice{1: vote.ChoiceNotInterested})
	require.NoError(t, err)
	assert.Equal(t, 1, rev)
}

func TestResetAll_SubmittedGameIDsReused(t *testing.T) {
	testutil.SetupDB(t)
	testutil.SetupCatalog(t)
	builtinCount := game.Count()

	first, err := game.AddGame("First", "https://example.com/first", "", "", "")
	require.NoError(t, err)
	require.Equal(t, builtinCount+1, first.ID)

	require.NoError(t, admin.ResetAll())

	second, err := game.AddGame("Second", "https://example.com/second", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, builtinCount+1, second.ID)
}
