package vote_test

import (
	"testing"

	"github.com/SlpAus/game-night-vote-backend/internal/platform/database"
	"github.com/SlpAus/game-night-vote-backend/internal/testutil"
	"github.com/SlpAus/game-night-vote-backend/internal/user"
	"github.com/SlpAus/game-night-vote-backend/internal/vote"
	"github.com/SlpAus/game-night-vote-backend/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSubmission_EmptyNameRejected(t *testing.T) {
	testutil.SetupDB(t)

	_, err := vote.RecordSubmission("   ", map[int]vote.Choice{1: vote.ChoiceInterested})
	require.Error(t, err)
	assert.True(t, validation.IsError(err))

	// Nothing may reach the ledger on a rejected submission.
	var userCount, eventCount int64
	database.DB.Model(&user.User{}).Count(&userCount)
	database.DB.Model(&vote.VoteEvent{}).Count(&eventCount)
	assert.Zero(t, userCount)
	assert.Zero(t, eventCount)
}

func TestRecordSubmission_FirstSubmissionCreatesUserAtRevisionOne(t *testing.T) {
	testutil.SetupDB(t)

	revision, err := vote.RecordSubmission("alice", map[int]vote.Choice{
		1: vote.ChoiceInterested,
		2: vote.ChoiceMaybe,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, revision)

	u, err := user.FindByName(database.DB, "alice")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, 1, u.CurrentRevision)
	assert.False(t, u.LastSeenAt.IsZero())

	events, err := vote.LoadAllEvents(database.DB)
	require.NoError(t, err)
	require.Len(t, events, 2)
	// One submission shares a submission id and timestamp across all rows.
	assert.Equal(t, events[0].SubmissionID, events[1].SubmissionID)
	assert.NotEmpty(t, events[0].SubmissionID)
	assert.True(t, events[0].SubmittedAt.Equal(events[1].SubmittedAt))
}

func TestRecordSubmission_SequentialRevisions(t *testing.T) {
	testutil.SetupDB(t)

	const rounds = 3
	for i := 1; i <= rounds; i++ {
		revision, err := vote.RecordSubmission("bob", map[int]vote.Choice{1: vote.ChoiceInterested})
		require.NoError(t, err)
		assert.Equal(t, i, revision)
	}

	u, err := user.FindByName(database.DB, "bob")
	require.NoError(t, err)
	assert.Equal(t, rounds, u.CurrentRevision)

	// Exactly N distinct revision groups exist, and no prior event was touched.
	events, err := vote.LoadAllEvents(database.DB)
	require.NoError(t, err)
	require.Len(t, events, rounds)
	seen := make(map[int]bool)
	for _, e := range events {
		seen[e.Revision] = true
	}
	assert.Len(t, seen, rounds)
}

func TestRecordSubmission_NameIsCaseSensitiveAndTrimmed(t *testing.T) {
	testutil.SetupDB(t)

	_, err := vote.RecordSubmission("  Dana ", map[int]vote.Choice{1: vote.ChoiceMaybe})
	require.NoError(t, err)
	_, err = vote.RecordSubmission("dana", map[int]vote.Choice{1: vote.ChoiceMaybe})
	require.NoError(t, err)

	count, err := user.CountUsers(database.DB)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	trimmed, err := user.FindByName(database.DB, "Dana")
	require.NoError(t, err)
	require.NotNil(t, trimmed)
	assert.Equal(t, 1, trimmed.CurrentRevision)
}

func TestRecordSubmission_ReconcilesLegacyEventRevisions(t *testing.T) {
	testutil.SetupDB(t)

	_, err := vote.RecordSubmission("erin", map[int]vote.Choice{1: vote.ChoiceInterested})
	require.NoError(t, err)

	// Simulate a user record that lags behind its events.
	u, err := user.FindByName(database.DB, "erin")
	require.NoError(t, err)
	require.NoError(t, database.DB.Model(&vote.VoteEvent{}).
		Where("user_id = ?", u.ID).Update("revision", 6).Error)

	revision, err := vote.RecordSubmission("erin", map[int]vote.Choice{1: vote.ChoiceMaybe})
	require.NoError(t, err)
	assert.Equal(t, 7, revision)
}

func TestRecordSubmission_EmptyBallotStillAdvancesRevision(t *testing.T) {
	testutil.SetupDB(t)

	revision, err := vote.RecordSubmission("frank", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, revision)

	events, err := vote.LoadAllEvents(database.DB)
	require.NoError(t, err)
	assert.Empty(t, events)
}
