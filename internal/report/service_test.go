package report_test

import (
	"testing"

	"github.com/SlpAus/game-night-vote-backend/internal/game"
	"github.com/SlpAus/game-night-vote-backend/internal/report"
	"github.com/SlpAus/game-night-vote-backend/internal/testutil"
	"github.com/SlpAus/game-night-vote-backend/internal/vote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Redis不可用时 GenerateResults 必须直接从存储计算。
func TestGenerateResults_WithoutRedis(t *testing.T) {
	testutil.SetupDB(t)
	testutil.SetupCatalog(t)

	_, err := vote.RecordSubmission("alice", map[int]vote.Choice{1: vote.ChoiceInterested, 2: vote.ChoiceMaybe})
	require.NoError(t, err)
	_, err = vote.RecordSubmission("bob", map[int]vote.Choice{1: vote.ChoiceInterested})
	require.NoError(t, err)

	result, err := report.GenerateResults()
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.TotalVoters)
	assert.Len(t, result.Results, game.Count())

	require.NotEmpty(t, result.TopInterested)
	assert.Equal(t, 1, result.TopInterested[0].GameID)
	assert.Equal(t, 2, result.TopInterested[0].Count)
}

// 重新提交后，结果只反映最新修订
func TestGenerateResults_ReflectsResubmission(t *testing.T) {
	testutil.SetupDB(t)
	testutil.SetupCatalog(t)

	_, err := vote.RecordSubmission("alice", map[int]vote.Choice{1: vote.ChoiceInterested})
	require.NoError(t, err)
	_, err = vote.RecordSubmission("alice", map[int]vote.Choice{1: vote.ChoiceNotInterested})
	require.NoError(t, err)

	result, err := report.GenerateResults()
	require.NoError(t, err)

	var tally *report.GameTally
	for i := range result.Results {
		if result.Results[i].GameID == 1 {
			tally = &result.Results[i]
			break
		}
	}
	require.NotNil(t, tally)
	assert.Equal(t, 0, tally.InterestedCount)
	assert.Equal(t, 1, tally.NotInterestedCount)
	assert.Equal(t, []string{"alice"}, tally.NotInterested)
}
