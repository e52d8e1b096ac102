package report_test

import (
	"testing"
	"time"

	"github.com/SlpAus/game-night-vote-backend/internal/game"
	"github.com/SlpAus/game-night-vote-backend/internal/report"
	"github.com/SlpAus/game-night-vote-backend/internal/user"
	"github.com/SlpAus/game-night-vote-backend/internal/vote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func makeUser(id uint, name string, revision int) user.User {
	return user.User{Model: gorm.Model{ID: id}, Name: name, CurrentRevision: revision}
}

func catalogAB() []game.GameDescriptor {
	return []game.GameDescriptor{
		{ID: 1, Title: "A"},
		{ID: 2, Title: "B"},
	}
}

func tallyByID(t *testing.T, r report.ResultsReport, gameID int) report.GameTally {
	t.Helper()
	for _, tally := range r.Results {
		if tally.GameID == gameID {
			return tally
		}
	}
	t.Fatalf("no tally for game %d", gameID)
	return report.GameTally{}
}

func TestComputeResults_OnlyLatestRevisionCounts(t *testing.T) {
	// alice voted {A: interested, B: maybe} at revision 1,
	// then re-submitted only {A: maybe} at revision 2.
	users := []user.User{makeUser(1, "alice", 2)}
	events := []vote.VoteEvent{
		{UserID: 1, GameID: 1, Choice: vote.ChoiceInterested, Revision: 1},
		{UserID: 1, GameID: 2, Choice: vote.ChoiceMaybe, Revision: 1},
		{UserID: 1, GameID: 1, Choice: vote.ChoiceMaybe, Revision: 2},
	}

	result := report.ComputeResults(catalogAB(), users, events)

	a := tallyByID(t, result, 1)
	assert.Equal(t, 1, a.MaybeCount)
	assert.Equal(t, 0, a.InterestedCount)
	assert.Equal(t, []string{"alice"}, a.Maybe)

	b := tallyByID(t, result, 2)
	assert.Equal(t, 0, b.InterestedCount)
	assert.Equal(t, 0, b.MaybeCount)
	assert.Equal(t, 0, b.NotInterestedCount)

	assert.Equal(t, int64(1), result.TotalVoters)
}

func TestComputeResults_CountsAcrossUsers(t *testing.T) {
	users := []user.User{
		makeUser(1, "bob", 1),
		makeUser(2, "carol", 1),
	}
	events := []vote.VoteEvent{
		{UserID: 1, GameID: 1, Choice: vote.ChoiceInterested, Revision: 1},
		{UserID: 2, GameID: 1, Choice: vote.ChoiceInterested, Revision: 1},
	}

	result := report.ComputeResults(catalogAB(), users, events)

	require.NotEmpty(t, result.TopInterested)
	assert.Equal(t, 1, result.TopInterested[0].GameID)
	assert.Equal(t, 2, result.TopInterested[0].Count)
	assert.Equal(t, int64(2), result.TotalVoters)
}

func TestComputeResults_LeaderboardsCappedAtTen(t *testing.T) {
	catalog := make([]game.GameDescriptor, 0, 15)
	events := make([]vote.VoteEvent, 0, 15)
	for i := 1; i <= 15; i++ {
		catalog = append(catalog, game.GameDescriptor{ID: i, Title: "G"})
		events = append(events, vote.VoteEvent{UserID: 1, GameID: i, Choice: vote.ChoiceInterested, Revision: 1})
	}
	users := []user.User{makeUser(1, "alice", 1)}

	result := report.ComputeResults(catalog, users, events)

	assert.Len(t, result.TopInterested, 10)
	assert.Len(t, result.TopMaybe, 10)
	assert.Len(t, result.TopEngagement, 10)
	assert.Len(t, result.Results, 15)
}

func TestComputeResults_EngagementTieBreaks(t *testing.T) {
	// Both games have engagement 2; game 2 has more interested votes
	// and must rank first despite its later catalog position.
	catalog := catalogAB()
	users := []user.User{
		makeUser(1, "u1", 1),
		makeUser(2, "u2", 1),
	}
	events := []vote.VoteEvent{
		{UserID: 1, GameID: 1, Choice: vote.ChoiceMaybe, Revision: 1},
		{UserID: 2, GameID: 1, Choice: vote.ChoiceMaybe, Revision: 1},
		{UserID: 1, GameID: 2, Choice: vote.ChoiceInterested, Revision: 1},
		{UserID: 2, GameID: 2, Choice: vote.ChoiceMaybe, Revision: 1},
	}

	result := report.ComputeResults(catalog, users, events)

	require.Len(t, result.TopEngagement, 2)
	assert.Equal(t, 2, result.TopEngagement[0].GameID)
	assert.Equal(t, 1, result.TopEngagement[1].GameID)
}

func TestComputeResults_TiesPreserveCatalogOrder(t *testing.T) {
	// All ranking keys equal: the stable sort must keep catalog order.
	users := []user.User{makeUser(1, "u1", 1)}
	events := []vote.VoteEvent{
		{UserID: 1, GameID: 1, Choice: vote.ChoiceInterested, Revision: 1},
		{UserID: 1, GameID: 2, Choice: vote.ChoiceInterested, Revision: 1},
	}

	result := report.ComputeResults(catalogAB(), users, events)

	require.Len(t, result.TopInterested, 2)
	assert.Equal(t, 1, result.TopInterested[0].GameID)
	assert.Equal(t, 2, result.TopInterested[1].GameID)
}

func TestComputeResults_UnknownGameIDsSkipped(t *testing.T) {
	users := []user.User{makeUser(1, "alice", 1)}
	events := []vote.VoteEvent{
		{UserID: 1, GameID: 404, Choice: vote.ChoiceInterested, Revision: 1},
		{UserID: 1, GameID: 1, Choice: vote.ChoiceInterested, Revision: 1},
	}

	result := report.ComputeResults(catalogAB(), users, events)

	a := tallyByID(t, result, 1)
	assert.Equal(t, 1, a.InterestedCount)
	for _, tally := range result.Results {
		assert.NotEqual(t, 404, tally.GameID)
	}
}

func TestComputeResults_LegacyRevisionZeroIsLive(t *testing.T) {
	// A user whose only ballot predates revisioning: the revision-0
	// rows count as revision 1 and must appear in the tallies.
	users := []user.User{makeUser(1, "old-timer", 0)}
	events := []vote.VoteEvent{
		{UserID: 1, GameID: 1, Choice: vote.ChoiceNotInterested, Revision: 0},
	}

	result := report.ComputeResults(catalogAB(), users, events)

	a := tallyByID(t, result, 1)
	assert.Equal(t, 1, a.NotInterestedCount)
	assert.Equal(t, []string{"old-timer"}, a.NotInterested)
}

func TestComputeResults_Idempotent(t *testing.T) {
	users := []user.User{makeUser(1, "alice", 2), makeUser(2, "bob", 1)}
	events := []vote.VoteEvent{
		{UserID: 1, GameID: 1, Choice: vote.ChoiceInterested, Revision: 1, SubmittedAt: time.Now()},
		{UserID: 1, GameID: 1, Choice: vote.ChoiceMaybe, Revision: 2, SubmittedAt: time.Now()},
		{UserID: 2, GameID: 2, Choice: vote.ChoiceInterested, Revision: 1, SubmittedAt: time.Now()},
	}
	catalog := catalogAB()

	first := report.ComputeResults(catalog, users, events)
	second := report.ComputeResults(catalog, users, events)

	// GeneratedAt naturally differs; everything derived from the
	// ledger must be identical.
	assert.Equal(t, first.Results, second.Results)
	assert.Equal(t, first.TopInterested, second.TopInterested)
	assert.Equal(t, first.TopMaybe, second.TopMaybe)
	assert.Equal(t, first.TopEngagement, second.TopEngagement)
	assert.Equal(t, first.TotalVoters, second.TotalVoters)
}
