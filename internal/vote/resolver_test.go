package vote_test

import (
	"testing"

	"github.com/SlpAus/game-night-vote-backend/internal/user"
	"github.com/SlpAus/game-night-vote-backend/internal/vote"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func makeUser(id uint, name string, revision int) user.User {
	return user.User{Model: gorm.Model{ID: id}, Name: name, CurrentRevision: revision}
}

func TestResolveLatestRevisions_TakesMaxOfBothSources(t *testing.T) {
	users := []user.User{
		makeUser(1, "alice", 2),
		makeUser(2, "bob", 5),
	}
	events := []vote.VoteEvent{
		{UserID: 1, GameID: 1, Choice: vote.ChoiceInterested, Revision: 4},
		{UserID: 1, GameID: 2, Choice: vote.ChoiceMaybe, Revision: 3},
		{UserID: 2, GameID: 1, Choice: vote.ChoiceInterested, Revision: 1},
	}

	resolved := vote.ResolveLatestRevisions(users, events)

	// alice: events claim revision 4, the user record only 2
	assert.Equal(t, 4, resolved[1])
	// bob: the user record is ahead of the events
	assert.Equal(t, 5, resolved[2])
}

func TestResolveLatestRevisions_LegacyEventsCountAsRevisionOne(t *testing.T) {
	// Rows written before revisioning existed carry revision 0.
	events := []vote.VoteEvent{
		{UserID: 7, GameID: 1, Choice: vote.ChoiceInterested, Revision: 0},
	}

	resolved := vote.ResolveLatestRevisions(nil, events)
	assert.Equal(t, 1, resolved[7])
}

func TestResolveLatestRevisions_UserWithoutEvents(t *testing.T) {
	users := []user.User{makeUser(3, "carol", 2)}

	resolved := vote.ResolveLatestRevisions(users, nil)
	assert.Equal(t, 2, resolved[3])
}

func TestResolveLatestRevisions_Deterministic(t *testing.T) {
	users := []user.User{makeUser(1, "alice", 1), makeUser(2, "bob", 3)}
	events := []vote.VoteEvent{
		{UserID: 1, GameID: 1, Choice: vote.ChoiceMaybe, Revision: 2},
		{UserID: 2, GameID: 1, Choice: vote.ChoiceInterested, Revision: 0},
	}

	first := vote.ResolveLatestRevisions(users, events)
	second := vote.ResolveLatestRevisions(users, events)
	assert.Equal(t, first, second)
}
