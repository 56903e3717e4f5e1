/* correct_bracket_test.go
 * Contains unit tests for correct_bracket.go
 */

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// region StoreCorrectBracket tests

func TestStoreCorrectBracket_InsertNew(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("inserts the answer key when none is stored", func(mt *mtest.T) {
		store := newMTestStore(mt)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.correct_brackets", mtest.FirstBatch))
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		correct := CorrectBracket{
			Regions: map[string]map[string][]CorrectGame{
				"south": {"round_1": {{Winner: "auburn", Loser: "alabama_state", GameID: "g1"}}},
			},
			LastUpdated: time.Now(),
		}

		err := store.StoreCorrectBracket(correct)
		assert.NoError(t, err)
	})
}

func TestStoreCorrectBracket_UpdateExisting(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("replaces the stored answer key", func(mt *mtest.T) {
		store := newMTestStore(mt)

		first := mtest.CreateCursorResponse(1, "test.correct_brackets", mtest.FirstBatch, bson.D{
			{Key: "year", Value: 2025},
			{Key: "gender", Value: "men"},
		})
		getMore := mtest.CreateCursorResponse(0, "test.correct_brackets", mtest.NextBatch)
		updateSuccess := bson.D{
			{Key: "ok", Value: 1},
			{Key: "nModified", Value: 1},
		}
		mt.AddMockResponses(first, getMore, updateSuccess)

		correct := CorrectBracket{
			Regions: map[string]map[string][]CorrectGame{
				"south": {"round_1": {{Winner: "auburn", Loser: "alabama_state", GameID: "g1"}}},
			},
			LastUpdated: time.Now(),
		}

		err := store.StoreCorrectBracket(correct)
		assert.NoError(t, err)
	})
}

func TestStoreCorrectBracket_Empty(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("rejects an answer key with no regions", func(mt *mtest.T) {
		store := newMTestStore(mt)

		err := store.StoreCorrectBracket(CorrectBracket{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "correct bracket is empty")
	})
}

// endregion

// region FetchCorrectBracket tests

func TestFetchCorrectBracket_Success(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("fetches the stored answer key", func(mt *mtest.T) {
		store := newMTestStore(mt)

		correctDoc := mtest.CreateCursorResponse(1, "test.correct_brackets", mtest.FirstBatch, bson.D{
			{Key: "year", Value: 2025},
			{Key: "gender", Value: "men"},
			{Key: "regions", Value: bson.D{
				{Key: "south", Value: bson.D{
					{Key: "round_1", Value: bson.A{
						bson.D{
							{Key: "winner", Value: "auburn"},
							{Key: "loser", Value: "alabama_state"},
							{Key: "team1", Value: "auburn"},
							{Key: "team2", Value: "alabama_state"},
							{Key: "game_id", Value: "g1"},
						},
					}},
				}},
			}},
			{Key: "last_updated", Value: time.Now()},
		})
		mt.AddMockResponses(correctDoc)

		correct, err := store.FetchCorrectBracket()
		require.NoError(t, err)
		require.Contains(t, correct.Regions, "south")
		game := correct.Regions["south"]["round_1"][0]
		assert.Equal(t, "auburn", game.Winner)
		assert.Equal(t, "g1", game.GameID)
		// Scores stay nil for documents that never carried them
		assert.Nil(t, game.WinnerScore)
	})
}

func TestFetchCorrectBracket_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns ErrNoDocuments when no answer key is stored", func(mt *mtest.T) {
		store := newMTestStore(mt)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.correct_brackets", mtest.FirstBatch))

		_, err := store.FetchCorrectBracket()
		assert.Equal(t, mongo.ErrNoDocuments, err)
	})
}

// endregion
