/* leaderboard_test.go
 * Contains unit tests for leaderboard.go
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

// region FetchLeaderboardFromDB tests

func TestFetchLeaderboardFromDB_Success(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("successfully fetches leaderboard", func(mt *mtest.T) {
		store := newMTestStore(mt)

		// Mock FindOne returning leaderboard
		leaderboardDoc := mtest.CreateCursorResponse(1, "test.leaderboard", mtest.FirstBatch, bson.D{
			{Key: "year", Value: 2025},
			{Key: "gender", Value: "men"},
			{Key: "updated_at", Value: time.Now()},
			{Key: "entries", Value: bson.A{
				bson.D{
					{Key: "bracket_id", Value: "b1"},
					{Key: "display_name", Value: "alpha bracket"},
					{Key: "score", Value: 200},
					{Key: "max_score", Value: 500},
					{Key: "champion", Value: "duke"},
				},
				bson.D{
					{Key: "bracket_id", Value: "b2"},
					{Key: "display_name", Value: "beta bracket"},
					{Key: "score", Value: 150},
					{Key: "max_score", Value: 400},
				},
			}},
		})
		mt.AddMockResponses(leaderboardDoc)

		entries, err := store.FetchLeaderboardFromDB()
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "b1", entries[0].BracketID)
		assert.Equal(t, "alpha bracket", entries[0].DisplayName)
		assert.Equal(t, 200, entries[0].Score)
		assert.Equal(t, "duke", entries[0].Champion)
		assert.Equal(t, "b2", entries[1].BracketID)
		// Rank is never stored, only derived
		assert.Equal(t, 0, entries[0].Rank)
	})
}

func TestFetchLeaderboardFromDB_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns error when no leaderboard found", func(mt *mtest.T) {
		store := newMTestStore(mt)

		// Mock FindOne returning no documents
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.leaderboard", mtest.FirstBatch))

		entries, err := store.FetchLeaderboardFromDB()
		assert.Error(t, err)
		assert.Equal(t, mongo.ErrNoDocuments, err)
		assert.Nil(t, entries)
	})
}

func TestFetchLeaderboardFromDB_DatabaseError(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns error on database failure", func(mt *mtest.T) {
		store := newMTestStore(mt)

		// Mock FindOne returning error
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Message: "database error",
		}))

		entries, err := store.FetchLeaderboardFromDB()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to fetch leaderboard from database")
		assert.Nil(t, entries)
	})
}

// endregion

// region StoreLeaderboard tests

func TestStoreLeaderboard_InsertNew(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("successfully inserts new leaderboard", func(mt *mtest.T) {
		store := newMTestStore(mt)

		// Mock FindOne returning no documents (new leaderboard)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.leaderboard", mtest.FirstBatch))
		// Mock InsertOne success
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		leaderboard := Leaderboard{
			UpdatedAt: time.Now(),
			Entries: []LeaderboardEntry{
				{BracketID: "b1", DisplayName: "alpha bracket", Score: 200, MaxScore: 500},
			},
		}

		err := store.StoreLeaderboard(leaderboard)
		assert.NoError(t, err)
	})
}

func TestStoreLeaderboard_UpdateExisting(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("successfully updates existing leaderboard", func(mt *mtest.T) {
		store := newMTestStore(mt)

		// Mock FindOne returning existing document - need cursor response with getMore
		first := mtest.CreateCursorResponse(1, "test.leaderboard", mtest.FirstBatch, bson.D{
			{Key: "year", Value: 2025},
			{Key: "gender", Value: "men"},
		})
		getMore := mtest.CreateCursorResponse(0, "test.leaderboard", mtest.NextBatch)
		// Mock UpdateOne success
		updateSuccess := bson.D{
			{Key: "ok", Value: 1},
			{Key: "nModified", Value: 1},
		}
		mt.AddMockResponses(first, getMore, updateSuccess)

		leaderboard := Leaderboard{
			UpdatedAt: time.Now(),
			Entries: []LeaderboardEntry{
				{BracketID: "b1", DisplayName: "alpha bracket", Score: 210, MaxScore: 500},
			},
		}

		err := store.StoreLeaderboard(leaderboard)
		assert.NoError(t, err)
	})
}

func TestStoreLeaderboard_EmptyLeaderboard(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns error when leaderboard is empty", func(mt *mtest.T) {
		store := newMTestStore(mt)

		err := store.StoreLeaderboard(Leaderboard{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "leaderboard is empty")
	})
}

func TestStoreLeaderboard_InsertError(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns error when insert fails", func(mt *mtest.T) {
		store := newMTestStore(mt)

		// Mock FindOne returning no documents
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.leaderboard", mtest.FirstBatch))
		// Mock InsertOne error
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "insert failed",
		}))

		leaderboard := Leaderboard{
			UpdatedAt: time.Now(),
			Entries: []LeaderboardEntry{
				{BracketID: "b1", DisplayName: "alpha bracket", Score: 200},
			},
		}

		err := store.StoreLeaderboard(leaderboard)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "leaderboard insert failed")
	})
}

// endregion
