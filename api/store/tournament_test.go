/* tournament_test.go
 * Contains unit tests for tournament.go
 */

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// region GetTournamentField tests

func TestGetTournamentField_Success(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("fetches the seeded field", func(mt *mtest.T) {
		store := newMTestStore(mt)

		fieldDoc := mtest.CreateCursorResponse(1, "test.tournament_fields", mtest.FirstBatch, bson.D{
			{Key: "year", Value: 2025},
			{Key: "gender", Value: "men"},
			{Key: "region_order", Value: bson.A{"south", "east"}},
			{Key: "regions", Value: bson.D{
				{Key: "south", Value: bson.A{
					bson.D{{Key: "name", Value: "auburn"}, {Key: "seed", Value: 1}},
					bson.D{{Key: "name", Value: "michigan_state"}, {Key: "seed", Value: 2}},
				}},
				{Key: "east", Value: bson.A{
					bson.D{{Key: "name", Value: "duke"}, {Key: "seed", Value: 1}},
				}},
			}},
		})
		mt.AddMockResponses(fieldDoc)

		regions, regionOrder, err := store.GetTournamentField()
		require.NoError(t, err)
		assert.Equal(t, []string{"south", "east"}, regionOrder)
		require.Len(t, regions["south"], 2)
		assert.Equal(t, "auburn", regions["south"][0].Name)
		assert.Equal(t, 1, regions["south"][0].Seed)
		assert.Equal(t, "duke", regions["east"][0].Name)
	})
}

func TestGetTournamentField_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns error when no field is stored", func(mt *mtest.T) {
		store := newMTestStore(mt)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.tournament_fields", mtest.FirstBatch))

		_, _, err := store.GetTournamentField()
		assert.Error(t, err)
		assert.ErrorIs(t, err, mongo.ErrNoDocuments)
	})
}

func TestGetTournamentField_EmptyDocument(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("rejects a field document with no regions", func(mt *mtest.T) {
		store := newMTestStore(mt)

		fieldDoc := mtest.CreateCursorResponse(1, "test.tournament_fields", mtest.FirstBatch, bson.D{
			{Key: "year", Value: 2025},
			{Key: "gender", Value: "men"},
		})
		mt.AddMockResponses(fieldDoc)

		_, _, err := store.GetTournamentField()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "is empty")
	})
}

// endregion

// region GetGameIDMapping tests

func TestGetGameIDMapping_Success(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("fetches the game id mapping", func(mt *mtest.T) {
		store := newMTestStore(mt)

		mappingDoc := mtest.CreateCursorResponse(1, "test.game_id_mappings", mtest.FirstBatch, bson.D{
			{Key: "year", Value: 2025},
			{Key: "gender", Value: "men"},
			{Key: "regions", Value: bson.D{
				{Key: "south", Value: bson.D{
					{Key: "round_1", Value: bson.A{"g1", "g2"}},
					{Key: "round_2", Value: bson.A{"g3"}},
				}},
			}},
		})
		mt.AddMockResponses(mappingDoc)

		mapping, err := store.GetGameIDMapping()
		require.NoError(t, err)
		assert.Equal(t, []string{"g1", "g2"}, mapping["south"]["round_1"])
		assert.Equal(t, []string{"g3"}, mapping["south"]["round_2"])
	})
}

func TestGetGameIDMapping_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns error when no mapping is stored", func(mt *mtest.T) {
		store := newMTestStore(mt)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.game_id_mappings", mtest.FirstBatch))

		_, err := store.GetGameIDMapping()
		assert.Error(t, err)
		assert.ErrorIs(t, err, mongo.ErrNoDocuments)
	})
}

// endregion
