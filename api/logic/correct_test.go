/* correct_test.go
 * Contains unit tests for correct.go functions
 */

package logic

import (
	"testing"

	"mascot-madness/api/external"
	"mascot-madness/api/names"
	"mascot-madness/api/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildCorrectBracket_Placeholders tests empty slots for unmapped and
// unplayed games
func TestBuildCorrectBracket_Placeholders(t *testing.T) {
	mapping := shared.GameIDMapping{
		"east": {"round_3": []string{"g1", ""}},
	}

	correct, err := BuildCorrectBracket(mapping, nil, names.NewResolver(names.Config{}), DefaultRoundOrders())

	require.NoError(t, err)
	games := correct.Regions["east"]["round_3"]
	require.Len(t, games, 2)
	// g1 has no result yet; the slot keeps its game id but nothing else
	assert.Equal(t, "g1", games[0].GameID)
	assert.Empty(t, games[0].Winner)
	assert.Nil(t, games[0].WinnerScore)
	// the second slot has no mapping at all
	assert.Empty(t, games[1].GameID)
}

// TestBuildCorrectBracket_DecidedGame tests winner/loser naming and score
// assignment for a decided game
func TestBuildCorrectBracket_DecidedGame(t *testing.T) {
	mapping := shared.GameIDMapping{
		"east": {"round_4": []string{"g9"}},
	}
	results := map[string]external.GameResult{
		"g9": {
			GameID:    "g9",
			HomeTeam:  "uconn",
			AwayTeam:  "duke",
			HomeScore: 63,
			AwayScore: 71,
			Winner:    "duke",
			Loser:     "uconn",
			Status:    external.StatusFinal,
		},
	}
	resolver := names.NewResolver(names.Config{
		Overrides: map[string]string{"connecticut": "uconn"},
	})

	correct, err := BuildCorrectBracket(mapping, results, resolver, DefaultRoundOrders())

	require.NoError(t, err)
	game := correct.Regions["east"]["round_4"][0]
	assert.Equal(t, "duke", game.Winner)
	assert.Equal(t, "connecticut", game.Loser) // reversed through the override table
	assert.Equal(t, "connecticut", game.Team1) // home side
	assert.Equal(t, "duke", game.Team2)
	require.NotNil(t, game.WinnerScore)
	require.NotNil(t, game.LoserScore)
	assert.Equal(t, 71, *game.WinnerScore)
	assert.Equal(t, 63, *game.LoserScore)
}

// TestBuildCorrectBracket_Reindexes tests that feed order games land in
// visual slot order
func TestBuildCorrectBracket_Reindexes(t *testing.T) {
	gameIDs := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	mapping := shared.GameIDMapping{"east": {"round_1": gameIDs}}

	correct, err := BuildCorrectBracket(mapping, nil, names.NewResolver(names.Config{}), DefaultRoundOrders())

	require.NoError(t, err)
	games := correct.Regions["east"]["round_1"]
	require.Len(t, games, 8)
	// roundOrders[1] = [0,6,4,2,3,5,7,1]: feed position 1 renders at slot 6
	assert.Equal(t, "a", games[0].GameID)
	assert.Equal(t, "b", games[6].GameID)
	assert.Equal(t, "c", games[4].GameID)
	assert.Equal(t, "h", games[1].GameID)
}

// TestBuildCorrectBracket_PartialRound tests that a round list shorter than
// the round's slot count still yields the full run of slots, with
// placeholders for the absent entries
func TestBuildCorrectBracket_PartialRound(t *testing.T) {
	mapping := shared.GameIDMapping{"east": {"round_1": []string{"g1", "g2"}}}
	results := map[string]external.GameResult{"g2": decidedGame("g2", "team-a", "team-b")}

	correct, err := BuildCorrectBracket(mapping, results, names.NewResolver(names.Config{}), DefaultRoundOrders())

	require.NoError(t, err)
	games := correct.Regions["east"]["round_1"]
	require.Len(t, games, 8)
	// feed positions 0 and 1 land at slots 0 and 6 per the round 1 re-index
	assert.Equal(t, "g1", games[0].GameID)
	assert.Equal(t, "g2", games[6].GameID)
	assert.Equal(t, "team-a", games[6].Winner)
	for _, slot := range []int{1, 2, 3, 4, 5, 7} {
		assert.Empty(t, games[slot].GameID)
		assert.Empty(t, games[slot].Winner)
	}
}

// TestBuildCorrectBracket_FinalFourIdentity tests that the final four keeps
// feed order
func TestBuildCorrectBracket_FinalFourIdentity(t *testing.T) {
	mapping := shared.GameIDMapping{
		shared.FinalFour: {"round_1": []string{"f1", "f2"}},
	}

	correct, err := BuildCorrectBracket(mapping, nil, names.NewResolver(names.Config{}), DefaultRoundOrders())

	require.NoError(t, err)
	games := correct.Regions[shared.FinalFour]["round_1"]
	assert.Equal(t, "f1", games[0].GameID)
	assert.Equal(t, "f2", games[1].GameID)
}

// TestBuildCorrectBracket_MalformedLabel tests the error for a bad round label
func TestBuildCorrectBracket_MalformedLabel(t *testing.T) {
	mapping := shared.GameIDMapping{"east": {"sweet_sixteen": []string{"g1"}}}

	_, err := BuildCorrectBracket(mapping, nil, names.NewResolver(names.Config{}), DefaultRoundOrders())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `malformed round label "sweet_sixteen"`)
}

// TestPointsPerWin tests the round weighting including the final four scaling
// that keeps every full round worth 320 points
func TestPointsPerWin(t *testing.T) {
	assert.Equal(t, 10, pointsPerWin("east", 1))
	assert.Equal(t, 20, pointsPerWin("east", 2))
	assert.Equal(t, 40, pointsPerWin("east", 3))
	assert.Equal(t, 80, pointsPerWin("east", 4))
	assert.Equal(t, 160, pointsPerWin(shared.FinalFour, 1))
	assert.Equal(t, 320, pointsPerWin(shared.FinalFour, 2))

	// Full bracket maximum: 32+16+8+4 regional games plus the final four
	total := 32*10 + 16*20 + 8*40 + 4*80 + 2*160 + 1*320
	assert.Equal(t, 1920, total)
}

// TestOrderedRegions_FinalFourLast tests the deterministic processing order
func TestOrderedRegions_FinalFourLast(t *testing.T) {
	mapping := shared.GameIDMapping{
		"west":            nil,
		shared.FinalFour:  nil,
		"east":            nil,
		"midwest":         nil,
	}

	assert.Equal(t, []string{"east", "midwest", "west", shared.FinalFour}, orderedRegions(mapping))
}
