/* scoring.go
 * Contains the logic for scoring a user bracket against the ingested game
 * results. Scoring is a pure function of (picks, mapping, results): re-running
 * it on unchanged inputs produces an identical result
 */

package logic

import (
	"fmt"
	"slices"

	"mascot-madness/api/bracket"
	"mascot-madness/api/external"
	"mascot-madness/api/names"
	"mascot-madness/api/shared"
)

// Score is the outcome of scoring one bracket: the points earned so far and
// the maximum still achievable given the games already decided.
type Score struct {
	Score    int
	MaxScore int
}

// ScoreBracket computes the round weighted score for one user bracket.
// Regions are processed in the same order as the correct-bracket builder
// (final four last) and each round's games are visited in feed order,
// re-indexed to the user's visually equivalent pick slot. Losers accumulate as
// games are visited: an undecided game only counts toward MaxScore if the
// user's pick has not already been eliminated in an earlier game.
// Preconditions: Receives the user's bracket, the game id mapping, the
// ingested results (fully populated for every region being scored), a
// Resolver and the round re-index tables
// Postconditions: Returns the Score, or an error naming the bracket and
// region when the bracket is missing a region the mapping expects. A partial
// score is never returned
func ScoreBracket(userBracket *bracket.Bracket, mapping shared.GameIDMapping, results map[string]external.GameResult, resolver *names.Resolver, orders RoundOrders) (Score, error) {
	var total Score
	var losingTeams []string

	for _, regionName := range orderedRegions(mapping) {
		region, ok := userBracket.Regions[regionName]
		if !ok || region == nil {
			return Score{}, fmt.Errorf("bracket %q is missing region %q", userBracket.Name, regionName)
		}

		rounds := mapping[regionName]
		for _, label := range sortedRoundLabels(rounds) {
			round, err := parseRoundLabel(label)
			if err != nil {
				return Score{}, fmt.Errorf("bracket %q region %q: %w", userBracket.Name, regionName, err)
			}
			points := pointsPerWin(regionName, round)

			for i, gameID := range rounds[label] {
				userGameIdx := i
				if regionName != shared.FinalFour {
					userGameIdx = orders.slot(round, i)
				}

				// The user's predicted winner of this game sits in the slot
				// the winner advances into
				var pick string
				if round < len(region.Bracket) && userGameIdx < len(region.Bracket[round]) {
					if team := region.Bracket[round][userGameIdx]; team != nil {
						pick = resolver.Resolve(team.Name, userBracket.Year)
					}
				}

				result, decided := results[gameID]
				if gameID == "" || !decided {
					// Not decided yet: the points remain reachable unless the
					// pick has already lost an earlier game
					if !slices.Contains(losingTeams, pick) {
						total.MaxScore += points
					}
					continue
				}

				losingTeams = append(losingTeams, result.Loser)
				if pick == result.Winner {
					total.Score += points
					total.MaxScore += points
				}
			}
		}
	}
	return total, nil
}
