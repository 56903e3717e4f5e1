/* correct.go
 * Contains the logic for building the canonical "answer key" bracket from the
 * game id mapping and the ingested game results
 */

package logic

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"mascot-madness/api/external"
	"mascot-madness/api/names"
	"mascot-madness/api/shared"
	"mascot-madness/api/store"
)

// RoundOrders maps round number -> per-slot re-index table translating the
// feed's chronological game order into the bracket's visual slot order. The
// final four is laid out in feed order already and always uses the identity.
type RoundOrders map[int][]int

// DefaultRoundOrders returns the production re-index tables. The feed lists
// round 1-3 games in seed order while the bracket renders them in slot order;
// these tables bridge the two.
func DefaultRoundOrders() RoundOrders {
	return RoundOrders{
		1: {0, 6, 4, 2, 3, 5, 7, 1},
		2: {0, 3, 2, 1},
		3: {0, 1},
		4: {0},
	}
}

// slot maps position i of round n from feed order to bracket slot order.
// Positions outside the configured table pass through unchanged.
func (o RoundOrders) slot(round int, i int) int {
	if order, ok := o[round]; ok && i < len(order) {
		return order[i]
	}
	return i
}

// pointsPerWin returns the point value of one correct pick in the given
// region and round. Final four games are scaled by 16 so each round of the
// full bracket is worth the same 320 point block, for a 1920 point maximum.
func pointsPerWin(region string, round int) int {
	points := 10 * (1 << (round - 1))
	if region == shared.FinalFour {
		points *= 16
	}
	return points
}

// orderedRegions returns the mapping's region names sorted, with the final
// four forced last. Only the processing order (and with it log output and the
// eliminated-team accumulation order) depends on this.
func orderedRegions(mapping shared.GameIDMapping) []string {
	regions := make([]string, 0, len(mapping))
	for region := range mapping {
		if region != shared.FinalFour {
			regions = append(regions, region)
		}
	}
	sort.Strings(regions)
	if _, ok := mapping[shared.FinalFour]; ok {
		regions = append(regions, shared.FinalFour)
	}
	return regions
}

// sortedRoundLabels returns a region's round labels in round number order.
func sortedRoundLabels(rounds map[string][]string) []string {
	labels := make([]string, 0, len(rounds))
	for label := range rounds {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// parseRoundLabel extracts N from a "round_N" label.
func parseRoundLabel(label string) (int, error) {
	numberPart, ok := strings.CutPrefix(label, "round_")
	if !ok {
		return 0, fmt.Errorf("malformed round label %q", label)
	}
	round, err := strconv.Atoi(numberPart)
	if err != nil {
		return 0, fmt.Errorf("malformed round label %q: %w", label, err)
	}
	return round, nil
}

// BuildCorrectBracket constructs the answer key bracket for the given mapping
// and results. Unplayed or unmapped games become empty placeholders so the
// output always mirrors the full bracket shape.
// Preconditions: Receives the game id mapping, the ingested results keyed by
// game id, a Resolver for display names and the round re-index tables
// Postconditions: Returns a CorrectBracket keyed region -> round label ->
// visual slot order, or an error for a malformed round label
func BuildCorrectBracket(mapping shared.GameIDMapping, results map[string]external.GameResult, resolver *names.Resolver, orders RoundOrders) (store.CorrectBracket, error) {
	correct := store.CorrectBracket{
		Regions:     make(map[string]map[string][]store.CorrectGame, len(mapping)),
		LastUpdated: time.Now(),
	}

	for _, regionName := range orderedRegions(mapping) {
		rounds := mapping[regionName]
		correct.Regions[regionName] = make(map[string][]store.CorrectGame, len(rounds))

		for _, label := range sortedRoundLabels(rounds) {
			round, err := parseRoundLabel(label)
			if err != nil {
				return store.CorrectBracket{}, fmt.Errorf("region %q: %w", regionName, err)
			}

			gameIDs := rounds[label]

			// The round's slot count comes from the re-index table, not the
			// mapping: a partially entered round still produces the full run
			// of placeholder slots instead of indexing out of range
			slotCount := len(gameIDs)
			if regionName != shared.FinalFour {
				if order, ok := orders[round]; ok && len(order) > slotCount {
					slotCount = len(order)
				}
			}
			games := make([]store.CorrectGame, slotCount)
			for i, gameID := range gameIDs {
				targetIdx := i
				if regionName != shared.FinalFour {
					targetIdx = orders.slot(round, i)
				}

				result, ok := results[gameID]
				if gameID == "" || !ok {
					games[targetIdx] = store.CorrectGame{GameID: gameID}
					continue
				}

				winnerScore, loserScore := result.HomeScore, result.AwayScore
				if result.Winner != result.HomeTeam {
					winnerScore, loserScore = result.AwayScore, result.HomeScore
				}
				games[targetIdx] = store.CorrectGame{
					Winner:      resolver.Reverse(result.Winner),
					Loser:       resolver.Reverse(result.Loser),
					Team1:       resolver.Reverse(result.HomeTeam),
					Team2:       resolver.Reverse(result.AwayTeam),
					WinnerScore: &winnerScore,
					LoserScore:  &loserScore,
					GameID:      gameID,
				}
			}
			correct.Regions[regionName][label] = games
		}
	}
	return correct, nil
}
