/* input_processing.go
 * Contains the logic for matching user typed team names against the teams of
 * the active matchup
 */

package logic

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MatchTeamName matches a user typed team name against a list of candidate
// internal keys. Input is lowercased and spaces become underscores before
// matching, so "North Carolina" finds "north_carolina". An exact match wins
// over fuzzy candidates.
// Preconditions: Receives the raw user input and the candidate keys
// Postconditions: Returns the matched candidate key, or an error listing the
// valid options when nothing matches
func MatchTeamName(input string, candidates []string) (string, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(input)), " ", "_")

	lookup := make(map[string]string, len(candidates))
	var candidatesLower []string
	for _, name := range candidates {
		lower := strings.ToLower(name)
		lookup[lower] = name
		candidatesLower = append(candidatesLower, lower)
	}

	fuzzyResults := fuzzy.RankFind(normalized, candidatesLower)
	if len(fuzzyResults) == 0 {
		return "", fmt.Errorf("'%s' does not match any of: %s", input, strings.Join(candidates, ", "))
	}

	// Prefer an exact match when the input is ambiguous
	best := fuzzyResults[0].Target
	for _, result := range fuzzyResults {
		if result.Target == normalized {
			best = result.Target
			break
		}
	}
	return lookup[best], nil
}
