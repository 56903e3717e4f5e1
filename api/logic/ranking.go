/* ranking.go
 * Contains the logic for ranking leaderboard entries
 */

package logic

import (
	"sort"

	"mascot-madness/api/store"
)

// Rank sorts entries descending by score and assigns competition ranks: tied
// scores share a rank and the next distinct score takes its 1-based position,
// so two entries tied at rank 1 are followed by rank 3, not rank 2. The sort
// is stable, so equal scores keep their input order. The input slice is not
// modified.
func Rank(entries []store.LeaderboardEntry) []store.LeaderboardEntry {
	ranked := make([]store.LeaderboardEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	for i := range ranked {
		if i > 0 && ranked[i].Score == ranked[i-1].Score {
			ranked[i].Rank = ranked[i-1].Rank
		} else {
			ranked[i].Rank = i + 1
		}
	}
	return ranked
}
