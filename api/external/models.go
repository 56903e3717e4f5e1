/* models.go
 * This file contains the models used by the external package when fetching
 * game data from the sports feed
 */

package external

// FeedGame is the raw per-game record as returned by the sports feed, in the
// feed's own team naming convention.
type FeedGame struct {
	GameID     string `json:"game_id"`
	HomeTeam   string `json:"home_team"`
	AwayTeam   string `json:"away_team"`
	HomeScore  int    `json:"home_score"`
	AwayScore  int    `json:"away_score"`
	HomeWinner bool   `json:"home_winner"`
	Period     string `json:"period,omitempty"`
	Status     string `json:"status"`
}

// GameResult is the normalized per-game result consumed by the scoring engine
// and the correct-bracket builder. Team keys are in the feed's naming
// convention; a result is immutable once recorded and is superseded, not
// merged, by re-ingestion with the same GameID.
type GameResult struct {
	GameID    string `bson:"game_id" json:"game_id"`
	HomeTeam  string `bson:"home_team" json:"home_team"`
	AwayTeam  string `bson:"away_team" json:"away_team"`
	HomeScore int    `bson:"home_score" json:"home_score"`
	AwayScore int    `bson:"away_score" json:"away_score"`
	Winner    string `bson:"winner" json:"winner"`
	Loser     string `bson:"loser" json:"loser"`
	Status    string `bson:"status" json:"status"`
}

// StatusFinal marks a decided game in the feed. Anything else is treated as
// "not yet decided" by the scoring engine.
const StatusFinal = "final"

// feedResponse is the envelope the feed wraps game lists in.
type feedResponse struct {
	Games []FeedGame `json:"games"`
}
