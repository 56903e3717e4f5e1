/* models.go
 * This file contains the structs that relate to DB documents
 */

package store

import (
	"time"

	"mascot-madness/api/bracket"
	"mascot-madness/api/shared"
)

// BracketRecord is the persisted form of one user's bracket together with its
// most recent score.
type BracketRecord struct {
	ID        string          `bson:"_id,omitempty"`
	Year      int             `bson:"year"`
	Gender    string          `bson:"gender"`
	Score     int             `bson:"score"`
	MaxScore  int             `bson:"max_score"`
	UpdatedAt time.Time       `bson:"updated_at,omitempty"`
	Bracket   bracket.Bracket `bson:"bracket"`
}

// FieldRecord holds the seeded team lists for one tournament, keyed by region.
type FieldRecord struct {
	Year        int                      `bson:"year"`
	Gender      string                   `bson:"gender"`
	RegionOrder []string                 `bson:"region_order"`
	Regions     map[string][]shared.Team `bson:"regions"`
}

// MappingRecord holds the externally maintained game id mapping for one
// tournament.
type MappingRecord struct {
	Year    int                  `bson:"year"`
	Gender  string               `bson:"gender"`
	Regions shared.GameIDMapping `bson:"regions"`
}

// CorrectGame is one decided (or placeholder) game slot in the answer key
// bracket. Scores are nil for games that have not been played.
type CorrectGame struct {
	Winner      string `bson:"winner" json:"winner"`
	Loser       string `bson:"loser" json:"loser"`
	Team1       string `bson:"team1" json:"team1"`
	Team2       string `bson:"team2" json:"team2"`
	WinnerScore *int   `bson:"winner_score" json:"winner_score"`
	LoserScore  *int   `bson:"loser_score" json:"loser_score"`
	GameID      string `bson:"game_id" json:"game_id"`
}

// CorrectBracket is the canonical answer key derived from actual game
// outcomes, structured region -> round label -> visual slot order so it can be
// compared against user brackets directly.
type CorrectBracket struct {
	Year        int                                 `bson:"year"`
	Gender      string                              `bson:"gender"`
	Regions     map[string]map[string][]CorrectGame `bson:"regions"`
	LastUpdated time.Time                           `bson:"last_updated"`
}

// LeaderboardEntry is one bracket's standing. Rank is derived by the ranking
// logic at read time and never stored.
type LeaderboardEntry struct {
	BracketID   string `bson:"bracket_id"`
	DisplayName string `bson:"display_name"`
	Score       int    `bson:"score"`
	MaxScore    int    `bson:"max_score"`
	Champion    string `bson:"champion,omitempty"`
	Rank        int    `bson:"-"`
}

// Leaderboard is the persisted standings document for one tournament.
type Leaderboard struct {
	Year      int                `bson:"year"`
	Gender    string             `bson:"gender"`
	UpdatedAt time.Time          `bson:"updated_at"`
	Entries   []LeaderboardEntry `bson:"entries"`
}
