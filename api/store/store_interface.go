/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 */

package store

import (
	"context"

	"mascot-madness/api/external"
	"mascot-madness/api/shared"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	GetTournamentField() (map[string][]shared.Team, []string, error)
	GetGameIDMapping() (shared.GameIDMapping, error)
	StoreBracket(record BracketRecord) (string, error)
	GetBracket(ownerID string) (BracketRecord, error)
	GetPublishedBrackets() ([]BracketRecord, error)
	UpdateBracketScore(id string, score int, maxScore int) error
	StoreGameResults(results map[string]external.GameResult) error
	GetGameResults(gameIDs []string) (map[string]external.GameResult, error)
	StoreCorrectBracket(correct CorrectBracket) error
	FetchCorrectBracket() (CorrectBracket, error)
	StoreLeaderboard(leaderboard Leaderboard) error
	FetchLeaderboardFromDB() ([]LeaderboardEntry, error)

	// Getter methods for accessing fields
	GetYear() int
	GetGender() string
	GetDatabase() interface{ Name() string }
	GetClient() interface{ Disconnect(context.Context) error }
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)

// GetYear returns the tournament year
func (s *Store) GetYear() int {
	return s.Year
}

// GetGender returns the tournament gender
func (s *Store) GetGender() string {
	return s.Gender
}

// GetDatabase returns the database instance
func (s *Store) GetDatabase() interface{ Name() string } {
	return s.Database
}

// GetClient returns the MongoDB client
func (s *Store) GetClient() interface{ Disconnect(context.Context) error } {
	return s.Client
}
