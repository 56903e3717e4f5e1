/* game_results.go
 * Contains the methods for interacting with the game_results collection
 */

package store

import (
	"context"
	"fmt"

	"mascot-madness/api/external"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The result store caps $in lookups at this size; larger requests are split
// and the chunk results merged before anything is returned, so the scoring
// engine never sees a partially populated result map.
const resultChunkSize = 30

// StoreGameResults upserts the given results keyed by game id. A re-ingested
// game id supersedes the stored document rather than merging with it.
// Preconditions: Receives a map of game id to normalized GameResult
// Postconditions: Replaces or inserts one document per result, or returns the
// first error encountered
func (s *Store) StoreGameResults(results map[string]external.GameResult) error {
	opts := options.Replace().SetUpsert(true)
	for gameID, result := range results {
		filter := bson.M{"game_id": gameID, "year": s.Year, "gender": s.Gender}
		doc := bson.M{
			"game_id":    result.GameID,
			"year":       s.Year,
			"gender":     s.Gender,
			"home_team":  result.HomeTeam,
			"away_team":  result.AwayTeam,
			"home_score": result.HomeScore,
			"away_score": result.AwayScore,
			"winner":     result.Winner,
			"loser":      result.Loser,
			"status":     result.Status,
		}
		if _, err := s.Collections.GameResults.ReplaceOne(context.TODO(), filter, doc, opts); err != nil {
			return fmt.Errorf("failed to store result for game %q: %w", gameID, err)
		}
	}
	return nil
}

// GetGameResults fetches stored results for the given game ids, issuing $in
// queries in chunks of 30 and merging them into one map.
// Preconditions: Receives a slice of game ids; empty entries are skipped
// Postconditions: Returns a map of game id to GameResult for every id with a
// stored result. Missing ids are simply absent, not an error
func (s *Store) GetGameResults(gameIDs []string) (map[string]external.GameResult, error) {
	var wanted []string
	for _, id := range gameIDs {
		if id != "" {
			wanted = append(wanted, id)
		}
	}

	results := make(map[string]external.GameResult, len(wanted))
	for start := 0; start < len(wanted); start += resultChunkSize {
		end := min(start+resultChunkSize, len(wanted))
		chunk, err := s.fetchResultChunk(wanted[start:end])
		if err != nil {
			return nil, err
		}
		for _, result := range chunk {
			results[result.GameID] = result
		}
	}
	return results, nil
}

// fetchResultChunk runs one $in query for up to resultChunkSize game ids.
func (s *Store) fetchResultChunk(gameIDs []string) ([]external.GameResult, error) {
	filter := bson.M{
		"game_id": bson.M{"$in": gameIDs},
		"year":    s.Year,
		"gender":  s.Gender,
	}

	cursor, err := s.Collections.GameResults.Find(context.TODO(), filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching game results from db: %w", err)
	}

	var chunk []external.GameResult
	if err := cursor.All(context.TODO(), &chunk); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into game results: %w", err)
	}
	return chunk, nil
}
