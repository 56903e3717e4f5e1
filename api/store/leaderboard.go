/* leaderboard.go
 * Contains the methods for interacting with the leaderboard collection
 */

package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FetchLeaderboardFromDB returns the stored leaderboard entries for this
// tournament. Entries come back unranked; ranking is derived by the caller.
// Postconditions: Returns a slice of LeaderboardEntry, or an error if it occurs
func (s *Store) FetchLeaderboardFromDB() ([]LeaderboardEntry, error) {
	filter := bson.M{"year": s.Year, "gender": s.Gender}

	var leaderboard Leaderboard
	err := s.Collections.Leaderboard.FindOne(context.TODO(), filter).Decode(&leaderboard)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch leaderboard from database: %w", err)
	}
	return leaderboard.Entries, nil
}

// StoreLeaderboard updates the leaderboard stored in the DB.
// Preconditions: Receives the Leaderboard value to be stored
// Postconditions: Updates the leaderboard collection and returns nil, or an
// error if it occurs
func (s *Store) StoreLeaderboard(leaderboard Leaderboard) error {
	if len(leaderboard.Entries) == 0 {
		return fmt.Errorf("leaderboard is empty")
	}
	leaderboard.Year = s.Year
	leaderboard.Gender = s.Gender

	filter := bson.M{"year": s.Year, "gender": s.Gender}

	var existing Leaderboard
	err := s.Collections.Leaderboard.FindOne(context.TODO(), filter).Decode(&existing)
	notFound := errors.Is(err, mongo.ErrNoDocuments)
	if err != nil && !notFound {
		return fmt.Errorf("lookup for existing record failed: %w", err)
	}

	log.Println("updating leaderboard in db")
	if notFound {
		if _, err := s.Collections.Leaderboard.InsertOne(context.TODO(), leaderboard); err != nil {
			return fmt.Errorf("leaderboard insert failed: %w", err)
		}
		return nil
	}

	update := bson.D{{Key: "$set", Value: leaderboard}}
	if _, err := s.Collections.Leaderboard.UpdateOne(context.TODO(), filter, update); err != nil {
		return fmt.Errorf("leaderboard update failed: %w", err)
	}
	return nil
}
