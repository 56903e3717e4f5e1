/* correct_bracket.go
 * Contains the methods for interacting with the correct_brackets collection
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StoreCorrectBracket upserts the answer key bracket for this tournament.
// Preconditions: Receives a CorrectBracket built from the current results
// Postconditions: Replaces the stored document, or returns an error if it occurs
func (s *Store) StoreCorrectBracket(correct CorrectBracket) error {
	if len(correct.Regions) == 0 {
		return fmt.Errorf("correct bracket is empty")
	}
	correct.Year = s.Year
	correct.Gender = s.Gender

	filter := bson.M{"year": s.Year, "gender": s.Gender}

	var existing CorrectBracket
	err := s.Collections.CorrectBrackets.FindOne(context.TODO(), filter).Decode(&existing)
	notFound := errors.Is(err, mongo.ErrNoDocuments)
	if err != nil && !notFound {
		return fmt.Errorf("lookup for existing correct bracket failed: %w", err)
	}

	if notFound {
		if _, err := s.Collections.CorrectBrackets.InsertOne(context.TODO(), correct); err != nil {
			return fmt.Errorf("correct bracket insert failed: %w", err)
		}
		return nil
	}

	update := bson.M{"$set": bson.M{
		"regions":      correct.Regions,
		"last_updated": correct.LastUpdated,
	}}
	if _, err := s.Collections.CorrectBrackets.UpdateOne(context.TODO(), filter, update); err != nil {
		return fmt.Errorf("correct bracket update failed: %w", err)
	}
	return nil
}

// FetchCorrectBracket returns the stored answer key for this tournament.
func (s *Store) FetchCorrectBracket() (CorrectBracket, error) {
	filter := bson.M{"year": s.Year, "gender": s.Gender}

	var correct CorrectBracket
	err := s.Collections.CorrectBrackets.FindOne(context.TODO(), filter).Decode(&correct)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return CorrectBracket{}, err
		}
		return CorrectBracket{}, fmt.Errorf("error fetching correct bracket from db: %w", err)
	}
	return correct, nil
}
