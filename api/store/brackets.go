/* brackets.go
 * Contains the methods for interacting with the brackets collection
 */

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StoreBracket inserts or updates a user's bracket for this tournament.
// Preconditions: Receives a BracketRecord; an empty ID means a new document
// Postconditions: Upserts the document keyed by owner, year and gender and
// returns the record id, or an error if the operation was unsuccessful
func (s *Store) StoreBracket(record BracketRecord) (string, error) {
	record.Year = s.Year
	record.Gender = s.Gender
	record.UpdatedAt = time.Now()

	filter := bson.M{
		"bracket.owner_id": record.Bracket.OwnerID,
		"year":             s.Year,
		"gender":           s.Gender,
	}

	var existing BracketRecord
	err := s.Collections.Brackets.FindOne(context.TODO(), filter).Decode(&existing)
	notFound := errors.Is(err, mongo.ErrNoDocuments)
	if err != nil && !notFound {
		return "", fmt.Errorf("lookup for existing bracket failed: %w", err)
	}

	if notFound {
		if record.ID == "" {
			record.ID = uuid.NewString()
		}
		if _, err := s.Collections.Brackets.InsertOne(context.TODO(), record); err != nil {
			return "", fmt.Errorf("failed to insert new bracket: %w", err)
		}
		return record.ID, nil
	}

	record.ID = existing.ID
	update := bson.M{"$set": bson.M{
		"bracket":    record.Bracket,
		"updated_at": record.UpdatedAt,
	}}
	if _, err := s.Collections.Brackets.UpdateOne(context.TODO(), filter, update); err != nil {
		return "", fmt.Errorf("failed to update existing bracket: %w", err)
	}
	return record.ID, nil
}

// GetBracket fetches the bracket owned by the given user for this tournament.
// Preconditions: Receives the owner's identity string
// Postconditions: Returns the BracketRecord if it exists, mongo.ErrNoDocuments
// if the user has no bracket, or another error if it occurs
func (s *Store) GetBracket(ownerID string) (BracketRecord, error) {
	filter := bson.M{
		"bracket.owner_id": ownerID,
		"year":             s.Year,
		"gender":           s.Gender,
	}

	var record BracketRecord
	err := s.Collections.Brackets.FindOne(context.TODO(), filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return BracketRecord{}, err
		}
		return BracketRecord{}, fmt.Errorf("error fetching bracket from db: %w", err)
	}
	return record, nil
}

// GetPublishedBrackets fetches every published bracket for this tournament.
// Used by the batch scoring pass.
func (s *Store) GetPublishedBrackets() ([]BracketRecord, error) {
	filter := bson.M{
		"bracket.published": true,
		"year":              s.Year,
		"gender":            s.Gender,
	}

	cursor, err := s.Collections.Brackets.Find(context.TODO(), filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching published brackets: %w", err)
	}

	var records []BracketRecord
	if err := cursor.All(context.TODO(), &records); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into bracket records: %w", err)
	}
	return records, nil
}

// UpdateBracketScore writes a bracket's score and max achievable score back to
// its document. Scoring is idempotent, so re-running a pass simply rewrites
// the same values.
func (s *Store) UpdateBracketScore(id string, score int, maxScore int) error {
	update := bson.M{"$set": bson.M{
		"score":      score,
		"max_score":  maxScore,
		"updated_at": time.Now(),
	}}
	result, err := s.Collections.Brackets.UpdateOne(context.TODO(), bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update score for bracket %q: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("bracket %q not found: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}
