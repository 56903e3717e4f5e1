/* store.go
 * Contains the Store struct and NewStore function. The methods for this
 * package are split across brackets.go, tournament.go, game_results.go,
 * correct_bracket.go and leaderboard.go, each covering one collection
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store wraps the Mongo collections for one (year, gender) tournament.
type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Year        int
	Gender      string
	Collections struct {
		Brackets        *mongo.Collection
		Fields          *mongo.Collection
		Mappings        *mongo.Collection
		GameResults     *mongo.Collection
		CorrectBrackets *mongo.Collection
		Leaderboard     *mongo.Collection
	}
}

// NewStore initialises the db connection and collection handles.
// Preconditions: Receives the database name, mongo URI, tournament year and gender
// Postconditions: Returns a pointer to the Store, or an error if it occurs
func NewStore(dbName string, mongoURI string, year int, gender string) (*Store, error) {
	if dbName == "" || gender == "" {
		return nil, fmt.Errorf("dbName and gender are required")
	}

	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	s := &Store{
		Client:   client,
		Database: db,
		Year:     year,
		Gender:   gender,
	}
	s.Collections.Brackets = db.Collection("brackets")
	s.Collections.Fields = db.Collection("tournament_fields")
	s.Collections.Mappings = db.Collection("game_id_mappings")
	s.Collections.GameResults = db.Collection("game_results")
	s.Collections.CorrectBrackets = db.Collection("correct_brackets")
	s.Collections.Leaderboard = db.Collection("leaderboard")
	return s, nil
}
