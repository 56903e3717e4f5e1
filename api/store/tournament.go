/* tournament.go
 * Contains the methods for interacting with the tournament_fields and
 * game_id_mappings collections. Both are externally maintained configuration:
 * the engine only ever reads them
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"mascot-madness/api/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetTournamentField fetches the seeded team lists for this tournament.
// Preconditions: The field document for (year, gender) must have been created
// by the admin tooling
// Postconditions: Returns the region -> teams map and the region order, or an
// error if the document is missing or malformed
func (s *Store) GetTournamentField() (map[string][]shared.Team, []string, error) {
	filter := bson.M{"year": s.Year, "gender": s.Gender}

	var record FieldRecord
	err := s.Collections.Fields.FindOne(context.TODO(), filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, fmt.Errorf("no tournament field stored for %d %s: %w", s.Year, s.Gender, err)
		}
		return nil, nil, fmt.Errorf("error fetching tournament field from db: %w", err)
	}

	if len(record.RegionOrder) == 0 || len(record.Regions) == 0 {
		return nil, nil, fmt.Errorf("tournament field for %d %s is empty", s.Year, s.Gender)
	}
	return record.Regions, record.RegionOrder, nil
}

// GetGameIDMapping fetches the region/round game id mapping for this
// tournament.
// Postconditions: Returns the GameIDMapping, or an error if the document is
// missing or holds no regions
func (s *Store) GetGameIDMapping() (shared.GameIDMapping, error) {
	filter := bson.M{"year": s.Year, "gender": s.Gender}

	var record MappingRecord
	err := s.Collections.Mappings.FindOne(context.TODO(), filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("no game id mapping stored for %d %s: %w", s.Year, s.Gender, err)
		}
		return nil, fmt.Errorf("error fetching game id mapping from db: %w", err)
	}

	if len(record.Regions) == 0 {
		return nil, fmt.Errorf("game id mapping for %d %s is empty", s.Year, s.Gender)
	}
	return record.Regions, nil
}
