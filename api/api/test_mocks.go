/* test_mocks.go
 * Contains mock structures and interfaces for testing the API package
 */

package api

import (
	"context"
	"fmt"
	"sync"

	"mascot-madness/api/external"
	"mascot-madness/api/shared"
	"mascot-madness/api/store"

	"go.mongodb.org/mongo-driver/mongo"
)

// MockStore implements the store Interface for testing
type MockStore struct {
	mu sync.Mutex

	// Storage for mock data
	Field        map[string][]shared.Team
	RegionOrder  []string
	Mapping      shared.GameIDMapping
	Brackets     map[string]store.BracketRecord // keyed by owner id
	GameResults  map[string]external.GameResult
	Correct      store.CorrectBracket
	Leaderboard  store.Leaderboard
	ScoreUpdates map[string][2]int // bracket id -> {score, maxScore}

	// Error injection for testing error paths
	GetTournamentFieldError  error
	GetGameIDMappingError    error
	StoreBracketError        error
	GetBracketError          error
	GetPublishedError        error
	UpdateBracketScoreError  error
	StoreGameResultsError    error
	GetGameResultsError      error
	StoreCorrectBracketError error
	StoreLeaderboardError    error
	FetchLeaderboardError    error

	Year   int
	Gender string
}

// mockDatabase implements the minimal Database interface needed for tests
type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}

// NewMockStore creates a new MockStore with default values
func NewMockStore() *MockStore {
	return &MockStore{
		Field:        make(map[string][]shared.Team),
		Brackets:     make(map[string]store.BracketRecord),
		GameResults:  make(map[string]external.GameResult),
		ScoreUpdates: make(map[string][2]int),
		Year:         2025,
		Gender:       "men",
	}
}

func (m *MockStore) GetTournamentField() (map[string][]shared.Team, []string, error) {
	if m.GetTournamentFieldError != nil {
		return nil, nil, m.GetTournamentFieldError
	}
	if len(m.Field) == 0 {
		return nil, nil, fmt.Errorf("no tournament field stored for %d %s: %w", m.Year, m.Gender, mongo.ErrNoDocuments)
	}
	return m.Field, m.RegionOrder, nil
}

func (m *MockStore) GetGameIDMapping() (shared.GameIDMapping, error) {
	if m.GetGameIDMappingError != nil {
		return nil, m.GetGameIDMappingError
	}
	if len(m.Mapping) == 0 {
		return nil, fmt.Errorf("no game id mapping stored for %d %s: %w", m.Year, m.Gender, mongo.ErrNoDocuments)
	}
	return m.Mapping, nil
}

func (m *MockStore) StoreBracket(record store.BracketRecord) (string, error) {
	if m.StoreBracketError != nil {
		return "", m.StoreBracketError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if record.ID == "" {
		record.ID = fmt.Sprintf("bracket-%d", len(m.Brackets)+1)
	}
	m.Brackets[record.Bracket.OwnerID] = record
	return record.ID, nil
}

func (m *MockStore) GetBracket(ownerID string) (store.BracketRecord, error) {
	if m.GetBracketError != nil {
		return store.BracketRecord{}, m.GetBracketError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.Brackets[ownerID]
	if !ok {
		return store.BracketRecord{}, mongo.ErrNoDocuments
	}
	return record, nil
}

func (m *MockStore) GetPublishedBrackets() ([]store.BracketRecord, error) {
	if m.GetPublishedError != nil {
		return nil, m.GetPublishedError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var published []store.BracketRecord
	for _, record := range m.Brackets {
		if record.Bracket.Published {
			published = append(published, record)
		}
	}
	return published, nil
}

func (m *MockStore) UpdateBracketScore(id string, score int, maxScore int) error {
	if m.UpdateBracketScoreError != nil {
		return m.UpdateBracketScoreError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ScoreUpdates[id] = [2]int{score, maxScore}
	return nil
}

func (m *MockStore) StoreGameResults(results map[string]external.GameResult) error {
	if m.StoreGameResultsError != nil {
		return m.StoreGameResultsError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, result := range results {
		m.GameResults[id] = result
	}
	return nil
}

func (m *MockStore) GetGameResults(gameIDs []string) (map[string]external.GameResult, error) {
	if m.GetGameResultsError != nil {
		return nil, m.GetGameResultsError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	results := make(map[string]external.GameResult)
	for _, id := range gameIDs {
		if result, ok := m.GameResults[id]; ok {
			results[id] = result
		}
	}
	return results, nil
}

func (m *MockStore) StoreCorrectBracket(correct store.CorrectBracket) error {
	if m.StoreCorrectBracketError != nil {
		return m.StoreCorrectBracketError
	}
	m.Correct = correct
	return nil
}

func (m *MockStore) FetchCorrectBracket() (store.CorrectBracket, error) {
	if m.Correct.Regions == nil {
		return store.CorrectBracket{}, mongo.ErrNoDocuments
	}
	return m.Correct, nil
}

func (m *MockStore) StoreLeaderboard(leaderboard store.Leaderboard) error {
	if m.StoreLeaderboardError != nil {
		return m.StoreLeaderboardError
	}
	m.Leaderboard = leaderboard
	return nil
}

func (m *MockStore) FetchLeaderboardFromDB() ([]store.LeaderboardEntry, error) {
	if m.FetchLeaderboardError != nil {
		return nil, m.FetchLeaderboardError
	}
	if len(m.Leaderboard.Entries) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return m.Leaderboard.Entries, nil
}

func (m *MockStore) GetYear() int {
	return m.Year
}

func (m *MockStore) GetGender() string {
	return m.Gender
}

func (m *MockStore) GetDatabase() interface{ Name() string } {
	return &mockDatabase{name: "test_db"}
}

func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return nil
}

// Ensure MockStore implements Interface
var _ store.Interface = (*MockStore)(nil)
