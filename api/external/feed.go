/* feed.go
 * Contains the client used to fetch game data from the sports feed api and the
 * normalization of raw feed records into GameResults
 */

package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// The feed rejects lookups of more than 30 game ids per request, so fetches
// are chunked and the chunk results merged before anything is returned.
const chunkSize = 30

// Client fetches game records from the sports feed. Requests are rate limited
// to stay inside the feed's usage policy.
type Client struct {
	BaseURL    string
	APIKey     string
	Year       int
	Gender     string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
}

// NewClient creates a feed client for one (year, gender) tournament.
// Preconditions: Receives the feed base url, api key, tournament year and gender
// Postconditions: Returns a Client, or an error if the base url or gender is empty
func NewClient(baseURL string, apiKey string, year int, gender string) (*Client, error) {
	if baseURL == "" || gender == "" {
		return nil, fmt.Errorf("baseURL and gender are required")
	}
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		Year:       year,
		Gender:     gender,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		Limiter:    rate.NewLimiter(rate.Every(2*time.Second), 1),
	}, nil
}

// FetchGameResults fetches and normalizes results for the given game ids.
// Lookups are issued in chunks of 30 and merged into a single map, so callers
// never see a partially populated result set.
// Preconditions: Receives a slice of external game ids, empty entries are skipped
// Postconditions: Returns a map of game id to GameResult containing only
// decided games, or an error if any chunk fails
func (c *Client) FetchGameResults(gameIDs []string) (map[string]GameResult, error) {
	var wanted []string
	for _, id := range gameIDs {
		if id != "" {
			wanted = append(wanted, id)
		}
	}

	results := make(map[string]GameResult, len(wanted))
	for start := 0; start < len(wanted); start += chunkSize {
		end := min(start+chunkSize, len(wanted))
		games, err := c.fetchChunk(wanted[start:end])
		if err != nil {
			return nil, fmt.Errorf("error fetching games %d..%d from feed: %w", start, end-1, err)
		}
		for id, result := range NormalizeGames(games) {
			results[id] = result
		}
	}
	return results, nil
}

// fetchChunk issues one feed request for up to chunkSize game ids.
func (c *Client) fetchChunk(gameIDs []string) ([]FeedGame, error) {
	if err := c.Limiter.Wait(context.TODO()); err != nil {
		return nil, err
	}

	parsedURL, err := url.Parse(fmt.Sprintf("%s/v1/%s/%d/games", c.BaseURL, c.Gender, c.Year))
	if err != nil {
		return nil, fmt.Errorf("invalid feed url: %w", err)
	}
	params := parsedURL.Query()
	params.Set("ids", strings.Join(gameIDs, ","))
	parsedURL.RawQuery = params.Encode()

	request, err := http.NewRequest("GET", parsedURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("User-Agent", "MascotMadnessFetcher/1.0")
	if c.APIKey != "" {
		request.Header.Set("Authorization", "Apikey "+c.APIKey)
	}

	response, err := c.HTTPClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed response: %w", err)
	}

	var envelope feedResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}
	return envelope.Games, nil
}

// NormalizeGames converts raw feed records into GameResults keyed by game id.
// Games that are not final are dropped; the scoring engine treats their
// absence as "not yet decided". A later record with the same game id
// supersedes the earlier one.
func NormalizeGames(games []FeedGame) map[string]GameResult {
	results := make(map[string]GameResult, len(games))
	for _, game := range games {
		if !strings.EqualFold(game.Status, StatusFinal) {
			continue
		}
		result := GameResult{
			GameID:    game.GameID,
			HomeTeam:  game.HomeTeam,
			AwayTeam:  game.AwayTeam,
			HomeScore: game.HomeScore,
			AwayScore: game.AwayScore,
			Status:    StatusFinal,
		}
		if game.HomeWinner {
			result.Winner = game.HomeTeam
			result.Loser = game.AwayTeam
		} else {
			result.Winner = game.AwayTeam
			result.Loser = game.HomeTeam
		}
		results[game.GameID] = result
	}
	return results
}
