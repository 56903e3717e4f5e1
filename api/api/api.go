/* api.go
 * This file contains the public methods for interacting with this package.
 * For consistent results, functions should only be called from this file, not
 * the sub packages for bracket, logic and store
 */

package api

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"mascot-madness/api/bracket"
	"mascot-madness/api/external"
	"mascot-madness/api/logic"
	"mascot-madness/api/names"
	"mascot-madness/api/shared"
	"mascot-madness/api/store"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"
)

// Number of brackets scored concurrently during a batch pass. Each bracket's
// score depends only on its own picks plus the shared read-only inputs, so
// the passes are independent.
const scoringConcurrency = 8

// API provides methods for interacting with the bracket game data layer.
type API struct {
	Store    store.Interface
	Feed     *external.Client
	Resolver *names.Resolver
	Orders   logic.RoundOrders
	Logger   zerolog.Logger
}

// NewAPI creates a new API instance with the provided configuration.
// Preconditions: Receives the db name, mongo URI, tournament year and gender,
// the feed base url and api key, and a logger
// Postconditions: Returns an API wired with the production resolver tables and
// round orders, or an error if it occurs
func NewAPI(dbName string, mongoURI string, year int, gender string, feedBaseURL string, feedAPIKey string, logger zerolog.Logger) (*API, error) {
	if dbName == "" || gender == "" {
		return nil, fmt.Errorf("dbName and gender are required")
	}

	s, err := store.NewStore(dbName, mongoURI, year, gender)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	feed, err := external.NewClient(feedBaseURL, feedAPIKey, year, gender)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize feed client: %w", err)
	}

	return &API{
		Store:    s,
		Feed:     feed,
		Resolver: names.NewResolver(names.DefaultConfig()),
		Orders:   logic.DefaultRoundOrders(),
		Logger:   logger,
	}, nil
}

// CreateBracket seeds a fresh bracket for the user from the stored tournament
// field. An existing bracket for the same tournament is replaced.
// Preconditions: Receives the user and a display name for the bracket
// Postconditions: Persists the new bracket and returns its id, or an error if it occurs
func (a *API) CreateBracket(user shared.User, name string) (string, error) {
	field, regionOrder, err := a.Store.GetTournamentField()
	if err != nil {
		return "", err
	}

	userBracket, err := bracket.NewBracket(name, user.UserID, a.Store.GetYear(), regionOrder, field, a.Resolver)
	if err != nil {
		return "", err
	}

	id, err := a.Store.StoreBracket(store.BracketRecord{Bracket: *userBracket})
	if err != nil {
		return "", err
	}
	a.Logger.Info().Str("bracket_id", id).Str("owner", user.UserID).Msg("created bracket")
	return id, nil
}

// PickWinner records the user's pick for the current matchup of the named
// region. The typed team name is matched against the two teams of the active
// matchup, so partial names are accepted.
// Preconditions: Receives the user, the region name and the raw team input
// Postconditions: Persists the updated bracket and returns a response string
// describing the pick and the next matchup, or an error if it occurs
func (a *API) PickWinner(user shared.User, regionName string, teamInput string) (string, error) {
	record, err := a.Store.GetBracket(user.UserID)
	if err != nil {
		return "", err
	}
	userBracket := &record.Bracket

	region, err := userBracket.Region(regionName)
	if err != nil {
		return "", err
	}

	teamA, teamB := region.CurrentMatchup()
	if teamA == nil || teamB == nil {
		return "", fmt.Errorf("region %q has no open matchup; use $reset to redo it", regionName)
	}

	matched, err := logic.MatchTeamName(teamInput, []string{teamA.Name, teamB.Name})
	if err != nil {
		return "", err
	}
	winner := *teamA
	if matched == teamB.Name {
		winner = *teamB
	}

	if err := userBracket.SelectWinner(regionName, winner); err != nil {
		return "", err
	}
	if _, err := a.Store.StoreBracket(record); err != nil {
		return "", err
	}

	var response strings.Builder
	response.WriteString(fmt.Sprintf("%s advances in %s\n", displayName(winner.Name), regionName))
	if champion := region.GetChampion(); champion != nil {
		response.WriteString(fmt.Sprintf("%s wins the %s region!\n", displayName(champion.Name), regionName))
	} else if nextA, nextB := region.CurrentMatchup(); nextA != nil && nextB != nil {
		response.WriteString(fmt.Sprintf("Next up: (%d) %s vs (%d) %s\n", nextA.Seed, displayName(nextA.Name), nextB.Seed, displayName(nextB.Name)))
	}
	if overall := userBracket.OverallChampion(); overall != nil {
		response.WriteString(fmt.Sprintf("Your champion: %s\n", displayName(overall.Name)))
	}
	return response.String(), nil
}

// ShowBracket summarises the user's bracket: per region progress, the current
// matchup awaiting a pick, and champions where decided.
func (a *API) ShowBracket(user shared.User) (string, error) {
	record, err := a.Store.GetBracket(user.UserID)
	if err != nil {
		return "", err
	}
	userBracket := &record.Bracket

	var response strings.Builder
	response.WriteString(fmt.Sprintf("%s\n", userBracket.Name))

	regionNames := append([]string{}, userBracket.RegionOrder...)
	regionNames = append(regionNames, shared.FinalFour)
	for _, regionName := range regionNames {
		region, err := userBracket.Region(regionName)
		if err != nil {
			return "", err
		}
		picks, total := region.Progress()
		response.WriteString(fmt.Sprintf("- %s: %d/%d picks", regionName, picks, total))
		if champion := region.GetChampion(); champion != nil {
			response.WriteString(fmt.Sprintf(", champion %s", displayName(champion.Name)))
		} else if teamA, teamB := region.CurrentMatchup(); teamA != nil && teamB != nil {
			response.WriteString(fmt.Sprintf(", next (%d) %s vs (%d) %s", teamA.Seed, displayName(teamA.Name), teamB.Seed, displayName(teamB.Name)))
		}
		response.WriteString("\n")
	}

	if overall := userBracket.OverallChampion(); overall != nil {
		response.WriteString(fmt.Sprintf("Champion: %s\n", displayName(overall.Name)))
	}
	return response.String(), nil
}

// ResetRegion redoes one region of the user's bracket from its seeding.
// Resetting a completed geographic region also clears its final four slot.
func (a *API) ResetRegion(user shared.User, regionName string) error {
	record, err := a.Store.GetBracket(user.UserID)
	if err != nil {
		return err
	}
	if err := record.Bracket.ResetRegion(regionName); err != nil {
		return err
	}
	_, err = a.Store.StoreBracket(record)
	return err
}

// PublishBracket marks the user's bracket as published so the batch scoring
// pass includes it. A bracket must be complete before it can be published.
func (a *API) PublishBracket(user shared.User) error {
	record, err := a.Store.GetBracket(user.UserID)
	if err != nil {
		return err
	}

	picks, total := record.Bracket.Progress()
	if picks != total {
		return fmt.Errorf("bracket %q is incomplete: %d of %d picks made", record.Bracket.Name, picks, total)
	}

	record.Bracket.Published = true
	_, err = a.Store.StoreBracket(record)
	return err
}

// GetChampion reports the overall champion picked in the user's bracket, or
// that the bracket has not decided one yet.
func (a *API) GetChampion(user shared.User) (string, error) {
	record, err := a.Store.GetBracket(user.UserID)
	if err != nil {
		return "", err
	}
	if champion := record.Bracket.OverallChampion(); champion != nil {
		return fmt.Sprintf("%s's champion: (%d) %s", record.Bracket.Name, champion.Seed, displayName(champion.Name)), nil
	}
	return fmt.Sprintf("%s has not picked a champion yet", record.Bracket.Name), nil
}

// GetResults renders the stored answer key as a region-by-region list of the
// games decided so far.
// Postconditions: Returns the rendered results, or an error if no answer key
// has been stored yet
func (a *API) GetResults() (string, error) {
	correct, err := a.Store.FetchCorrectBracket()
	if err != nil {
		return "", err
	}

	regionNames := make([]string, 0, len(correct.Regions))
	for regionName := range correct.Regions {
		if regionName != shared.FinalFour {
			regionNames = append(regionNames, regionName)
		}
	}
	sort.Strings(regionNames)
	if _, ok := correct.Regions[shared.FinalFour]; ok {
		regionNames = append(regionNames, shared.FinalFour)
	}

	var response strings.Builder
	decided := 0
	for _, regionName := range regionNames {
		rounds := correct.Regions[regionName]
		labels := make([]string, 0, len(rounds))
		for label := range rounds {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			for _, game := range rounds[label] {
				if game.Winner == "" {
					continue
				}
				decided++
				response.WriteString(fmt.Sprintf("%s %s: %s def. %s", regionName, label, displayName(game.Winner), displayName(game.Loser)))
				if game.WinnerScore != nil && game.LoserScore != nil {
					response.WriteString(fmt.Sprintf(" (%d-%d)", *game.WinnerScore, *game.LoserScore))
				}
				response.WriteString("\n")
			}
		}
	}
	if decided == 0 {
		return "No games have been decided yet", nil
	}
	return "Results so far:\n" + response.String(), nil
}

// UpdateCorrectBracket fetches the latest game results from the feed, stores
// them, and rebuilds the persisted answer key bracket.
// Postconditions: The game_results and correct_brackets collections reflect
// the feed, or an error is returned and nothing is partially rebuilt
func (a *API) UpdateCorrectBracket() error {
	mapping, err := a.Store.GetGameIDMapping()
	if err != nil {
		return err
	}
	gameIDs := gameIDsFromMapping(mapping)

	a.Logger.Info().Int("games", len(gameIDs)).Msg("updating game results stored in db...")
	results, err := a.Feed.FetchGameResults(gameIDs)
	if err != nil {
		return err
	}
	if err := a.Store.StoreGameResults(results); err != nil {
		return err
	}

	correct, err := logic.BuildCorrectBracket(mapping, results, a.Resolver, a.Orders)
	if err != nil {
		return err
	}
	if err := a.Store.StoreCorrectBracket(correct); err != nil {
		return err
	}
	a.Logger.Info().Int("results", len(results)).Msg("correct bracket rebuilt")
	return nil
}

// ScoreBrackets scores every published bracket against the stored results and
// rebuilds the leaderboard. Brackets are scored concurrently; a bracket whose
// own data is malformed is logged and skipped without aborting the pass.
// Postconditions: Every scorable bracket has its score written back and the
// leaderboard collection is updated, or an error is returned
func (a *API) ScoreBrackets() error {
	mapping, err := a.Store.GetGameIDMapping()
	if err != nil {
		return err
	}

	// The full result map is loaded before any bracket is scored so the
	// eliminated-team accounting never runs against partial data
	results, err := a.Store.GetGameResults(gameIDsFromMapping(mapping))
	if err != nil {
		return err
	}

	records, err := a.Store.GetPublishedBrackets()
	if err != nil {
		return err
	}

	var mu sync.Mutex
	var entries []store.LeaderboardEntry

	var group errgroup.Group
	group.SetLimit(scoringConcurrency)
	for _, record := range records {
		group.Go(func() error {
			score, err := logic.ScoreBracket(&record.Bracket, mapping, results, a.Resolver, a.Orders)
			if err != nil {
				// Fatal for this bracket only; the batch carries on
				a.Logger.Warn().Err(err).Str("bracket_id", record.ID).Msg("skipping unscorable bracket")
				return nil
			}
			if err := a.Store.UpdateBracketScore(record.ID, score.Score, score.MaxScore); err != nil {
				if errors.Is(err, mongo.ErrNoDocuments) {
					a.Logger.Warn().Str("bracket_id", record.ID).Msg("bracket document disappeared during scoring; skipping")
					return nil
				}
				return err
			}

			entry := store.LeaderboardEntry{
				BracketID:   record.ID,
				DisplayName: record.Bracket.Name,
				Score:       score.Score,
				MaxScore:    score.MaxScore,
			}
			if champion := record.Bracket.OverallChampion(); champion != nil {
				entry.Champion = champion.Name
			}
			mu.Lock()
			entries = append(entries, entry)
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	if len(entries) == 0 {
		a.Logger.Info().Msg("no published brackets to score")
		return nil
	}

	// Persist in a deterministic order; ranks are derived at read time
	sort.Slice(entries, func(i, j int) bool { return entries[i].BracketID < entries[j].BracketID })
	if err := a.Store.StoreLeaderboard(store.Leaderboard{Entries: entries}); err != nil {
		return err
	}
	a.Logger.Info().Int("brackets", len(entries)).Msg("scoring pass complete")
	return nil
}

// GetLeaderboard fetches the leaderboard from the db and generates a response
// string with competition ranks (ties share a rank, the next distinct score
// takes its 1-based position).
func (a *API) GetLeaderboard() (string, error) {
	entries, err := a.Store.FetchLeaderboardFromDB()
	if err != nil {
		return "", err
	}

	ranked := logic.Rank(entries)

	var response strings.Builder
	response.WriteString("The best brackets are:\n")
	for _, entry := range ranked {
		response.WriteString(fmt.Sprintf("%d. %s, %d points (max %d)", entry.Rank, entry.DisplayName, entry.Score, entry.MaxScore))
		if entry.Champion != "" {
			response.WriteString(fmt.Sprintf(", champion %s", displayName(entry.Champion)))
		}
		response.WriteString("\n")
	}
	return response.String(), nil
}

// GetTournamentInfo gets the following information about the tournament:
// year, gender, regions and total picks.
// It returns a string slice with the contents attribute : value.
func (a *API) GetTournamentInfo() ([]string, error) {
	_, regionOrder, err := a.Store.GetTournamentField()
	if err != nil {
		return nil, err
	}

	var values []string
	values = append(values, fmt.Sprintf("Tournament: %s", a.Store.GetDatabase().Name()))
	values = append(values, fmt.Sprintf("Year: %d", a.Store.GetYear()))
	values = append(values, fmt.Sprintf("Bracket: %s", a.Store.GetGender()))
	values = append(values, fmt.Sprintf("Regions: %s", strings.Join(regionOrder, ", ")))
	values = append(values, fmt.Sprintf("Total picks: %d", len(regionOrder)*15+3))
	return values, nil
}

// gameIDsFromMapping flattens a mapping into the list of mapped game ids,
// skipping empty slots.
func gameIDsFromMapping(mapping shared.GameIDMapping) []string {
	var gameIDs []string
	for _, rounds := range mapping {
		for _, ids := range rounds {
			for _, id := range ids {
				if id != "" {
					gameIDs = append(gameIDs, id)
				}
			}
		}
	}
	sort.Strings(gameIDs)
	return gameIDs
}

// displayName converts an internal team key to something readable in chat.
func displayName(teamKey string) string {
	return strings.ReplaceAll(teamKey, "_", " ")
}
