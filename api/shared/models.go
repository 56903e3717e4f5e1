/* models.go
 * This file contains the structs and helper functions that are shared between sub packages
 */

package shared

import "strings"

// User identifies a bracket owner. The ID is an opaque string supplied by the
// identity provider and is never parsed.
type User struct {
	UserID   string
	Username string
}

// Team is one tournament entrant. Name is the canonical internal key
// (lowercase, underscore separated). A name of the form "<a>_or_<b>" is a
// play-in composite key whose true occupant is decided by a First Four game.
type Team struct {
	Name string `bson:"name" json:"name"`
	Seed int    `bson:"seed" json:"seed"`
}

// IsPlayIn reports whether the team name is an unresolved play-in composite key.
func (t Team) IsPlayIn() bool {
	return strings.Contains(t.Name, "_or_")
}

// GameIDMapping maps region -> round label ("round_N") -> ordered external
// game ids. The order within a round label is the bracket's visual slot order,
// not the feed's chronological order. An empty string marks a slot with no
// mapped game.
type GameIDMapping map[string]map[string][]string

// FinalFour is the name of the meta region that combines the four geographic
// region champions.
const FinalFour = "final_four"
