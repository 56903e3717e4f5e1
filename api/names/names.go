/* names.go
 * Contains the logic for translating internal team keys to the sports feed's
 * naming convention and back. Resolution never fails: unknown keys fall back
 * to an algorithmic derivation
 */

package names

import (
	"regexp"
	"strings"
)

// Config holds the explicit lookup tables used by a Resolver. These are passed
// in rather than kept as package globals so tests can substitute fixtures.
type Config struct {
	// PlayIns maps year -> composite play-in key -> resolved single key.
	PlayIns map[int]map[string]string
	// Overrides maps internal key -> external feed key for teams whose feed
	// name does not follow the derivation rule.
	Overrides map[string]string
}

// Resolver translates team keys between the internal convention and the
// external feed convention.
type Resolver struct {
	playIns   map[int]map[string]string
	overrides map[string]string
	reverse   map[string]string
}

// Matches "state" anywhere in the key, not just as a whole word. This broad
// substring replace is the observed feed convention and is kept as is.
var stateRe = regexp.MustCompile(`(?i)state`)

// NewResolver builds a Resolver from the given Config.
// Preconditions: Receives a Config, any field of which may be nil
// Postconditions: Returns a Resolver with the reverse lookup table built from the overrides
func NewResolver(cfg Config) *Resolver {
	r := &Resolver{
		playIns:   cfg.PlayIns,
		overrides: cfg.Overrides,
		reverse:   make(map[string]string, len(cfg.Overrides)),
	}
	for internal, external := range cfg.Overrides {
		r.reverse[external] = internal
	}
	return r
}

// SubstitutePlayIn replaces a composite play-in key with its resolved single
// key for the given year. Keys with no configured substitution pass through
// unchanged.
func (r *Resolver) SubstitutePlayIn(teamKey string, year int) string {
	if byYear, ok := r.playIns[year]; ok {
		if resolved, ok := byYear[teamKey]; ok {
			return resolved
		}
	}
	return teamKey
}

// Resolve converts an internal team key to the external feed's naming convention.
// Preconditions: Receives an internal team key (may be a play-in composite key) and the tournament year
// Postconditions: Returns the external key. This function never fails; keys with no
// override are derived algorithmically (underscores to hyphens, then every
// occurrence of the substring "state" becomes "st")
func (r *Resolver) Resolve(teamKey string, year int) string {
	teamKey = r.SubstitutePlayIn(teamKey, year)

	if override, ok := r.overrides[teamKey]; ok {
		return override
	}

	derived := strings.ReplaceAll(teamKey, "_", "-")
	return stateRe.ReplaceAllString(derived, "st")
}

// Reverse converts an external feed key back to the internal convention. This
// is a best effort inverse used only when displaying results: names with no
// override entry pass through unchanged.
func (r *Resolver) Reverse(externalKey string) string {
	if internal, ok := r.reverse[externalKey]; ok {
		return internal
	}
	return externalKey
}

// DefaultConfig returns the production lookup tables. The override table holds
// the teams whose feed name cannot be derived from the internal key.
func DefaultConfig() Config {
	return Config{
		PlayIns: map[int]map[string]string{
			2025: {
				"alabama_state_or_saint_francis":    "alabama_state",
				"san_diego_state_or_north_carolina": "north_carolina",
				"american_or_mount_st_marys":        "mount_st_marys",
				"texas_or_xavier":                   "xavier",
			},
		},
		Overrides: map[string]string{
			"connecticut":               "uconn",
			"saint_marys":               "st-marys",
			"saint_peters":              "st-peters",
			"mississippi":               "ole-miss",
			"north_carolina_wilmington": "unc-wilmington",
		},
	}
}
