/* region.go
 * Contains the single-elimination engine for one region of the bracket. A
 * Region owns pick progression, undo/reset and champion derivation for either
 * a 16 team geographic region or the 4 team final four
 */

package bracket

import (
	"fmt"

	"mascot-madness/api/shared"
)

// Pairing order for a 16 team region. Index i of the seed-ordered team list is
// paired against index len-1-i, giving the standard reseeded first round
// (1v16, 8v9, 4v13, 5v12, 3v14, 6v11, 2v15, 7v10) without the caller having to
// pre-arrange the matchups.
var sixteenTeamOrder = []int{0, 7, 3, 4, 2, 5, 1, 6}

// Pairing order for the 4 slot final four: top vs bottom, bottom vs top.
var fourTeamOrder = []int{0, 1}

// Maps region order index (0..3) to a final four round 0 slot, so regions 0
// and 2 meet in one semifinal and regions 1 and 3 meet in the other.
var finalFourSlots = []int{0, 2, 3, 1}

// Region is a single-elimination sub bracket. Round 0 of Bracket is the seeded
// lineup; each later round halves in length down to the single champion slot.
// A Region instance is owned by exactly one Bracket and is mutated in place.
type Region struct {
	Name                string           `bson:"name" json:"name"`
	Bracket             [][]*shared.Team `bson:"bracket" json:"bracket"`
	RoundIndex          int              `bson:"round_index" json:"round_index"`
	CurrentMatchupIndex int              `bson:"current_matchup_index" json:"current_matchup_index"`
	NPicks              int              `bson:"n_picks" json:"n_picks"`
	TotalPicks          int              `bson:"total_picks" json:"total_picks"`
	Champion            *shared.Team     `bson:"champion,omitempty" json:"champion,omitempty"`
}

// NewRegion creates an empty Region and seeds round 0 from the given teams.
// Preconditions: Receives the region name and a team list of length 16 or 4,
// ordered by seed (best seed first)
// Postconditions: Returns a Region with round 0 paired via the fixed reseeding
// permutation and all later rounds allocated as nil filled slices, or an error
// if the team count is unsupported
func NewRegion(name string, teams []shared.Team) (*Region, error) {
	var order []int
	switch len(teams) {
	case 16:
		order = sixteenTeamOrder
	case 4:
		order = fourTeamOrder
	default:
		return nil, fmt.Errorf("region %q: unsupported team count %d, want 16 or 4", name, len(teams))
	}

	r := &Region{
		Name:       name,
		TotalPicks: len(teams) - 1,
	}

	round0 := make([]*shared.Team, len(teams))
	for slot, i := range order {
		top := teams[i]
		bottom := teams[len(teams)-1-i]
		round0[slot*2] = &top
		round0[slot*2+1] = &bottom
	}
	r.Bracket = append(r.Bracket, round0)

	for n := len(teams) / 2; n >= 1; n /= 2 {
		r.Bracket = append(r.Bracket, make([]*shared.Team, n))
	}

	return r, nil
}

// NewEmptyFinalFour creates the 4 slot meta region with no teams seeded yet.
// Slots are filled later via AddTeam as geographic regions complete.
func NewEmptyFinalFour() *Region {
	return &Region{
		Name:       shared.FinalFour,
		TotalPicks: 3,
		Bracket: [][]*shared.Team{
			make([]*shared.Team, 4),
			make([]*shared.Team, 2),
			make([]*shared.Team, 1),
		},
	}
}

// CurrentMatchup returns the two teams of the matchup currently awaiting a
// pick. Both values are nil if the region already has a champion or either
// slot is empty.
func (r *Region) CurrentMatchup() (*shared.Team, *shared.Team) {
	if r.Champion != nil {
		return nil, nil
	}
	round := r.Bracket[r.RoundIndex]
	if r.CurrentMatchupIndex+1 >= len(round) {
		return nil, nil
	}
	a := round[r.CurrentMatchupIndex]
	b := round[r.CurrentMatchupIndex+1]
	if a == nil || b == nil {
		return nil, nil
	}
	return a, b
}

// SelectWinner records the pick for the current matchup and advances the
// cursor, moving to the next round once every matchup in the current round is
// decided. When the terminal round is reached the champion is set.
// The winning team is not checked against the active matchup; the caller is
// trusted to pass one of the two teams returned by CurrentMatchup.
// Preconditions: Receives the winning team; the region must not already have a champion
// Postconditions: Writes the winner into the next round, updates the pick
// counters and cursor, or returns an error if the region is complete
func (r *Region) SelectWinner(team shared.Team) error {
	if r.Champion != nil {
		return fmt.Errorf("region %q already has a champion", r.Name)
	}

	r.Bracket[r.RoundIndex+1][r.CurrentMatchupIndex/2] = &team
	r.NPicks++

	if r.CurrentMatchupIndex+2 < len(r.Bracket[r.RoundIndex]) {
		r.CurrentMatchupIndex += 2
		return nil
	}

	r.CurrentMatchupIndex = 0
	r.RoundIndex++
	if r.RoundIndex == len(r.Bracket)-1 {
		r.Champion = r.Bracket[r.RoundIndex][0]
	}
	return nil
}

// GetChampion returns the region champion, or nil if the region is undecided.
func (r *Region) GetChampion() *shared.Team {
	return r.Champion
}

// Progress returns the completed and total pick counts for the region.
func (r *Region) Progress() (int, int) {
	return r.NPicks, r.TotalPicks
}

// Reset clears every pick in the region. Round 0 (the seeding) is preserved;
// all later rounds are emptied and the cursor returns to the first matchup.
// This is a full region redo, not an undo of one pick. Calling Reset on an
// already reset region is a no-op.
func (r *Region) Reset() {
	for round := 1; round < len(r.Bracket); round++ {
		for i := range r.Bracket[round] {
			r.Bracket[round][i] = nil
		}
	}
	r.RoundIndex = 0
	r.CurrentMatchupIndex = 0
	r.NPicks = 0
	r.Champion = nil
}

// AddTeam places a geographic region's champion into a final four round 0
// slot. The region order index (0..3) is cross mapped to a bracket slot so the
// correct regions meet in each semifinal.
// Preconditions: Receives the team and its region's index in the region order; only valid on the 4 slot region
// Postconditions: Fills the slot, or returns an error for a non final four region or out of range index
func (r *Region) AddTeam(team shared.Team, regionOrderIdx int) error {
	if len(r.Bracket[0]) != 4 {
		return fmt.Errorf("region %q: AddTeam is only valid for the final four region", r.Name)
	}
	if regionOrderIdx < 0 || regionOrderIdx >= len(finalFourSlots) {
		return fmt.Errorf("region order index %d out of range", regionOrderIdx)
	}
	r.Bracket[0][finalFourSlots[regionOrderIdx]] = &team
	return nil
}

// ClearSlot removes a geographic region's champion from its final four slot
// and resets the final four, since removing an input invalidates any downstream
// picks.
func (r *Region) ClearSlot(regionOrderIdx int) error {
	if len(r.Bracket[0]) != 4 {
		return fmt.Errorf("region %q: ClearSlot is only valid for the final four region", r.Name)
	}
	if regionOrderIdx < 0 || regionOrderIdx >= len(finalFourSlots) {
		return fmt.Errorf("region order index %d out of range", regionOrderIdx)
	}
	r.Bracket[0][finalFourSlots[regionOrderIdx]] = nil
	r.Reset()
	return nil
}
