/* bracket.go
 * Contains the Bracket aggregate: one user's full tournament bracket, made of
 * one Region per geographic region plus the final four meta region. The
 * aggregate owns the propagation of region champions into the final four
 */

package bracket

import (
	"fmt"
	"slices"

	"mascot-madness/api/names"
	"mascot-madness/api/shared"
)

// Bracket is one user's full tournament bracket. Regions are keyed by region
// name; RegionOrder fixes the order geographic champions are slotted into the
// final four. The struct round-trips through bson without loss.
type Bracket struct {
	Name         string             `bson:"name" json:"name"`
	OwnerID      string             `bson:"owner_id" json:"owner_id"`
	Published    bool               `bson:"published" json:"published"`
	Contributors []string           `bson:"contributors,omitempty" json:"contributors,omitempty"`
	Year         int                `bson:"year" json:"year"`
	RegionOrder  []string           `bson:"region_order" json:"region_order"`
	Regions      map[string]*Region `bson:"regions" json:"regions"`
}

// NewBracket builds and seeds a bracket for the given tournament field.
// Preconditions: Receives the bracket name, owner id, year, region order, a
// map of region name to its 16 seed-ordered teams, and a Resolver for play-in
// substitution
// Postconditions: Returns a Bracket with every geographic region seeded and an
// empty final four region, or an error if a region's field is missing or malformed
func NewBracket(name string, ownerID string, year int, regionOrder []string, field map[string][]shared.Team, resolver *names.Resolver) (*Bracket, error) {
	b := &Bracket{
		Name:        name,
		OwnerID:     ownerID,
		Year:        year,
		RegionOrder: regionOrder,
		Regions:     make(map[string]*Region, len(regionOrder)+1),
	}

	for _, regionName := range regionOrder {
		teams, ok := field[regionName]
		if !ok {
			return nil, fmt.Errorf("tournament field is missing region %q", regionName)
		}

		// Composite play-in keys are substituted at seeding time so the
		// bracket always holds decided slots
		seeded := make([]shared.Team, len(teams))
		for i, team := range teams {
			name := team.Name
			if team.IsPlayIn() {
				name = resolver.SubstitutePlayIn(name, year)
			}
			seeded[i] = shared.Team{Name: name, Seed: team.Seed}
		}

		region, err := NewRegion(regionName, seeded)
		if err != nil {
			return nil, err
		}
		b.Regions[regionName] = region
	}

	b.Regions[shared.FinalFour] = NewEmptyFinalFour()
	return b, nil
}

// Region returns the named region, or an error identifying the bracket and
// the missing region name.
func (b *Bracket) Region(name string) (*Region, error) {
	region, ok := b.Regions[name]
	if !ok {
		return nil, fmt.Errorf("bracket %q has no region %q", b.Name, name)
	}
	return region, nil
}

// SelectWinner records a pick in the named region. When the pick completes a
// geographic region, that region's champion is propagated into its final four
// slot.
// Preconditions: Receives the region name and the winning team
// Postconditions: Updates the region and, if newly complete, the final four
// seeding, or returns an error identifying the region
func (b *Bracket) SelectWinner(regionName string, team shared.Team) error {
	region, err := b.Region(regionName)
	if err != nil {
		return err
	}

	alreadyComplete := region.GetChampion() != nil
	if err := region.SelectWinner(team); err != nil {
		return err
	}

	if regionName == shared.FinalFour || alreadyComplete {
		return nil
	}
	champion := region.GetChampion()
	if champion == nil {
		return nil
	}

	idx := slices.Index(b.RegionOrder, regionName)
	if idx < 0 {
		return fmt.Errorf("region %q is not in the region order for bracket %q", regionName, b.Name)
	}
	return b.Regions[shared.FinalFour].AddTeam(*champion, idx)
}

// ResetRegion redoes the named region from its seeding. Resetting a geographic
// region also removes its champion from the final four, which resets the final
// four picks as well.
func (b *Bracket) ResetRegion(regionName string) error {
	region, err := b.Region(regionName)
	if err != nil {
		return err
	}

	hadChampion := region.GetChampion() != nil
	region.Reset()

	if regionName == shared.FinalFour || !hadChampion {
		return nil
	}
	idx := slices.Index(b.RegionOrder, regionName)
	if idx < 0 {
		return fmt.Errorf("region %q is not in the region order for bracket %q", regionName, b.Name)
	}
	return b.Regions[shared.FinalFour].ClearSlot(idx)
}

// OverallChampion returns the tournament champion picked in this bracket, or
// nil until all four geographic regions and both final four rounds are decided.
func (b *Bracket) OverallChampion() *shared.Team {
	finalFour, ok := b.Regions[shared.FinalFour]
	if !ok {
		return nil
	}
	return finalFour.GetChampion()
}

// Progress returns the completed and total pick counts across all regions.
func (b *Bracket) Progress() (int, int) {
	var picks, total int
	for _, region := range b.Regions {
		n, t := region.Progress()
		picks += n
		total += t
	}
	return picks, total
}
