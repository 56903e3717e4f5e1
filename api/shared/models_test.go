/* models_test.go
 * This file contains unit tests for the shared model helpers
 */

package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeamIsPlayIn(t *testing.T) {
	assert.True(t, Team{Name: "wagner_or_howard", Seed: 16}.IsPlayIn())
	assert.False(t, Team{Name: "duke", Seed: 1}.IsPlayIn())
	assert.False(t, Team{Name: "oregon_state", Seed: 12}.IsPlayIn())
}
