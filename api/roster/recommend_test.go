/* recommend_test.go
 * Contains unit tests for the recommendation lookup tables
 * Authors: Zachary Bower
 */

package roster

import (
	"testing"

	"forsaken-bot/api/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendedKillers_KnownMap(t *testing.T) {
	name, killers, err := RecommendedKillers("glasshouses")
	require.NoError(t, err)
	assert.Equal(t, "Glasshouses", name)
	assert.Equal(t, []string{"Nosferatu", "Guest 666"}, killers)
}

func TestRecommendedKillers_MapWithoutAdvice(t *testing.T) {
	name, killers, err := RecommendedKillers("C00l Carnival")
	require.NoError(t, err)
	assert.Equal(t, "C00l Carnival", name)
	assert.Empty(t, killers)
}

func TestRecommendedKillers_UnknownMap(t *testing.T) {
	_, _, err := RecommendedKillers("xyz")
	assert.ErrorIs(t, err, shared.ErrInvalidSelection)
}

func TestRecommendedBans_SoloAndCombos(t *testing.T) {
	name, advice, err := RecommendedBans("slasher")
	require.NoError(t, err)
	assert.Equal(t, "Slasher", name)
	assert.Equal(t, []string{"Elliot", "Builderman", "Two Time", "Veeronica"}, advice.Solo)
	require.Len(t, advice.Combos, 2)
	assert.Equal(t, [2]string{"Dusekkar", "Taph"}, advice.Combos[0])
}

func TestRecommendedBans_SoloOnly(t *testing.T) {
	_, advice, err := RecommendedBans("noli")
	require.NoError(t, err)
	assert.Len(t, advice.Solo, 7)
	assert.Empty(t, advice.Combos)
}

func TestRecommendedBans_EveryKillerHasAdvice(t *testing.T) {
	for _, killer := range Killers() {
		_, advice, err := RecommendedBans(killer)
		require.NoError(t, err)
		assert.NotEmpty(t, advice.Solo, "killer %s should have solo ban advice", killer)
	}
}
