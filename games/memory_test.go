package games

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wortschatz/vocab"
)

func memoryEntries(n int) []vocab.Entry {
	out := make([]vocab.Entry, n)
	for i := range out {
		out[i] = vocab.Entry{
			De: fmt.Sprintf("de%d", i),
			En: fmt.Sprintf("en%d", i),
		}
	}
	return out
}

func newMemoryRound(k int) *MemoryRound {
	return NewMemoryRound(vocab.NewSampler(), "test", vocab.ModeK, k, "seed", testRng())
}

func TestMemoryRefreshStable(t *testing.T) {
	m := newMemoryRound(4)
	source := memoryEntries(10)

	first := m.Refresh(source, false)
	require.Len(t, first, 4)

	// Redundant re-renders keep pairs, IDs and tile order identical.
	second := m.Refresh(source, false)
	assert.Equal(t, first, second)
	tiles := m.Tiles()
	assert.Equal(t, tiles, m.Tiles())
	assert.Len(t, tiles, 8)
}

func TestMemoryTilesCoverAllPairs(t *testing.T) {
	m := newMemoryRound(3)
	m.Refresh(memoryEntries(6), false)

	perPair := make(map[string][]string)
	for _, tile := range m.Tiles() {
		perPair[tile.PairID] = append(perPair[tile.PairID], tile.Lang)
	}

	require.Len(t, perPair, 3)
	for id, langs := range perPair {
		assert.ElementsMatch(t, []string{"de", "en"}, langs, "pair %s", id)
	}
}

func TestMemoryForceRedraw(t *testing.T) {
	m := newMemoryRound(4)
	source := memoryEntries(10)

	first := m.Refresh(source, false)
	forced := m.Refresh(source, true)

	// New pair IDs are assigned even if the same rows are drawn again.
	require.Len(t, forced, 4)
	assert.NotEqual(t, first[0].ID, forced[0].ID)
}

func TestMemoryRecomputesOnSourceChange(t *testing.T) {
	m := newMemoryRound(4)

	m.Refresh(memoryEntries(10), false)

	changed := memoryEntries(10)
	for i := range changed {
		changed[i].En = fmt.Sprintf("new%d", i)
	}
	pairs := m.Refresh(changed, false)

	for _, p := range pairs {
		assert.Contains(t, p.En, "new")
	}
}

func TestMemoryPlayable(t *testing.T) {
	m := newMemoryRound(4)
	assert.False(t, m.Playable()) // nothing refreshed yet

	m.Refresh(memoryEntries(10), false)
	assert.True(t, m.Playable())
}
