package games

import (
	"math/rand"

	"github.com/google/uuid"

	"wortschatz/vocab"
)

// MemoryPair is one DE/EN pair with a stable pair ID. Two tiles match iff
// they share the same pair ID; that rule is evaluated entirely by the
// presentational collaborator.
type MemoryPair struct {
	ID string `json:"id"`
	De string `json:"de"`
	En string `json:"en"`
}

// MemoryTile is one face-down card handed to the client.
type MemoryTile struct {
	PairID string `json:"pairId"`
	Text   string `json:"text"`
	Lang   string `json:"lang"` // "de" or "en"
}

// MemoryMinPairs is the smallest playable subset for the matching game.
const MemoryMinPairs = 2

// MemoryRound owns pair selection only. No server-side match progress is
// tracked; the client evaluates matches within one rendered widget's
// lifetime. The round guarantees a stable, reproducible subset per the
// sampler contract and offers an authoritative solution listing.
type MemoryRound struct {
	sampler  *vocab.Sampler
	stateKey string
	mode     vocab.Mode
	k        int
	seed     string
	rng      *rand.Rand

	lastFingerprint uint64
	pairs           []MemoryPair
	tiles           []MemoryTile
}

// NewMemoryRound wires a round to a sampler. Pair IDs and tile order are
// assigned on the first Refresh and stay stable until the subset changes.
func NewMemoryRound(sampler *vocab.Sampler, stateKey string, mode vocab.Mode, k int, seed string, rng *rand.Rand) *MemoryRound {
	return &MemoryRound{
		sampler:  sampler,
		stateKey: stateKey,
		mode:     mode,
		k:        k,
		seed:     seed,
		rng:      rng,
	}
}

// Refresh recomputes the working subset from source if needed. With
// force=true the cached subset is invalidated and a fresh draw is taken.
// Idempotent across redundant re-renders: unchanged inputs return the same
// pairs, IDs and tile order.
func (m *MemoryRound) Refresh(source []vocab.Entry, force bool) []MemoryPair {
	if force {
		m.sampler.Invalidate(m.stateKey)
	}
	rows := m.sampler.Sample(source, m.mode, m.k, m.seed, m.stateKey, force)

	fp := vocab.Fingerprint(rows)
	if fp == m.lastFingerprint && m.pairs != nil && !force {
		return m.pairs
	}

	pairs := make([]MemoryPair, 0, len(rows))
	for _, e := range rows {
		pairs = append(pairs, MemoryPair{
			ID: uuid.NewString(),
			De: e.De,
			En: e.En,
		})
	}

	tiles := make([]MemoryTile, 0, 2*len(pairs))
	for _, p := range pairs {
		tiles = append(tiles,
			MemoryTile{PairID: p.ID, Text: p.De, Lang: "de"},
			MemoryTile{PairID: p.ID, Text: p.En, Lang: "en"},
		)
	}
	m.rng.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})

	m.lastFingerprint = fp
	m.pairs = pairs
	m.tiles = tiles
	return pairs
}

// Pairs returns the current subset; empty until Refresh has run.
func (m *MemoryRound) Pairs() []MemoryPair {
	return m.pairs
}

// Tiles returns the shuffled tile listing for the client widget.
func (m *MemoryRound) Tiles() []MemoryTile {
	return m.tiles
}

// Solution returns the authoritative DE—EN table for display.
func (m *MemoryRound) Solution() []MemoryPair {
	return m.pairs
}

// Playable reports whether the subset is large enough for a matching game.
func (m *MemoryRound) Playable() bool {
	return len(m.pairs) >= MemoryMinPairs
}
