package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck_FullSet(t *testing.T) {
	d := NewDeck()
	assert.Equal(t, DeckSize, d.Count())
	assert.Equal(t, 0, d.DiscardCount())

	// 13 ranks x 4 suits plus exactly two jokers, no duplicates
	seen := make(map[string]int)
	jokers := 0
	for i := 0; i < DeckSize; i++ {
		c := d.Draw()
		require.NotNil(t, c)
		assert.False(t, c.FaceUp)
		if c.Rank == RankJoker {
			jokers++
			continue
		}
		seen[c.DisplayName()]++
	}
	assert.Equal(t, 2, jokers)
	assert.Len(t, seen, 52)
	for name, n := range seen {
		assert.Equal(t, 1, n, "card %s duplicated", name)
	}
}

func TestDeck_DrawExhausted(t *testing.T) {
	d := NewDeck()
	for i := 0; i < DeckSize; i++ {
		require.NotNil(t, d.Draw())
	}

	// Both piles empty: no card available, not an error
	assert.Nil(t, d.Draw())
	assert.Equal(t, 0, d.Count())
	assert.Equal(t, 0, d.DiscardCount())
}

func TestDeck_RecycleDiscard(t *testing.T) {
	d := NewDeck()

	// Drain the draw pile, discarding three cards along the way
	discarded := []*Card{d.Draw(), d.Draw(), d.Draw()}
	for d.Count() > 0 {
		d.Draw()
	}
	for _, c := range discarded {
		d.Discard(c)
	}
	require.Equal(t, 3, d.DiscardCount())

	// Next draw recycles the discard pile into the draw pile
	c := d.Draw()
	require.NotNil(t, c)
	assert.Equal(t, 2, d.Count())
	assert.Equal(t, 0, d.DiscardCount())

	// The three discarded cards come back, nothing is invented
	got := map[*Card]bool{c: true}
	got[d.Draw()] = true
	got[d.Draw()] = true
	for _, want := range discarded {
		assert.True(t, got[want])
	}
	assert.Nil(t, d.Draw())
}
