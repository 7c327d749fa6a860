package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-equity/poker"
)

func TestTierOf(t *testing.T) {
	t.Parallel()
	tests := []struct {
		hand string
		want Tier
	}{
		{"AsAh", TierPremium},
		{"KhKd", TierPremium},
		{"JhJd", TierPremium},
		{"AsKs", TierPremium},
		{"AcKh", TierPremium},

		{"TcTh", TierStrong},
		{"AsQs", TierStrong},
		{"AdJc", TierStrong},

		{"9c9h", TierMedium},
		{"7h7c", TierMedium},
		{"KsQs", TierMedium},
		{"QdJd", TierMedium},
		{"AhTh", TierMedium},

		{"6c6h", TierWeak},
		{"2c2h", TierWeak},
		{"7h6h", TierWeak},
		{"5d4d", TierWeak},
		{"9s7s", TierWeak},

		{"7c2h", TierTrash},
		{"9d3s", TierTrash},
		{"Jh4c", TierTrash},
		{"KhQd", TierTrash},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			h, err := poker.ParseHand(tt.hand)
			require.NoError(t, err)
			assert.Equal(t, tt.want, TierOf(h))
		})
	}
}

func TestTierMatchesClassTier(t *testing.T) {
	t.Parallel()
	for _, notation := range RankedClasses() {
		c, err := ParseClass(notation)
		require.NoError(t, err)
		for _, h := range c.Combos() {
			assert.Equal(t, c.Tier(), TierOf(h), "%s in %s", h, notation)
		}
	}
}
