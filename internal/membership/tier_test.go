package membership

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyHours(t *testing.T) {
	assert.Equal(t, 10, TierCreator.MonthlyHours())
	assert.Equal(t, 15, TierProfessional.MonthlyHours())
	assert.Equal(t, 20, TierExecutive.MonthlyHours())
	assert.Equal(t, 0, Tier("gold").MonthlyHours())
}

func TestParseTier(t *testing.T) {
	t.Run("valid tiers", func(t *testing.T) {
		for _, s := range []string{"creator", "professional", "executive"} {
			tier, err := ParseTier(s)
			require.NoError(t, err)
			assert.True(t, tier.Valid())
		}
	})

	t.Run("unknown tier", func(t *testing.T) {
		_, err := ParseTier("platinum")
		assert.ErrorIs(t, err, ErrUnknownTier)
	})

	t.Run("case sensitive", func(t *testing.T) {
		_, err := ParseTier("Creator")
		assert.Error(t, err)
	})
}
