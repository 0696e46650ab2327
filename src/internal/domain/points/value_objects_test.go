package points_test

import (
	"testing"

	"github.com/jackyeh168/gas_shop/src/internal/domain/points"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPointsAmount_Negative_ReturnsError(t *testing.T) {
	_, err := points.NewPointsAmount(-1)

	assert.ErrorIs(t, err, points.ErrNegativePointsAmount)
}

func TestPointsAmount_Add(t *testing.T) {
	a, err := points.NewPointsAmount(1200)
	require.NoError(t, err)
	b, err := points.NewPointsAmount(200)
	require.NoError(t, err)

	sum := a.Add(b)

	assert.Equal(t, 1400, sum.Value())
	assert.Equal(t, 1200, a.Value())
	assert.False(t, sum.IsZero())
}

func TestPointsAmount_MulInt_NonPositiveQuantity_IsZero(t *testing.T) {
	p, _ := points.NewPointsAmount(800)

	assert.Equal(t, 2400, p.MulInt(3).Value())
	assert.True(t, p.MulInt(0).IsZero())
	assert.True(t, p.MulInt(-2).IsZero())
}

func TestBonusFor(t *testing.T) {
	assert.Equal(t, 4000, points.BonusFor(points.BindableCartBonusPerUnit, 2).Value())
	assert.Equal(t, 1000, points.BonusFor(points.BindableStoveBonusPerUnit, 1).Value())
}
