package beverage_test

import (
	"testing"

	"github.com/KirkDiggler/headfirst-patterns/internal/beverage"
	apperr "github.com/KirkDiggler/headfirst-patterns/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func mustCost(t *testing.T, b beverage.Beverage) float64 {
	t.Helper()
	cost, err := b.Cost()
	require.NoError(t, err)
	return float64(cost)
}

func TestCost_ReferenceOrdersWithoutSizes(t *testing.T) {
	tests := []struct {
		name     string
		drink    beverage.Beverage
		expected float64
	}{
		{
			name:     "whip mocha house blend",
			drink:    beverage.NewWhip(beverage.NewMocha(beverage.NewHouseBlend(beverage.SizeTall))),
			expected: 2.24,
		},
		{
			name:     "milk dark roast",
			drink:    beverage.NewMilk(beverage.NewDarkRoast(beverage.SizeTall)),
			expected: 1.00,
		},
		{
			name:     "decaf",
			drink:    beverage.NewDecaf(beverage.SizeTall),
			expected: 1.25,
		},
		{
			name:     "triple whip espresso",
			drink:    beverage.NewWhip(beverage.NewWhip(beverage.NewWhip(beverage.NewEspresso(beverage.SizeTall)))),
			expected: 2.55,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, mustCost(t, tt.drink), tolerance)
		})
	}
}

func TestCost_ReferenceOrdersWithSizes(t *testing.T) {
	tests := []struct {
		name     string
		drink    beverage.Beverage
		expected float64
	}{
		{
			name:     "whip mocha venti house blend",
			drink:    beverage.NewWhip(beverage.NewMocha(beverage.NewHouseBlend(beverage.SizeVenti))),
			expected: 2.84,
		},
		{
			name:     "milk tall dark roast",
			drink:    beverage.NewMilk(beverage.NewDarkRoast(beverage.SizeSmall)),
			expected: 1.00,
		},
		{
			name:     "grande decaf",
			drink:    beverage.NewDecaf(beverage.SizeMedium),
			expected: 1.40,
		},
		{
			name:     "triple whip grande espresso",
			drink:    beverage.NewWhip(beverage.NewWhip(beverage.NewWhip(beverage.NewEspresso(beverage.SizeGrande)))),
			expected: 2.90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, mustCost(t, tt.drink), tolerance)
		})
	}
}

func TestCost_NonNegativeForEveryCoffeeAndSize(t *testing.T) {
	for _, kind := range beverage.Kinds() {
		for _, size := range []beverage.Size{beverage.SizeTall, beverage.SizeGrande, beverage.SizeVenti} {
			b, err := beverage.Construct(kind, size)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, mustCost(t, b), 0.0, "%s %s", size, kind)
		}
	}
}

func TestCost_CondimentOrderDoesNotMatter(t *testing.T) {
	for _, size := range []beverage.Size{beverage.SizeTall, beverage.SizeGrande, beverage.SizeVenti} {
		whipFirst := beverage.NewMocha(beverage.NewWhip(beverage.NewHouseBlend(size)))
		mochaFirst := beverage.NewWhip(beverage.NewMocha(beverage.NewHouseBlend(size)))

		assert.InDelta(t, mustCost(t, whipFirst), mustCost(t, mochaFirst), tolerance)
	}
}

func TestCost_IsSumOfParts(t *testing.T) {
	base := beverage.NewDarkRoast(beverage.SizeVenti)
	chain, err := beverage.Chain(base, beverage.CondimentSoy, beverage.CondimentMilk, beverage.CondimentMocha)
	require.NoError(t, err)

	// 0.75+0.10, 0.45+0.20, 0.25+0.10, 0.99+0.30
	assert.InDelta(t, 3.14, mustCost(t, chain), tolerance)
}

func TestDescribe_ComposesBaseFirst(t *testing.T) {
	drink := beverage.NewWhip(beverage.NewMocha(beverage.NewHouseBlend(beverage.SizeTall)))

	description, err := drink.Describe()
	require.NoError(t, err)
	assert.Equal(t, "House blend coffee + mocha + whip", description)
}

func TestDescribe_IsIdempotent(t *testing.T) {
	drink := beverage.NewWhip(beverage.NewWhip(beverage.NewWhip(beverage.NewEspresso(beverage.SizeGrande))))

	first, err := drink.Describe()
	require.NoError(t, err)
	second, err := drink.Describe()
	require.NoError(t, err)

	assert.Equal(t, "Espresso coffee + whip + whip + whip", first)
	assert.Equal(t, first, second)
}

func TestDescribe_SharedBaseIsNotModified(t *testing.T) {
	base := beverage.NewDecaf(beverage.SizeTall)
	withMilk := beverage.NewMilk(base)
	withSoy := beverage.NewSoy(base)

	_, err := withMilk.Describe()
	require.NoError(t, err)
	soy, err := withSoy.Describe()
	require.NoError(t, err)
	plain, err := base.Describe()
	require.NoError(t, err)

	assert.Equal(t, "Decaf coffee + soy", soy)
	assert.Equal(t, "Decaf coffee", plain)
}

func TestCondiment_CapturesWrappedSize(t *testing.T) {
	drink := beverage.NewWhip(beverage.NewMocha(beverage.NewHouseBlend(beverage.SizeVenti)))

	assert.Equal(t, beverage.SizeVenti, drink.Size())
	assert.Equal(t, drink.Unwrap().Size(), drink.Size())
	assert.Equal(t, beverage.CondimentWhip, drink.Kind())
}

func TestCondiment_MissingBeverage(t *testing.T) {
	tests := []struct {
		name      string
		condiment *beverage.Condiment
	}{
		{name: "zero value", condiment: &beverage.Condiment{}},
		{name: "constructed around nil", condiment: beverage.NewWhip(nil)},
		{name: "nil pointer", condiment: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.condiment.Cost()
			assert.True(t, apperr.IsInvalidComposition(err))

			_, err = tt.condiment.Describe()
			assert.True(t, apperr.IsInvalidComposition(err))
		})
	}
}

func TestCondiment_MissingBeverageDeepInChain(t *testing.T) {
	drink := beverage.NewWhip(beverage.NewMocha(beverage.NewMilk(nil)))

	_, err := drink.Cost()
	assert.True(t, apperr.IsInvalidComposition(err))
}

func TestCoffee_UnrecognizedSize(t *testing.T) {
	_, err := beverage.NewDecaf(beverage.Size(7)).Cost()
	assert.True(t, apperr.IsInvalidComposition(err))

	_, err = beverage.NewWhip(beverage.NewDecaf(beverage.Size(-1))).Cost()
	assert.True(t, apperr.IsInvalidComposition(err))
}

func TestCoffee_ZeroValue(t *testing.T) {
	_, err := (&beverage.Coffee{}).Describe()
	assert.True(t, apperr.IsInvalidComposition(err))
}

func TestMoney_Format(t *testing.T) {
	assert.Equal(t, "$2.24", beverage.Money(2.2399999999).String())
	assert.Equal(t, "€1.00", beverage.Money(0.999999).Format("€"))
	assert.InDelta(t, 2.9, float64(beverage.Money(2.9000000004).Round()), tolerance)
}

func TestSize_String(t *testing.T) {
	assert.Equal(t, "TALL", beverage.SizeSmall.String())
	assert.Equal(t, "GRANDE", beverage.SizeMedium.String())
	assert.Equal(t, "VENTI", beverage.SizeLarge.String())
	assert.Equal(t, "Size(4)", beverage.Size(4).String())
}
