package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_CaseInsensitive(t *testing.T) {
	tests := []struct {
		token string
		want  Unit
	}{
		{"TBSP", Tablespoons},
		{"Tablespoon", Tablespoons},
		{"tablespoons", Tablespoons},
		{"g", Grams},
		{"  KG  ", Kilograms},
		{"Fl Oz", FluidOunces},
		{"floz", FluidOunces},
		{"pcs", Pieces},
		{"Piece", Pieces},
		{"LBS", Pounds},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			u, ok := Resolve(tt.token)
			require.True(t, ok, "token %q should resolve", tt.token)
			assert.Equal(t, tt.want, u)
		})
	}
}

func TestResolve_UnknownToken(t *testing.T) {
	for _, token := range []string{"", "   ", "handful", "grms", "42"} {
		u, ok := Resolve(token)
		assert.False(t, ok, "token %q should not resolve", token)
		assert.Equal(t, Unknown, u)
	}
}

func TestResolve_EveryAliasIsUnambiguous(t *testing.T) {
	// Rebuilding the index must not overwrite any entry: each alias maps
	// to exactly one unit.
	seen := make(map[string]Unit)
	for _, u := range allUnits {
		for _, a := range u.aliases() {
			prev, dup := seen[a]
			require.False(t, dup, "alias %q claimed by both %v and %v", a, prev, u)
			seen[a] = u
		}
	}
}

func TestUnit_DimensionsNeverCross(t *testing.T) {
	for _, u := range allUnits {
		_, base := ToBase(1, u)
		assert.Equal(t, u.Dimension(), base.Dimension(),
			"unit %v must convert within its own dimension", u)
	}
}

func TestToBase(t *testing.T) {
	tests := []struct {
		unit     Unit
		quantity float64
		want     float64
		wantBase Unit
	}{
		{Grams, 250, 250, Grams},
		{Kilograms, 1.5, 1500, Grams},
		{Ounces, 2, 56.699, Grams},
		{Teaspoons, 0.5, 2.46446, Milliliters},
		{Cups, 1, 236.588, Milliliters},
		{Liters, 2, 2000, Milliliters},
		{Pieces, 3, 3, Pieces},
	}

	for _, tt := range tests {
		got, base := ToBase(tt.quantity, tt.unit)
		assert.InDelta(t, tt.want, got, 1e-9)
		assert.Equal(t, tt.wantBase, base)
	}
}

func TestFromBase_DisplayHeuristic(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		base     Unit
		want     float64
		wantUnit Unit
	}{
		{"weight below threshold", 999, Grams, 999, Grams},
		{"weight at threshold", 1000, Grams, 1, Kilograms},
		{"weight above threshold", 2500, Grams, 2.5, Kilograms},
		{"volume below threshold", 250, Milliliters, 250, Milliliters},
		{"volume at threshold", 1000, Milliliters, 1, Liters},
		{"count never converts", 5000, Pieces, 5000, Pieces},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, u := FromBase(tt.quantity, tt.base)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.Equal(t, tt.wantUnit, u)
		})
	}
}

func TestUnit_TokenRoundTrips(t *testing.T) {
	for _, u := range allUnits {
		got, ok := Resolve(u.Token())
		require.True(t, ok, "canonical token %q must resolve", u.Token())
		assert.Equal(t, u, got)
	}
}

func TestUnit_LabelNonEmpty(t *testing.T) {
	for _, u := range allUnits {
		assert.NotEmpty(t, u.Label())
	}
}
