// Package units provides the closed catalog of measurement units used by
// recipes: three dimensions (weight, volume, count), alias resolution, and
// conversion to and from each dimension's base unit.
//
// The registry is immutable and safe for concurrent use. Quantities are always
// stored and summed in base units (grams, milliliters, pieces); conversion to
// larger display units happens only at render time.
package units

import "strings"

// Dimension classifies a unit. Units never convert across dimensions.
type Dimension int

const (
	Weight Dimension = iota
	Volume
	Count
)

// String returns the dimension name.
func (d Dimension) String() string {
	switch d {
	case Weight:
		return "weight"
	case Volume:
		return "volume"
	case Count:
		return "count"
	default:
		return "unknown"
	}
}

// BaseUnit returns the canonical storage unit for the dimension.
func (d Dimension) BaseUnit() Unit {
	switch d {
	case Weight:
		return Grams
	case Volume:
		return Milliliters
	case Count:
		return Pieces
	default:
		return Pieces
	}
}

// Unit identifies one entry of the fixed unit catalog.
type Unit int

const (
	// Unknown is the zero value; it never appears on a decoded recipe.
	Unknown Unit = iota

	Grams
	Kilograms
	Ounces
	Pounds

	Milliliters
	Liters
	Cups
	Tablespoons
	Teaspoons
	FluidOunces

	Pieces
)

// allUnits enumerates every catalog entry. Used to build the alias index.
var allUnits = []Unit{
	Grams, Kilograms, Ounces, Pounds,
	Milliliters, Liters, Cups, Tablespoons, Teaspoons, FluidOunces,
	Pieces,
}

// Dimension returns the measurement dimension of the unit.
func (u Unit) Dimension() Dimension {
	switch u {
	case Grams, Kilograms, Ounces, Pounds:
		return Weight
	case Milliliters, Liters, Cups, Tablespoons, Teaspoons, FluidOunces:
		return Volume
	case Pieces:
		return Count
	default:
		return Count
	}
}

// Factor returns the multiplier converting one of this unit into the
// dimension's base unit.
func (u Unit) Factor() float64 {
	switch u {
	case Grams:
		return 1
	case Kilograms:
		return 1000
	case Ounces:
		return 28.3495
	case Pounds:
		return 453.592
	case Milliliters:
		return 1
	case Liters:
		return 1000
	case Cups:
		return 236.588
	case Tablespoons:
		return 14.7868
	case Teaspoons:
		return 4.92892
	case FluidOunces:
		return 29.5735
	case Pieces:
		return 1
	default:
		return 1
	}
}

// Label returns the short human label used when rendering quantities.
func (u Unit) Label() string {
	switch u {
	case Grams:
		return "g"
	case Kilograms:
		return "kg"
	case Ounces:
		return "oz"
	case Pounds:
		return "lb"
	case Milliliters:
		return "ml"
	case Liters:
		return "l"
	case Cups:
		return "cups"
	case Tablespoons:
		return "tbsp"
	case Teaspoons:
		return "tsp"
	case FluidOunces:
		return "fl oz"
	case Pieces:
		return "piece(s)"
	default:
		return ""
	}
}

// Token returns the canonical alias used when persisting or exporting the
// unit. Every token round-trips through Resolve.
func (u Unit) Token() string {
	switch u {
	case Grams:
		return "g"
	case Kilograms:
		return "kg"
	case Ounces:
		return "oz"
	case Pounds:
		return "lb"
	case Milliliters:
		return "ml"
	case Liters:
		return "l"
	case Cups:
		return "cups"
	case Tablespoons:
		return "tbsp"
	case Teaspoons:
		return "tsp"
	case FluidOunces:
		return "floz"
	case Pieces:
		return "pieces"
	default:
		return ""
	}
}

// aliases returns every recognized spelling of the unit, lowercase.
func (u Unit) aliases() []string {
	switch u {
	case Grams:
		return []string{"g", "gram", "grams"}
	case Kilograms:
		return []string{"kg", "kilogram", "kilograms"}
	case Ounces:
		return []string{"oz", "ounce", "ounces"}
	case Pounds:
		return []string{"lb", "lbs", "pound", "pounds"}
	case Milliliters:
		return []string{"ml", "milliliter", "milliliters"}
	case Liters:
		return []string{"l", "liter", "liters"}
	case Cups:
		return []string{"cup", "cups"}
	case Tablespoons:
		return []string{"tbsp", "tablespoon", "tablespoons"}
	case Teaspoons:
		return []string{"tsp", "teaspoon", "teaspoons"}
	case FluidOunces:
		return []string{"fl oz", "floz", "fluidounce", "fluidounces"}
	case Pieces:
		return []string{"piece", "pieces", "pcs", "pc"}
	default:
		return nil
	}
}

// aliasIndex maps every lowercase alias to its unit. Built once at package
// init; the catalog is closed so the mapping is total and unambiguous.
var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[string]Unit {
	index := make(map[string]Unit)
	for _, u := range allUnits {
		for _, a := range u.aliases() {
			index[a] = u
		}
	}
	return index
}

// Resolve looks up a unit by alias. The lookup is case-insensitive and
// whitespace-trimmed. Unknown tokens return (Unknown, false).
func Resolve(token string) (Unit, bool) {
	u, ok := aliasIndex[strings.ToLower(strings.TrimSpace(token))]
	return u, ok
}

// ToBase converts a quantity expressed in unit u to the base unit of u's
// dimension. Identity for base units.
func ToBase(quantity float64, u Unit) (float64, Unit) {
	return quantity * u.Factor(), u.Dimension().BaseUnit()
}

// FromBase converts a base-unit quantity to a display unit. This is a
// presentation heuristic only and is never persisted: weight switches to
// kilograms at 1000 g, volume to liters at 1000 ml, count always stays in
// pieces.
func FromBase(quantity float64, base Unit) (float64, Unit) {
	switch base {
	case Grams:
		if quantity >= 1000 {
			return quantity / 1000, Kilograms
		}
		return quantity, Grams
	case Milliliters:
		if quantity >= 1000 {
			return quantity / 1000, Liters
		}
		return quantity, Milliliters
	case Pieces:
		return quantity, Pieces
	default:
		return quantity, base
	}
}
