// Package ingredient parses free-text ingredient lines into structured
// entries. Parsing is total: malformed input degrades to a name-only entry
// instead of failing, so a typo never breaks a whole-recipe import. The only
// hard gate (name non-empty) belongs to the recipe validation downstream.
package ingredient

import (
	"strings"

	"github.com/zjrosen/larder/internal/units"
)

// Line is one structured ingredient entry. Quantity is expressed in the unit
// it was written in; callers normalize to base units before storing.
type Line struct {
	Name        string
	Modifier    string
	Quantity    float64
	HasQuantity bool
	Unit        units.Unit
}

// attemptFn tries one interpretation of the line. The boolean reports whether
// the attempt matched; attempts are pure and tried in order.
type attemptFn func(line string) (Line, bool)

// attempts is the ordered interpretation sequence: quantity+unit+name,
// quantity+name, then the whole line as a name.
var attempts = []attemptFn{
	attemptQuantityUnitName,
	attemptQuantityName,
	attemptNameOnly,
}

// Parse turns one ingredient line into a Line. It never fails; the fallback
// interpretation treats the entire trimmed line as the ingredient name with
// no quantity and the count base unit.
func Parse(line string) Line {
	trimmed := strings.TrimSpace(line)
	for _, attempt := range attempts {
		if entry, ok := attempt(trimmed); ok {
			return entry
		}
	}
	// Unreachable: attemptNameOnly always matches.
	return Line{Name: trimmed, Unit: units.Pieces}
}

// attemptQuantityUnitName matches "250g flour" or "1 1/2 tsp salt, fine":
// a leading quantity, an alphabetic unit token that resolves in the registry,
// and non-empty remaining text as the name.
func attemptQuantityUnitName(line string) (Line, bool) {
	quantity, rest, ok := scanQuantity(line)
	if !ok {
		return Line{}, false
	}

	rest = strings.TrimLeft(rest, " \t")
	token, after := scanUnitToken(rest)
	if token == "" {
		return Line{}, false
	}
	unit, ok := units.Resolve(token)
	if !ok {
		return Line{}, false
	}

	name := strings.TrimSpace(after)
	if name == "" {
		return Line{}, false
	}

	name, modifier := splitModifier(name)
	return Line{
		Name:        name,
		Modifier:    modifier,
		Quantity:    quantity,
		HasQuantity: true,
		Unit:        unit,
	}, true
}

// attemptQuantityName matches "3 eggs": a leading quantity and remaining text
// as the name. The unit defaults to the count dimension's base unit.
func attemptQuantityName(line string) (Line, bool) {
	quantity, rest, ok := scanQuantity(line)
	if !ok {
		return Line{}, false
	}

	name := strings.TrimSpace(rest)
	if name == "" {
		return Line{}, false
	}

	name, modifier := splitModifier(name)
	return Line{
		Name:        name,
		Modifier:    modifier,
		Quantity:    quantity,
		HasQuantity: true,
		Unit:        units.Pieces,
	}, true
}

// attemptNameOnly always matches: the whole trimmed line becomes the name.
func attemptNameOnly(line string) (Line, bool) {
	name, modifier := splitModifier(line)
	return Line{
		Name:     name,
		Modifier: modifier,
		Unit:     units.Pieces,
	}, true
}

// scanQuantity consumes a leading quantity token and returns its value and
// the unconsumed remainder. A mixed fraction ("1 1/2") is preferred over the
// bare whole number when both readings are possible.
func scanQuantity(line string) (float64, string, bool) {
	first := scanNumericRun(line)
	if first == 0 {
		return 0, "", false
	}

	// Peek for a mixed fraction: whole number, one space, fraction run.
	if first < len(line) && line[first] == ' ' {
		second := scanNumericRun(line[first+1:])
		if second > 0 {
			token := line[:first+1+second]
			if q, ok := ParseQuantity(token); ok && strings.Contains(line[first+1:first+1+second], "/") {
				return q, line[first+1+second:], true
			}
		}
	}

	q, ok := ParseQuantity(line[:first])
	if !ok {
		return 0, "", false
	}
	return q, line[first:], true
}

// scanNumericRun returns the length of the leading run of quantity characters
// (digits, '.', '/').
func scanNumericRun(s string) int {
	i := 0
	for i < len(s) && isQuantityChar(s[i]) {
		i++
	}
	return i
}

// scanUnitToken reads a leading alphabetic token (hyphen allowed) and returns
// it with the remainder of the line.
func scanUnitToken(s string) (string, string) {
	i := 0
	for i < len(s) && (isLetter(s[i]) || s[i] == '-') {
		i++
	}
	return s[:i], s[i:]
}

// splitModifier splits a trailing ", modifier" qualifier off the name, e.g.
// "carrots, diced" -> ("carrots", "diced"). The split happens at the last
// comma so multi-comma names lose only the final qualifier. A bare trailing
// comma marks the qualifier as explicitly empty and is dropped, which lets
// comma-bearing names like "peppers, red" survive an export/import cycle.
func splitModifier(name string) (string, string) {
	idx := strings.LastIndex(name, ",")
	if idx < 0 {
		return name, ""
	}
	base := strings.TrimSpace(name[:idx])
	modifier := strings.TrimSpace(name[idx+1:])
	if base == "" {
		return strings.TrimSpace(name), ""
	}
	return base, modifier
}

func isQuantityChar(c byte) bool {
	return isDigit(c) || c == '.' || c == '/'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
