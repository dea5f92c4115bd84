// Package grocery aggregates ingredient lines from selected recipes into a
// single shopping list with unit-aware summation.
//
// Quantities are summed in base units only. The grouping key is (lowercase
// ingredient name, modifier, base unit): two instances of "the same"
// ingredient measured in different base units stay separate groups and are
// never coerced together.
package grocery

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/larder/internal/log"
	"github.com/zjrosen/larder/internal/recipes/domain"
	"github.com/zjrosen/larder/internal/units"
)

// Report texts for the empty-input conditions. These are results, not errors.
const (
	MsgNoSelection   = "No recipes selected."
	MsgNoValidRecipe = "No valid recipes found."
)

// traceThreshold is the display value below which a total renders as a trace
// amount instead of a number.
const traceThreshold = 0.01

// Fetcher resolves a recipe GUID. It is the aggregator's only collaborator;
// the sqlite repository (optionally behind a read-through cache) provides it.
type Fetcher func(ctx context.Context, guid string) (*domain.Recipe, error)

// Item is one grocery line, already converted to display units. Trace items
// carry no quantity or unit.
type Item struct {
	Name     string
	Modifier string
	Quantity float64
	Unit     string
	Trace    bool
}

// List is the structured grocery list. RecipeCount is the number of
// selections that resolved; zero means nothing resolved.
type List struct {
	RecipeCount int
	Items       []Item
}

// Aggregator builds grocery lists from recipe selections.
type Aggregator struct {
	fetch  Fetcher
	tracer trace.Tracer
}

// NewAggregator creates an aggregator over the given fetcher.
func NewAggregator(fetch Fetcher) *Aggregator {
	return &Aggregator{
		fetch:  fetch,
		tracer: otel.Tracer("larder/grocery"),
	}
}

// groupKey identifies one aggregation group.
type groupKey struct {
	name     string // lowercase
	modifier string
	unit     units.Unit // base unit
}

// group accumulates one line of the list.
type group struct {
	displayName string
	modifier    string
	unit        units.Unit
	total       float64
}

// Generate builds the plain-text grocery report for the selections. Empty
// selections and selections where nothing resolves yield fixed messages, not
// errors.
func (a *Aggregator) Generate(ctx context.Context, selections map[string]int) (string, error) {
	if len(selections) == 0 {
		return MsgNoSelection, nil
	}

	list, err := a.Build(ctx, selections)
	if err != nil {
		return "", err
	}
	if list.RecipeCount == 0 {
		return MsgNoValidRecipe, nil
	}
	return render(list), nil
}

// Build resolves each selected recipe, scales its ingredient lines by the
// selection multiplier and folds them into a sorted structured list.
// Unresolvable GUIDs are skipped silently; only infrastructure failures
// return an error.
func (a *Aggregator) Build(ctx context.Context, selections map[string]int) (*List, error) {
	ctx, span := a.tracer.Start(ctx, "grocery.generate",
		trace.WithAttributes(attribute.Int("grocery.selection_count", len(selections))))
	defer span.End()

	// Fetch in sorted GUID order. The fold is order-independent; sorting
	// only makes fetch logs and error surfaces deterministic.
	guids := make([]string, 0, len(selections))
	for guid := range selections {
		guids = append(guids, guid)
	}
	sort.Strings(guids)

	groups := make(map[groupKey]*group)
	resolved := 0
	for _, guid := range guids {
		multiplier := selections[guid]
		if multiplier < 1 {
			log.Warn(log.CatGrocery, "skipping non-positive multiplier", "guid", guid, "multiplier", multiplier)
			continue
		}

		record, err := a.fetchRecipe(ctx, guid)
		if err != nil {
			var notFound *domain.RecipeNotFoundError
			if errors.As(err, &notFound) {
				log.Debug(log.CatGrocery, "selection did not resolve", "guid", guid)
				continue
			}
			return nil, fmt.Errorf("fetching recipe %s: %w", guid, err)
		}

		resolved++
		accumulate(groups, record, multiplier)
	}

	span.SetAttributes(
		attribute.Int("grocery.recipe_count", resolved),
		attribute.Int("grocery.group_count", len(groups)),
	)
	return &List{RecipeCount: resolved, Items: toItems(groups)}, nil
}

func (a *Aggregator) fetchRecipe(ctx context.Context, guid string) (*domain.Recipe, error) {
	ctx, span := a.tracer.Start(ctx, "repo.find_by_guid",
		trace.WithAttributes(attribute.String("recipe.guid", guid)))
	defer span.End()
	return a.fetch(ctx, guid)
}

// accumulate folds one recipe's ingredient lines into the group map.
// A line without a quantity contributes 0 but still creates its group, so
// the ingredient appears on the list as a trace amount.
func accumulate(groups map[groupKey]*group, record *domain.Recipe, multiplier int) {
	for _, line := range record.Ingredients() {
		effective := 0.0
		if line.Quantity != nil {
			effective = *line.Quantity * float64(multiplier)
		}

		key := groupKey{
			name:     strings.ToLower(line.Name),
			modifier: line.Modifier,
			unit:     line.Unit,
		}
		g, ok := groups[key]
		if !ok {
			g = &group{
				displayName: line.Name,
				modifier:    line.Modifier,
				unit:        line.Unit,
			}
			groups[key] = g
		}
		g.total += effective
	}
}

// toItems converts the grouped base totals to display units, sorted by name
// then modifier, case-insensitive. Quantities are rounded to two decimals.
func toItems(groups map[groupKey]*group) []Item {
	sorted := make([]*group, 0, len(groups))
	for _, g := range groups {
		sorted = append(sorted, g)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		ni, nj := strings.ToLower(sorted[i].displayName), strings.ToLower(sorted[j].displayName)
		if ni != nj {
			return ni < nj
		}
		return strings.ToLower(sorted[i].modifier) < strings.ToLower(sorted[j].modifier)
	})

	items := make([]Item, 0, len(sorted))
	for _, g := range sorted {
		value, displayUnit := units.FromBase(g.total, g.unit)
		item := Item{Name: g.displayName, Modifier: g.modifier}
		if value < traceThreshold {
			item.Trace = true
		} else {
			item.Quantity = math.Round(value*100) / 100
			item.Unit = displayUnit.Label()
		}
		items = append(items, item)
	}
	return items
}

// render produces the report: a header naming the recipe count, one line per
// item, and a footer with the distinct-ingredient count.
func render(list *List) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Grocery list for %d recipe(s)\n\n", list.RecipeCount)
	for _, item := range list.Items {
		b.WriteString(formatItem(item))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "\n%d distinct ingredient(s) across %d recipe(s)\n", len(list.Items), list.RecipeCount)
	return b.String()
}

// formatItem renders one item as "- <qty> <unit> <name>[ (<modifier>)]".
func formatItem(item Item) string {
	var b strings.Builder
	b.WriteString("- ")
	if item.Trace {
		b.WriteString("(trace amount)")
	} else {
		b.WriteString(formatQuantity(item.Quantity))
		b.WriteByte(' ')
		b.WriteString(item.Unit)
	}
	b.WriteByte(' ')
	b.WriteString(item.Name)
	if item.Modifier != "" {
		b.WriteString(" (" + item.Modifier + ")")
	}
	return b.String()
}

// formatQuantity strips trailing zeros from an already-rounded value.
func formatQuantity(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
