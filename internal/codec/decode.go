// Package codec implements the plain-text recipe format: decoding a document
// into recipe records with per-block error isolation, and deterministic
// encoding back to the canonical text form.
//
// The format is hand-editable. A document holds zero or more blocks separated
// by the end-of-recipe delimiter; each block has a metadata header followed by
// delimited ingredients, instructions, and optional notes sections. Decoding
// is lenient everywhere except the final validation gate: unparseable values
// fall back to documented defaults, and a broken block never prevents the
// others from importing.
package codec

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/larder/internal/ingredient"
	"github.com/zjrosen/larder/internal/log"
	"github.com/zjrosen/larder/internal/recipes/domain"
	"github.com/zjrosen/larder/internal/units"
)

// Text format delimiters, matched exactly after trimming.
const (
	DelimRecipe       = "===== RECIPE ====="
	DelimIngredients  = "===== INGREDIENTS ====="
	DelimInstructions = "===== INSTRUCTIONS ====="
	DelimNotes        = "===== NOTES ====="
	DelimEndRecipe    = "===== END RECIPE ====="
)

// ErrNoBlocks is the batch-level message emitted when a document contains no
// parseable recipe blocks and no block produced a specific error.
const ErrNoBlocks = "no valid recipe blocks found"

// dateLayouts are tried in order when parsing Created/Modified metadata.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Decode parses a recipe document into recipe records. Each block between
// end-of-recipe delimiters is parsed independently: a failure is recorded as
// "Recipe #<n>: <message>" and does not prevent parsing of other blocks.
func Decode(text string) ([]*domain.Recipe, []string) {
	var (
		records []*domain.Recipe
		errs    []string
	)

	blockNum := 0
	for _, segment := range strings.Split(text, DelimEndRecipe) {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		blockNum++

		record, err := parseBlock(segment)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Recipe #%d: %v", blockNum, err))
			continue
		}
		records = append(records, record)
	}

	if len(records) == 0 && len(errs) == 0 {
		errs = append(errs, ErrNoBlocks)
	}

	log.Debug(log.CatCodec, "decoded document", "records", len(records), "errors", len(errs))
	return records, errs
}

// parseBlock parses one recipe block. The returned error is a block-level
// validation failure; everything recoverable inside the block falls back to
// its default instead of erroring.
func parseBlock(block string) (*domain.Recipe, error) {
	sections := splitSections(block)

	record := domain.NewRecipe(uuid.NewString(), "")
	created, modified := applyMetadata(record, sections[sectionMetadata])
	record.SetIngredients(parseIngredients(sections[sectionIngredients]))
	record.SetInstructions(sections[sectionInstructions])
	record.SetNotes(sections[sectionNotes])

	// Explicit Created/Modified metadata overrides the constructor defaults.
	createdAt := record.CreatedAt()
	modifiedAt := record.ModifiedAt()
	if created != nil {
		createdAt = *created
	}
	if modified != nil {
		modifiedAt = *modified
	}
	record.SetTimestamps(createdAt, modifiedAt)

	if err := record.Validate(); err != nil {
		return nil, err
	}
	return record, nil
}

// applyMetadata parses "Key: value" lines onto the record. Recognized keys
// are case-insensitive; unrecognized keys and lines without a colon are
// ignored. Returns explicit created/modified times when present.
func applyMetadata(record *domain.Recipe, text string) (created, modified *time.Time) {
	for _, line := range strings.Split(text, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "name":
			record.SetName(value)
		case "cooking time":
			record.SetCookingTimeMinutes(extractMinutes(value))
		case "servings":
			if n, err := strconv.Atoi(value); err == nil {
				record.SetServings(n)
			}
		case "tags":
			record.SetTags(parseTags(value))
		case "created":
			created = parseDate(value)
		case "modified":
			modified = parseDate(value)
		}
	}
	return created, modified
}

// extractMinutes pulls the first run of digits out of a cooking time value,
// so "45 minutes", "about 45 min" and "45" all yield 45. No digits yields 0.
func extractMinutes(value string) int {
	start := -1
	for i := 0; i < len(value); i++ {
		if value[i] >= '0' && value[i] <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return 0
	}
	end := start
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	n, _ := strconv.Atoi(value[start:end])
	return n
}

// parseTags splits a comma-delimited tag value, preserving authored order.
func parseTags(value string) []string {
	var tags []string
	for _, tag := range strings.Split(value, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// parseDate attempts a generic date parse over the known layouts. A value
// that matches no layout is dropped and the field keeps its default.
func parseDate(value string) *time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	log.Debug(log.CatCodec, "unparseable date kept as default", "value", value)
	return nil
}

// parseIngredients parses every non-empty line of the ingredients section and
// normalizes quantities to base units before they reach the record.
func parseIngredients(text string) []domain.IngredientLine {
	var lines []domain.IngredientLine
	for _, raw := range strings.Split(text, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		entry := ingredient.Parse(raw)
		line := domain.IngredientLine{
			Name:     entry.Name,
			Modifier: entry.Modifier,
			Unit:     entry.Unit.Dimension().BaseUnit(),
		}
		if entry.HasQuantity {
			q, base := units.ToBase(entry.Quantity, entry.Unit)
			line.Quantity = &q
			line.Unit = base
		}
		lines = append(lines, line)
	}
	return lines
}
