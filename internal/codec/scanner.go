package codec

import "strings"

// section is the scanner state while walking a recipe block line by line.
type section int

const (
	sectionMetadata section = iota
	sectionIngredients
	sectionInstructions
	sectionNotes
)

// transitions maps an exact delimiter line to the section it opens. The
// scanner only moves forward: a delimiter for a section at or before the
// current one is kept as ordinary content.
var transitions = map[string]section{
	DelimIngredients:  sectionIngredients,
	DelimInstructions: sectionInstructions,
	DelimNotes:        sectionNotes,
}

// splitSections runs the four-state scanner over a recipe block and returns
// the trimmed text accumulated per section. Lines that are not an exact
// section delimiter are appended verbatim to the current section's buffer.
func splitSections(block string) map[section]string {
	sections := make(map[section]string, 4)
	current := sectionMetadata
	var buf strings.Builder

	flush := func() {
		sections[current] = strings.TrimSpace(buf.String())
		buf.Reset()
	}

	for _, line := range strings.Split(block, "\n") {
		next, isDelim := transitions[strings.TrimSpace(line)]
		if isDelim && next > current {
			flush()
			current = next
			continue
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	flush()

	return sections
}
