package formula

import "regexp"

// Cell references: optional SheetName! prefix, optional $ before the column
// letters and the row digits. Sheet and cell existence is not checked.
var cellRefPattern = regexp.MustCompile(`(?i)(?:[A-Za-z_][A-Za-z0-9_]*!)?\$?[A-Z]+\$?[0-9]+`)

// Range references: two cell shapes joined by a colon, optionally
// sheet-qualified on the left endpoint.
var rangeRefPattern = regexp.MustCompile(`(?i)(?:[A-Za-z_][A-Za-z0-9_]*!)?\$?[A-Z]+\$?[0-9]+:\$?[A-Z]+\$?[0-9]+`)

// ExtractReferences returns the cell and range reference tokens found in a
// normalized formula string, deduplicated, first-seen order. Plain cell tokens
// come first, range tokens after. A cell shape that is only an endpoint of a
// captured range is reported as part of that range, not on its own; a
// standalone occurrence of the same address elsewhere is still reported.
func ExtractReferences(clean string) []string {
	ranges := rangeRefPattern.FindAllString(clean, -1)

	// Blank out range spans so their endpoints do not surface as plain cells.
	blanked := rangeRefPattern.ReplaceAllString(clean, " ")
	cells := cellRefPattern.FindAllString(blanked, -1)

	seen := make(map[string]struct{}, len(cells)+len(ranges))
	refs := make([]string, 0, len(cells)+len(ranges))
	for _, ref := range append(cells, ranges...) {
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		refs = append(refs, ref)
	}
	return refs
}
