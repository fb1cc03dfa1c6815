// Package segment splits raw contract text into ordered clauses
// using legal heading patterns and assigns stable clause
// identifiers.
package segment

import (
	"regexp"
	"strings"

	"github.com/unbound-force/prodoc/internal/contract"
)

// minFragmentLen is the minimum length, after trimming, for a
// fragment to count as a clause. Shorter fragments are headings,
// signature blocks, or page furniture.
const minFragmentLen = 200

// headingPattern matches the start of a line that opens a new
// clause: "ARTICLE <roman numeral>", "N.N", or "N." followed by
// whitespace. Case-insensitive.
var headingPattern = regexp.MustCompile(`(?im)^[ \t]*(ARTICLE\s+[IVXLC]+|\d+\.\d+|\d+\.)\s`)

// Split divides contract text into clause fragments. The text is cut
// immediately before each heading match, fragments are trimmed, and
// fragments of minFragmentLen or fewer characters are discarded.
// Document order is preserved: the retained fragments are a
// subsequence of the input.
//
// A document with no heading matches yields at most one fragment
// (the whole text), or none when the text is too short. Zero
// fragments is a terminal "no usable content" condition for callers.
func Split(text string) []string {
	locs := headingPattern.FindAllStringIndex(text, -1)

	var cuts []int
	prev := -1
	for _, loc := range locs {
		if loc[0] == 0 {
			continue // Heading at the very start opens the first fragment.
		}
		if loc[0] == prev {
			continue
		}
		cuts = append(cuts, loc[0])
		prev = loc[0]
	}

	var fragments []string
	start := 0
	for _, cut := range cuts {
		fragments = append(fragments, text[start:cut])
		start = cut
	}
	fragments = append(fragments, text[start:])

	clauses := make([]string, 0, len(fragments))
	for _, f := range fragments {
		f = strings.TrimSpace(f)
		if len(f) > minFragmentLen {
			clauses = append(clauses, f)
		}
	}
	return clauses
}

// Normalize assigns clause identifiers and order numbers to raw
// fragments, strictly following segmentation order. Pure and total.
func Normalize(fragments []string) []contract.Clause {
	clauses := make([]contract.Clause, 0, len(fragments))
	for i, text := range fragments {
		order := i + 1
		clauses = append(clauses, contract.Clause{
			ID:    contract.ClauseID(order),
			Order: order,
			Text:  text,
		})
	}
	return clauses
}
