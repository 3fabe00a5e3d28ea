package questions

import "golang.org/x/text/cases"

// fold returns the Unicode case-folded form used for caseless comparison.
func fold(s string) string {
	return cases.Fold().String(s)
}
