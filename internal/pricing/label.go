package pricing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The encoded product label is a wire-format contract between the save
// path and every read path that re-derives quantity and unit from
// product_name. Encode and Parse must stay exact inverses.

var (
	trailingParens = regexp.MustCompile(`\(([^)]+)\)$`)
	qtyUnit        = regexp.MustCompile(`^(\d+)\s+(.+)$`)
	stripParens    = regexp.MustCompile(`\s*\([^)]+\)$`)
)

// EncodeItemLabel renders "<name> (<quantity> <unit>)".
func EncodeItemLabel(name string, quantity int, unit string) string {
	return fmt.Sprintf("%s (%d %s)", name, quantity, unit)
}

// ParseItemLabel recovers (name, quantity, unit) from an encoded label.
// ok is false when the label carries no trailing "(<qty> <unit>)"
// group, in which case name is the input unchanged.
func ParseItemLabel(label string) (name string, quantity int, unit string, ok bool) {
	m := trailingParens.FindStringSubmatch(label)
	if m == nil {
		return label, 0, "", false
	}

	inner := qtyUnit.FindStringSubmatch(strings.TrimSpace(m[1]))
	if inner == nil {
		return label, 0, "", false
	}

	quantity, err := strconv.Atoi(inner[1])
	if err != nil {
		return label, 0, "", false
	}

	name = stripParens.ReplaceAllString(label, "")
	return name, quantity, inner[2], true
}
