package catalog

import (
	"strconv"
	"strings"
)

// ProductFilter holds the optional listing criteria. Zero value = no filter.
type ProductFilter struct {
	CategoryID *int64
	ReadyOnly  bool
}

// Build returns an AND-joined predicate plus its positional args, or ("", nil)
// when no criterion is set. Callers must skip the WHERE clause entirely in that
// case. Param ordinals follow declaration order (category_id first), jangan
// diubah: ordinal yang geser akan bind nilai yang salah tanpa error.
func (f ProductFilter) Build() (string, []any) {
	var conds []string
	var args []any

	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		conds = append(conds, "p.category_id = $"+strconv.Itoa(len(args)))
	}
	if f.ReadyOnly {
		// boolean literal, no param
		conds = append(conds, "p.is_ready = TRUE")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return strings.Join(conds, " AND "), args
}
