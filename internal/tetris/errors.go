package tetris

import "fmt"

// ConfigurationError reports board settings under which no shape can spawn.
// It is fatal and only ever produced at startup.
type ConfigurationError struct {
	Columns int
	Rows    int
	Gap     int
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("tetris: invalid board %dx%d (gap %d): %s", e.Columns, e.Rows, e.Gap, e.Reason)
}

// CheckSpawnable verifies that every catalog shape has at least one legal
// spawn anchor on a board of the given size.
func CheckSpawnable(columns, rows, gap int) error {
	if columns <= 0 || rows <= 0 {
		return &ConfigurationError{Columns: columns, Rows: rows, Gap: gap, Reason: "dimensions must be positive"}
	}
	if gap < 0 {
		return &ConfigurationError{Columns: columns, Rows: rows, Gap: gap, Reason: "gap must not be negative"}
	}
	for _, shape := range Catalog {
		if shape.Height() > rows {
			return &ConfigurationError{
				Columns: columns, Rows: rows, Gap: gap,
				Reason: fmt.Sprintf("shape %s is %d rows tall", shape.Name, shape.Height()),
			}
		}
		if _, _, ok := anchorRange(shape, columns, gap); !ok {
			return &ConfigurationError{
				Columns: columns, Rows: rows, Gap: gap,
				Reason: fmt.Sprintf("no spawn column for shape %s (width %d)", shape.Name, shape.Width()),
			}
		}
	}
	return nil
}

// anchorRange returns the inclusive range of legal left-edge columns.
// The anchor keeps gap columns from the left wall and stays left of
// columns-gap; the whole template must also fit inside the board.
func anchorRange(shape Shape, columns, gap int) (lo, hi int, ok bool) {
	lo = gap
	hi = min(columns-gap-1, columns-shape.Width())
	return lo, hi, lo <= hi
}
