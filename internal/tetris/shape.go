package tetris

// CellKind is one cell of a shape template.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellFilled
	CellPivot
)

// Occupied reports whether the cell is part of the piece.
func (k CellKind) Occupied() bool {
	return k == CellFilled || k == CellPivot
}

// ShapeKind identifies one of the seven catalog shapes.
type ShapeKind int

const (
	ShapeI ShapeKind = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// ShapeCount is the size of the catalog.
const ShapeCount = 7

// String returns the one-letter shape name.
func (k ShapeKind) String() string {
	if k < 0 || int(k) >= ShapeCount {
		return "?"
	}
	return Catalog[k].Name
}

// Shape is an immutable template. Cells is indexed [row][column], row 0 on top.
type Shape struct {
	Name  string
	Cells [][]CellKind
}

const (
	__ = CellEmpty
	xx = CellFilled
	pv = CellPivot
)

// Catalog holds the seven standard shapes, indexed by ShapeKind.
var Catalog = [ShapeCount]Shape{
	ShapeI: {Name: "I", Cells: [][]CellKind{
		{xx, xx, pv, xx},
	}},
	ShapeJ: {Name: "J", Cells: [][]CellKind{
		{xx, __, __},
		{xx, pv, xx},
	}},
	ShapeL: {Name: "L", Cells: [][]CellKind{
		{__, __, xx},
		{xx, pv, xx},
	}},
	ShapeO: {Name: "O", Cells: [][]CellKind{
		{xx, xx},
		{xx, xx},
	}},
	ShapeS: {Name: "S", Cells: [][]CellKind{
		{__, pv, xx},
		{xx, xx, __},
	}},
	ShapeT: {Name: "T", Cells: [][]CellKind{
		{__, pv, __},
		{xx, xx, xx},
	}},
	ShapeZ: {Name: "Z", Cells: [][]CellKind{
		{xx, pv, __},
		{__, xx, xx},
	}},
}

// Width returns the template's column count.
func (s Shape) Width() int {
	w := 0
	for _, row := range s.Cells {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Height returns the template's row count.
func (s Shape) Height() int {
	return len(s.Cells)
}

// HasPivot reports whether the shape can rotate.
func (s Shape) HasPivot() bool {
	for _, row := range s.Cells {
		for _, k := range row {
			if k == CellPivot {
				return true
			}
		}
	}
	return false
}

// CellCount returns the number of occupied cells.
func (s Shape) CellCount() int {
	n := 0
	for _, row := range s.Cells {
		for _, k := range row {
			if k.Occupied() {
				n++
			}
		}
	}
	return n
}
