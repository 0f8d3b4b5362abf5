package btree

import (
	"fmt"
	"io"

	"leafdb/types"
)

// PrintConstants writes the layout constants, used by the .constants meta
// command and the inspect tool.
func PrintConstants(w io.Writer) {
	fmt.Fprintf(w, "row size: %d\n", types.RowSize)
	fmt.Fprintf(w, "common node header size: %d\n", CommonHeaderSize)
	fmt.Fprintf(w, "leaf node header size: %d\n", LeafHeaderSize)
	fmt.Fprintf(w, "leaf node cell size: %d\n", CellSize)
	fmt.Fprintf(w, "leaf node space for cells: %d\n", SpaceForCells)
	fmt.Fprintf(w, "leaf node max cells: %d\n", MaxCells)
}

// PrintLeaf writes the cell count and keys of a leaf page.
func PrintLeaf(w io.Writer, page []byte) {
	count := CellCount(page)
	fmt.Fprintf(w, "leaf (size %d)\n", count)
	for i := uint32(0); i < count; i++ {
		fmt.Fprintf(w, "  - %d : %d\n", i, Key(page, i))
	}
}
