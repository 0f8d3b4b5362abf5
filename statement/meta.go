package statement

import (
	"fmt"
	"io"

	"leafdb/btree"
	"leafdb/table"
)

type MetaResult int

const (
	MetaSuccess MetaResult = iota
	MetaUnrecognized
	MetaExit
)

// DoMetaCommand handles "."-prefixed commands. The caller closes the table
// and terminates when MetaExit comes back.
func DoMetaCommand(input string, tbl *table.Table, w io.Writer) (MetaResult, error) {
	switch input {
	case ".exit":
		return MetaExit, nil
	case ".constants":
		fmt.Fprintln(w, "Constants:")
		btree.PrintConstants(w)
		return MetaSuccess, nil
	case ".btree":
		root, err := tbl.RootNode()
		if err != nil {
			return MetaSuccess, err
		}
		fmt.Fprintln(w, "Tree:")
		btree.PrintLeaf(w, root)
		return MetaSuccess, nil
	}
	return MetaUnrecognized, nil
}
