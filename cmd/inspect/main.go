// Inspect program: dumps the layout constants and the root leaf page of a
// database file.
// Run: go run ./cmd/inspect [file]
package main

import (
	"fmt"
	"log"
	"os"

	"leafdb/btree"
	"leafdb/table"
)

func main() {
	path := "sample.db"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	tbl, err := table.Open(path)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer tbl.Close()

	fmt.Println("Constants:")
	btree.PrintConstants(os.Stdout)

	root, err := tbl.RootNode()
	if err != nil {
		log.Fatalf("read root page: %v", err)
	}
	fmt.Println("Tree:")
	btree.PrintLeaf(os.Stdout, root)
}
