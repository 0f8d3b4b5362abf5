// Seed program: creates a database file with sample rows.
// Run: go run ./cmd/seed [file]
// Then inspect with: go run ./cmd/inspect [file]
package main

import (
	"fmt"
	"log"
	"os"

	"leafdb/table"
	"leafdb/types"
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

	rows := []types.Row{
		{ID: 1, Username: "alice", Email: "alice@example.com"},
		{ID: 2, Username: "bob", Email: "bob@example.com"},
		{ID: 3, Username: "carol", Email: "carol@example.com"},
	}
	for _, row := range rows {
		result, err := tbl.ExecuteInsert(&row)
		if err != nil {
			log.Fatalf("insert id %d: %v", row.ID, err)
		}
		if result == table.ExecuteTableFull {
			log.Fatalf("insert id %d: table full", row.ID)
		}
	}

	if err := tbl.Close(); err != nil {
		log.Fatalf("close database: %v", err)
	}
	fmt.Printf("seeded %d rows into %s\n", len(rows), path)
}
