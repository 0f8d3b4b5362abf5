package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"leafdb/statement"
	"leafdb/table"
	"leafdb/types"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Must supply a database filename.")
		os.Exit(1)
	}

	tbl, err := table.Open(os.Args[1])
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	cache, err := statement.NewCache()
	if err != nil {
		log.Fatalf("failed to create statement cache: %v", err)
	}
	defer cache.Close()

	scanner := bufio.NewScanner(os.Stdin)

	// REPL
	for {
		fmt.Print(promptStyle.Render("db > "))

		if !scanner.Scan() { // Ctrl+D
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			result, err := statement.DoMetaCommand(line, tbl, os.Stdout)
			if err != nil {
				log.Fatalf("meta command failed: %v", err)
			}
			switch result {
			case statement.MetaExit:
				if err := tbl.Close(); err != nil {
					log.Fatalf("failed to close database: %v", err)
				}
				return
			case statement.MetaUnrecognized:
				fmt.Println(errorStyle.Render(fmt.Sprintf("Unrecognized command '%s'.", line)))
			}
			continue
		}

		stmt, result := cache.Prepare(line)
		switch result {
		case statement.PrepareSuccess:
		case statement.PrepareSyntaxError:
			fmt.Println(errorStyle.Render("Syntax error. Could not parse statement."))
			continue
		case statement.PrepareStringTooLong:
			fmt.Println(errorStyle.Render("String is too long."))
			continue
		case statement.PrepareNegativeID:
			fmt.Println(errorStyle.Render("ID must be positive."))
			continue
		case statement.PrepareUnrecognized:
			fmt.Println(errorStyle.Render(fmt.Sprintf("Unrecognized keyword at start of '%s'.", line)))
			continue
		}

		switch stmt.Kind {
		case statement.Insert:
			result, err := tbl.ExecuteInsert(&stmt.Row)
			if err != nil {
				log.Fatalf("insert failed: %v", err)
			}
			if result == table.ExecuteTableFull {
				fmt.Println(errorStyle.Render("Error: Table full."))
				continue
			}
			fmt.Println("Executed.")
		case statement.Select:
			err := tbl.Scan(func(row types.Row) error {
				fmt.Printf("(%d, %s, %s)\n", row.ID, row.Username, row.Email)
				return nil
			})
			if err != nil {
				log.Fatalf("select failed: %v", err)
			}
			fmt.Println("Executed.")
		}
	}

	if err := tbl.Close(); err != nil {
		log.Fatalf("failed to close database: %v", err)
	}
}
