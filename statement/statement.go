// Package statement turns REPL input lines into executable statements and
// handles meta commands.
package statement

import (
	"strconv"
	"strings"

	"leafdb/types"
)

type Kind int

const (
	Insert Kind = iota
	Select
)

type Statement struct {
	Kind Kind
	Row  types.Row
}

type PrepareResult int

const (
	PrepareSuccess PrepareResult = iota
	PrepareUnrecognized
	PrepareSyntaxError
	PrepareStringTooLong
	PrepareNegativeID
)

// Prepare parses one input line into a Statement. Recognized forms are
// "insert <id> <username> <email>" and "select".
func Prepare(input string) (*Statement, PrepareResult) {
	input = strings.TrimSpace(input)

	if strings.HasPrefix(input, "insert") {
		return prepareInsert(input)
	}
	if input == "select" {
		return &Statement{Kind: Select}, PrepareSuccess
	}
	return nil, PrepareUnrecognized
}

func prepareInsert(input string) (*Statement, PrepareResult) {
	fields := strings.Fields(input)
	if len(fields) != 4 {
		return nil, PrepareSyntaxError
	}

	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, PrepareSyntaxError
	}
	if id < 0 {
		return nil, PrepareNegativeID
	}

	username, email := fields[2], fields[3]
	if len(username) > types.ColumnUsernameSize || len(email) > types.ColumnEmailSize {
		return nil, PrepareStringTooLong
	}

	return &Statement{
		Kind: Insert,
		Row:  types.Row{ID: uint32(id), Username: username, Email: email},
	}, PrepareSuccess
}
