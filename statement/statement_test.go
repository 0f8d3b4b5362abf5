package statement

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"leafdb/table"
	"leafdb/types"
)

func TestPrepare(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		result  PrepareResult
		kind    Kind
		wantRow types.Row
	}{
		{
			name:    "valid insert",
			input:   "insert 1 alice alice@example.com",
			result:  PrepareSuccess,
			kind:    Insert,
			wantRow: types.Row{ID: 1, Username: "alice", Email: "alice@example.com"},
		},
		{
			name:   "select",
			input:  "select",
			result: PrepareSuccess,
			kind:   Select,
		},
		{
			name:    "leading whitespace",
			input:   "  insert 2 bob bob@example.com  ",
			result:  PrepareSuccess,
			kind:    Insert,
			wantRow: types.Row{ID: 2, Username: "bob", Email: "bob@example.com"},
		},
		{name: "missing fields", input: "insert 1 alice", result: PrepareSyntaxError},
		{name: "too many fields", input: "insert 1 alice a@b.c extra", result: PrepareSyntaxError},
		{name: "non-numeric id", input: "insert abc alice a@b.c", result: PrepareSyntaxError},
		{name: "negative id", input: "insert -1 alice a@b.c", result: PrepareNegativeID},
		{
			name:   "username too long",
			input:  "insert 1 " + strings.Repeat("u", types.ColumnUsernameSize+1) + " a@b.c",
			result: PrepareStringTooLong,
		},
		{
			name:   "email too long",
			input:  "insert 1 alice " + strings.Repeat("e", types.ColumnEmailSize+1),
			result: PrepareStringTooLong,
		},
		{name: "unrecognized keyword", input: "update 1 alice a@b.c", result: PrepareUnrecognized},
		{name: "select with trailing junk", input: "select all", result: PrepareUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, result := Prepare(tt.input)
			if result != tt.result {
				t.Fatalf("expected result %d, got %d", tt.result, result)
			}
			if result != PrepareSuccess {
				return
			}
			if stmt.Kind != tt.kind {
				t.Errorf("expected kind %d, got %d", tt.kind, stmt.Kind)
			}
			if tt.kind == Insert && stmt.Row != tt.wantRow {
				t.Errorf("row mismatch:\n  want %+v\n  got  %+v", tt.wantRow, stmt.Row)
			}
		})
	}
}

func TestCachePrepare(t *testing.T) {
	cache, err := NewCache()
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	defer cache.Close()

	input := "insert 1 alice alice@example.com"
	first, result := cache.Prepare(input)
	if result != PrepareSuccess {
		t.Fatalf("expected success, got %d", result)
	}
	cache.Wait()

	second, result := cache.Prepare(input)
	if result != PrepareSuccess {
		t.Fatalf("expected success on cached prepare, got %d", result)
	}
	if first != second {
		t.Error("expected the cached statement pointer on the second prepare")
	}
}

func TestCacheDoesNotStoreFailures(t *testing.T) {
	cache, err := NewCache()
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	defer cache.Close()

	if _, result := cache.Prepare("insert nope"); result != PrepareSyntaxError {
		t.Fatalf("expected syntax error, got %d", result)
	}
	cache.Wait()
	if _, result := cache.Prepare("insert nope"); result != PrepareSyntaxError {
		t.Errorf("expected syntax error again, got %d", result)
	}
}

func TestDoMetaCommand(t *testing.T) {
	tbl, err := table.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open table: %v", err)
	}
	defer tbl.Close()

	var buf bytes.Buffer

	result, err := DoMetaCommand(".exit", tbl, &buf)
	if err != nil || result != MetaExit {
		t.Errorf(".exit: expected MetaExit, got %d (err %v)", result, err)
	}

	result, err = DoMetaCommand(".constants", tbl, &buf)
	if err != nil || result != MetaSuccess {
		t.Fatalf(".constants: expected MetaSuccess, got %d (err %v)", result, err)
	}
	if !strings.Contains(buf.String(), "leaf node max cells: 13") {
		t.Errorf(".constants output missing max cells line:\n%s", buf.String())
	}

	buf.Reset()
	result, err = DoMetaCommand(".btree", tbl, &buf)
	if err != nil || result != MetaSuccess {
		t.Fatalf(".btree: expected MetaSuccess, got %d (err %v)", result, err)
	}
	if !strings.Contains(buf.String(), "leaf (size 0)") {
		t.Errorf(".btree output missing empty leaf line:\n%s", buf.String())
	}

	result, err = DoMetaCommand(".unknown", tbl, &buf)
	if err != nil || result != MetaUnrecognized {
		t.Errorf(".unknown: expected MetaUnrecognized, got %d (err %v)", result, err)
	}
}
