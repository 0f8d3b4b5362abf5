package pager

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"leafdb/types"
)

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	p, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open pager: %v", err)
	}
	defer p.Close()

	if p.PageCount() != 0 {
		t.Errorf("expected 0 pages for new file, got %d", p.PageCount())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("db file was not created: %v", err)
	}
}

func TestOpenRejectsPartialPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.db")
	if err := os.WriteFile(path, make([]byte, types.PageSize+100), 0644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	if _, err := Open(path); err == nil {
		t.Error("expected error for file length that is not a whole number of pages")
	}
}

func TestGetPageReturnsSameBuffer(t *testing.T) {
	p, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open pager: %v", err)
	}
	defer p.Close()

	page1, err := p.GetPage(0)
	if err != nil {
		t.Fatalf("failed to get page 0: %v", err)
	}
	page1[100] = 0xAB

	page2, err := p.GetPage(0)
	if err != nil {
		t.Fatalf("failed to get page 0 again: %v", err)
	}
	if page2[100] != 0xAB {
		t.Error("second GetPage did not return the same buffer")
	}
	if p.PageCount() != 1 {
		t.Errorf("expected page count 1, got %d", p.PageCount())
	}
}

func TestGetPageOutOfBounds(t *testing.T) {
	p, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open pager: %v", err)
	}
	defer p.Close()

	if _, err := p.GetPage(MaxPages); !errors.Is(err, ErrPageOutOfBounds) {
		t.Errorf("expected ErrPageOutOfBounds, got %v", err)
	}
}

func TestFlushNonResidentPage(t *testing.T) {
	p, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open pager: %v", err)
	}
	defer p.Close()

	if err := p.Flush(0, types.PageSize); err == nil {
		t.Error("expected error flushing a page that was never loaded")
	}
}

func TestClosePersistsPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	p, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open pager: %v", err)
	}
	page, err := p.GetPage(0)
	if err != nil {
		t.Fatalf("failed to get page 0: %v", err)
	}
	copy(page, []byte("persisted bytes"))
	if err := p.Close(); err != nil {
		t.Fatalf("failed to close pager: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("failed to reopen pager: %v", err)
	}
	defer reopened.Close()

	if reopened.PageCount() != 1 {
		t.Fatalf("expected 1 page after reopen, got %d", reopened.PageCount())
	}
	page, err = reopened.GetPage(0)
	if err != nil {
		t.Fatalf("failed to get page 0 after reopen: %v", err)
	}
	if string(page[:len("persisted bytes")]) != "persisted bytes" {
		t.Errorf("page content did not survive close/reopen: %q", page[:20])
	}
}
