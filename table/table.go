// Package table exposes the single-table engine: a root leaf page reached
// through the pager, traversed and extended through cursors.
package table

import (
	"leafdb/btree"
	"leafdb/pager"
)

type Table struct {
	pager    *pager.Pager
	rootPage uint32
}

// Open opens the database file and wraps it in a Table. An empty file gets
// page 0 initialized as an empty root leaf; this is the only place a table
// is created.
func Open(path string) (*Table, error) {
	p, err := pager.Open(path)
	if err != nil {
		return nil, err
	}

	t := &Table{pager: p, rootPage: 0}

	if p.PageCount() == 0 {
		root, err := p.GetPage(t.rootPage)
		if err != nil {
			p.Close()
			return nil, err
		}
		btree.InitializeLeaf(root)
		btree.SetRoot(root, true)
	}

	return t, nil
}

// Close flushes all pages and closes the database file.
func (t *Table) Close() error {
	return t.pager.Close()
}

// RootNode returns the resident buffer of the root leaf page.
func (t *Table) RootNode() ([]byte, error) {
	return t.pager.GetPage(t.rootPage)
}

// Pager exposes the underlying page cache, used by inspection tooling.
func (t *Table) Pager() *pager.Pager {
	return t.pager
}
