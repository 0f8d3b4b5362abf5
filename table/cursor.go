package table

import "leafdb/btree"

// Cursor is a transient position inside the table: a page number and a cell
// index. It holds no page memory and carries no invalidation tracking, so
// its lifetime must not outlive the operation that created it.
type Cursor struct {
	table      *Table
	pageNum    uint32
	cellNum    uint32
	endOfTable bool
}

// Start positions a cursor at the first cell of the table.
func (t *Table) Start() (*Cursor, error) {
	root, err := t.RootNode()
	if err != nil {
		return nil, err
	}

	return &Cursor{
		table:      t,
		pageNum:    t.rootPage,
		cellNum:    0,
		endOfTable: btree.CellCount(root) == 0,
	}, nil
}

// End positions a cursor one past the last cell. It is the insertion point
// and is always at end.
func (t *Table) End() (*Cursor, error) {
	root, err := t.RootNode()
	if err != nil {
		return nil, err
	}

	return &Cursor{
		table:      t,
		pageNum:    t.rootPage,
		cellNum:    btree.CellCount(root),
		endOfTable: true,
	}, nil
}

// EndOfTable reports whether the cursor is past the last cell.
func (c *Cursor) EndOfTable() bool {
	return c.endOfTable
}

// Value resolves the cursor to the serialized-row bytes of its cell.
// Only valid while the cursor is not at end.
func (c *Cursor) Value() ([]byte, error) {
	page, err := c.table.pager.GetPage(c.pageNum)
	if err != nil {
		return nil, err
	}
	return btree.Value(page, c.cellNum), nil
}

// Advance moves the cursor one cell forward, flagging end once the index
// reaches the node's cell count.
func (c *Cursor) Advance() error {
	page, err := c.table.pager.GetPage(c.pageNum)
	if err != nil {
		return err
	}

	c.cellNum++
	if c.cellNum >= btree.CellCount(page) {
		c.endOfTable = true
	}
	return nil
}
