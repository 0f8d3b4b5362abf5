package table

import (
	"leafdb/btree"
	"leafdb/types"
)

type ExecuteResult int

const (
	ExecuteSuccess ExecuteResult = iota
	ExecuteTableFull
)

// ExecuteInsert appends row at the end-of-table cursor with the row's id as
// key. A full root leaf yields ExecuteTableFull without mutating anything.
// Keys are taken in caller order; no uniqueness or ordering check is made.
func (t *Table) ExecuteInsert(row *types.Row) (ExecuteResult, error) {
	root, err := t.RootNode()
	if err != nil {
		return ExecuteSuccess, err
	}
	if btree.CellCount(root) >= btree.MaxCells {
		return ExecuteTableFull, nil
	}

	cursor, err := t.End()
	if err != nil {
		return ExecuteSuccess, err
	}
	if err := btree.InsertAt(root, cursor.cellNum, row.ID, row); err != nil {
		return ExecuteSuccess, err
	}
	return ExecuteSuccess, nil
}

// Scan walks the table from the start, invoking fn once per row in cell
// order. A fresh cursor is taken per call, so scans restart from the top.
func (t *Table) Scan(fn func(types.Row) error) error {
	cursor, err := t.Start()
	if err != nil {
		return err
	}

	for !cursor.EndOfTable() {
		value, err := cursor.Value()
		if err != nil {
			return err
		}
		if err := fn(types.DeserializeRow(value)); err != nil {
			return err
		}
		if err := cursor.Advance(); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteSelect materializes every row in cell order.
func (t *Table) ExecuteSelect() ([]types.Row, error) {
	var rows []types.Row
	err := t.Scan(func(row types.Row) error {
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
