// Package btree holds the byte-level layout of index pages. Every offset
// into a page is computed here; no other package does layout math.
package btree

import (
	"encoding/binary"
	"errors"
	"fmt"

	"leafdb/types"
)

type NodeType uint8

const (
	NodeInternal NodeType = iota
	NodeLeaf
)

// Common node header, shared by every node kind.
const (
	nodeTypeSize        = 1
	nodeTypeOffset      = 0
	isRootSize          = 1
	isRootOffset        = nodeTypeOffset + nodeTypeSize
	parentPointerSize   = 4
	parentPointerOffset = isRootOffset + isRootSize
	CommonHeaderSize    = nodeTypeSize + isRootSize + parentPointerSize
)

// Leaf node header and body.
const (
	numCellsSize   = 4
	numCellsOffset = CommonHeaderSize
	LeafHeaderSize = CommonHeaderSize + numCellsSize

	KeySize       = 4
	ValueSize     = types.RowSize
	CellSize      = KeySize + ValueSize
	SpaceForCells = types.PageSize - LeafHeaderSize
	MaxCells      = SpaceForCells / CellSize
)

// ErrLeafFull is returned when a cell is inserted into a leaf that already
// holds MaxCells cells. Node splitting is not implemented, so callers must
// treat this as unrecoverable.
var ErrLeafFull = errors.New("leaf node full: splitting not implemented")

func GetNodeType(page []byte) NodeType {
	return NodeType(page[nodeTypeOffset])
}

func SetNodeType(page []byte, t NodeType) {
	page[nodeTypeOffset] = byte(t)
}

func IsRoot(page []byte) bool {
	return page[isRootOffset] != 0
}

func SetRoot(page []byte, isRoot bool) {
	if isRoot {
		page[isRootOffset] = 1
	} else {
		page[isRootOffset] = 0
	}
}

func ParentPointer(page []byte) uint32 {
	return binary.LittleEndian.Uint32(page[parentPointerOffset:])
}

func SetParentPointer(page []byte, parent uint32) {
	binary.LittleEndian.PutUint32(page[parentPointerOffset:], parent)
}

func CellCount(page []byte) uint32 {
	return binary.LittleEndian.Uint32(page[numCellsOffset:])
}

func SetCellCount(page []byte, n uint32) {
	binary.LittleEndian.PutUint32(page[numCellsOffset:], n)
}

// Cell returns the full key+value slot at the given cell index.
func Cell(page []byte, cell uint32) []byte {
	offset := LeafHeaderSize + cell*CellSize
	return page[offset : offset+CellSize]
}

func Key(page []byte, cell uint32) uint32 {
	return binary.LittleEndian.Uint32(Cell(page, cell))
}

func SetKey(page []byte, cell uint32, key uint32) {
	binary.LittleEndian.PutUint32(Cell(page, cell), key)
}

// Value returns the serialized row portion of the cell.
func Value(page []byte, cell uint32) []byte {
	return Cell(page, cell)[KeySize:]
}

// InitializeLeaf formats a page as an empty leaf node. Body bytes are left
// as the buffer held them.
func InitializeLeaf(page []byte) {
	SetNodeType(page, NodeLeaf)
	SetRoot(page, false)
	SetCellCount(page, 0)
}

// InsertAt writes key and row into the cell slot at index, shifting cells
// [index, count) one slot right. Cells stay key-sorted only if the caller
// always passes the sorted insertion point; the engine inserts at the tail.
func InsertAt(page []byte, index uint32, key uint32, row *types.Row) error {
	count := CellCount(page)
	if count >= MaxCells {
		return ErrLeafFull
	}
	if index > count {
		return fmt.Errorf("cell index %d past cell count %d", index, count)
	}

	// Shift highest first so no cell is overwritten before it moves.
	for i := count; i > index; i-- {
		copy(Cell(page, i), Cell(page, i-1))
	}

	SetKey(page, index, key)
	if err := types.SerializeRow(row, Value(page, index)); err != nil {
		return err
	}
	SetCellCount(page, count+1)
	return nil
}
