package types

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Row is a single record of the table's fixed schema.
type Row struct {
	ID       uint32
	Username string
	Email    string
}

// SerializeRow writes the fixed-width binary form of row into dst.
// dst must be at least RowSize bytes; bytes of each string field past
// the copied content are left as dst held them.
func SerializeRow(row *Row, dst []byte) error {
	if len(dst) < RowSize {
		return fmt.Errorf("destination size %d smaller than row size %d", len(dst), RowSize)
	}
	if len(row.Username) > ColumnUsernameSize {
		return fmt.Errorf("username exceeds %d bytes", ColumnUsernameSize)
	}
	if len(row.Email) > ColumnEmailSize {
		return fmt.Errorf("email exceeds %d bytes", ColumnEmailSize)
	}

	binary.LittleEndian.PutUint32(dst[IDOffset:], row.ID)
	copy(dst[UsernameOffset:UsernameOffset+UsernameSize], row.Username)
	dst[UsernameOffset+len(row.Username)] = 0
	copy(dst[EmailOffset:EmailOffset+EmailSize], row.Email)
	dst[EmailOffset+len(row.Email)] = 0
	return nil
}

// DeserializeRow reads the fixed-width binary form at src back into a Row.
// String fields end at their first NUL byte.
func DeserializeRow(src []byte) Row {
	return Row{
		ID:       binary.LittleEndian.Uint32(src[IDOffset:]),
		Username: cString(src[UsernameOffset : UsernameOffset+UsernameSize]),
		Email:    cString(src[EmailOffset : EmailOffset+EmailSize]),
	}
}

func cString(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		return string(field[:i])
	}
	return string(field)
}
