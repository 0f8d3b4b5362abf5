package types

const (
	PageSize = 4096 // 4KB page

	ColumnUsernameSize = 32
	ColumnEmailSize    = 255

	// Serialized row layout. String fields carry one trailing NUL byte,
	// so their on-disk width is the column size plus one.
	IDSize         = 4
	UsernameSize   = ColumnUsernameSize + 1
	EmailSize      = ColumnEmailSize + 1
	IDOffset       = 0
	UsernameOffset = IDOffset + IDSize
	EmailOffset    = UsernameOffset + UsernameSize
	RowSize        = IDSize + UsernameSize + EmailSize
)
