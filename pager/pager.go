// Package pager owns the database file and the in-memory page buffers.
// Pages load lazily on first access and are written back at close; nothing
// is ever evicted.
package pager

import (
	"errors"
	"fmt"
	"io"
	"os"

	"leafdb/types"
)

// MaxPages is the fixed ceiling on table size. Requests at or past it fail.
const MaxPages = 100

var ErrPageOutOfBounds = errors.New("page number out of bounds")

type Pager struct {
	file       *os.File
	fileLength int64
	numPages   uint32
	pages      [MaxPages][]byte
}

// Open opens or creates the database file at path. The file length must be
// a whole number of pages; anything else means the file is corrupt.
func Open(path string) (*Pager, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open db file %s: %w", path, err)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat db file: %w", err)
	}

	length := stat.Size()
	if length%types.PageSize != 0 {
		file.Close()
		return nil, fmt.Errorf("db file length %d is not a whole number of pages, file is corrupt", length)
	}

	return &Pager{
		file:       file,
		fileLength: length,
		numPages:   uint32(length / types.PageSize),
	}, nil
}

// GetPage returns the resident buffer for pageNum, loading it from disk on
// first access. Repeated calls return the same buffer; callers share it and
// mutate it in place.
func (p *Pager) GetPage(pageNum uint32) ([]byte, error) {
	if pageNum >= MaxPages {
		return nil, fmt.Errorf("page %d exceeds limit %d: %w", pageNum, MaxPages, ErrPageOutOfBounds)
	}

	if p.pages[pageNum] == nil {
		// Cache miss. Allocate and load from file if the page exists on disk.
		page := make([]byte, types.PageSize)

		diskPages := uint32(p.fileLength / types.PageSize)
		if p.fileLength%types.PageSize != 0 {
			diskPages++
		}

		if pageNum < diskPages {
			_, err := p.file.ReadAt(page, int64(pageNum)*types.PageSize)
			if err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("failed to read page %d: %w", pageNum, err)
			}
			// A short read leaves the tail zeroed, which is the empty state.
		}

		p.pages[pageNum] = page
		if pageNum >= p.numPages {
			p.numPages = pageNum + 1
		}
	}

	return p.pages[pageNum], nil
}

// Flush writes size bytes of a resident page back to its page-aligned file
// offset.
func (p *Pager) Flush(pageNum uint32, size uint32) error {
	if pageNum >= MaxPages || p.pages[pageNum] == nil {
		return fmt.Errorf("tried to flush non-resident page %d", pageNum)
	}

	offset := int64(pageNum) * types.PageSize
	if _, err := p.file.WriteAt(p.pages[pageNum][:size], offset); err != nil {
		return fmt.Errorf("failed to write page %d: %w", pageNum, err)
	}
	return nil
}

// Close flushes every resident page, syncs, and closes the file.
func (p *Pager) Close() error {
	for i := uint32(0); i < p.numPages; i++ {
		if p.pages[i] == nil {
			continue
		}
		if err := p.Flush(i, types.PageSize); err != nil {
			return err
		}
		p.pages[i] = nil
	}

	if err := p.file.Sync(); err != nil {
		p.file.Close()
		return fmt.Errorf("failed to sync db file: %w", err)
	}
	if err := p.file.Close(); err != nil {
		return fmt.Errorf("failed to close db file: %w", err)
	}
	return nil
}

// PageCount reports how many pages are known to exist, on disk or resident.
func (p *Pager) PageCount() uint32 {
	return p.numPages
}
