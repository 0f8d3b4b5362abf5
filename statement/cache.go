package statement

import "github.com/dgraph-io/ristretto/v2"

// Cache memoizes successfully prepared statements keyed by the raw input
// line. Eviction is harmless here: a miss just re-parses.
type Cache struct {
	inner *ristretto.Cache[string, *Statement]
}

func NewCache() (*Cache, error) {
	inner, err := ristretto.NewCache(&ristretto.Config[string, *Statement]{
		NumCounters: 1e4,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Cache{inner: inner}, nil
}

// Prepare returns the cached statement for input if present, otherwise
// parses it and caches the result on success.
func (c *Cache) Prepare(input string) (*Statement, PrepareResult) {
	if stmt, ok := c.inner.Get(input); ok {
		return stmt, PrepareSuccess
	}

	stmt, result := Prepare(input)
	if result == PrepareSuccess {
		c.inner.Set(input, stmt, 1)
	}
	return stmt, result
}

// Wait blocks until buffered cache writes are applied.
func (c *Cache) Wait() {
	c.inner.Wait()
}

func (c *Cache) Close() {
	c.inner.Close()
}
