package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/leapstack-labs/aliaslint/pkg/core"
)

// parseEntry is a cached parse outcome. err holds a syntax error reported
// alongside a partial file.
type parseEntry struct {
	file *core.SourceFile
	err  error
}

// parseCache keeps parsed files keyed by path and content hash, so an
// unchanged file is never parsed twice.
type parseCache struct {
	entries *lru.Cache[string, parseEntry]
}

func newParseCache(size int) (*parseCache, error) {
	entries, err := lru.New[string, parseEntry](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create parse cache: %w", err)
	}
	return &parseCache{entries: entries}, nil
}

func (c *parseCache) get(key string) (parseEntry, bool) {
	return c.entries.Get(key)
}

func (c *parseCache) add(key string, entry parseEntry) {
	c.entries.Add(key, entry)
}

func (c *parseCache) len() int {
	return c.entries.Len()
}

// cacheKey identifies a file version.
func cacheKey(path string, content []byte) string {
	return path + "@" + computeHash(content)
}

func computeHash(content []byte) string {
	h := sha256.Sum256(content)
	return hex.EncodeToString(h[:])
}
