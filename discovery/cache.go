package discovery

import (
	"log/slog"

	"github.com/ggoodman/scorm-go/cmi"
)

// Cache runs Locate at most once and hands out the memoised result. It is
// not safe for concurrent use.
type Cache struct {
	root   Window
	logger *slog.Logger

	searched bool
	result   Result
}

// NewCache returns a cache that searches from root on first use.
func NewCache(root Window, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = discard
	}
	return &Cache{root: root, logger: logger}
}

// Handle returns the located host object. The first call searches, honouring
// preferred; later calls return the first call's outcome, found or not,
// whatever preferred is.
func (c *Cache) Handle(preferred cmi.Version) (Result, bool) {
	if !c.searched {
		c.searched = true
		c.result = Locate(c.root, preferred, c.logger)
	}
	return c.result, c.result.Found()
}

// Searched reports whether Handle has run a search.
func (c *Cache) Searched() bool { return c.searched }
