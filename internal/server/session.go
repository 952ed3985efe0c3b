package server

import (
	"sync"

	"github.com/ironsheep/rasteredit/internal/raster"
)

// sessionCache maps input paths to open editing sessions.
//
// Each session is a *raster.Editor whose buffer lives until the session is
// closed, so a client can chain several tool calls against the same path
// and save once at the end. Paths are used verbatim as keys: a relative and
// an absolute path to the same file are separate sessions.
type sessionCache struct {
	mu      sync.Mutex
	editors map[string]*raster.Editor

	// jpegQuality is applied to every editor the cache creates.
	jpegQuality int
}

func newSessionCache(jpegQuality int) *sessionCache {
	return &sessionCache{
		editors:     make(map[string]*raster.Editor),
		jpegQuality: jpegQuality,
	}
}

// Open starts a fresh session for path, discarding any previous one, and
// decodes the image immediately so a bad path is reported up front.
func (c *sessionCache) Open(path, output string) (*raster.Editor, error) {
	ed := raster.New(path, raster.WithOutput(output), raster.WithJPEGQuality(c.jpegQuality))
	if err := ed.Load(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.editors[path] = ed
	c.mu.Unlock()
	return ed, nil
}

// Get returns the session for path, opening one if none exists.
func (c *sessionCache) Get(path string) (*raster.Editor, error) {
	c.mu.Lock()
	ed, ok := c.editors[path]
	c.mu.Unlock()
	if ok {
		return ed, nil
	}
	return c.Open(path, "")
}

// Close drops the session for path. It reports whether one existed.
func (c *sessionCache) Close(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.editors[path]
	delete(c.editors, path)
	return ok
}

// Clear drops every session.
func (c *sessionCache) Clear() {
	c.mu.Lock()
	c.editors = make(map[string]*raster.Editor)
	c.mu.Unlock()
}

// Len returns the number of open sessions.
func (c *sessionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.editors)
}
