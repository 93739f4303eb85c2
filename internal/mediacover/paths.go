package mediacover

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// PathResolver maps (item, category, height) to cache file locations.
// It is the single source of truth for cache layout; producers and
// consumers must never derive paths any other way.
type PathResolver struct {
	root string
}

// NewPathResolver creates a resolver rooted at the cache directory.
func NewPathResolver(root string) *PathResolver {
	return &PathResolver{root: root}
}

// Root returns the cache root directory.
func (p *PathResolver) Root() string {
	return p.root
}

// ItemDir returns the per-item cache directory.
func (p *PathResolver) ItemDir(itemID int64) string {
	return filepath.Join(p.root, strconv.FormatInt(itemID, 10))
}

// CoverPath returns the path of the canonical original for a category:
// <root>/<itemId>/<category>.jpg. Pure; performs no I/O.
func (p *PathResolver) CoverPath(itemID int64, category Category) string {
	return filepath.Join(p.ItemDir(itemID), category.String()+".jpg")
}

// ResizedCoverPath returns the path of a resized variant:
// <root>/<itemId>/<category>-<height>.jpg. Pure; performs no I/O.
func (p *PathResolver) ResizedCoverPath(itemID int64, category Category, height int) string {
	return filepath.Join(p.ItemDir(itemID), fmt.Sprintf("%s-%d.jpg", category, height))
}
