package cache

import (
	"context"

	"github.com/horizontrails/agency-backoffice/internal/models"
)

// PackageCache caches public package listing pages.
// Implementations never fail the caller: errors are logged and treated as a miss.
type PackageCache interface {
	// GetList returns the cached page for key. The slot names the entry under
	// the generation current at lookup; a page loaded after a miss is stored
	// with SetList under that slot, so an invalidation in between wins.
	GetList(ctx context.Context, key string) (page *models.Page[models.Package], slot string, ok bool)
	// SetList stores page in slot. An empty slot is ignored.
	SetList(ctx context.Context, slot string, page *models.Page[models.Package])
	// Invalidate drops every cached listing
	Invalidate(ctx context.Context)
	Ping(ctx context.Context) error
	Close() error
}

// Noop is used when no Redis is configured
type Noop struct{}

func (Noop) GetList(context.Context, string) (*models.Page[models.Package], string, bool) {
	return nil, "", false
}
func (Noop) SetList(context.Context, string, *models.Page[models.Package]) {}
func (Noop) Invalidate(context.Context)                                    {}
func (Noop) Ping(context.Context) error                                    { return nil }
func (Noop) Close() error                                                  { return nil }
