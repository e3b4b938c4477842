package blob

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Factory creates a publisher for a parsed location.
type Factory func(ctx context.Context, loc Location, opts Options) (Publisher, error)

// Registry maps URI schemes to publisher factories.
type Registry interface {
	Register(scheme string, factory Factory) error
	Create(ctx context.Context, loc Location, opts Options) (Publisher, error)
	ListSchemes() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() Registry {
	return &registry{
		factories: make(map[string]Factory),
	}
}

// DefaultRegistry knows the s3:// and gs:// schemes.
func DefaultRegistry() Registry {
	r := NewRegistry()
	_ = r.Register(SchemeS3, func(ctx context.Context, loc Location, opts Options) (Publisher, error) {
		client, err := newS3Client(ctx, opts)
		if err != nil {
			return nil, err
		}
		return NewS3Publisher(client, loc), nil
	})
	_ = r.Register(SchemeGCS, func(ctx context.Context, loc Location, _ Options) (Publisher, error) {
		return newGCSPublisher(ctx, loc)
	})
	return r
}

func (r *registry) Register(scheme string, factory Factory) error {
	if scheme == "" {
		return fmt.Errorf("scheme cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[scheme]; exists {
		return fmt.Errorf("scheme %q is already registered", scheme)
	}
	r.factories[scheme] = factory
	return nil
}

func (r *registry) Create(ctx context.Context, loc Location, opts Options) (Publisher, error) {
	r.mu.RLock()
	factory, exists := r.factories[loc.Scheme]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, loc.Scheme)
	}
	return factory(ctx, loc, opts)
}

func (r *registry) ListSchemes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schemes := make([]string, 0, len(r.factories))
	for s := range r.factories {
		schemes = append(schemes, s)
	}
	sort.Strings(schemes)
	return schemes
}
