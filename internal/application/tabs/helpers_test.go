package tabs_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
)

// fakeResource is an in-memory ViewResource that counts Destroy calls.
type fakeResource struct {
	mu        sync.Mutex
	uri       string
	callbacks *port.ViewCallbacks
	destroyed atomic.Int32
	detached  atomic.Int32
}

func (f *fakeResource) LoadURI(_ context.Context, uri string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uri = uri
	return nil
}

func (f *fakeResource) URI() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.uri
}

func (f *fakeResource) CanGoBack() bool { return false }
func (f *fakeResource) CanGoForward() bool { return false }
func (f *fakeResource) GoBack(context.Context) error { return nil }
func (f *fakeResource) GoForward(context.Context) error { return nil }
func (f *fakeResource) Reload(context.Context) error { return nil }
func (f *fakeResource) SetCallbacks(cb *port.ViewCallbacks) { f.callbacks = cb }
func (f *fakeResource) Detach() { f.detached.Add(1) }
func (f *fakeResource) Destroy() { f.destroyed.Add(1) }
func (f *fakeResource) IsDestroyed() bool { return f.destroyed.Load() > 0 }

// recordingFactory builds fakeResources and remembers them.
type recordingFactory struct {
	mu      sync.Mutex
	created []*fakeResource
	calls   atomic.Int32
}

func (r *recordingFactory) build(context.Context) (port.ViewResource, error) {
	r.calls.Add(1)
	res := &fakeResource{}
	r.mu.Lock()
	r.created = append(r.created, res)
	r.mu.Unlock()
	return res, nil
}

func (r *recordingFactory) resources() []*fakeResource {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*fakeResource(nil), r.created...)
}

// seqIDs returns tab-1, tab-2, ...
func seqIDs() entity.IDGenerator {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("tab-%d", n.Add(1))
	}
}
