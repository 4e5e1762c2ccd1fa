package tabs

import (
	"fmt"
	"sync"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
)

// ViewState is the lifecycle state of a cached view.
type ViewState int

const (
	// ViewUnbound means the view exists but shows no tab.
	ViewUnbound ViewState = iota
	// ViewBound means the view is showing exactly one tab.
	ViewBound
	// ViewReleased is terminal; the engine resources are gone.
	ViewReleased
)

func (s ViewState) String() string {
	switch s {
	case ViewUnbound:
		return "unbound"
	case ViewBound:
		return "bound"
	case ViewReleased:
		return "released"
	default:
		return fmt.Sprintf("ViewState(%d)", int(s))
	}
}

// View wraps a rendering resource with its bind/release state machine.
//
//	Unbound --Bind--> Bound(tab) --Unbind--> Unbound
//	Unbound|Bound --Release--> Released
type View struct {
	mu       sync.Mutex
	resource port.ViewResource
	state    ViewState
	tabID    entity.TabID
}

// NewView wraps resource in the Unbound state.
func NewView(resource port.ViewResource) *View {
	return &View{resource: resource, state: ViewUnbound}
}

// Resource returns the underlying engine view.
func (v *View) Resource() port.ViewResource {
	return v.resource
}

// State returns the current lifecycle state.
func (v *View) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// BoundTab returns the tab this view is bound to, or "" when not bound.
func (v *View) BoundTab() entity.TabID {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state != ViewBound {
		return ""
	}
	return v.tabID
}

// Bind attaches the view to a tab. Binding again to the same tab is a no-op.
func (v *View) Bind(tabID entity.TabID) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch v.state {
	case ViewReleased:
		return ErrViewReleased
	case ViewBound:
		if v.tabID == tabID {
			return nil
		}
		return fmt.Errorf("%w: bound to %s", ErrViewBound, v.tabID)
	}

	v.state = ViewBound
	v.tabID = tabID
	return nil
}

// Unbind returns a bound view to Unbound. Other states are left as they are.
func (v *View) Unbind() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state == ViewBound {
		v.state = ViewUnbound
		v.tabID = ""
	}
}

// Release destroys the engine resource. Only the first call has any effect;
// it reports whether this call performed the release.
func (v *View) Release() bool {
	v.mu.Lock()
	if v.state == ViewReleased {
		v.mu.Unlock()
		return false
	}
	v.state = ViewReleased
	v.tabID = ""
	v.mu.Unlock()

	v.resource.Destroy()
	return true
}
