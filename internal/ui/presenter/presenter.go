// Package presenter connects the tab manager to a toolkit-specific renderer.
// It owns the mapping from the selected tab to the view on screen but never
// owns tab state.
package presenter

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/tabs"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/url"
	"github.com/bnema/tabshell/internal/logging"
	"github.com/bnema/tabshell/internal/ui/mainloop"
)

// ErrNotURL is returned by Navigate for input that cannot be loaded.
var ErrNotURL = errors.New("input is not a URL")

const renderKey = "render"

// TabManager is the subset of tabs.Manager the presenter drives.
type TabManager interface {
	Snapshot() tabs.State
	Subscribe(fn tabs.Listener) (unsubscribe func())
	AddTab(ctx context.Context, url, title string) *entity.Tab
	CloseTab(ctx context.Context, id entity.TabID)
	SelectTab(ctx context.Context, id entity.TabID) error
	SelectNext(ctx context.Context)
	SelectPrevious(ctx context.Context)
	UpdateTabURL(ctx context.Context, id entity.TabID, url string)
	UpdateTabTitle(ctx context.Context, id entity.TabID, title string)
	GetOrCreateView(ctx context.Context, id entity.TabID, factory port.ViewFactory) (*tabs.View, error)
}

// Renderer draws presenter output. Calls arrive on the main loop.
type Renderer interface {
	RenderTabs(state tabs.State)
	ShowView(resource port.ViewResource)
	SetNavigation(canGoBack, canGoForward bool)
}

// Presenter keeps the renderer in sync with manager snapshots.
type Presenter struct {
	ctx       context.Context
	manager   TabManager
	factory   port.ViewFactory
	renderer  Renderer
	coalescer *mainloop.Coalescer
	logger    zerolog.Logger

	mu          sync.Mutex
	current     *tabs.View
	currentTab  entity.TabID
	unsubscribe func()
}

// New creates a presenter. post schedules work on the main loop; in the
// running application it is mainloop.PostIdle.
func New(ctx context.Context, manager TabManager, factory port.ViewFactory, renderer Renderer, post func(func())) *Presenter {
	ctx = logging.WithComponent(ctx, "presenter")
	return &Presenter{
		ctx:       ctx,
		manager:   manager,
		factory:   factory,
		renderer:  renderer,
		coalescer: mainloop.NewCoalescer(post),
		logger:    *logging.FromContext(ctx),
	}
}

// Start subscribes to the manager and renders the current snapshot.
func (p *Presenter) Start() {
	unsubscribe := p.manager.Subscribe(func(tabs.State) {
		p.coalescer.Post(renderKey, p.renderLatest)
	})

	p.mu.Lock()
	p.unsubscribe = unsubscribe
	p.mu.Unlock()
}

// Stop unsubscribes, drops pending work and silences the current view.
func (p *Presenter) Stop() {
	p.coalescer.Destroy()

	p.mu.Lock()
	unsubscribe := p.unsubscribe
	p.unsubscribe = nil
	current := p.current
	p.current = nil
	p.currentTab = ""
	p.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if current != nil && current.State() != tabs.ViewReleased {
		current.Resource().SetCallbacks(nil)
	}
}

// CurrentView returns the view on screen, or nil.
func (p *Presenter) CurrentView() *tabs.View {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *Presenter) renderLatest() {
	p.render(p.manager.Snapshot())
}

func (p *Presenter) render(state tabs.State) {
	p.renderer.RenderTabs(state)

	sel := state.SelectedTab()
	if sel == nil {
		return
	}
	log := p.logger.With().Str("tab_id", string(sel.ID)).Logger()

	view, err := p.manager.GetOrCreateView(p.ctx, sel.ID, p.factory)
	if err != nil {
		log.Error().Err(err).Msg("failed to obtain view")
		return
	}

	p.mu.Lock()
	prev := p.current
	p.mu.Unlock()

	if prev != nil && prev != view && prev.State() != tabs.ViewReleased {
		prev.Resource().SetCallbacks(nil)
		prev.Unbind()
		prev.Resource().Detach()
	}

	if err := view.Bind(sel.ID); err != nil {
		log.Error().Err(err).Msg("failed to bind view")
		return
	}

	res := view.Resource()
	res.SetCallbacks(p.callbacksFor(sel.ID))
	if prev != view {
		p.renderer.ShowView(res)
	}

	if sel.URL != "" && res.URI() != sel.URL {
		if err := res.LoadURI(p.ctx, sel.URL); err != nil {
			log.Error().Err(err).Str("url", sel.URL).Msg("failed to load tab url")
		}
	}

	p.mu.Lock()
	p.current = view
	p.currentTab = sel.ID
	p.mu.Unlock()

	p.renderer.SetNavigation(res.CanGoBack(), res.CanGoForward())
}

func (p *Presenter) callbacksFor(id entity.TabID) *port.ViewCallbacks {
	onURL := func(uri string) {
		if uri == "" {
			return
		}
		p.coalescer.Post("url:"+string(id), func() {
			p.manager.UpdateTabURL(p.ctx, id, uri)
			p.refreshNavigation(id)
		})
	}

	return &port.ViewCallbacks{
		OnNavigationStarted:  onURL,
		OnNavigationFinished: onURL,
		OnTitleChanged: func(title string) {
			if strings.TrimSpace(title) == "" {
				return
			}
			p.coalescer.Post("title:"+string(id), func() {
				p.manager.UpdateTabTitle(p.ctx, id, title)
			})
		},
	}
}

func (p *Presenter) refreshNavigation(id entity.TabID) {
	res := p.activeResource()
	if res == nil || p.currentTabID() != id {
		return
	}
	p.renderer.SetNavigation(res.CanGoBack(), res.CanGoForward())
}

func (p *Presenter) currentTabID() entity.TabID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentTab
}

func (p *Presenter) activeResource() port.ViewResource {
	p.mu.Lock()
	current := p.current
	p.mu.Unlock()

	if current == nil || current.State() != tabs.ViewBound {
		return nil
	}
	return current.Resource()
}

// NewTab opens a tab on the default URL and selects it.
func (p *Presenter) NewTab() {
	p.manager.AddTab(p.ctx, "", "")
}

// OpenURL opens input in a new tab. Input that is not a URL is rejected.
func (p *Presenter) OpenURL(input string) error {
	target, err := normalize(input)
	if err != nil {
		return err
	}
	p.manager.AddTab(p.ctx, target, "")
	return nil
}

// Navigate loads input in the selected tab.
func (p *Presenter) Navigate(input string) error {
	target, err := normalize(input)
	if err != nil {
		return err
	}
	sel := p.manager.Snapshot().SelectedTab()
	if sel == nil {
		return nil
	}
	p.manager.UpdateTabURL(p.ctx, sel.ID, target)
	return nil
}

// CloseTab closes a tab by id.
func (p *Presenter) CloseTab(id entity.TabID) {
	p.manager.CloseTab(p.ctx, id)
}

// CloseSelected closes the selected tab.
func (p *Presenter) CloseSelected() {
	if sel := p.manager.Snapshot().SelectedTab(); sel != nil {
		p.manager.CloseTab(p.ctx, sel.ID)
	}
}

// SelectTab selects a tab by id.
func (p *Presenter) SelectTab(id entity.TabID) {
	if err := p.manager.SelectTab(p.ctx, id); err != nil {
		p.logger.Warn().Err(err).Str("tab_id", string(id)).Msg("select failed")
	}
}

// SelectNext selects the tab to the right, wrapping around.
func (p *Presenter) SelectNext() {
	p.manager.SelectNext(p.ctx)
}

// SelectPrevious selects the tab to the left, wrapping around.
func (p *Presenter) SelectPrevious() {
	p.manager.SelectPrevious(p.ctx)
}

// Back navigates the visible view back.
func (p *Presenter) Back() {
	p.navigate("back", func(res port.ViewResource) error {
		if !res.CanGoBack() {
			return nil
		}
		return res.GoBack(p.ctx)
	})
}

// Forward navigates the visible view forward.
func (p *Presenter) Forward() {
	p.navigate("forward", func(res port.ViewResource) error {
		if !res.CanGoForward() {
			return nil
		}
		return res.GoForward(p.ctx)
	})
}

// Reload reloads the visible view.
func (p *Presenter) Reload() {
	p.navigate("reload", func(res port.ViewResource) error {
		return res.Reload(p.ctx)
	})
}

func (p *Presenter) navigate(action string, fn func(port.ViewResource) error) {
	res := p.activeResource()
	if res == nil {
		return
	}
	if err := fn(res); err != nil {
		p.logger.Warn().Err(err).Str("action", action).Msg("navigation failed")
	}
}

func normalize(input string) (string, error) {
	if !url.LooksLikeURL(input) {
		return "", ErrNotURL
	}
	return url.Normalize(input), nil
}
