// Package window provides the GTK main window: tab strip, navigation
// controls and the host box for the visible view.
package window

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/diamondburned/gotk4/pkg/pango"
	"github.com/rs/zerolog"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/tabs"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

const (
	defaultWidth  = 1280
	defaultHeight = 800
	windowTitle   = "tabshell"
	tabLabelChars = 24
)

// Intents are the user actions the window forwards.
type Intents interface {
	NewTab()
	CloseTab(id entity.TabID)
	CloseSelected()
	SelectTab(id entity.TabID)
	SelectNext()
	SelectPrevious()
	Navigate(input string) error
	Back()
	Forward()
	Reload()
}

// Widgeter is implemented by view resources that can be placed in the host box.
type Widgeter interface {
	Widget() gtk.Widgetter
}

// MainWindow renders presenter output. It never owns tab state.
type MainWindow struct {
	window    *gtk.ApplicationWindow
	rootBox   *gtk.Box // Vertical: header + content
	tabStrip  *gtk.Box
	addBtn    *gtk.Button
	backBtn   *gtk.Button
	fwdBtn    *gtk.Button
	reloadBtn *gtk.Button
	address   *gtk.Entry
	viewHost  *gtk.Box

	intents Intents
	logger  zerolog.Logger
}

// New creates the main window. Call SetIntents before presenting it.
func New(ctx context.Context, app *gtk.Application) (*MainWindow, error) {
	log := logging.FromContext(ctx)

	mw := &MainWindow{
		logger: log.With().Str("component", "main-window").Logger(),
	}

	mw.window = gtk.NewApplicationWindow(app)
	if mw.window == nil {
		return nil, ErrWindowCreationFailed
	}
	mw.window.SetTitle(windowTitle)
	mw.window.SetDefaultSize(defaultWidth, defaultHeight)

	mw.rootBox = gtk.NewBox(gtk.OrientationVertical, 0)
	mw.rootBox.SetHExpand(true)
	mw.rootBox.SetVExpand(true)

	mw.rootBox.Append(mw.buildHeader())
	mw.rootBox.Append(mw.buildToolbar())

	mw.viewHost = gtk.NewBox(gtk.OrientationVertical, 0)
	mw.viewHost.SetHExpand(true)
	mw.viewHost.SetVExpand(true)
	mw.viewHost.AddCSSClass("view-host")
	mw.rootBox.Append(mw.viewHost)

	mw.window.SetChild(mw.rootBox)
	mw.installShortcuts()

	return mw, nil
}

func (mw *MainWindow) buildHeader() gtk.Widgetter {
	header := gtk.NewBox(gtk.OrientationHorizontal, 4)
	header.AddCSSClass("tab-header")

	mw.tabStrip = gtk.NewBox(gtk.OrientationHorizontal, 2)
	mw.tabStrip.SetHExpand(true)

	scroller := gtk.NewScrolledWindow()
	scroller.SetPolicy(gtk.PolicyAutomatic, gtk.PolicyNever)
	scroller.SetHExpand(true)
	scroller.SetChild(mw.tabStrip)
	header.Append(scroller)

	mw.addBtn = gtk.NewButtonFromIconName("list-add-symbolic")
	mw.addBtn.SetTooltipText("New tab")
	mw.addBtn.ConnectClicked(func() { mw.dispatch(func(i Intents) { i.NewTab() }) })
	header.Append(mw.addBtn)

	return header
}

func (mw *MainWindow) buildToolbar() gtk.Widgetter {
	bar := gtk.NewBox(gtk.OrientationHorizontal, 4)
	bar.AddCSSClass("toolbar")

	mw.backBtn = gtk.NewButtonFromIconName("go-previous-symbolic")
	mw.backBtn.SetSensitive(false)
	mw.backBtn.ConnectClicked(func() { mw.dispatch(func(i Intents) { i.Back() }) })

	mw.fwdBtn = gtk.NewButtonFromIconName("go-next-symbolic")
	mw.fwdBtn.SetSensitive(false)
	mw.fwdBtn.ConnectClicked(func() { mw.dispatch(func(i Intents) { i.Forward() }) })

	mw.reloadBtn = gtk.NewButtonFromIconName("view-refresh-symbolic")
	mw.reloadBtn.ConnectClicked(func() { mw.dispatch(func(i Intents) { i.Reload() }) })

	mw.address = gtk.NewEntry()
	mw.address.SetHExpand(true)
	mw.address.SetPlaceholderText("Enter address")
	mw.address.ConnectActivate(func() {
		input := mw.address.Text()
		mw.dispatch(func(i Intents) {
			if err := i.Navigate(input); err != nil {
				mw.logger.Debug().Err(err).Str("input", input).Msg("address rejected")
			}
		})
	})

	bar.Append(mw.backBtn)
	bar.Append(mw.fwdBtn)
	bar.Append(mw.reloadBtn)
	bar.Append(mw.address)
	return bar
}

func (mw *MainWindow) installShortcuts() {
	controller := gtk.NewEventControllerKey()
	controller.ConnectKeyPressed(func(keyval, _ uint, state gdk.ModifierType) bool {
		ctrl := state&gdk.ControlMask != 0
		alt := state&gdk.AltMask != 0

		switch {
		case ctrl && keyval == gdk.KEY_t:
			mw.dispatch(func(i Intents) { i.NewTab() })
		case ctrl && keyval == gdk.KEY_w:
			mw.dispatch(func(i Intents) { i.CloseSelected() })
		case ctrl && keyval == gdk.KEY_Tab:
			mw.dispatch(func(i Intents) { i.SelectNext() })
		case ctrl && keyval == gdk.KEY_ISO_Left_Tab:
			mw.dispatch(func(i Intents) { i.SelectPrevious() })
		case ctrl && keyval == gdk.KEY_l:
			mw.address.GrabFocus()
		case ctrl && keyval == gdk.KEY_r, keyval == gdk.KEY_F5:
			mw.dispatch(func(i Intents) { i.Reload() })
		case alt && keyval == gdk.KEY_Left:
			mw.dispatch(func(i Intents) { i.Back() })
		case alt && keyval == gdk.KEY_Right:
			mw.dispatch(func(i Intents) { i.Forward() })
		default:
			return false
		}
		return true
	})
	mw.window.AddController(controller)
}

func (mw *MainWindow) dispatch(fn func(Intents)) {
	if mw.intents == nil {
		return
	}
	fn(mw.intents)
}

// SetIntents connects the window's controls to the presenter.
func (mw *MainWindow) SetIntents(intents Intents) {
	mw.intents = intents
}

// Present shows the window.
func (mw *MainWindow) Present() {
	mw.window.Present()
}

// RenderTabs rebuilds the tab strip from state.
func (mw *MainWindow) RenderTabs(state tabs.State) {
	for child := mw.tabStrip.FirstChild(); child != nil; child = mw.tabStrip.FirstChild() {
		mw.tabStrip.Remove(child)
	}

	for _, tab := range state.Tabs {
		mw.tabStrip.Append(mw.tabButton(tab, tab.ID == state.SelectedTabID))
	}

	if sel := state.SelectedTab(); sel != nil {
		mw.window.SetTitle(sel.DisplayTitle() + " - " + windowTitle)
		if !mw.address.HasFocus() {
			mw.address.SetText(sel.URL)
		}
	}
}

func (mw *MainWindow) tabButton(tab *entity.Tab, selected bool) gtk.Widgetter {
	id := tab.ID

	box := gtk.NewBox(gtk.OrientationHorizontal, 0)
	box.AddCSSClass("linked")

	label := gtk.NewLabel(tab.DisplayTitle())
	label.SetEllipsize(pango.EllipsizeEnd)
	label.SetMaxWidthChars(tabLabelChars)

	selectBtn := gtk.NewButton()
	selectBtn.SetChild(label)
	selectBtn.SetTooltipText(tab.URL)
	if selected {
		selectBtn.AddCSSClass("suggested-action")
	}
	selectBtn.ConnectClicked(func() { mw.dispatch(func(i Intents) { i.SelectTab(id) }) })

	closeBtn := gtk.NewButtonFromIconName("window-close-symbolic")
	closeBtn.SetTooltipText("Close tab")
	closeBtn.ConnectClicked(func() { mw.dispatch(func(i Intents) { i.CloseTab(id) }) })

	box.Append(selectBtn)
	box.Append(closeBtn)
	return box
}

// ShowView places the resource's widget in the view host.
func (mw *MainWindow) ShowView(resource port.ViewResource) {
	w, ok := resource.(Widgeter)
	if !ok {
		mw.logger.Warn().Msg("view resource has no widget")
		return
	}
	widget := w.Widget()
	if widget == nil {
		return
	}

	for child := mw.viewHost.FirstChild(); child != nil; child = mw.viewHost.FirstChild() {
		mw.viewHost.Remove(child)
	}
	mw.viewHost.Append(widget)
	gtk.BaseWidget(widget).SetVisible(true)
}

// SetNavigation mirrors back/forward availability into the toolbar.
func (mw *MainWindow) SetNavigation(canGoBack, canGoForward bool) {
	mw.backBtn.SetSensitive(canGoBack)
	mw.fwdBtn.SetSensitive(canGoForward)
}

// Destroy closes the window.
func (mw *MainWindow) Destroy() {
	if mw.window != nil {
		mw.window.Destroy()
		mw.window = nil
	}
}

// WindowError represents a window-related error.
type WindowError struct {
	Message string
}

func (e WindowError) Error() string {
	return e.Message
}

var ErrWindowCreationFailed = WindowError{Message: "failed to create application window"}
