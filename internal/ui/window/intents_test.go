package window_test

import (
	"github.com/bnema/tabshell/internal/ui/presenter"
	"github.com/bnema/tabshell/internal/ui/window"
)

var _ window.Intents = (*presenter.Presenter)(nil)
var _ presenter.Renderer = (*window.MainWindow)(nil)
