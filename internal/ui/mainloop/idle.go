package mainloop

import "github.com/diamondburned/gotk4/pkg/glib/v2"

// PostIdle schedules fn on the GTK main loop. It is the post function used by
// Coalescer in the running application.
func PostIdle(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}
