package tabs

import "errors"

var (
	// ErrTabNotFound is returned when an operation names a tab that is not in the list.
	ErrTabNotFound = errors.New("tab not found")
	// ErrViewReleased is returned when binding a view that has already been released.
	ErrViewReleased = errors.New("view released")
	// ErrViewBound is returned when binding a view that is bound to another tab.
	ErrViewBound = errors.New("view bound to another tab")
	// ErrManagerClosed is returned by view requests after Teardown.
	ErrManagerClosed = errors.New("tab manager torn down")
)
