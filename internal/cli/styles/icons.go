package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe    = "\uf0ac" // browser/web
	IconTab      = "\uf0ce" // table
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconInfo     = "\uf05a" // info
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconClock    = "\uf017" // clock
	IconCursor   = "\uf054" // chevron-right
)

const (
	cursorSelected = IconCursor + " "
	cursorEmpty    = "  "
)
