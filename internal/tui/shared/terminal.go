package shared

import "os"

//nolint:gochecknoglobals // Terminal capabilities are detected once at startup
var (
	colorsDisabled  = detectNoColor(os.Getenv)
	unicodeDisabled = detectNoColor(os.Getenv)
)

// SetPlain forces ASCII symbols and uncolored progress bars, as with
// NO_COLOR or TERM=dumb. Call it before starting a program.
func SetPlain(plain bool) {
	colorsDisabled = plain
	unicodeDisabled = plain
}

func detectNoColor(getenv func(string) string) bool {
	return getenv("NO_COLOR") != "" || getenv("TERM") == "dumb"
}
