package ui

// Icons
const (
	IconSuccess = "✔"
	IconError   = "✖"
	IconWarning = "!"
	IconInfo    = "•"
)

// Text fragments
const (
	SeparatorPipe       = " | "
	NotAvailable        = "N/A"
	ProgressLabelFormat = "%d%%"
	ItemCounterFormat   = "[%d/%d] "
)

// Progress rendering
const (
	// ProgressStep is the percent granularity used when output is not a terminal
	ProgressStep = 10
	// LineClear pads a rewritten progress line so leftovers from longer lines vanish
	LineClear = "\033[K"
)

// Banner is printed when cli.banner is enabled
const Banner = `╔══════════════════════════════════════════════════╗
║               YT Downloader CLI                  ║
║           (With Format Conversion)               ║
╚══════════════════════════════════════════════════╝`
