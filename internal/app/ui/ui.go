package ui

const AsciiArt = `
 █████╗  ██╗ ██╗██╗   ██╗
██╔══██╗███║███║╚██╗ ██╔╝
███████║╚██║╚██║ ╚████╔╝
██╔══██║ ██║ ██║  ╚██╔╝
██║  ██║ ██║ ██║   ██║
╚═╝  ╚═╝ ╚═╝ ╚═╝   ╚═╝
`

const (
	ColorReset  = "\033[0m"
	ColorGray   = "\033[90m" // Light gray
	ColorWhite  = "\033[97m" // White
	ColorRed    = "\033[91m" // Bright Red
	ColorGreen  = "\033[92m" // Bright Green
	ColorYellow = "\033[93m" // Bright Yellow

	ColorInfo    = "\033[37m" // White/Light Gray for info
	ColorSuccess = "\033[32m" // Green for success
	ColorWarning = "\033[33m" // Yellow for warning
	ColorDanger  = "\033[31m" // Red for danger
)
