package tui

// Color constants for the designtrack TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#101B2D" // Dark navy
	ColorBorder         = "#3A4A63" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (field labels, user input, titles)
	ColorSecondaryText = "#AEB9CC" // Secondary text - subtle blue-tinted grey
	ColorDisabledText  = "#6D7689" // Disabled/muted text
	ColorPlaceholder   = "#AEB9CC" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Blue theme)
	ColorAccentMain   = "#2563EB" // Logo, accent elements, active borders
	ColorAccentBright = "#60A5FA" // Hover, highlights, current step

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Pauses, warnings
)
