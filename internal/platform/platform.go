// Package platform provides OS-agnostic access to the attached displays.
package platform

// Display describes one attached screen.
type Display struct {
	// ID is the stable identifier used to bind a saver to a screen.
	ID string
	// Name is the human readable display name.
	Name string
	// Main marks the designated primary display.
	Main bool
}

// Platform provides access to OS-specific services.
type Platform interface {
	// Name returns the platform identifier (e.g., "darwin", "linux").
	Name() string

	// IsSupported returns true if screen detection works on this platform.
	IsSupported() bool

	// Screens returns the display detection service.
	Screens() ScreenService
}

// ScreenService resolves display identifiers.
type ScreenService interface {
	// Displays lists the attached displays.
	Displays() ([]Display, error)

	// MainScreen returns the ID of the primary display.
	MainScreen() (string, error)

	// CurrentScreen resolves the display a saver instance is bound to. hint
	// is the user supplied ID or name; an empty hint resolves only when
	// exactly one display is attached.
	CurrentScreen(hint string) (string, error)
}
