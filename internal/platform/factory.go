package platform

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
)

var (
	ErrUnsupported = errors.New("operation not supported on this platform")
	// ErrUnresolved is returned when a display cannot be identified.
	ErrUnresolved = errors.New("display could not be resolved")
)

type platformBuilder func() Platform

var (
	registry     = make(map[string]platformBuilder)
	registryLock sync.RWMutex
)

func Register(osName string, builder platformBuilder) {
	registryLock.Lock()
	defer registryLock.Unlock()
	registry[osName] = builder
}

var (
	current     Platform
	currentOnce sync.Once
)

func Current() Platform {
	currentOnce.Do(func() {
		current = newPlatform()
	})
	return current
}

func newPlatform() Platform {
	registryLock.RLock()
	defer registryLock.RUnlock()

	if builder, ok := registry[runtime.GOOS]; ok {
		return builder()
	}
	return &unsupportedPlatform{name: runtime.GOOS}
}

type unsupportedPlatform struct {
	name string
}

func (p *unsupportedPlatform) Name() string           { return p.name }
func (p *unsupportedPlatform) IsSupported() bool      { return false }
func (p *unsupportedPlatform) Screens() ScreenService { return unsupportedScreens{} }

type unsupportedScreens struct{}

func (unsupportedScreens) Displays() ([]Display, error)         { return nil, ErrUnsupported }
func (unsupportedScreens) MainScreen() (string, error)          { return "", ErrUnsupported }
func (unsupportedScreens) CurrentScreen(string) (string, error) { return "", ErrUnsupported }

func SetPlatform(p Platform) {
	currentOnce.Do(func() {})
	current = p
}

func ResetPlatform() {
	currentOnce = sync.Once{}
	current = nil
}

// MainDisplay picks the primary display from a list.
func MainDisplay(displays []Display) (string, error) {
	for _, d := range displays {
		if d.Main {
			return d.ID, nil
		}
	}
	return "", fmt.Errorf("%w: no primary display reported", ErrUnresolved)
}

// MatchDisplay resolves hint against a display list by ID, then by
// case-insensitive name. An empty hint matches only a single attached display.
func MatchDisplay(displays []Display, hint string) (string, error) {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		if len(displays) == 1 {
			return displays[0].ID, nil
		}
		return "", fmt.Errorf("%w: %d displays attached and no screen given", ErrUnresolved, len(displays))
	}

	for _, d := range displays {
		if d.ID == hint {
			return d.ID, nil
		}
	}
	for _, d := range displays {
		if strings.EqualFold(d.Name, hint) {
			return d.ID, nil
		}
	}
	return "", fmt.Errorf("%w: no display matches %q", ErrUnresolved, hint)
}

// ListScreens adapts a display lister into a ScreenService.
type ListScreens func() ([]Display, error)

func (l ListScreens) Displays() ([]Display, error) {
	return l()
}

func (l ListScreens) MainScreen() (string, error) {
	displays, err := l()
	if err != nil {
		return "", err
	}
	return MainDisplay(displays)
}

func (l ListScreens) CurrentScreen(hint string) (string, error) {
	displays, err := l()
	if err != nil {
		return "", err
	}
	return MatchDisplay(displays, hint)
}
