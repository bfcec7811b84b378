// Package darwin provides macOS display detection.
package darwin

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"

	"github.com/julianstephens/simpleclock/internal/platform"
)

func init() {
	platform.Register("darwin", func() platform.Platform {
		return New()
	})
}

// Platform implements platform.Platform for macOS.
type Platform struct {
	screens platform.ScreenService
}

// New creates a macOS platform backed by system_profiler.
func New() *Platform {
	return &Platform{screens: platform.ListScreens(listDisplays)}
}

func (p *Platform) Name() string                    { return "darwin" }
func (p *Platform) IsSupported() bool               { return true }
func (p *Platform) Screens() platform.ScreenService { return p.screens }

var _ platform.Platform = (*Platform)(nil)

var profilerCommand = func(ctx context.Context) ([]byte, error) {
	return exec.CommandContext(ctx, "system_profiler", "SPDisplaysDataType", "-json").Output()
}

func listDisplays() ([]platform.Display, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	out, err := profilerCommand(ctx)
	if err != nil {
		return nil, fmt.Errorf("system_profiler failed: %w", err)
	}
	return ParseProfile(out)
}

type profile struct {
	Adapters []struct {
		Name     string `json:"_name"`
		Displays []struct {
			Name      string `json:"_name"`
			DisplayID string `json:"_spdisplays_displayID"`
			Main      string `json:"spdisplays_main"`
		} `json:"spdisplays_ndrvs"`
	} `json:"SPDisplaysDataType"`
}

// ParseProfile extracts displays from `system_profiler SPDisplaysDataType -json`.
func ParseProfile(data []byte) ([]platform.Display, error) {
	var p profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse display profile: %w", err)
	}

	var displays []platform.Display
	for _, adapter := range p.Adapters {
		for _, d := range adapter.Displays {
			id := d.DisplayID
			if id == "" {
				id = d.Name
			}
			displays = append(displays, platform.Display{
				ID:   id,
				Name: d.Name,
				Main: d.Main == "spdisplays_yes",
			})
		}
	}
	return displays, nil
}
