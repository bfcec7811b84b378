// Package linux provides X11 display detection through xrandr.
package linux

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/julianstephens/simpleclock/internal/platform"
)

func init() {
	platform.Register("linux", func() platform.Platform {
		return New()
	})
}

// Platform implements platform.Platform for Linux desktops.
type Platform struct {
	screens platform.ScreenService
}

func New() *Platform {
	return &Platform{screens: platform.ListScreens(listMonitors)}
}

func (p *Platform) Name() string                    { return "linux" }
func (p *Platform) IsSupported() bool               { return true }
func (p *Platform) Screens() platform.ScreenService { return p.screens }

var _ platform.Platform = (*Platform)(nil)

var xrandrCommand = func(ctx context.Context) ([]byte, error) {
	return exec.CommandContext(ctx, "xrandr", "--listmonitors").Output()
}

func listMonitors() ([]platform.Display, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out, err := xrandrCommand(ctx)
	if err != nil {
		return nil, fmt.Errorf("xrandr failed: %w", err)
	}
	return ParseMonitors(out)
}

// ParseMonitors reads `xrandr --listmonitors` output. Lines look like
//
//	0: +*eDP-1 1920/344x1080/193+0+0  eDP-1
//
// where "*" marks the primary monitor.
func ParseMonitors(data []byte) ([]platform.Display, error) {
	var displays []platform.Display
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "Monitors:") {
			continue
		}
		_, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}

		marker := fields[0]
		name := strings.TrimLeft(marker, "+*")
		if name == "" {
			continue
		}
		displays = append(displays, platform.Display{
			ID:   name,
			Name: name,
			Main: strings.Contains(strings.TrimSuffix(marker, name), "*"),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return displays, nil
}
