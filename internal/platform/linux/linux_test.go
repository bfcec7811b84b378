package linux

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/simpleclock/internal/platform"
)

const listMonitorsOutput = `Monitors: 2
 0: +*eDP-1 1920/344x1080/193+0+0  eDP-1
 1: +HDMI-1 2560/597x1440/336+1920+0  HDMI-1
`

func TestParseMonitors(t *testing.T) {
	displays, err := ParseMonitors([]byte(listMonitorsOutput))
	require.NoError(t, err)
	require.Len(t, displays, 2)

	assert.Equal(t, platform.Display{ID: "eDP-1", Name: "eDP-1", Main: true}, displays[0])
	assert.Equal(t, platform.Display{ID: "HDMI-1", Name: "HDMI-1"}, displays[1])
}

func TestParseMonitorsEmpty(t *testing.T) {
	displays, err := ParseMonitors([]byte("Monitors: 0\n"))
	require.NoError(t, err)
	assert.Empty(t, displays)
}

func TestScreens(t *testing.T) {
	orig := xrandrCommand
	xrandrCommand = func(context.Context) ([]byte, error) {
		return []byte(listMonitorsOutput), nil
	}
	t.Cleanup(func() { xrandrCommand = orig })

	p := New()
	assert.Equal(t, "linux", p.Name())

	main, err := p.Screens().MainScreen()
	require.NoError(t, err)
	assert.Equal(t, "eDP-1", main)

	current, err := p.Screens().CurrentScreen("hdmi-1")
	require.NoError(t, err)
	assert.Equal(t, "HDMI-1", current)
}
