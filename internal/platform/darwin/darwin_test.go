package darwin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/simpleclock/internal/platform"
)

const twoDisplays = `{
  "SPDisplaysDataType" : [
    {
      "_name" : "Apple M1 Pro",
      "spdisplays_ndrvs" : [
        {
          "_name" : "Color LCD",
          "_spdisplays_displayID" : "1",
          "spdisplays_main" : "spdisplays_yes"
        },
        {
          "_name" : "DELL U2720Q",
          "_spdisplays_displayID" : "2"
        }
      ]
    }
  ]
}`

func withProfiler(t *testing.T, out string, err error) {
	t.Helper()
	orig := profilerCommand
	profilerCommand = func(context.Context) ([]byte, error) {
		return []byte(out), err
	}
	t.Cleanup(func() { profilerCommand = orig })
}

func TestNew(t *testing.T) {
	p := New()
	assert.Equal(t, "darwin", p.Name())
	assert.True(t, p.IsSupported())
	assert.NotNil(t, p.Screens())
}

func TestParseProfile(t *testing.T) {
	displays, err := ParseProfile([]byte(twoDisplays))
	require.NoError(t, err)
	require.Len(t, displays, 2)

	assert.Equal(t, platform.Display{ID: "1", Name: "Color LCD", Main: true}, displays[0])
	assert.Equal(t, platform.Display{ID: "2", Name: "DELL U2720Q"}, displays[1])
}

func TestParseProfileFallsBackToName(t *testing.T) {
	displays, err := ParseProfile([]byte(`{"SPDisplaysDataType":[{"spdisplays_ndrvs":[{"_name":"Sidecar"}]}]}`))
	require.NoError(t, err)
	require.Len(t, displays, 1)
	assert.Equal(t, "Sidecar", displays[0].ID)
}

func TestParseProfileInvalid(t *testing.T) {
	_, err := ParseProfile([]byte("not json"))
	assert.Error(t, err)
}

func TestScreens(t *testing.T) {
	withProfiler(t, twoDisplays, nil)
	screens := New().Screens()

	main, err := screens.MainScreen()
	require.NoError(t, err)
	assert.Equal(t, "1", main)

	current, err := screens.CurrentScreen("DELL U2720Q")
	require.NoError(t, err)
	assert.Equal(t, "2", current)

	_, err = screens.CurrentScreen("3")
	assert.ErrorIs(t, err, platform.ErrUnresolved)
}

func TestScreensCommandFailure(t *testing.T) {
	withProfiler(t, "", errors.New("exit status 1"))

	_, err := New().Screens().MainScreen()
	assert.ErrorContains(t, err, "system_profiler")
}
