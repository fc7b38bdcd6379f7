package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duskbar/rota/config"
	"github.com/duskbar/rota/schedule"
)

func TestLoadVenue_EmptyPathReturnsDefault(t *testing.T) {
	v, err := config.LoadVenue("")
	require.NoError(t, err)
	require.Equal(t, schedule.DefaultVenueConfig(), v)
}

func TestLoadVenue_OverridesOnlySpecifiedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "venue.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weekly_cap: 3\n"), 0o644))

	v, err := config.LoadVenue(path)
	require.NoError(t, err)
	require.Equal(t, 3, v.WeeklyCap)
	require.Equal(t, schedule.DefaultVenueConfig().ActiveRing, v.ActiveRing)
}

func TestLoadVenue_MissingFileErrors(t *testing.T) {
	_, err := config.LoadVenue(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
