package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.dtime.dev/dt"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, dt.DateTimeLayout, cfg.Layout)
	assert.Equal(t, dt.DateLayout, cfg.DateLayout)
	assert.Equal(t, dt.DateTimeLayout, cfg.TimeLayout)
	assert.False(t, cfg.UTC)

	dc, err := cfg.Dt()
	require.NoError(t, err)
	assert.Equal(t, dt.DefaultConfig(), dc)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dt.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
layout = "2006-01-02 15:04:05"
date_layout = "2006-01-02"
utc = true
`), 0o644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	dc, err := cfg.Dt()
	require.NoError(t, err)
	assert.Equal(t, "2006-01-02 15:04:05", dc.DateTime.Layout)
	assert.Equal(t, "2006-01-02", dc.Date.Layout)
	assert.Equal(t, dt.DateTimeLayout, dc.Time.Layout)
	assert.Equal(t, time.UTC, dc.Date.Location)

	d, err := dc.ParseDate("2020-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2020-01-01", d.Format(dc))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("DT_DATE_LAYOUT", "02/01/2006")
	t.Setenv("DT_LOCATION", "Europe/Paris")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "02/01/2006", cfg.DateLayout)

	dc, err := cfg.Dt()
	if err != nil {
		t.Skipf("time zone database unavailable: %v", err)
	}
	assert.Equal(t, "Europe/Paris", dc.DateTime.Location.String())
}

func TestDt_UTCOverridesLocation(t *testing.T) {
	dc, err := (&Config{UTC: true, Location: "Nowhere/Special"}).Dt()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, dc.Time.Location)
}

func TestDt_BadLocation(t *testing.T) {
	_, err := (&Config{Location: "Nowhere/Special"}).Dt()
	assert.ErrorContains(t, err, `invalid location "Nowhere/Special"`)
}
