package cmd

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breakwise/breakwise/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestSettingsSetAndGet(t *testing.T) {
	cli, out := newTestCLI(t)

	set := &SettingsSetCmd{WorkTime: intPtr(50), PlaySound: "true", ShowNotification: "false"}
	require.NoError(t, set.Run(cli))

	stored, err := cli.Container.NewSettingsService().Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{
		BreakTime:        domain.DefaultBreakTime,
		PlaySound:        true,
		ShowNotification: false,
		WorkTime:         50,
	}, stored)

	out.Reset()
	require.NoError(t, (&SettingsGetCmd{Format: "json"}).Run(cli))
	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.EqualValues(t, 50, got["work_time"])
	assert.Equal(t, true, got["play_sound"])
}

func TestSettingsSetRejectsInvalidValues(t *testing.T) {
	cli, _ := newTestCLI(t)

	err := (&SettingsSetCmd{PlaySound: "maybe"}).Run(cli)
	assert.ErrorContains(t, err, "invalid --play-sound")

	err = (&SettingsSetCmd{WorkTime: intPtr(0)}).Run(cli)
	assert.ErrorIs(t, err, domain.ErrInvalidSettings)

	err = (&SettingsSetCmd{BreakTime: intPtr(domain.MaxDuration + 1)}).Run(cli)
	assert.ErrorIs(t, err, domain.ErrInvalidSettings)

	stored, err := cli.Container.NewSettingsService().Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), stored)
}

func TestSettingsMeta(t *testing.T) {
	cli, out := newTestCLI(t)

	require.NoError(t, (&SettingsMetaCmd{Format: "table"}).Run(cli))
	assert.Contains(t, out.String(), "db_path")
	assert.Contains(t, out.String(), "ssh_port")

	out.Reset()
	require.NoError(t, (&SettingsMetaCmd{Format: "toml"}).Run(cli))
	var example map[string]any
	require.NoError(t, toml.Unmarshal(out.Bytes(), &example))
	assert.Contains(t, example, "max_log_files")
}
