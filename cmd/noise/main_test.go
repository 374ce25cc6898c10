package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nozzle/noise"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestCombineCommand(t *testing.T) {
	out, err := run(t, "combine", "0", "0")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	out, err = run(t, "combine", "--", "-987654", "42")
	require.NoError(t, err)
	assert.Equal(t, "1268725428\n", out)

	_, err = run(t, "combine", "1", "99999999999")
	require.Error(t, err)
}

func TestShuffleCommand(t *testing.T) {
	out, err := run(t, "shuffle", "--seed", "42", "0", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"0.9088380425024867", "0.6527345268178579"}, lines(out))

	_, err = run(t, "shuffle", "--", "-1")
	require.True(t, errors.Is(err, noise.ErrDomain), "error = %v", err)
}

func TestSeedCommand(t *testing.T) {
	out, err := run(t, "seed", "--real", "2", "-n", "4", "--local-seed", "42", "--global-seed", "-42")
	require.NoError(t, err)
	assert.Equal(t, []string{"1719614439", "-1502190459", "1719614439", "-1502190459"}, lines(out))
}

func TestSeedCommandAutomaticLocalSeed(t *testing.T) {
	out, err := run(t, "seed", "--real", "0", "-n", "1", "--auto-local-seed", "--name", "plant.sensor")
	require.NoError(t, err)

	want := strconv.FormatInt(int64(noise.StringSeed("plant.sensor")), 10)
	assert.Equal(t, []string{want}, lines(out))

	_, err = run(t, "seed", "--auto-local-seed")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noise.toml")

	_, err := run(t, "dumpconfig", path)
	require.NoError(t, err)

	config, err := loadNoiseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, defaultNoiseConfig(), config)

	config.Seeds.Local = 1
	config.Seeds.Global = 2
	require.NoError(t, writeNoiseConfig(config, path))

	out, err := run(t, "--config", path, "seed", "--real", "0", "-n", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, lines(out))

	// Flags win over the file.
	out, err = run(t, "--config", path, "--local-seed", "7", "seed", "--real", "0", "-n", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"7", "2"}, lines(out))
}

func TestConfigFileVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise.toml")
	require.NoError(t, os.WriteFile(path, []byte("Version = \"0.1\"\n"), 0644))

	_, err := loadNoiseConfig(path)
	require.Error(t, err)
}

func TestSampleCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.csv")
	output := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(input, []byte("0,1\n0.5\n2,123.456,1e10\n"), 0644))

	_, err := run(t, "sample", "--input", input, "--output", output, "--seed", "1", "--workers", "2")
	require.NoError(t, err)

	data, err := loadCSV(output)
	require.NoError(t, err)
	require.Len(t, data, 3)
	assert.Len(t, data[0], 2)
	assert.Len(t, data[1], 1)
	assert.Len(t, data[2], 3)
	assert.Equal(t, 0.89242840672201207, data[0][0])
	assert.Equal(t, 0.74130070645858082, data[2][0])
	assert.Equal(t, 0.87220061683845718, data[2][2])
}

func TestSampleCommandErrors(t *testing.T) {
	_, err := run(t, "sample")
	require.Error(t, err)

	dir := t.TempDir()
	input := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(input, []byte("1,-2\n"), 0644))

	_, err = run(t, "sample", "--input", input, "--output", filepath.Join(dir, "out.csv"))
	require.True(t, errors.Is(err, noise.ErrDomain), "error = %v", err)
}
