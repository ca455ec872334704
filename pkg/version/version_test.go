package version_test

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/quantmind-br/repoextract/pkg/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBuildInfo(t *testing.T) {
	t.Helper()
	origV, origB, origC := version.Version, version.BuildTime, version.Commit
	t.Cleanup(func() { version.Version, version.BuildTime, version.Commit = origV, origB, origC })

	version.Version = "1.2.3"
	version.BuildTime = "2026-01-02T00:00:00Z"
	version.Commit = "deadbeef"
}

func TestGet(t *testing.T) {
	setBuildInfo(t)

	info := version.Get()
	require.Equal(t, "repoextract", info.Name)
	require.Equal(t, "1.2.3", info.Version)
	require.Equal(t, "2026-01-02T00:00:00Z", info.BuildTime)
	require.Equal(t, "deadbeef", info.Commit)
	require.NotEmpty(t, info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestString_Short_Full(t *testing.T) {
	setBuildInfo(t)

	assert.Equal(t, "1.2.3", version.Short())
	assert.Contains(t, version.Full(), "repoextract 1.2.3 (commit: deadbeef, built: 2026-01-02T00:00:00Z")
	assert.Equal(t, version.Get().String(), version.Full())
}

func TestJSON(t *testing.T) {
	setBuildInfo(t)

	data, err := version.Get().JSON()
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "1.2.3", decoded["version"])
	assert.Equal(t, "deadbeef", decoded["commit"])
	assert.Equal(t, "repoextract", decoded["name"])
}
