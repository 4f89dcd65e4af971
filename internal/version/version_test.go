package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	origVersion, origBuild, origCommit := Version, BuildTime, GitCommit
	t.Cleanup(func() {
		Version, BuildTime, GitCommit = origVersion, origBuild, origCommit
	})

	Version, BuildTime, GitCommit = "1.0.0", "2024-05-01T00:00:00Z", "abc123"

	assert.Equal(t, "1.0.0", Get())
	assert.Equal(t, BuildInfo{Version: "1.0.0", BuildTime: "2024-05-01T00:00:00Z", GitCommit: "abc123"}, Info())
	assert.Equal(t, "1.0.0 (commit abc123, built 2024-05-01T00:00:00Z)", Info().String())
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, "dev", Get())
	assert.Equal(t, "unknown", Info().GitCommit)
}
