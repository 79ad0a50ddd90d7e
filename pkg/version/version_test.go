package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillFromBuildInfo(t *testing.T) {
	info := Info{Version: "dev", GitCommit: "none", BuildTime: "unknown"}
	fillFromBuildInfo(&info, &debug.BuildInfo{
		Main: debug.Module{Version: "v1.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})

	assert.Equal(t, Info{Version: "v1.4.0", GitCommit: "abc123", BuildTime: "2026-01-02T03:04:05Z"}, info)
}

func TestFillFromBuildInfo_LdflagsWin(t *testing.T) {
	info := Info{Version: "1.2.3", GitCommit: "fedcba", BuildTime: "yesterday"}
	fillFromBuildInfo(&info, &debug.BuildInfo{
		Main:     debug.Module{Version: "v9.9.9"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	})

	assert.Equal(t, Info{Version: "1.2.3", GitCommit: "fedcba", BuildTime: "yesterday"}, info)
}

func TestFillFromBuildInfo_DevelBuild(t *testing.T) {
	info := Info{Version: "dev", GitCommit: "none", BuildTime: "unknown"}
	fillFromBuildInfo(&info, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})

	assert.Equal(t, "dev", info.Version)
}

func TestInfo_String(t *testing.T) {
	info := Info{Version: "1.2.3", GitCommit: "abc", BuildTime: "now", GoVersion: "go1.23.1", Platform: "linux/amd64"}
	assert.Equal(t, "prompt-get version 1.2.3 (commit: abc) built at now with go1.23.1 on linux/amd64", info.String())
}
