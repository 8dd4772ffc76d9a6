package version

import "runtime/debug"

// Version is the release version, empty unless injected at build time:
//
//	go build -ldflags "-X github.com/tonalgo/tonal/version.Version=$(git describe --dirty)"
var Version string

// Hash is the short vcs revision the binary was built from, suffixed with
// -dirty when the working tree had local modifications, or empty when no
// build info is available.
var Hash = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var revision, modified string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		}
	}
	if len(revision) < 7 {
		return ""
	}
	if modified == "true" {
		return revision[:7] + "-dirty"
	}
	return revision[:7]
}()

// VersionOrHash is Version when one was injected, otherwise Hash.
var VersionOrHash = func() string {
	if Version != "" {
		return Version
	}
	return Hash
}()
