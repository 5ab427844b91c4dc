package update

import (
	"fmt"
	"strconv"

	"github.com/magiconair/properties"
)

// Build information, set with -ldflags "-X".
var (
	Version     = "dev"
	VersionCode = "0"
)

// Release identifies a build.
type Release struct {
	Version string
	Code    int
	Link    string
}

func (r Release) String() string {
	return fmt.Sprintf("%s (%d)", r.Version, r.Code)
}

// Current returns the running build. An unparsable code counts as 0 so
// that any published release is newer.
func Current() Release {
	code, err := strconv.Atoi(VersionCode)
	if err != nil {
		code = 0
	}
	return Release{Version: Version, Code: code}
}

// Descriptor keys.
const (
	keyVersion   = "last_version"
	keyCode      = "last_version_code"
	keyLink      = "download_link"
	keyDebugLink = "download_link-debug"
)

// ParseDescriptor reads a versionupdate.properties document. The debug
// link is used when debug is set and the descriptor provides one.
func ParseDescriptor(data []byte, debug bool) (Release, error) {
	p, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return Release{}, fmt.Errorf("parse descriptor: %w", err)
	}

	version, ok := p.Get(keyVersion)
	if !ok {
		return Release{}, fmt.Errorf("descriptor missing %s", keyVersion)
	}
	rawCode, ok := p.Get(keyCode)
	if !ok {
		return Release{}, fmt.Errorf("descriptor missing %s", keyCode)
	}
	code, err := strconv.Atoi(rawCode)
	if err != nil {
		return Release{}, fmt.Errorf("descriptor %s: %w", keyCode, err)
	}

	link := p.GetString(keyLink, "")
	if debug {
		if dl := p.GetString(keyDebugLink, ""); dl != "" {
			link = dl
		}
	}

	return Release{Version: version, Code: code, Link: link}, nil
}
