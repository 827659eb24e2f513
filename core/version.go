package core

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/hashicorp/go-version"
)

//go:embed version
var toolVersion string

// ToolVersion returns the version of the generator itself.
func ToolVersion() string {
	return strings.TrimSpace(toolVersion)
}

// APIVersion extracts the major API version ("v2", "v3") from the info.version
// of a service document ("2.96", "3.0", "v2.1").
func APIVersion(infoVersion string) (string, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(infoVersion), "v")
	if raw == "" {
		return "", fmt.Errorf("empty api version")
	}
	v, err := version.NewVersion(raw)
	if err != nil {
		return "", fmt.Errorf("parse api version %q: %w", infoVersion, err)
	}
	return fmt.Sprintf("v%d", v.Segments()[0]), nil
}
