package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/duality/shared/leveldata"
)

var (
	//go:embed levels/*.tmx
	assetFS embed.FS
)

// LoadLevels parses every embedded level, sorted by name.
func LoadLevels() ([]*leveldata.Layout, error) {
	layouts, err := leveldata.LoadAllLayouts(assetFS, "levels")
	if err != nil {
		return nil, fmt.Errorf("embedded levels: %w", err)
	}
	return layouts, nil
}
