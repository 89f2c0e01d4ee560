package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/duality/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Object group and class names used by the level files.
const (
	GroupPlayerStart = "PlayerStart"
	GroupTriggers    = "Triggers"
	GroupDecor       = "Decor"

	ClassKey     = "key"
	ClassDoor    = "door"
	ClassKeySlot = "key_slot"
	ClassSign    = "sign"
)

var (
	ErrNoStart = errors.New("level has no player start")
	ErrNoKey   = errors.New("level has no key")
	ErrNoDoor  = errors.New("level has no door")
)

// LoadLayout parses a TMX file into a Layout. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadLayout(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	stem := strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")
	layout := &Layout{
		Name:      stem,
		Title:     stem,
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	var hasStart, hasKey, hasDoor bool
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlayerStart:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			plane, ok := gamemath.ParsePlane(o.Properties.GetString("plane"))
			if !ok {
				plane = gamemath.PlaneAt(o.Y, float64(layout.MapHeight))
			}
			layout.Start = Start{X: o.X, Y: o.Y, Plane: plane}
			if title := o.Properties.GetString("title"); title != "" {
				layout.Title = title
			}
			hasStart = true
		case GroupTriggers:
			for _, o := range og.Objects {
				bounds := gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
				switch objectClass(o) {
				case ClassKey:
					layout.Key = bounds
					hasKey = true
				case ClassDoor:
					layout.Door = bounds
					hasDoor = true
				case ClassKeySlot:
					layout.KeySlot = bounds
				}
			}
		case GroupDecor:
			for _, o := range og.Objects {
				if objectClass(o) != ClassSign {
					continue
				}
				layout.Signs = append(layout.Signs, Sign{
					Bounds: gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Text:   o.Properties.GetString("text"),
				})
			}
		}
	}

	switch {
	case !hasStart:
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoStart)
	case !hasKey:
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoKey)
	case !hasDoor:
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoDoor)
	}
	return layout, nil
}

func objectClass(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // TMX uses type= attribute
}

// LoadAllLayouts discovers all .tmx files in levelsDir within fsys and
// returns their layouts sorted by name.
func LoadAllLayouts(fsys fs.FS, levelsDir string) ([]*Layout, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	layouts := make([]*Layout, 0, len(matches))
	for _, path := range matches {
		layout, err := LoadLayout(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		layouts = append(layouts, layout)
	}

	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].Name < layouts[j].Name
	})
	return layouts, nil
}
