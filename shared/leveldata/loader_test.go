package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/automoto/duality/shared/gamemath"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="100" height="75" tilewidth="8" tileheight="8" infinite="0" nextlayerid="4" nextobjectid="9">
`

const fullLevel = header + ` <objectgroup id="1" name="PlayerStart">
  <object id="1" name="start" x="120" y="560">
   <properties>
    <property name="title" value="Deep End"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Triggers">
  <object id="2" name="key" type="key" x="10" y="20" width="30" height="40"/>
  <object id="3" name="door" class="door" x="500" y="400" width="60" height="120"/>
  <object id="4" name="slot" type="key_slot" x="510" y="360" width="20" height="20"/>
 </objectgroup>
 <objectgroup id="3" name="Decor">
  <object id="5" name="sign" type="sign" x="300" y="250" width="40" height="40">
   <properties>
    <property name="text" value="EXIT"/>
   </properties>
  </object>
  <object id="6" name="bush" type="bush" x="100" y="250" width="40" height="40"/>
 </objectgroup>
</map>
`

const noKeyLevel = header + ` <objectgroup id="1" name="PlayerStart">
  <object id="1" name="start" x="60" y="279"><point/></object>
 </objectgroup>
 <objectgroup id="2" name="Triggers">
  <object id="3" name="door" type="door" x="500" y="400" width="60" height="120"/>
 </objectgroup>
</map>
`

const noStartLevel = header + ` <objectgroup id="2" name="Triggers">
  <object id="2" name="key" type="key" x="10" y="20" width="30" height="40"/>
  <object id="3" name="door" type="door" x="500" y="400" width="60" height="120"/>
 </objectgroup>
</map>
`

func TestLoadLayout(t *testing.T) {
	fsys := fstest.MapFS{"levels/deep.tmx": {Data: []byte(fullLevel)}}

	l, err := LoadLayout(fsys, "levels/deep.tmx")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if l.Name != "deep" || l.Title != "Deep End" {
		t.Errorf("name/title = %q/%q", l.Name, l.Title)
	}
	if l.MapWidth != 800 || l.MapHeight != 600 {
		t.Errorf("map size = %dx%d", l.MapWidth, l.MapHeight)
	}
	// No plane property: inferred from y.
	if l.Start != (Start{X: 120, Y: 560, Plane: gamemath.Lower}) {
		t.Errorf("start = %+v", l.Start)
	}
	if l.Key != (gamemath.Rect{X: 10, Y: 20, W: 30, H: 40}) {
		t.Errorf("key = %+v", l.Key)
	}
	if l.Door != (gamemath.Rect{X: 500, Y: 400, W: 60, H: 120}) {
		t.Errorf("door = %+v (class attribute)", l.Door)
	}
	if !l.HasKeySlot() {
		t.Error("key slot missing")
	}
	if len(l.Signs) != 1 || l.Signs[0].Text != "EXIT" {
		t.Errorf("signs = %+v", l.Signs)
	}
}

func TestLoadLayoutMissingObjects(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"no key", noKeyLevel, ErrNoKey},
		{"no start", noStartLevel, ErrNoStart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"l.tmx": {Data: []byte(tt.data)}}
			_, err := LoadLayout(fsys, "l.tmx")
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadAllLayouts(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx":      {Data: []byte(fullLevel)},
		"levels/a.tmx":      {Data: []byte(fullLevel)},
		"levels/readme.txt": {Data: []byte("not a level")},
	}

	layouts, err := LoadAllLayouts(fsys, "levels")
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if len(layouts) != 2 || layouts[0].Name != "a" || layouts[1].Name != "b" {
		t.Fatalf("unexpected layouts %v", layouts)
	}

	if _, err := LoadAllLayouts(fstest.MapFS{}, "levels"); err == nil {
		t.Fatal("expected error for empty directory")
	}

	bad := fstest.MapFS{"levels/x.tmx": {Data: []byte(noKeyLevel)}}
	if _, err := LoadAllLayouts(bad, "levels"); !errors.Is(err, ErrNoKey) {
		t.Fatalf("err = %v, want ErrNoKey", err)
	}
}
