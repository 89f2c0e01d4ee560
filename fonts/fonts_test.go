package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(14, 10); err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	for _, name := range []FontName{HUD, Debug, Sign} {
		if name.Get() == nil {
			t.Errorf("font %s is nil", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 12); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown font")
		}
	}()
	FontName("nope").Get()
}
