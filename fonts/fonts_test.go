package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{HUD, Message, Controls} {
		if !Loaded(name) {
			t.Errorf("%s not loaded", name)
		}
		if name.Get() == nil {
			t.Errorf("%s has no face", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 12); err == nil {
		t.Error("expected parse error")
	}
	if Loaded("broken") {
		t.Error("broken font was registered")
	}
}
