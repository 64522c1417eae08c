package i18n

import (
	"slices"
	"testing"

	"github.com/leonelquinteros/gotext"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"en":          "en",
		"de_DE.UTF-8": "de",
		" EN-gb ":     "en",
		"":            "",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	if !slices.Contains(langs, "en") || !slices.Contains(langs, "de") {
		t.Errorf("Languages() = %v, want en and de", langs)
	}
}

func TestLoad_FallsBackToDefault(t *testing.T) {
	po, lang, err := Load("xx")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if lang != DefaultLanguage {
		t.Errorf("Load(xx) language = %q, want %q", lang, DefaultLanguage)
	}
	if got := po.Get("STAGE_KEEP"); got != "Keep" {
		t.Errorf("Get(STAGE_KEEP) = %q, want %q", got, "Keep")
	}
}

func TestCatalogs_HaveSameKeys(t *testing.T) {
	keys := []string{
		"WELCOME", "LEVEL_TITLE", "LEVEL_START", "ENEMIES_REMAINING",
		"STAGE_OUTSKIRTS", "STAGE_COURTYARD", "STAGE_ARMORY", "STAGE_KEEP", "STAGE_THRONE",
		"LEVER_PULLED", "KEY_USED", "ITEM_TAKEN", "ITEM_DROPPED", "MEDKIT_USED",
		"PLAYER_DIED", "LEVEL_RESET", "LEVEL_CLEARED", "GAME_WON", "NOTHING_TO_USE",
		"DUMP_WRITTEN", "DUMP_FAILED", "SCREENSHOT_SAVED", "SCREENSHOT_FAILED",
		"HUD_HEALTH", "HUD_HELD", "HUD_NOTHING", "HUD_GAME_OVER", "HUD_CONTROLS",
	}
	for _, lang := range Languages() {
		po, _, err := Load(lang)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", lang, err)
		}
		get := po.Get
		for _, k := range keys {
			if get(k) == k {
				t.Errorf("%s catalog missing %s", lang, k)
			}
		}
	}
}

func TestInit_InstallsGlobalCatalog(t *testing.T) {
	t.Cleanup(func() { Init(DefaultLanguage) })

	lang, err := Init("de_DE.UTF-8")
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if lang != "de" {
		t.Errorf("Init() language = %q, want de", lang)
	}
	if got := gotext.Get("STAGE_KEEP"); got != "Bergfried" {
		t.Errorf("gotext.Get(STAGE_KEEP) = %q, want Bergfried", got)
	}
}
