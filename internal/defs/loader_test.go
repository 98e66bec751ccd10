package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseDefinitions_Defaults(t *testing.T) {
	player, enemies, err := ParseDefinitions(defaultDefinitions)
	if err != nil {
		t.Fatalf("embedded definitions: %v", err)
	}
	if player != DefaultPlayerDefinition() {
		t.Errorf("player = %+v, want %+v", player, DefaultPlayerDefinition())
	}
	if got := enemies[DefaultEnemyID]; got != DefaultEnemyDefinition() {
		t.Errorf("grunt = %+v, want %+v", got, DefaultEnemyDefinition())
	}
}

func TestParseDefinitions_PartialOverrides(t *testing.T) {
	data := []byte(`
[player]
speed = 200.0

[[enemy]]
id = "brute"
health = 120
attack_damage = 25
`)
	player, enemies, err := ParseDefinitions(data)
	if err != nil {
		t.Fatalf("ParseDefinitions: %v", err)
	}

	want := DefaultPlayerDefinition()
	want.Speed = 200
	if player != want {
		t.Errorf("player = %+v, want %+v", player, want)
	}

	brute, ok := enemies["brute"]
	if !ok {
		t.Fatal("brute not loaded")
	}
	if brute.Health != 120 || brute.AttackDamage != 25 {
		t.Errorf("brute stats = %+v", brute)
	}
	if brute.AggroRange != 200 || brute.AttackRange != 20 || brute.AttackCooldown != 1 {
		t.Errorf("brute should inherit default ranges, got %+v", brute)
	}
	if _, ok := enemies[DefaultEnemyID]; ok {
		t.Error("grunt should not be added when enemies are listed")
	}
}

func TestParseDefinitions_EmptyFileFallsBack(t *testing.T) {
	player, enemies, err := ParseDefinitions(nil)
	if err != nil {
		t.Fatalf("ParseDefinitions: %v", err)
	}
	if player != DefaultPlayerDefinition() {
		t.Errorf("player = %+v", player)
	}
	if len(enemies) != 1 || enemies[DefaultEnemyID] != DefaultEnemyDefinition() {
		t.Errorf("enemies = %+v, want only the default grunt", enemies)
	}
}

func TestParseDefinitions_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"enemy without id", "[[enemy]]\nhealth = 10\n"},
		{"duplicate enemy id", "[[enemy]]\nid = \"a\"\n[[enemy]]\nid = \"a\"\n"},
		{"zero player health", "[player]\nhealth = 0\n"},
		{"negative player damage", "[player]\nattack_damage = -1\n"},
		{"zero attack cooldown", "[player]\nattack_cooldown = 0.0\n"},
		{"zero xp threshold", "[player]\nxp_to_first_level = 0\n"},
		{"aggro inside attack range", "[[enemy]]\nid = \"a\"\naggro_range = 10.0\nattack_range = 20.0\n"},
		{"negative enemy speed", "[[enemy]]\nid = \"a\"\nspeed = -5.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseDefinitions([]byte(tt.data))
			if !errors.Is(err, ErrInvalidDefinition) {
				t.Errorf("err = %v, want ErrInvalidDefinition", err)
			}
		})
	}
}

func TestParseDefinitions_MalformedTOML(t *testing.T) {
	_, _, err := ParseDefinitions([]byte("[player\nhealth = "))
	if err == nil {
		t.Fatal("expected a decode error")
	}
	if errors.Is(err, ErrInvalidDefinition) {
		t.Error("syntax errors should not be reported as invalid values")
	}
}

func TestLoadDefinitions(t *testing.T) {
	t.Cleanup(func() {
		PlayerDef = DefaultPlayerDefinition()
		EnemyLibrary = map[string]EnemyDefinition{DefaultEnemyID: DefaultEnemyDefinition()}
	})

	path := filepath.Join(t.TempDir(), "entities.toml")
	data := "[player]\nhealth = 150\n\n[[enemy]]\nid = \"archer\"\nattack_range = 60.0\naggro_range = 250.0\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadDefinitions(path); err != nil {
		t.Fatalf("LoadDefinitions: %v", err)
	}
	if PlayerDef.Health != 150 {
		t.Errorf("PlayerDef.Health = %d, want 150", PlayerDef.Health)
	}
	if _, ok := EnemyLibrary["archer"]; !ok || len(EnemyLibrary) != 1 {
		t.Errorf("EnemyLibrary = %+v, want only archer", EnemyLibrary)
	}
}

func TestLoadDefinitions_MissingFile(t *testing.T) {
	before := PlayerDef
	err := LoadDefinitions(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
	if PlayerDef != before {
		t.Error("failed load must not change PlayerDef")
	}
}

func TestAnimationLibrary_CoversAllDirections(t *testing.T) {
	for _, dir := range Directions {
		for _, key := range []string{"player-" + dir, "player-idle-" + dir, "player-attack-" + dir} {
			def, ok := AnimationLibrary[key]
			if !ok {
				t.Errorf("animation %q missing", key)
				continue
			}
			if len(def.Frames) == 0 || def.FrameRate <= 0 {
				t.Errorf("animation %q is empty: %+v", key, def)
			}
		}
	}
	if !AnimationLibrary["player-down"].Loop {
		t.Error("walk animation should loop")
	}
}
