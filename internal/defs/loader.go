// internal/defs/loader.go
package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed entities.toml
var defaultDefinitions []byte

// ErrInvalidDefinition возвращается, если в определении есть недопустимые значения.
var ErrInvalidDefinition = errors.New("invalid entity definition")

// PlayerDef holds the player stats used when the player is spawned.
var PlayerDef = DefaultPlayerDefinition()

// EnemyLibrary is a map to hold all enemy definitions, keyed by their ID.
var EnemyLibrary = map[string]EnemyDefinition{DefaultEnemyID: DefaultEnemyDefinition()}

type definitionsFile struct {
	Player  toml.Primitive   `toml:"player"`
	Enemies []toml.Primitive `toml:"enemy"`
}

// LoadDefinitions reads the entity definitions file and populates PlayerDef and EnemyLibrary.
func LoadDefinitions(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read entity definitions file: %w", err)
	}
	return loadDefinitions(data)
}

// LoadDefaultDefinitions загружает встроенный файл определений.
func LoadDefaultDefinitions() error {
	return loadDefinitions(defaultDefinitions)
}

func loadDefinitions(data []byte) error {
	player, enemies, err := ParseDefinitions(data)
	if err != nil {
		return err
	}
	PlayerDef = player
	EnemyLibrary = enemies

	log.Printf("Loaded player definition and %d enemy definitions", len(EnemyLibrary))
	return nil
}

// ParseDefinitions разбирает TOML с таблицей [player] и массивом [[enemy]].
// Незаданные ключи берутся из значений по умолчанию.
func ParseDefinitions(data []byte) (PlayerDefinition, map[string]EnemyDefinition, error) {
	var file definitionsFile
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return PlayerDefinition{}, nil, fmt.Errorf("failed to decode entity definitions: %w", err)
	}

	player := DefaultPlayerDefinition()
	if md.IsDefined("player") {
		if err := md.PrimitiveDecode(file.Player, &player); err != nil {
			return PlayerDefinition{}, nil, fmt.Errorf("failed to decode player definition: %w", err)
		}
	}
	if err := player.Validate(); err != nil {
		return PlayerDefinition{}, nil, err
	}

	enemies := make(map[string]EnemyDefinition, len(file.Enemies))
	for i, prim := range file.Enemies {
		def := DefaultEnemyDefinition()
		def.ID = ""
		if err := md.PrimitiveDecode(prim, &def); err != nil {
			return PlayerDefinition{}, nil, fmt.Errorf("failed to decode enemy definition #%d: %w", i, err)
		}
		if def.ID == "" {
			return PlayerDefinition{}, nil, fmt.Errorf("enemy definition #%d has no id: %w", i, ErrInvalidDefinition)
		}
		if _, exists := enemies[def.ID]; exists {
			return PlayerDefinition{}, nil, fmt.Errorf("duplicate enemy id %q: %w", def.ID, ErrInvalidDefinition)
		}
		if err := def.Validate(); err != nil {
			return PlayerDefinition{}, nil, err
		}
		enemies[def.ID] = def
	}
	if len(enemies) == 0 {
		enemies[DefaultEnemyID] = DefaultEnemyDefinition()
	}

	return player, enemies, nil
}

// Validate проверяет, что статы игрока имеют смысл.
func (d PlayerDefinition) Validate() error {
	switch {
	case d.Health <= 0:
		return fmt.Errorf("player health %d: %w", d.Health, ErrInvalidDefinition)
	case d.AttackDamage < 0:
		return fmt.Errorf("player attack damage %d: %w", d.AttackDamage, ErrInvalidDefinition)
	case d.Speed <= 0:
		return fmt.Errorf("player speed %v: %w", d.Speed, ErrInvalidDefinition)
	case d.AttackCooldown <= 0 || d.AttackDuration <= 0 || d.InvulnerabilityTime <= 0:
		return fmt.Errorf("player timings must be positive: %w", ErrInvalidDefinition)
	case d.XPToFirstLevel <= 0:
		return fmt.Errorf("player xp to first level %d: %w", d.XPToFirstLevel, ErrInvalidDefinition)
	}
	return nil
}

// Validate проверяет статы врага.
func (d EnemyDefinition) Validate() error {
	switch {
	case d.Health <= 0:
		return fmt.Errorf("enemy %q health %d: %w", d.ID, d.Health, ErrInvalidDefinition)
	case d.AttackDamage < 0:
		return fmt.Errorf("enemy %q attack damage %d: %w", d.ID, d.AttackDamage, ErrInvalidDefinition)
	case d.Speed <= 0:
		return fmt.Errorf("enemy %q speed %v: %w", d.ID, d.Speed, ErrInvalidDefinition)
	case d.AttackRange < 0 || d.AggroRange <= d.AttackRange:
		return fmt.Errorf("enemy %q aggro range must exceed attack range: %w", d.ID, ErrInvalidDefinition)
	case d.AttackCooldown <= 0:
		return fmt.Errorf("enemy %q attack cooldown %v: %w", d.ID, d.AttackCooldown, ErrInvalidDefinition)
	}
	return nil
}
