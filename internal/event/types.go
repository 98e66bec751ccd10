// internal/event/types.go
package event

import "go-action-rpg/internal/types"

const (
	PlayerAttack      EventType = "PlayerAttack"      // Игрок нанёс удар
	HealthChanged     EventType = "HealthChanged"     // Изменилось здоровье игрока
	ExperienceChanged EventType = "ExperienceChanged" // Изменился опыт игрока
	LevelChanged      EventType = "LevelChanged"      // Игрок получил уровень
	EnemyAttack       EventType = "EnemyAttack"       // Враг атаковал игрока
	EnemyKilled       EventType = "EnemyKilled"       // Враг уничтожен
	WaveEnded         EventType = "WaveEnded"         // Волна закончилась
)

// PlayerAttackData описывает удар игрока: точка удара и урон.
type PlayerAttackData struct {
	PlayerID types.EntityID
	X, Y     float64
	Damage   int
}

// EnemyAttackData описывает атаку врага.
type EnemyAttackData struct {
	EnemyID types.EntityID
	Damage  int
}

// EnemyKilledData — данные об убитом враге.
type EnemyKilledData struct {
	EnemyID types.EntityID
	X, Y    float64
}

// PlayerStatData — снимок статов игрока для UI.
type PlayerStatData struct {
	PlayerID      types.EntityID
	Health        int
	MaxHealth     int
	Level         int
	CurrentXP     int
	XPToNextLevel int
}
