// internal/component/player.go
package component

// PlayerStateComponent хранит информацию, специфичную для игрока:
// боевые параметры, таймеры атаки и неуязвимости, уровень и опыт.
type PlayerStateComponent struct {
	AttackDamage int
	Speed        float64

	Level         int // Текущий уровень игрока
	CurrentXP     int // Текущее количество очков опыта
	XPToNextLevel int // Количество опыта, необходимое для следующего уровня

	IsAttacking    bool
	AttackTimer    float64 // Сколько ещё длится текущая атака
	AttackDuration float64
	AttackCooldown float64
	LastAttackTime float64

	IsInvulnerable      bool
	InvulnerabilityTime float64 // Длительность окна неуязвимости
	InvulnerableTimer   float64 // Сколько ещё осталось неуязвимости
}

// Input — намерения игрока на текущий кадр.
type Input struct {
	Up, Down, Left, Right bool
	Attack                bool
}

// Weapon — оружие в руке игрока, видно только во время атаки.
type Weapon struct {
	Visible          bool
	OffsetX, OffsetY float64
	Angle            float64 // градусы
}
