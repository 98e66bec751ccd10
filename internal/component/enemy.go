package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID          string // ID из entities.toml
	AttackDamage   int
	Speed          float64
	AggroRange     float64 // Дальность, на которой враг начинает преследование
	AttackRange    float64 // Дальность атаки
	AttackCooldown float64
	LastAttackTime float64
	KnockbackTimer float64 // Пока > 0, враг отлетает и не управляет собой
}

// HealthBar — полоска здоровья над врагом, видна только после получения урона.
type HealthBar struct {
	Visible       bool
	X, Y          float64 // левый верхний угол
	Width, Height float64
	FillWidth     float64
}
