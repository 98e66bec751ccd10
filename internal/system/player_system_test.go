package system

import (
	"math"
	"testing"

	"go-action-rpg/internal/component"
	"go-action-rpg/internal/defs"
	"go-action-rpg/internal/entity"
	"go-action-rpg/internal/event"
	"go-action-rpg/internal/event/mocks"
	"go-action-rpg/internal/types"

	"go.uber.org/mock/gomock"
)

// recorder запоминает все полученные события
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// eventType сопоставляет событие по типу
type eventType event.EventType

func (m eventType) Matches(x any) bool {
	e, ok := x.(event.Event)
	return ok && e.Type == event.EventType(m)
}

func (m eventType) String() string {
	return "event of type " + string(m)
}

func newPlayerWorld(t *testing.T) (*entity.ECS, *event.Dispatcher, *PlayerSystem, types.EntityID) {
	t.Helper()
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	ps := NewPlayerSystem(ecs, dispatcher)
	id := SpawnPlayer(ecs, 200, 200, defs.DefaultPlayerDefinition())
	return ecs, dispatcher, ps, id
}

func TestSpawnPlayer(t *testing.T) {
	ecs, _, _, id := newPlayerWorld(t)

	if ecs.PlayerID != id {
		t.Errorf("PlayerID = %d, want %d", ecs.PlayerID, id)
	}
	health := ecs.Healths[id]
	if health.Value != 100 || health.Max != 100 {
		t.Errorf("Health = %d/%d, want 100/100", health.Value, health.Max)
	}
	player := ecs.PlayerState[id]
	if player.Level != 1 || player.CurrentXP != 0 || player.XPToNextLevel != 100 {
		t.Errorf("Level/XP = %d/%d/%d, want 1/0/100", player.Level, player.CurrentXP, player.XPToNextLevel)
	}
	if player.AttackDamage != 100 || player.Speed != 150 {
		t.Errorf("AttackDamage/Speed = %d/%v, want 100/150", player.AttackDamage, player.Speed)
	}
	if player.IsAttacking || player.IsInvulnerable {
		t.Error("new player should be neither attacking nor invulnerable")
	}
	if *ecs.Facings[id] != component.DirDown {
		t.Errorf("Facing = %v, want down", *ecs.Facings[id])
	}
}

func TestPlayerSystem_AttackCooldown(t *testing.T) {
	ecs, dispatcher, ps, id := newPlayerWorld(t)
	rec := &recorder{}
	dispatcher.Subscribe(event.PlayerAttack, rec)

	ecs.Inputs[id].Attack = true

	ecs.GameTime = 1.0
	ps.Update(0.016)
	ecs.GameTime = 1.1
	ps.Update(0.1)

	if got := rec.count(event.PlayerAttack); got != 1 {
		t.Fatalf("attacks after two presses 100ms apart = %d, want 1", got)
	}

	// Атака закончилась, но перезарядка ещё идёт
	ecs.GameTime = 1.35
	ps.Update(0.25)
	if ecs.PlayerState[id].IsAttacking {
		t.Error("attack should end after its duration")
	}
	if got := rec.count(event.PlayerAttack); got != 1 {
		t.Fatalf("attacks before cooldown elapsed = %d, want 1", got)
	}

	ecs.GameTime = 1.55
	ps.Update(0.2)
	if got := rec.count(event.PlayerAttack); got != 2 {
		t.Fatalf("attacks after cooldown = %d, want 2", got)
	}
}

func TestPlayerSystem_AttackSpawnsEffectInFacingDirection(t *testing.T) {
	tests := []struct {
		name   string
		facing component.Direction
		dx, dy float64
		angle  float64
	}{
		{"up", component.DirUp, 0, -20, -90},
		{"down", component.DirDown, 0, 20, 90},
		{"left", component.DirLeft, -20, 0, 180},
		{"right", component.DirRight, 20, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecs, dispatcher, ps, id := newPlayerWorld(t)
			rec := &recorder{}
			dispatcher.Subscribe(event.PlayerAttack, rec)

			*ecs.Facings[id] = tt.facing
			ecs.Inputs[id].Attack = true
			ps.Update(0.016)

			if len(rec.events) != 1 {
				t.Fatalf("PlayerAttack events = %d, want 1", len(rec.events))
			}
			data := rec.events[0].Data.(event.PlayerAttackData)
			if data.X != 200+tt.dx || data.Y != 200+tt.dy {
				t.Errorf("attack point = (%v, %v), want (%v, %v)", data.X, data.Y, 200+tt.dx, 200+tt.dy)
			}
			if data.Damage != 100 {
				t.Errorf("Damage = %d, want 100", data.Damage)
			}
			if len(ecs.Effects) != 1 {
				t.Errorf("effects = %d, want 1", len(ecs.Effects))
			}

			weapon := ecs.Weapons[id]
			if !weapon.Visible {
				t.Error("weapon should be visible while attacking")
			}
			if weapon.Angle != tt.angle {
				t.Errorf("weapon angle = %v, want %v", weapon.Angle, tt.angle)
			}
			if got := ecs.Animations[id].Key; got != "player-attack-"+tt.name {
				t.Errorf("animation = %q, want %q", got, "player-attack-"+tt.name)
			}

			ps.Update(0.31)
			if weapon.Visible || ecs.PlayerState[id].IsAttacking {
				t.Error("weapon should hide when the attack ends")
			}
		})
	}
}

func TestPlayerSystem_Movement(t *testing.T) {
	tests := []struct {
		name       string
		input      component.Input
		wantVX     float64
		wantVY     float64
		wantFacing component.Direction
		wantAnim   string
	}{
		{"left", component.Input{Left: true}, -150, 0, component.DirLeft, "player-left"},
		{"right", component.Input{Right: true}, 150, 0, component.DirRight, "player-right"},
		{"up", component.Input{Up: true}, 0, -150, component.DirUp, "player-up"},
		{"down", component.Input{Down: true}, 0, 150, component.DirDown, "player-down"},
		{"left wins over right", component.Input{Left: true, Right: true}, -150, 0, component.DirLeft, "player-left"},
		{"diagonal keeps horizontal facing", component.Input{Left: true, Up: true}, -150 / math.Sqrt2, -150 / math.Sqrt2, component.DirLeft, "player-left"},
		{"idle", component.Input{}, 0, 0, component.DirDown, "player-idle-down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecs, _, ps, id := newPlayerWorld(t)
			*ecs.Inputs[id] = tt.input
			ps.Update(0.016)

			vel := ecs.Velocities[id]
			if math.Abs(vel.X-tt.wantVX) > 1e-9 || math.Abs(vel.Y-tt.wantVY) > 1e-9 {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", vel.X, vel.Y, tt.wantVX, tt.wantVY)
			}
			if speed := math.Hypot(vel.X, vel.Y); speed > 150+1e-9 {
				t.Errorf("speed = %v, must not exceed 150", speed)
			}
			if *ecs.Facings[id] != tt.wantFacing {
				t.Errorf("facing = %v, want %v", *ecs.Facings[id], tt.wantFacing)
			}
			if got := ecs.Animations[id].Key; got != tt.wantAnim {
				t.Errorf("animation = %q, want %q", got, tt.wantAnim)
			}
		})
	}
}

func TestPlayerSystem_NoMovementWhileAttacking(t *testing.T) {
	ecs, _, ps, id := newPlayerWorld(t)

	*ecs.Inputs[id] = component.Input{Attack: true}
	ps.Update(0.016)
	*ecs.Inputs[id] = component.Input{Right: true}
	ps.Update(0.016)

	vel := ecs.Velocities[id]
	if vel.X != 0 || vel.Y != 0 {
		t.Errorf("velocity while attacking = (%v, %v), want (0, 0)", vel.X, vel.Y)
	}
	if *ecs.Facings[id] != component.DirDown {
		t.Errorf("facing changed while attacking: %v", *ecs.Facings[id])
	}
}

func TestPlayerSystem_IdleUsesLastFacing(t *testing.T) {
	ecs, _, ps, id := newPlayerWorld(t)

	ecs.Inputs[id].Up = true
	ps.Update(0.016)
	ecs.Inputs[id].Up = false
	ps.Update(0.016)

	if got := ecs.Animations[id].Key; got != "player-idle-up" {
		t.Errorf("animation = %q, want player-idle-up", got)
	}
}

func TestPlayerSystem_TakeDamage(t *testing.T) {
	ecs, dispatcher, ps, id := newPlayerWorld(t)
	rec := &recorder{}
	dispatcher.Subscribe(event.HealthChanged, rec)

	ps.TakeDamage(id, 30)

	if got := ecs.Healths[id].Value; got != 70 {
		t.Errorf("health = %d, want 70", got)
	}
	if !ecs.PlayerState[id].IsInvulnerable {
		t.Error("damage should start the invulnerability window")
	}
	if _, ok := ecs.DamageFlashes[id]; !ok {
		t.Error("damage should start a flash")
	}
	if len(ecs.Effects) != 1 {
		t.Errorf("effects = %d, want 1 hit effect", len(ecs.Effects))
	}
	if rec.count(event.HealthChanged) != 1 {
		t.Fatalf("HealthChanged events = %d, want 1", rec.count(event.HealthChanged))
	}
	data := rec.events[0].Data.(event.PlayerStatData)
	if data.Health != 70 || data.MaxHealth != 100 {
		t.Errorf("event stats = %d/%d, want 70/100", data.Health, data.MaxHealth)
	}
}

func TestPlayerSystem_InvulnerabilityBlocksDamage(t *testing.T) {
	ecs, dispatcher, ps, id := newPlayerWorld(t)
	rec := &recorder{}
	dispatcher.Subscribe(event.HealthChanged, rec)

	ps.TakeDamage(id, 10)
	ps.TakeDamage(id, 10)
	ps.Update(0.5)
	ps.TakeDamage(id, 10)

	if got := ecs.Healths[id].Value; got != 90 {
		t.Errorf("health during invulnerability = %d, want 90", got)
	}
	if rec.count(event.HealthChanged) != 1 {
		t.Errorf("HealthChanged events = %d, want 1", rec.count(event.HealthChanged))
	}

	ps.Update(0.5)
	if ecs.PlayerState[id].IsInvulnerable {
		t.Fatal("invulnerability should expire after 1s")
	}
	ps.TakeDamage(id, 10)
	if got := ecs.Healths[id].Value; got != 80 {
		t.Errorf("health after invulnerability = %d, want 80", got)
	}
}

func TestPlayerSystem_SetInvulnerableReplacesTimer(t *testing.T) {
	ecs, _, ps, id := newPlayerWorld(t)
	player := ecs.PlayerState[id]

	ps.SetInvulnerable(id, true)
	ps.Update(0.6)
	ps.SetInvulnerable(id, true)
	ps.Update(0.6)
	if !player.IsInvulnerable {
		t.Fatal("re-trigger should restart the window")
	}
	ps.Update(0.5)
	if player.IsInvulnerable {
		t.Error("windows must not stack")
	}

	ps.SetInvulnerable(id, true)
	ps.SetInvulnerable(id, false)
	if player.IsInvulnerable || player.InvulnerableTimer != 0 {
		t.Error("SetInvulnerable(false) should clear the window")
	}
}

func TestPlayerSystem_HealthClamped(t *testing.T) {
	ecs, _, ps, id := newPlayerWorld(t)
	health := ecs.Healths[id]

	ps.TakeDamage(id, 1000)
	if health.Value != 0 {
		t.Errorf("health after overkill = %d, want 0", health.Value)
	}
	ps.Heal(id, -10)
	if health.Value != 0 {
		t.Errorf("negative heal changed health to %d", health.Value)
	}
	ps.Heal(id, 1000)
	if health.Value != health.Max {
		t.Errorf("health after overheal = %d, want %d", health.Value, health.Max)
	}
}

func TestPlayerSystem_GainExperienceLevelUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	ecs, dispatcher, ps, id := newPlayerWorld(t)

	listener := mocks.NewMockListener(ctrl)
	dispatcher.Subscribe(event.LevelChanged, listener)
	dispatcher.Subscribe(event.HealthChanged, listener)
	dispatcher.Subscribe(event.ExperienceChanged, listener)
	gomock.InOrder(
		listener.EXPECT().OnEvent(eventType(event.LevelChanged)),
		listener.EXPECT().OnEvent(eventType(event.HealthChanged)),
		listener.EXPECT().OnEvent(eventType(event.ExperienceChanged)),
	)

	player := ecs.PlayerState[id]
	player.CurrentXP = 100
	ecs.Healths[id].Value = 40

	ps.GainExperience(id, 0)

	if player.Level != 2 {
		t.Errorf("Level = %d, want 2", player.Level)
	}
	if player.CurrentXP != 0 {
		t.Errorf("CurrentXP = %d, want 0", player.CurrentXP)
	}
	if player.XPToNextLevel != 150 {
		t.Errorf("XPToNextLevel = %d, want 150", player.XPToNextLevel)
	}
	health := ecs.Healths[id]
	if health.Max != 120 || health.Value != health.Max {
		t.Errorf("health = %d/%d, want 120/120", health.Value, health.Max)
	}
	if player.AttackDamage != 105 || player.Speed != 160 {
		t.Errorf("AttackDamage/Speed = %d/%v, want 105/160", player.AttackDamage, player.Speed)
	}
	if len(ecs.Effects) != 1 {
		t.Errorf("effects = %d, want 1 level-up effect", len(ecs.Effects))
	}
}

func TestPlayerSystem_GainExperienceBelowThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	ecs, dispatcher, ps, id := newPlayerWorld(t)

	listener := mocks.NewMockListener(ctrl)
	dispatcher.Subscribe(event.LevelChanged, listener)
	dispatcher.Subscribe(event.ExperienceChanged, listener)
	listener.EXPECT().OnEvent(eventType(event.ExperienceChanged)).Times(2)

	ps.GainExperience(id, 60)
	ps.GainExperience(id, -5)

	player := ecs.PlayerState[id]
	if player.Level != 1 || player.CurrentXP != 60 {
		t.Errorf("Level/XP = %d/%d, want 1/60", player.Level, player.CurrentXP)
	}
}

func TestNextLevelThreshold(t *testing.T) {
	tests := []struct {
		current, want int
	}{
		{100, 150},
		{150, 225},
		{225, 337},
		{1, 1},
	}
	for _, tt := range tests {
		if got := NextLevelThreshold(tt.current); got != tt.want {
			t.Errorf("NextLevelThreshold(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}

func TestPlayerSystem_HugeAmountsDoNotOverflow(t *testing.T) {
	ecs, _, ps, id := newPlayerWorld(t)
	health := ecs.Healths[id]
	state := ecs.PlayerState[id]

	ps.Heal(id, math.MaxInt)
	if health.Value != health.Max {
		t.Errorf("health after Heal(MaxInt) = %d, want %d", health.Value, health.Max)
	}

	ps.TakeDamage(id, 30)
	ps.Heal(id, math.MaxInt)
	if health.Value != health.Max {
		t.Errorf("health after healing a wounded player = %d, want %d", health.Value, health.Max)
	}

	ps.GainExperience(id, 10)
	ps.GainExperience(id, math.MaxInt)
	if state.CurrentXP < 0 {
		t.Errorf("xp = %d, must not be negative", state.CurrentXP)
	}
	if state.Level != 2 {
		t.Errorf("level = %d, want 2", state.Level)
	}
}
