package system

import (
	"testing"

	"go-action-rpg/internal/defs"
	"go-action-rpg/internal/entity"
	"go-action-rpg/internal/event"
	"go-action-rpg/internal/utils"
)

func TestWaveSystem_SpawnsAndEnds(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rec := &recorder{}
	dispatcher.Subscribe(event.WaveEnded, rec)

	SpawnPlayer(ecs, 480, 360, defs.DefaultPlayerDefinition())
	ws := NewWaveSystem(ecs, dispatcher, utils.NewPRNGService(42))
	es := NewEnemySystem(ecs, dispatcher)

	wave := ws.StartWave(2)
	if wave.EnemiesToSpawn != 4 {
		t.Fatalf("wave 2 size = %d, want 4", wave.EnemiesToSpawn)
	}

	ws.Update(0.3)
	if len(ecs.Enemies) != 0 {
		t.Fatalf("enemies spawned before interval: %d", len(ecs.Enemies))
	}
	for i := 0; i < 4; i++ {
		ws.Update(0.5)
	}
	if len(ecs.Enemies) != 4 || ws.ActiveEnemies() != 4 {
		t.Fatalf("enemies = %d (active %d), want 4", len(ecs.Enemies), ws.ActiveEnemies())
	}

	for id, enemy := range ecs.Enemies {
		p := ecs.Positions[id]
		if p.X < 20 || p.X > 940 || p.Y < 30 || p.Y > 690 {
			t.Errorf("enemy %d (%s) spawned outside the arena at (%v, %v)", id, enemy.DefID, p.X, p.Y)
		}
	}

	ws.Update(0.016)
	if rec.count(event.WaveEnded) != 0 {
		t.Fatal("wave ended while enemies are alive")
	}

	for id := range ecs.Enemies {
		es.TakeDamage(id, 1000)
	}
	ws.Update(0.016)

	if got := rec.count(event.WaveEnded); got != 1 {
		t.Fatalf("WaveEnded events = %d, want 1", got)
	}
	if n, ok := rec.events[0].Data.(int); !ok || n != 2 {
		t.Errorf("WaveEnded data = %v, want 2", rec.events[0].Data)
	}
	if ecs.Wave != nil {
		t.Error("finished wave should be cleared")
	}
}

func TestWaveSystem_StartWaveClampsNumber(t *testing.T) {
	ecs := entity.NewECS()
	ws := NewWaveSystem(ecs, event.NewDispatcher(), utils.NewPRNGService(1))

	wave := ws.StartWave(0)

	if wave.Number != 1 || wave.EnemiesToSpawn != 3 {
		t.Errorf("wave = %+v, want number 1 with 3 enemies", *wave)
	}
	if ecs.Wave != wave {
		t.Error("StartWave should install the wave in the ECS")
	}
}

func TestWaveSystem_FallbackEnemyIsSeeded(t *testing.T) {
	saved := defs.EnemyLibrary
	t.Cleanup(func() { defs.EnemyLibrary = saved })

	archer := defs.DefaultEnemyDefinition()
	archer.ID = "archer"
	brute := defs.DefaultEnemyDefinition()
	brute.ID = "brute"
	defs.EnemyLibrary = map[string]defs.EnemyDefinition{"archer": archer, "brute": brute}

	pick := func() string {
		ws := NewWaveSystem(entity.NewECS(), event.NewDispatcher(), utils.NewPRNGService(3))
		return ws.StartWave(1).EnemyID
	}

	first := pick()
	if _, ok := defs.EnemyLibrary[first]; !ok {
		t.Fatalf("wave enemy %q is not in the library", first)
	}
	for i := 0; i < 5; i++ {
		if got := pick(); got != first {
			t.Fatalf("same seed picked %q, then %q", first, got)
		}
	}
}
