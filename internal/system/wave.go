// internal/system/wave.go
package system

import (
	"log"
	"slices"

	"go-action-rpg/internal/component"
	"go-action-rpg/internal/config"
	"go-action-rpg/internal/defs"
	"go-action-rpg/internal/entity"
	"go-action-rpg/internal/event"
	"go-action-rpg/internal/utils"
)

// WaveSystem порождает врагов волнами вокруг игрока.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	activeEnemies   int
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, ws)
	return ws
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil {
		return
	}
	if wave.EnemiesToSpawn > 0 {
		wave.SpawnTimer += deltaTime
		if wave.SpawnTimer >= wave.SpawnInterval {
			s.spawnEnemy(wave)
			wave.EnemiesToSpawn--
			wave.SpawnTimer = 0
		}
	} else if s.activeEnemies <= 0 {
		s.ecs.Wave = nil
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: wave.Number})
	}
}

// ActiveEnemies возвращает количество живых врагов текущей волны.
func (s *WaveSystem) ActiveEnemies() int {
	return s.activeEnemies
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	def, ok := defs.EnemyLibrary[wave.EnemyID]
	if !ok {
		log.Printf("Error: Enemy definition not found for ID: %s", wave.EnemyID)
		return
	}

	cx, cy := float64(config.ScreenWidth)/2, float64(config.ScreenHeight)/2
	if _, playerPos, ok := s.ecs.Player(); ok {
		cx, cy = playerPos.X, playerPos.Y
	}
	x, y := s.rng.PointOnRing(cx, cy, config.EnemySpawnMinDistance, config.EnemySpawnMaxDistance)
	x = utils.Clamp(x, config.BodyWidth, config.ScreenWidth-config.BodyWidth)
	y = utils.Clamp(y, config.BodyHeight, config.ScreenHeight-config.BodyHeight)

	SpawnEnemy(s.ecs, x, y, def)
	s.activeEnemies++
}

// StartWave готовит волну с номером waveNumber. Каждая следующая волна больше предыдущей.
func (s *WaveSystem) StartWave(waveNumber int) *component.Wave {
	if waveNumber < 1 {
		waveNumber = 1
	}
	wave := &component.Wave{
		Number:         waveNumber,
		EnemiesToSpawn: config.EnemiesPerWave + (waveNumber-1)*config.EnemiesIncrementPerWave,
		SpawnInterval:  config.WaveSpawnInterval,
		EnemyID:        defs.DefaultEnemyID,
	}
	if _, ok := defs.EnemyLibrary[wave.EnemyID]; !ok && len(defs.EnemyLibrary) > 0 {
		// Ключи сортируются, чтобы выбор зависел только от сида
		ids := make([]string, 0, len(defs.EnemyLibrary))
		for id := range defs.EnemyLibrary {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		wave.EnemyID = ids[s.rng.Intn(len(ids))]
	}
	s.ecs.Wave = wave
	log.Printf("Wave %d started: %d enemies", wave.Number, wave.EnemiesToSpawn)
	return wave
}

func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type == event.EnemyKilled {
		s.activeEnemies--
	}
}
