package component

// Wave — текущая волна врагов
type Wave struct {
	Number         int
	EnemiesToSpawn int
	SpawnTimer     float64
	SpawnInterval  float64
	EnemyID        string
}
