package system

// Stage is one named step of the per-tick update
type Stage struct {
	Name string
	Run  func(dt float64)
}

// Pipeline runs its stages in the order they were added, once per tick.
// Ordering constraints between systems live here and nowhere else.
type Pipeline struct {
	stages []Stage
}

// NewPipeline creates a pipeline with the given stages
func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Add appends a stage
func (p *Pipeline) Add(name string, run func(dt float64)) {
	p.stages = append(p.stages, Stage{Name: name, Run: run})
}

// Tick runs every stage once
func (p *Pipeline) Tick(dt float64) {
	for _, s := range p.stages {
		s.Run(dt)
	}
}

// Names returns stage names in execution order
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}
	return names
}

// Stage names used by the playing scene
const (
	StagePlayer     = "player move"
	StagePlacement  = "tower placement"
	StageStems      = "stem toggle"
	StageSpawn      = "enemy spawn"
	StageEnemyMove  = "enemy move"
	StageLoadSet    = "chunk load-set"
	StageChunkLoad  = "chunk spawn"
	StageChunkUnld  = "chunk despawn"
	StageAim        = "aim"
	StageFire       = "fire"
	StageBulletMove = "bullet move"
	StageCollision  = "collision"
	StageCamera     = "camera"
)
