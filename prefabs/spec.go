package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

// TuningFile is the prefab every session is configured from.
const TuningFile = "tuning.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type InsetSpec struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

type ArenaSpec struct {
	Width   float64    `yaml:"width"`
	Height  float64    `yaml:"height"`
	Inset   InsetSpec  `yaml:"inset"`
	Emitter VectorSpec `yaml:"emitter"`
}

type ProjectileSpec struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

type WeaponSpec struct {
	ColliderRadius   float64    `yaml:"collider_radius"`
	ProjectilePoints int        `yaml:"projectile_points"`
	SwingDuration    float64    `yaml:"swing_duration"`
	SwingArc         float64    `yaml:"swing_arc"`
	ActiveFrom       float64    `yaml:"active_from"`
	ActiveTo         float64    `yaml:"active_to"`
	Pivot            VectorSpec `yaml:"pivot"`
	Reach            float64    `yaml:"reach"`
	Length           float64    `yaml:"length"`
	Samples          int        `yaml:"samples"`
	Scale            float64    `yaml:"scale"`
}

type PlayerSpec struct {
	Radius          float64 `yaml:"radius"`
	Lives           int     `yaml:"lives"`
	Acceleration    float64 `yaml:"acceleration"`
	MaxSpeed        float64 `yaml:"max_speed"`
	StopDistance    float64 `yaml:"stop_distance"`
	Invulnerability float64 `yaml:"invulnerability"`
	Stun            float64 `yaml:"stun"`
}

// TuningSpec holds every number the simulation and its collaborators are
// balanced around.
type TuningSpec struct {
	Name             string         `yaml:"name"`
	PopulationCap    int            `yaml:"population_cap"`
	ReactionCooldown float64        `yaml:"reaction_cooldown"`
	SpawnCooldown    float64        `yaml:"spawn_cooldown"`
	Separation       float64        `yaml:"separation"`
	ProductSpeed     float64        `yaml:"product_speed"`
	ProductJitter    float64        `yaml:"product_jitter"`
	LevelRateFactor  float64        `yaml:"level_rate_factor"`
	GrowthRate       float64        `yaml:"growth_rate"`
	Arena            ArenaSpec      `yaml:"arena"`
	Projectile       ProjectileSpec `yaml:"projectile"`
	Weapon           WeaponSpec     `yaml:"weapon"`
	Player           PlayerSpec     `yaml:"player"`
}

// LoadTuning reads and validates tuning.yaml.
func LoadTuning() (*TuningSpec, error) {
	spec, err := LoadSpec[TuningSpec](TuningFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// DefaultTuning returns the embedded tuning. The embedded file is part of the
// build, so failing to read it is a programming error.
func DefaultTuning() *TuningSpec {
	data, err := PrefabsFS.ReadFile(TuningFile)
	if err != nil {
		panic(fmt.Sprintf("prefabs: embedded %s: %v", TuningFile, err))
	}
	var spec TuningSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		panic(fmt.Sprintf("prefabs: embedded %s: %v", TuningFile, err))
	}
	return &spec
}

func (t *TuningSpec) Validate() error {
	switch {
	case t.PopulationCap <= 0:
		return fmt.Errorf("%w: population_cap must be positive", ErrInvalidTuning)
	case t.ReactionCooldown < 0 || t.SpawnCooldown < 0:
		return fmt.Errorf("%w: cooldowns must not be negative", ErrInvalidTuning)
	case t.Separation < 1:
		return fmt.Errorf("%w: separation %v would leave bodies overlapping", ErrInvalidTuning, t.Separation)
	case t.Arena.Width <= t.Arena.Inset.Left+t.Arena.Inset.Right || t.Arena.Height <= t.Arena.Inset.Top+t.Arena.Inset.Bottom:
		return fmt.Errorf("%w: arena insets leave no interior", ErrInvalidTuning)
	case t.Projectile.Speed <= 0 || t.Projectile.Radius <= 0:
		return fmt.Errorf("%w: projectile speed and radius must be positive", ErrInvalidTuning)
	case t.Weapon.SwingDuration <= 0 || t.Weapon.Samples <= 0:
		return fmt.Errorf("%w: weapon swing needs a duration and samples", ErrInvalidTuning)
	case t.Weapon.ActiveFrom < 0 || t.Weapon.ActiveTo > 1 || t.Weapon.ActiveFrom >= t.Weapon.ActiveTo:
		return fmt.Errorf("%w: weapon active window must lie within [0,1]", ErrInvalidTuning)
	case t.Player.Radius <= 0 || t.Player.Lives <= 0:
		return fmt.Errorf("%w: player radius and lives must be positive", ErrInvalidTuning)
	}
	return nil
}
