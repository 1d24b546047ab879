package spinner

import (
	"math/rand"
	"time"

	"github.com/pecas-dev/twistcaller/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_spinner.go github.com/pecas-dev/twistcaller/internal/spinner Roller

// Roller provides the uniform selection primitives the game needs
type Roller interface {
	// Spin draws a fresh (color, limb) pair; the draws are independent,
	// so all 16 combinations are equally likely
	Spin() models.SpinResult

	// Float64 returns a uniform value in [0, 1)
	Float64() float64

	// PickIndex returns a uniform index in [0, n)
	PickIndex(n int) int
}

// roller implements Roller using a seeded source
type roller struct {
	random *rand.Rand
}

// Config for the roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new roller
func New(cfg *Config) *roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &roller{
		random: rand.New(source),
	}
}

// Spin draws a random color and limb
func (r *roller) Spin() models.SpinResult {
	return models.SpinResult{
		Color: models.Colors[r.random.Intn(len(models.Colors))],
		Limb:  models.Limbs[r.random.Intn(len(models.Limbs))],
	}
}

// Float64 returns a uniform value in [0, 1)
func (r *roller) Float64() float64 {
	return r.random.Float64()
}

// PickIndex returns a uniform index in [0, n)
func (r *roller) PickIndex(n int) int {
	if n < 1 {
		return 0
	}
	return r.random.Intn(n)
}
