// Package montecarlo implements the stochastic simulation estimation
// strategy. Each analysis runs N independent trials against the
// encounter's win condition; combat-style encounters simulate a
// round-based fight with per-trial health pools.
package montecarlo

import (
	"context"
	"math"

	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/engine"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/entities"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/errors"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/pkg/rng"
	"github.com/GurKalra/HackSummit-hero-squad-optimizer/internal/rules"
)

const (
	// DefaultTrials is the trial count when none is configured. At 1000
	// trials the run-to-run spread stays within a few percentage points.
	DefaultTrials = 1000

	maxCombatRounds = 50

	// Fallback enemy health when the encounter carries no usable enemy
	defaultEnemyHealth = 100

	hitChanceBase = 0.2
	hitChanceCap  = 0.95
	checkCap      = 0.95

	// Final output bounds; a flawless or hopeless simulation still
	// reports irreducible uncertainty.
	floorPercent = 5
	ceilPercent  = 95
)

// Config holds the dependencies for the Monte Carlo estimator
type Config struct {
	// Trials per estimate; defaults to DefaultTrials
	Trials int

	// Seed produces the seed for each estimate's private random stream.
	// Defaults to rng.NewSeed; tests inject a fixed seed for
	// reproducible runs.
	Seed func() (int64, error)
}

// Estimator is the Monte Carlo simulation strategy
type Estimator struct {
	trials int
	seed   func() (int64, error)
}

// New creates a Monte Carlo estimator with the provided configuration
func New(cfg *Config) *Estimator {
	trials := DefaultTrials
	seed := rng.NewSeed
	if cfg != nil {
		if cfg.Trials > 0 {
			trials = cfg.Trials
		}
		if cfg.Seed != nil {
			seed = cfg.Seed
		}
	}
	return &Estimator{trials: trials, seed: seed}
}

var _ engine.Estimator = (*Estimator)(nil)

// Name identifies the strategy
func (e *Estimator) Name() string {
	return "montecarlo"
}

// Estimate runs the configured number of independent trials and reports
// the win ratio as a percent, clamped to [5,95]. Every call draws from
// its own seeded stream, so concurrent requests never share RNG state
// and a fixed seed reproduces the exact result.
func (e *Estimator) Estimate(_ context.Context, input *engine.EstimateInput) (*engine.EstimateOutput, error) {
	if len(input.Party) == 0 {
		return nil, errors.InvalidArgument("party must not be empty")
	}

	seed, err := e.seed()
	if err != nil {
		return nil, errors.Wrap(err, "failed to seed simulation")
	}
	src := rng.New(seed)

	eventType := entities.EncounterType("")
	if input.Encounter != nil {
		eventType = input.Encounter.EventType
	}

	wins := 0
	for i := 0; i < e.trials; i++ {
		if e.runTrial(src, input.Party, input.Encounter, eventType) {
			wins++
		}
	}

	percent := int32(math.Round(100 * float64(wins) / float64(e.trials)))
	if percent < floorPercent {
		percent = floorPercent
	}
	if percent > ceilPercent {
		percent = ceilPercent
	}

	return &engine.EstimateOutput{SuccessChance: percent}, nil
}

func (e *Estimator) runTrial(src rng.Source, party []*entities.Character, enc *entities.Encounter, eventType entities.EncounterType) bool {
	switch eventType {
	case entities.EncounterMysticPuzzle:
		return e.runSkillCheck(src, party, puzzleScore, 25)
	case entities.EncounterAncientTrap:
		return e.runSkillCheck(src, party, trapScore, 28)
	default:
		return e.runCombat(src, party, enc, eventType)
	}
}

// puzzleScore is a character's contribution to the party's intellect
// average for puzzle checks.
func puzzleScore(c *entities.Character) float64 {
	return float64(c.Wisdom) + float64(c.Mana)
}

// trapScore is a character's contribution to the party's finesse
// average for trap checks.
func trapScore(c *entities.Character) float64 {
	return float64(c.Dexterity) + float64(c.Agility)
}

// runSkillCheck resolves a puzzle or trap trial with a single party
// check: the averaged pair of relevant stats is divided by the check's
// divisor to form the success probability, capped at 0.95.
func (e *Estimator) runSkillCheck(src rng.Source, party []*entities.Character, score func(*entities.Character) float64, divisor float64) bool {
	sum := 0.0
	for _, c := range party {
		sum += score(c)
	}
	avg := sum / (2 * float64(len(party)))
	chance := math.Min(checkCap, avg/divisor)
	return src.Float64() < chance
}

// runCombat simulates a round-based fight. Health pools are private to
// the trial: party pools start at each character's health attribute and
// the enemy pool at the encounter's enemy health. If neither side falls
// within maxCombatRounds the party loses.
func (e *Estimator) runCombat(src rng.Source, party []*entities.Character, enc *entities.Encounter, eventType entities.EncounterType) bool {
	enemyHealth := int32(defaultEnemyHealth)
	if enc != nil && enc.Enemy != nil && enc.Enemy.Health > 0 {
		enemyHealth = enc.Enemy.Health
	}
	// Enemy damage scales with its starting health, not the depleted pool
	enemyPower := float64(enemyHealth)

	partyHealth := make([]int32, len(party))
	effectiveness := make([]float64, len(party))
	w := rules.WeightsFor(eventType)
	for i, c := range party {
		partyHealth[i] = c.Health
		effectiveness[i] = attackEffectiveness(c, w)
	}

	for round := 0; round < maxCombatRounds; round++ {
		// Party attacks
		for i := range party {
			if partyHealth[i] <= 0 {
				continue
			}
			hitChance := math.Min(hitChanceCap, hitChanceBase+effectiveness[i]/25)
			if src.Float64() < hitChance {
				damage := int32(math.Floor(5 + src.Float64()*effectiveness[i]/2))
				enemyHealth -= damage
			}
		}
		if enemyHealth <= 0 {
			return true
		}

		// Enemy strikes back at one random living member
		alive := living(partyHealth)
		if len(alive) == 0 {
			return false
		}
		target := alive[src.IntN(len(alive))]
		damage := int32(math.Floor(5 + src.Float64()*enemyPower/20))
		partyHealth[target] -= damage

		if len(living(partyHealth)) == 0 {
			return false
		}
	}

	return enemyHealth <= 0
}

// attackEffectiveness is the weighted average of a character's
// offensive stats (everything but health) under the encounter's weight
// table.
func attackEffectiveness(c *entities.Character, w rules.StatWeights) float64 {
	weightSum := w.Strength + w.Agility + w.Dexterity + w.Mana + w.Wisdom
	if weightSum == 0 {
		return 0
	}
	weighted := float64(c.Strength)*w.Strength +
		float64(c.Agility)*w.Agility +
		float64(c.Dexterity)*w.Dexterity +
		float64(c.Mana)*w.Mana +
		float64(c.Wisdom)*w.Wisdom
	return weighted / weightSum
}

func living(health []int32) []int {
	alive := make([]int, 0, len(health))
	for i, h := range health {
		if h > 0 {
			alive = append(alive, i)
		}
	}
	return alive
}
