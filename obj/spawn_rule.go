package obj

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/runner/prefabs"
)

// SpawnRule draws the random part of the gap between enemy spawns, in
// milliseconds.
type SpawnRule interface {
	// Initial is the extra gap before the first spawn.
	Initial() float64
	// Next is the extra gap after a spawn, given the current score.
	Next(score int) float64
}

// UniformRule draws uniformly from the configured ranges.
type UniformRule struct {
	rng     *rand.Rand
	initial prefabs.RangeSpec
	next    prefabs.RangeSpec
}

func NewUniformRule(spec prefabs.SpawnSpec, seed int64) *UniformRule {
	return &UniformRule{
		rng:     rand.New(rand.NewSource(seed)),
		initial: spec.InitialExtra,
		next:    spec.Extra,
	}
}

func (u *UniformRule) Initial() float64 {
	return u.initial.Min + u.Roll()*u.initial.Span
}

func (u *UniformRule) Next(int) float64 {
	return u.next.Min + u.Roll()*u.next.Span
}

// Roll returns a value in [0, 1).
func (u *UniformRule) Roll() float64 {
	return u.rng.Float64()
}

var errNoExtra = errors.New("spawn script did not set extra")

// ScriptRule asks a tengo script for each gap. The script sees `score` and
// `roll` and assigns `extra`. When the script fails, the uniform rule
// answers instead.
type ScriptRule struct {
	compiled *tengo.Compiled
	fallback *UniformRule
	logger   *log.Logger
}

func NewScriptRule(src []byte, fallback *UniformRule, logger *log.Logger) (*ScriptRule, error) {
	script := tengo.NewScript(src)
	_ = script.Add("score", 0)
	_ = script.Add("roll", 0.0)
	_ = script.Add("extra", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("spawn: compile script: %w", err)
	}
	return &ScriptRule{compiled: compiled, fallback: fallback, logger: logger}, nil
}

func (r *ScriptRule) Initial() float64 {
	return r.fallback.Initial()
}

func (r *ScriptRule) Next(score int) float64 {
	extra, err := r.run(score, r.fallback.Roll())
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("spawn script failed, using uniform gap", "score", score, "err", err)
		}
		return r.fallback.Next(score)
	}
	return extra
}

func (r *ScriptRule) run(score int, roll float64) (float64, error) {
	if err := r.compiled.Set("score", score); err != nil {
		return 0, err
	}
	if err := r.compiled.Set("roll", roll); err != nil {
		return 0, err
	}
	if err := r.compiled.Set("extra", nil); err != nil {
		return 0, err
	}
	if err := r.compiled.Run(); err != nil {
		return 0, err
	}
	v := r.compiled.Get("extra")
	if v.IsUndefined() {
		return 0, errNoExtra
	}
	extra := v.Float()
	if extra < 0 {
		extra = 0
	}
	return extra, nil
}

// NewSpawnRule builds the rule a spawn spec asks for: the uniform rule, or
// a script rule when the spawn settings name a script.
func NewSpawnRule(spec prefabs.SpawnSpec, seed int64, logger *log.Logger) (SpawnRule, error) {
	uniform := NewUniformRule(spec, seed)
	if spec.Script == "" {
		return uniform, nil
	}
	src, err := prefabs.LoadScript(spec.Script)
	if err != nil {
		return nil, fmt.Errorf("spawn: load script %s: %w", spec.Script, err)
	}
	rule, err := NewScriptRule(src, uniform, logger)
	if err != nil {
		return nil, fmt.Errorf("spawn: %s: %w", spec.Script, err)
	}
	return rule, nil
}
