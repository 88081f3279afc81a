package entity

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/skybird/prefabs"
)

var errNoPlacements = errors.New("script did not define 'placements'")

// Placement is where one hazard starts and how far it may patrol.
type Placement struct {
	X, Y      float64
	PathWidth float64
}

// ScatterHazards runs the swarm script and returns its placements. The
// script's random() draws from rng, so a fixed seed gives a fixed swarm.
func ScatterHazards(src []byte, swarm prefabs.SwarmSpec, viewH float64, rng *rand.Rand) ([]Placement, error) {
	if rng == nil {
		return nil, fmt.Errorf("swarm: rng is nil")
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))

	if err := script.Add("swarm", map[string]any{
		"start_x":   swarm.StartX,
		"end_x":     swarm.EndX,
		"step_min":  swarm.StepMin,
		"step_max":  swarm.StepMax,
		"max_stack": swarm.MaxStack,
		"sky_top":   swarm.SkyTop,
		"path_min":  swarm.PathMin,
		"path_max":  swarm.PathMax,
	}); err != nil {
		return nil, fmt.Errorf("swarm: add spec: %w", err)
	}
	if err := script.Add("view_height", viewH); err != nil {
		return nil, fmt.Errorf("swarm: add view height: %w", err)
	}
	if err := script.Add("random", &tengo.UserFunction{
		Name: "random",
		Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 0 {
				return nil, tengo.ErrWrongNumArguments
			}
			return &tengo.Float{Value: rng.Float64()}, nil
		},
	}); err != nil {
		return nil, fmt.Errorf("swarm: add random: %w", err)
	}

	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("swarm: run: %w", err)
	}

	return extractPlacements(compiled)
}

func extractPlacements(compiled *tengo.Compiled) ([]Placement, error) {
	v := compiled.Get("placements")
	if v == nil || v.IsUndefined() {
		return nil, fmt.Errorf("swarm: %w", errNoPlacements)
	}
	raw, ok := v.Value().([]any)
	if !ok {
		return nil, fmt.Errorf("swarm: 'placements' must be an array")
	}

	out := make([]Placement, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("swarm: placement %d must be a map", i)
		}
		var p Placement
		for _, f := range []struct {
			key string
			dst *float64
		}{
			{"x", &p.X},
			{"y", &p.Y},
			{"path_width", &p.PathWidth},
		} {
			n, ok := toFloat(m[f.key])
			if !ok {
				return nil, fmt.Errorf("swarm: placement %d: %q must be a number", i, f.key)
			}
			*f.dst = n
		}
		out = append(out, p)
	}
	return out, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
