package flight

import (
	"strconv"

	simcore "seaplane/internal/core"
)

// Parameters reports the tuning and the rolls of the current run.
func (g *Game) Parameters() simcore.ParameterSnapshot {
	params := g.cfg.Params
	groups := []simcore.ParameterGroup{
		{
			Name: "Viewport",
			Params: []simcore.Parameter{
				intParam("w", "Width", g.cfg.Width),
				intParam("h", "Height", g.cfg.Height),
			},
		},
		{
			Name: "Rolls",
			Params: []simcore.Parameter{
				floatParam("engine_fail_chance", "Engine failure chance", params.EngineFailChance),
				floatParam("overshoot_chance", "Overshoot chance", params.OvershootChance),
				floatParam("capture_radius", "Capture radius", params.CaptureRadius),
				intParam("decor_count", "Decor count", params.DecorCount),
				intParam("fake_pier_count", "Fake pier count", params.FakePierCount),
			},
		},
	}
	if r := g.run; r != nil {
		groups = append(groups, simcore.ParameterGroup{
			Name: "Run",
			Params: []simcore.Parameter{
				uintParam("seed", "Seed", r.Seed),
				floatParam("duration_s", "Duration (s)", r.Duration.Seconds()),
				intParam("knots", "Knots", len(r.Path.knots)),
				intParam("bonuses", "Bonuses", len(r.Bonuses)),
				intParam("fake_piers", "Fake piers", len(r.FakePiers)),
				boolParam("engine_will_fail", "Engine will fail", r.EngineWillFail),
				floatParam("engine_fail_u", "Engine failure at", r.EngineFailU),
				boolParam("will_overshoot", "Will overshoot", r.WillOvershoot),
			},
		})
	}
	return simcore.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) simcore.Parameter {
	return simcore.Parameter{
		Key:   key,
		Label: label,
		Type:  simcore.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func uintParam(key, label string, value uint32) simcore.Parameter {
	return simcore.Parameter{
		Key:   key,
		Label: label,
		Type:  simcore.ParamTypeInt,
		Value: strconv.FormatUint(uint64(value), 10),
	}
}

func floatParam(key, label string, value float64) simcore.Parameter {
	return simcore.Parameter{
		Key:   key,
		Label: label,
		Type:  simcore.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) simcore.Parameter {
	return simcore.Parameter{
		Key:   key,
		Label: label,
		Type:  simcore.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
