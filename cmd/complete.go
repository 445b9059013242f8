package cmd

import (
	"maps"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of smr.
//
// Install it with COMP_INSTALL=1 smr.
func Completion() *complete.Command {
	output := map[string]complete.Predictor{
		"format": predict.Set(formats),
		"query":  predict.Something,
		"style":  predict.Set{"auto", "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night"},
		"width":  predict.Something,
	}
	with := func(extra map[string]complete.Predictor) map[string]complete.Predictor {
		flags := maps.Clone(output)
		maps.Copy(flags, extra)
		return flags
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":    predict.Files("*.yaml"),
			"trades":    predict.Files("*.json*"),
			"positions": predict.Files("*.json*"),
			"db":        predict.Files("*.db"),
			"user":      predict.Something,
			"v":         predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"position": {Flags: with(nil)},
			"trades":   {Flags: with(map[string]complete.Predictor{"from": predict.Something, "to": predict.Something})},
			"pnl":      {Flags: with(nil)},
			"monthly":  {Flags: with(nil)},
			"yearly":   {Flags: with(map[string]complete.Predictor{"year": predict.Something})},
			"help":     {},
		},
	}
}
