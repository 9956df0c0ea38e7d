// Command voyagerctl runs a single hardcoded planning scenario and logs
// every frame of the resulting plan.
//
// It deliberately does not load a world from disk -- building an
// EngineConfig in Go and handing it to an Orchestrator is the supported
// entry point; a file format for worlds is out of scope.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/viper"

	voyager "github.com/voyager-sim/voyager"
)

func main() {
	timeout := flag.Duration("timeout", 30*time.Second, "search deadline")
	flag.Parse()

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC, "cmd", "voyagerctl")

	tunables := voyager.LoadEngineTunables(viper.GetViper())

	cfg := voyager.EngineConfig{
		World: voyager.WorldConfig{
			Bodies: []voyager.BodyConfig{
				{
					ID:     1,
					Kind:   voyager.BodyStationary,
					Radius: 5,
					Mass:   5.972e24,
					Position: voyager.NewVec2(0, 0),
				},
			},
			Artifacts: []voyager.ArtifactConfig{
				{ID: 1, Position: voyager.NewVec2(100, 0)},
				{ID: 2, Position: voyager.NewVec2(0, 150)},
			},
			MaxRadius: 1000,
		},
		Time: voyager.TimeConfig{DtU: 1, TMax: 500},
		Quant: voyager.QuantBinsConfig{
			BinX: 1, BinV: 0.1, BinT: 1, BinF: 0.1,
		},
		Spacecraft: voyager.SpacecraftConfig{
			Mass:               1000,
			Fuel:               500,
			MinFuelToLand:      10,
			ThrustLevels:       []float64{0, 1, 5},
			ExhaustVelocity:    3000,
			PossibleDirections: []float64{0, 1.5708, 3.1416, 4.7124},
		},
		InitialState: voyager.InitialStateConfig{
			X:    voyager.NewVec2(50, 50),
			V:    voyager.NewVec2(0, 0),
			TU:   0,
			Fuel: 500,
		},
		K:        2,
		MaxCost:  0,
		Tunables: tunables,
	}

	orch := voyager.NewOrchestrator()
	orch.SetLogger(logger)

	if err := orch.Initialize(cfg); err != nil {
		logger.Log("level", "error", "msg", "initialize failed", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := orch.Compute(ctx); err != nil {
		logger.Log("level", "error", "msg", "compute failed", "err", err)
		os.Exit(1)
	}

	for {
		frame, err := orch.Step()
		if err != nil {
			if err == voyager.ErrSimulationCompleted {
				break
			}
			logger.Log("level", "error", "msg", "step failed", "err", err)
			os.Exit(1)
		}
		logger.Log(
			"level", "info",
			"frame", frame.Index,
			"tu", frame.State.TU,
			"x", frame.State.X.X(),
			"y", frame.State.X.Y(),
			"fuel", frame.State.Fuel,
			"collected", len(frame.State.Collected),
		)
	}
}
