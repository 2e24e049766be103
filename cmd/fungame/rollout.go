package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/MarcelZelent/FunGame/internal/agent"
	"github.com/MarcelZelent/FunGame/internal/config"
	"github.com/MarcelZelent/FunGame/internal/env"
	"github.com/MarcelZelent/FunGame/internal/storage"
	"github.com/MarcelZelent/FunGame/internal/telemetry"
)

var (
	flagRolloutEpisodes int
	flagRolloutPolicy   string
	flagRolloutMaxTicks int
	flagRolloutOut      string
	flagRolloutConfig   string
	flagRolloutSave     bool
)

var rolloutCmd = &cobra.Command{
	Use:   "rollout",
	Short: "Run headless scripted episodes",
	Long: `Run the simulation without a UI, driven by a scripted policy.

Each episode resets the simulation with its own seed (base seed + episode
index) and steps the policy until collision or the tick limit. Results go
to the log, optionally to a CSV file and the episodes table.

Policies:
  none    - Never flaps; free-fall baseline
  random  - Flaps with 10% probability per tick
  chaser  - Flaps whenever the entity sits below the next gap center

Examples:
  fungame rollout --episodes 100 --policy chaser
  fungame rollout --episodes 50 --policy random --seed 7 --out ./results
  fungame rollout --policy none --save`,
	Run: runRollout,
}

func init() {
	rolloutCmd.Flags().IntVar(&flagRolloutEpisodes, "episodes", 10, "Number of episodes to run")
	rolloutCmd.Flags().StringVar(&flagRolloutPolicy, "policy", "chaser", "Policy name (none, random, chaser)")
	rolloutCmd.Flags().IntVar(&flagRolloutMaxTicks, "max-ticks", 10000, "Tick limit per episode (0 = unlimited)")
	rolloutCmd.Flags().StringVar(&flagRolloutOut, "out", "", "Directory for episodes.csv (empty = no CSV output)")
	rolloutCmd.Flags().StringVar(&flagRolloutConfig, "config", "", "Path to custom simulation config YAML")
	rolloutCmd.Flags().BoolVar(&flagRolloutSave, "save", false, "Record episodes in the database")
}

func runRollout(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rollout",
	})

	simCfg, err := config.Load(flagRolloutConfig)
	if err != nil {
		logger.Fatal("cannot load simulation config", "error", err)
	}
	simCfg.Episode.MaxTicks = flagRolloutMaxTicks

	e, err := env.New(simCfg)
	if err != nil {
		logger.Fatal("cannot create environment", "error", err)
	}
	defer e.Close()

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	policy, err := agent.ByName(flagRolloutPolicy, baseSeed)
	if err != nil {
		logger.Fatal("cannot create policy", "error", err)
	}

	writer, err := telemetry.NewWriter(flagRolloutOut)
	if err != nil {
		logger.Fatal("cannot create output writer", "error", err)
	}
	defer writer.Close()

	var store *storage.Store
	if flagRolloutSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Fatal("cannot open database", "error", err)
		}
		defer store.Close()
	}

	logger.Info("starting rollout",
		"episodes", flagRolloutEpisodes,
		"policy", policy.Name(),
		"seed", baseSeed,
	)

	results := make([]agent.EpisodeResult, 0, flagRolloutEpisodes)
	for i := 0; i < flagRolloutEpisodes; i++ {
		res, err := agent.RunEpisode(e, policy, baseSeed+int64(i))
		if err != nil {
			logger.Fatal("episode failed", "episode", i, "error", err)
		}
		results = append(results, res)

		logger.Info("episode finished",
			"episode", i,
			"ticks", res.Ticks,
			"score", res.Score,
			"reward", res.TotalReward,
			"terminated", res.Terminated,
		)

		if err := writer.Write(telemetry.Record(i, policy.Name(), res)); err != nil {
			logger.Fatal("cannot write episode record", "error", err)
		}

		if store != nil {
			_, err := store.SaveEpisode(storage.EpisodeEntry{
				Policy:      policy.Name(),
				Seed:        res.Seed,
				Ticks:       res.Ticks,
				Score:       res.Score,
				TotalReward: res.TotalReward,
				Terminated:  res.Terminated,
			})
			if err != nil {
				logger.Error("cannot save episode", "episode", i, "error", err)
			}
		}
	}

	s := telemetry.Summarize(results)
	logger.Info("rollout complete",
		"episodes", s.Episodes,
		"mean_score", s.MeanScore,
		"max_score", s.MaxScore,
		"mean_ticks", s.MeanTicks,
		"mean_reward", s.MeanReward,
		"std_reward", s.StdReward,
		"terminated_pct", s.TerminatedPct,
	)
}
