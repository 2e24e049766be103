package agent

import (
	"fmt"

	"github.com/MarcelZelent/FunGame/internal/env"
)

// EpisodeResult summarizes one finished episode.
type EpisodeResult struct {
	Seed        int64
	Ticks       int
	Score       int
	TotalReward float64
	Terminated  bool // Collision; false means the tick limit truncated the run
}

// RunEpisode resets the environment with the given seed and steps the
// policy until the episode ends. The environment must be configured with
// a tick limit (episode.max_ticks) when the policy could survive
// forever; otherwise this will not return.
func RunEpisode(e *env.Env, p Policy, seed int64) (EpisodeResult, error) {
	obs, _ := e.Reset(seed)

	res := EpisodeResult{Seed: seed}
	for {
		step, err := e.Step(p.Act(obs))
		if err != nil {
			return res, fmt.Errorf("agent: episode aborted at tick %d: %w", res.Ticks, err)
		}

		res.Ticks++
		res.TotalReward += step.Reward
		res.Score = step.Info.Score
		obs = step.Obs

		if step.Terminated || step.Truncated {
			res.Terminated = step.Terminated
			return res, nil
		}
	}
}
