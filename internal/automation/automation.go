package automation

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/conway/internal/config"
	"github.com/san-kum/conway/internal/game"
	"github.com/san-kum/conway/internal/metrics"
)

// Scenario is a named batch of headless runs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run in a scenario. A zero View is Centered and a
// zero Width or Height is derived from the pattern.
type ScenarioStep struct {
	Pattern     string    `yaml:"pattern"`
	Generations int       `yaml:"generations"`
	View        game.View `yaml:"view"`
	Width       uint64    `yaml:"width"`
	Height      uint64    `yaml:"height"`
}

// Outcome is the result of one scenario step.
type Outcome struct {
	Step        ScenarioStep
	Generations int
	Extinct     bool
	Metrics     map[string]float64
	History     *metrics.History
}

// LoadScenario reads a scenario from a YAML file. Every step needs a positive
// generation limit.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	for i, step := range scenario.Steps {
		if step.Generations <= 0 {
			return nil, fmt.Errorf("step %d: generations must be positive, got %d", i+1, step.Generations)
		}
	}

	return &scenario, nil
}

// RunScenario plays every step to its generation limit or extinction,
// reporting progress to w.
func RunScenario(ctx context.Context, scenario *Scenario, w io.Writer) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		select {
		case <-ctx.Done():
			return outcomes, ctx.Err()
		default:
		}

		fmt.Fprintf(w, "Running step %d/%d: %s\n", i+1, len(scenario.Steps), step.Pattern)

		o, err := runStep(ctx, step)
		if err != nil {
			return outcomes, fmt.Errorf("step %d: %w", i+1, err)
		}
		outcomes = append(outcomes, o)
	}

	return outcomes, nil
}

// RunParallel plays the steps on up to workers goroutines. Outcomes keep the
// order of the steps. The first failing step cancels the rest.
func RunParallel(ctx context.Context, scenario *Scenario, workers int) ([]Outcome, error) {
	outcomes := make([]Outcome, len(scenario.Steps))

	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, step := range scenario.Steps {
		eg.Go(func() error {
			o, err := runStep(ctx, step)
			if err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			outcomes[i] = o
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func runStep(ctx context.Context, step ScenarioStep) (Outcome, error) {
	g, err := config.GetPattern(step.Pattern)
	if err != nil {
		return Outcome{}, err
	}

	settings := game.DefaultSettings()
	settings.View = step.View
	settings.Delay = 0
	gm, err := game.New(g, settings, step.Width, step.Height)
	if err != nil {
		return Outcome{}, err
	}

	ms := metrics.Defaults()
	history := metrics.NewHistory(0)
	metrics.Observe(ms, gm.Grid())
	history.OnTick(0, gm.Grid())
	for _, m := range ms {
		gm.AddObserver(m)
	}
	gm.AddObserver(history)

	for gm.Generation() < step.Generations && !gm.IsOver() {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}
		gm.Tick()
	}

	return Outcome{
		Step:        step,
		Generations: gm.Generation(),
		Extinct:     gm.IsOver(),
		Metrics:     metrics.Collect(ms),
		History:     history,
	}, nil
}

// ExtinctionStats counts the outcomes that died out and those that did not.
func ExtinctionStats(outcomes []Outcome) (extinct int, surviving int) {
	for _, o := range outcomes {
		if o.Extinct {
			extinct++
		} else {
			surviving++
		}
	}
	return
}
