// Command sineregress trains the nn package's network to approximate
// sin(x) on [0, pi/2] and reports the fit, the Go-native descendant of
// Neural Network/sine.cc.
package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nom-de-guerre/matrices/internal/logging"
	"github.com/nom-de-guerre/matrices/internal/rng"
	"github.com/nom-de-guerre/matrices/nn"
)

type config struct {
	Seed     int64   `yaml:"seed"`
	Size     int     `yaml:"size"`
	Hidden   int     `yaml:"hidden"`
	Steps    int     `yaml:"steps"`
	HaltMSE  float64 `yaml:"halt_mse"`
	Parallel int     `yaml:"parallel"`
	Verbose  bool    `yaml:"verbose"`
}

func loadConfig(path string) (config, error) {
	cfg := config{Seed: 1, Size: 32, Hidden: 6, Steps: 2000, HaltMSE: 5e-7, Parallel: 1}
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// trainOne runs one independent trial: its own PRNG, dataset and network,
// so parallel trials never share a matrix.Buffer.
func trainOne(cfg config, trial int, log zerolog.Logger) (*nn.Network, []nn.Sample, error) {
	src := rng.New(cfg.Seed + int64(trial))
	samples := nn.BuildSineDataset(cfg.Size, src)
	net := nn.NewNetwork(1, cfg.Hidden, src)

	err := nn.Train(net, samples, cfg.Steps, cfg.HaltMSE, log)
	return net, samples, err
}

func run(cfg config) error {
	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	log := logging.New(level)

	type result struct {
		net     *nn.Network
		samples []nn.Sample
		err     error
		loss    float64
	}

	results := make([]result, cfg.Parallel)
	var wg sync.WaitGroup
	for i := 0; i < cfg.Parallel; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			net, samples, err := trainOne(cfg, i, log)
			results[i] = result{net: net, samples: samples, err: err}
			if net != nil {
				results[i].loss = net.ReduceLoss(samples)
			}
		}(i)
	}
	wg.Wait()

	best := 0
	for i := 1; i < cfg.Parallel; i++ {
		if results[i].err == nil && (results[best].err != nil || results[i].loss < results[best].loss) {
			best = i
		}
	}

	r := results[best]
	for _, s := range r.samples {
		guess := r.net.Forward(s.X)
		fmt.Printf("DJS_RESULT\t%1.8f\t%1.8f\t%1.8f\n", s.X[0], s.Y, guess)
	}

	fmt.Printf("METRICS\tloss\t%e\n", r.loss)
	log.Info().Float64("loss", r.loss).Int("trials", cfg.Parallel).Msg("training complete")

	if r.err != nil {
		return r.err
	}
	return nil
}

func main() {
	var (
		seed     int64
		size     int
		hidden   int
		steps    int
		haltMSE  float64
		parallel int
		verbose  bool
		cfgPath  string
	)

	root := &cobra.Command{
		Use:   "sineregress",
		Short: "Train a single-hidden-layer network to approximate sin(x)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("size") {
				cfg.Size = size
			}
			if cmd.Flags().Changed("hidden") {
				cfg.Hidden = hidden
			}
			if cmd.Flags().Changed("steps") {
				cfg.Steps = steps
			}
			if cmd.Flags().Changed("halt-mse") {
				cfg.HaltMSE = haltMSE
			}
			if cmd.Flags().Changed("parallel") {
				cfg.Parallel = parallel
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbose = verbose
			}
			return run(cfg)
		},
	}

	flags := root.Flags()
	flags.Int64VarP(&seed, "seed", "s", 1, "PRNG seed")
	flags.IntVarP(&size, "size", "m", 32, "training set size")
	flags.IntVar(&hidden, "hidden", 6, "hidden layer width")
	flags.IntVar(&steps, "steps", 2000, "maximum Levenberg-Marquardt steps")
	flags.Float64Var(&haltMSE, "halt-mse", 5e-7, "target mean squared error")
	flags.IntVar(&parallel, "parallel", 1, "number of independent trials to run concurrently")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")
	flags.StringVar(&cfgPath, "config", "", "YAML config file (flags override it)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
