// Command linsolve builds a diagonally-dominant sparse linear system and
// solves it with restarted GMRES, reporting the residual reached: an
// example driver for the krylov package.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nom-de-guerre/matrices/internal/logging"
	"github.com/nom-de-guerre/matrices/internal/rng"
	"github.com/nom-de-guerre/matrices/krylov"
	"github.com/nom-de-guerre/matrices/matrix"
)

// config is the YAML shape accepted by --config, layered under the
// equivalent command-line flags (flags win when both are set).
type config struct {
	Seed      int64   `yaml:"seed"`
	Size      int     `yaml:"size"`
	Subspace  int     `yaml:"subspace"`
	Tolerance float64 `yaml:"tolerance"`
	Verbose   bool    `yaml:"verbose"`
}

func loadConfig(path string) (config, error) {
	cfg := config{Seed: 1, Size: 64, Subspace: 20, Tolerance: 1e-8}
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

// buildSystem constructs an n x n diagonally-dominant tridiagonal sparse
// matrix (n+1 on the diagonal, -1 beside it) and a random right-hand side,
// so GMRES is guaranteed a well-posed problem to chew on.
func buildSystem(n int, src *rng.Source) (matrix.Sparse, matrix.Dense) {
	a := matrix.NewSparse(n, n)
	for i := 0; i < n; i++ {
		a.Append(i, i, float64(n)+1)
		if i > 0 {
			a.Append(i, i-1, -1)
		}
		if i < n-1 {
			a.Append(i, i+1, -1)
		}
	}

	b := matrix.New(n, 1)
	b.RandomFill(1.0, src)

	return a, b
}

func run(cfg config) error {
	log := logging.New(zerolog.InfoLevel)
	if cfg.Verbose {
		log = logging.New(zerolog.DebugLevel)
	}

	src := rng.New(cfg.Seed)
	a, b := buildSystem(cfg.Size, src)

	gm := krylov.NewGMRES(cfg.Subspace, a, b)
	gm.SetTolerance(cfg.Tolerance)

	x, residue := gm.Solve()
	if math.IsNaN(residue) {
		return fmt.Errorf("linsolve: GMRES broke down before reaching tolerance")
	}
	if residue > cfg.Tolerance {
		return fmt.Errorf("linsolve: GMRES stopped at residue %e, above tolerance %e", residue, cfg.Tolerance)
	}

	log.Info().Float64("residue", residue).Int("size", cfg.Size).Msg("GMRES converged")
	fmt.Printf("METRICS\tresidue\t%e\n", residue)
	fmt.Printf("METRICS\tsize\t%d\n", cfg.Size)

	if cfg.Verbose {
		fmt.Print(x.Display("x", 6))
	}

	return nil
}

func main() {
	var (
		seed      int64
		size      int
		subspace  int
		tolerance float64
		verbose   bool
		cfgPath   string
	)

	root := &cobra.Command{
		Use:   "linsolve",
		Short: "Solve a diagonally-dominant sparse linear system with restarted GMRES",
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
			if cmd.Flags().Changed("subspace") {
				cfg.Subspace = subspace
			}
			if cmd.Flags().Changed("tolerance") {
				cfg.Tolerance = tolerance
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbose = verbose
			}
			return run(cfg)
		},
	}

	flags := root.Flags()
	flags.Int64VarP(&seed, "seed", "s", 1, "PRNG seed")
	flags.IntVarP(&size, "size", "m", 64, "system dimension")
	flags.IntVar(&subspace, "subspace", 20, "GMRES Krylov subspace dimension")
	flags.Float64Var(&tolerance, "tolerance", 1e-8, "GMRES residual tolerance")
	flags.BoolVarP(&verbose, "verbose", "v", false, "print the solution vector and debug logs")
	flags.StringVar(&cfgPath, "config", "", "YAML config file (flags override it)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
