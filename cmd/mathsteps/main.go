// cmd/mathsteps — CLI front-end for the mathsteps rewrite engine.
//
// Usage:
//
//	mathsteps simplify --file expr.json
//	mathsteps solve --file eq.json
//	mathsteps demo
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/njchilds90/mathsteps"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile  string
	maxSteps int
	timeout  time.Duration
	logger   *zap.Logger
)

func main() {
	root := &cobra.Command{
		Use:   "mathsteps",
		Short: "Step-annotated symbolic algebra rewriting",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = zap.NewProduction()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			initConfig()
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.mathsteps.yaml)")
	root.PersistentFlags().IntVar(&maxSteps, "max-steps", 1024, "iteration cap before RuleLoop is reported")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "wall-clock deadline for a single simplify/solve call")

	root.AddCommand(simplifyCmd(), solveCmd(), demoCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".mathsteps")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("$HOME")
	}
	viper.SetEnvPrefix("MATHSTEPS")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
	if v := viper.GetInt("max_steps"); v > 0 {
		maxSteps = v
	}
}

func options() mathsteps.Options {
	opts := mathsteps.Options{MaxSteps: maxSteps}
	if timeout > 0 {
		opts.Deadline = time.Now().Add(timeout)
	}
	return opts
}

func simplifyCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "simplify",
		Short: "Simplify a JSON-encoded expression and print each step",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			n, err := mathsteps.ParseJSON(string(raw))
			if err != nil {
				return fmt.Errorf("parse expression: %w", err)
			}
			logger.Info("simplify: starting", zap.String("input", n.String()))
			trace, err := mathsteps.StepThrough(n, options())
			if err != nil {
				logger.Warn("simplify: incomplete trace", zap.Error(err))
			}
			for i, rec := range trace {
				fmt.Printf("%2d. [%s] %s\n", i+1, rec.Kind, mathsteps.Print(rec.Tree, mathsteps.PrintOptions{}))
			}
			return err
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path to a JSON-encoded expression")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func solveCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a JSON-encoded equation for its single variable",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			var wire struct {
				LHS        json.RawMessage `json:"lhs"`
				RHS        json.RawMessage `json:"rhs"`
				Comparator string          `json:"comparator"`
			}
			if err := json.Unmarshal(raw, &wire); err != nil {
				return fmt.Errorf("parse equation: %w", err)
			}
			lhs, err := mathsteps.ParseJSON(string(wire.LHS))
			if err != nil {
				return fmt.Errorf("parse lhs: %w", err)
			}
			rhs, err := mathsteps.ParseJSON(string(wire.RHS))
			if err != nil {
				return fmt.Errorf("parse rhs: %w", err)
			}
			eq := mathsteps.Equation{LHS: lhs, RHS: rhs, Comparator: mathsteps.Comparator(wire.Comparator)}
			logger.Info("solve: starting", zap.String("comparator", wire.Comparator))
			result, err := mathsteps.Solve(eq, options())
			if err != nil {
				return err
			}
			if result.Verdict != "" {
				fmt.Println(result.Verdict)
				return nil
			}
			fmt.Println(result.Text)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path to a JSON-encoded equation")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Simplify a handful of built-in expressions",
		RunE: func(cmd *cobra.Command, args []string) error {
			samples := []mathsteps.Node{
				mathsteps.Add(mathsteps.Frac(mathsteps.Int(1), mathsteps.Int(2)), mathsteps.Frac(mathsteps.Int(1), mathsteps.Int(3))),
				mathsteps.Mul(mathsteps.Int(2), mathsteps.Paren(mathsteps.Add(mathsteps.Sym("x"), mathsteps.Int(3)))),
				mathsteps.Frac(mathsteps.Mul(mathsteps.Int(6), mathsteps.Sym("x")), mathsteps.Int(3)),
			}
			for _, n := range samples {
				result, err := mathsteps.Simplify(n, options())
				if err != nil {
					logger.Warn("demo: simplify failed", zap.Error(err))
					continue
				}
				fmt.Printf("%s = %s\n", n.String(), mathsteps.Print(result, mathsteps.PrintOptions{}))
			}
			return nil
		},
	}
}
