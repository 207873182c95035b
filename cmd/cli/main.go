package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"agriprob/domain/prob"
	"agriprob/internal"
	"agriprob/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// .env is optional; the config layer falls back to defaults
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := internal.NewDefaultLogger()

	rootCmd := &cobra.Command{
		Use:   "agriprob",
		Short: "Elementary probability calculations with agricultural examples",
	}

	rootCmd.AddCommand(
		newDemoCmd(cfg, logger),
		newBayesCmd(cfg),
		newTotalCmd(cfg),
		newExpectedCmd(cfg),
		newNormalizeCmd(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resultFormat builds a float format at the configured precision.
func resultFormat(cfg *config.Config) string {
	return "%." + strconv.Itoa(cfg.Output.Precision) + "f"
}

func newDemoCmd(cfg *config.Config, logger *internal.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through every rule with fixed agricultural examples",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Debug("running demo at precision %d", cfg.Output.Precision)
			f := resultFormat(cfg)

			p, err := prob.FromCounts(85, 100)
			if err != nil {
				return err
			}
			fmt.Println("1. Basic Probability:")
			fmt.Printf("   P(germination) with 85/100 seeds: "+f+"\n", p)

			p, err = prob.AdditionRule(0.25, 0.30, 0.10)
			if err != nil {
				return err
			}
			fmt.Println("\n2. Addition Rule:")
			fmt.Printf("   P(Disease OR Pests): "+f+"\n", p)

			p, err = prob.MultiplicationRule(prob.Independent{PA: 0.15, PB: 0.15})
			if err != nil {
				return err
			}
			fmt.Println("\n3. Multiplication Rule:")
			fmt.Printf("   P(Frost in both fields): "+f+"\n", p)

			p, err = prob.Complement(0.15)
			if err != nil {
				return err
			}
			fmt.Println("\n4. Complement Rule:")
			fmt.Printf("   P(Success) given 15%% failure: "+f+"\n", p)

			p, err = prob.Conditional(0.12, 0.30)
			if err != nil {
				return err
			}
			fmt.Println("\n5. Conditional Probability:")
			fmt.Printf("   P(Disease|Symptoms): "+f+"\n", p)

			p, err = prob.Bayes(0.90, 0.05, 0.14)
			if err != nil {
				return err
			}
			fmt.Println("\n6. Bayes' Theorem:")
			fmt.Printf("   P(Disease|Positive Test): "+f+"\n", p)

			p, err = prob.TotalProbability(
				[]float64{0.30, 0.50, 0.20}, []float64{0.60, 0.80, 0.50})
			if err != nil {
				return err
			}
			fmt.Println("\n7. Law of Total Probability:")
			fmt.Printf("   Overall yield probability: "+f+"\n", p)

			independent, err := prob.AreIndependent(0.15, 0.15, 0.0225)
			if err != nil {
				return err
			}
			fmt.Println("\n8. Independence Test:")
			fmt.Printf("   Frost events independent? %t\n", independent)

			ev, err := prob.ExpectedValue(
				[]float64{50, 75, 100}, []float64{0.20, 0.50, 0.30})
			if err != nil {
				return err
			}
			fmt.Println("\n9. Expected Value:")
			fmt.Printf("   Expected crop yield: "+f+" bushels/acre\n", ev)

			normalized, err := prob.Normalize([]float64{10, 20, 30, 40})
			if err != nil {
				return err
			}
			fmt.Println("\n10. Normalization:")
			fmt.Printf("   Counts [10 20 30 40] as probabilities: %v\n", normalized)

			p, err = prob.AtLeastOne([]float64{0.20, 0.15, 0.10})
			if err != nil {
				return err
			}
			fmt.Println("\n11. Union of Independent Events:")
			fmt.Printf("   P(at least one of frost, drought, flood): "+f+"\n", p)

			return nil
		},
	}
}

func newBayesCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "bayes [p-b-given-a] [p-a] [p-b]",
		Short: "Compute a posterior via Bayes' theorem",
		Long: `Compute P(A|B) = P(B|A) x P(A) / P(B).

Example: agriprob bayes 0.90 0.05 0.14`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFloats(args)
			if err != nil {
				return err
			}
			posterior, err := prob.Bayes(values[0], values[1], values[2])
			if err != nil {
				return err
			}
			fmt.Printf("P(A|B) = "+resultFormat(cfg)+"\n", posterior)
			return nil
		},
	}
}

func newTotalCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "total [partitions] [conditionals]",
		Short: "Apply the law of total probability",
		Long: `Compute P(A) over a partition of the sample space. Both arguments are
comma-separated probability lists.

Example: agriprob total 0.30,0.50,0.20 0.60,0.80,0.50`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			partitions, err := parseFloatList(args[0])
			if err != nil {
				return err
			}
			conditionals, err := parseFloatList(args[1])
			if err != nil {
				return err
			}
			total, err := prob.TotalProbability(partitions, conditionals)
			if err != nil {
				return err
			}
			fmt.Printf("P(A) = "+resultFormat(cfg)+"\n", total)
			return nil
		},
	}
}

func newExpectedCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "expected [outcomes] [probabilities]",
		Short: "Compute the expected value of a discrete distribution",
		Long: `Compute E[X] for comma-separated outcomes and probabilities.

Example: agriprob expected 50,75,100 0.20,0.50,0.30`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcomes, err := parseFloatList(args[0])
			if err != nil {
				return err
			}
			probabilities, err := parseFloatList(args[1])
			if err != nil {
				return err
			}
			ev, err := prob.ExpectedValue(outcomes, probabilities)
			if err != nil {
				return err
			}
			fmt.Printf("E[X] = "+resultFormat(cfg)+"\n", ev)
			return nil
		},
	}
}

func newNormalizeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [values...]",
		Short: "Normalize non-negative values into a probability distribution",
		Long: `Scale values so they sum to 1.0.

Example: agriprob normalize 45 30 20 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFloats(args)
			if err != nil {
				return err
			}
			normalized, err := prob.Normalize(values)
			if err != nil {
				return err
			}
			f := resultFormat(cfg)
			parts := make([]string, len(normalized))
			for i, p := range normalized {
				parts[i] = fmt.Sprintf(f, p)
			}
			fmt.Printf("[%s]\n", strings.Join(parts, " "))
			return nil
		},
	}
}

func parseFloats(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", arg, err)
		}
		values[i] = v
	}
	return values, nil
}

func parseFloatList(arg string) ([]float64, error) {
	return parseFloats(strings.Split(arg, ","))
}
