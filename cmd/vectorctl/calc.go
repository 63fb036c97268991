package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-vectors/vector"
)

func newCalcCmd(a *app) *cobra.Command {
	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "Vector arithmetic on x,y arguments",
		Long: `Vector arithmetic on vectors written as "x,y".

Arguments starting with a minus sign must follow "--", for example:
  vectorctl calc add -- -3,4 1,2`,
	}

	calcCmd.AddCommand(
		binaryVectorCmd(a, "add <a> <b>", "Print a + b", func(x, y vector.Vector) string {
			return x.Add(y).String()
		}),
		binaryVectorCmd(a, "sub <a> <b>", "Print a - b", func(x, y vector.Vector) string {
			return x.Sub(y).String()
		}),
		binaryVectorCmd(a, "dot <a> <b>", "Print the dot product of a and b", func(x, y vector.Vector) string {
			return formatNumber(x.Dot(y))
		}),
		&cobra.Command{
			Use:   "scale <v> <k>",
			Short: "Print v multiplied by the scalar k",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := vector.Parse(args[0])
				if err != nil {
					return err
				}
				k, err := strconv.ParseFloat(args[1], 64)
				if err != nil {
					return fmt.Errorf("invalid scalar %q: %w", args[1], err)
				}
				a.logger.Debug("scale", zap.Stringer("v", v), zap.Float64("k", k))
				fmt.Fprintln(cmd.OutOrStdout(), v.Scale(k))
				return nil
			},
		},
		unaryVectorCmd(a, "mag <v>", "Print the magnitude of v", func(v vector.Vector) string {
			return formatNumber(v.Magnitude())
		}),
		unaryVectorCmd(a, "parse <v>", "Parse v and print it in canonical form", func(v vector.Vector) string {
			return v.String()
		}),
	)

	return calcCmd
}

func unaryVectorCmd(a *app, use, short string, fn func(vector.Vector) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := vector.Parse(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug(cmd.Name(), zap.Stringer("v", v))
			fmt.Fprintln(cmd.OutOrStdout(), fn(v))
			return nil
		},
	}
}

func binaryVectorCmd(a *app, use, short string, fn func(x, y vector.Vector) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := vector.Parse(args[0])
			if err != nil {
				return err
			}
			y, err := vector.Parse(args[1])
			if err != nil {
				return err
			}
			a.logger.Debug(cmd.Name(), zap.Stringer("a", x), zap.Stringer("b", y))
			fmt.Fprintln(cmd.OutOrStdout(), fn(x, y))
			return nil
		},
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
