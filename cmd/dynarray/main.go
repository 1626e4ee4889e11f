// Command dynarray replays operation scripts against a DynamicArray and
// shows how its size and capacity evolve.
//
//	dynarray run                 # built-in demonstration
//	dynarray run steps.yaml --plot
//	dynarray plot steps.yaml
//	dynarray script > steps.yaml # dump the built-in script for editing
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dynarray/dynarray"
	"github.com/katalvlaran/dynarray/internal/render"
	"github.com/katalvlaran/dynarray/internal/script"
)

var (
	withPlot bool
	noColor  bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "dynarray",
		Short:        "dynamic array resize playground",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			render.SetColor(!noColor)
		},
	}
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")

	runCmd := &cobra.Command{
		Use:   "run [script.yaml]",
		Short: "run a script (default: built-in demo)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScript,
	}
	runCmd.Flags().BoolVar(&withPlot, "plot", false, "append a count/capacity plot")

	plotCmd := &cobra.Command{
		Use:   "plot [script.yaml]",
		Short: "plot count and capacity for a script",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotScript,
	}

	scriptCmd := &cobra.Command{
		Use:   "script",
		Short: "print the built-in demo script as YAML",
		Args:  cobra.NoArgs,
		RunE:  printScript,
	}

	rootCmd.AddCommand(runCmd, plotCmd, scriptCmd)

	return rootCmd
}

// loadScript returns the script named by args, or the built-in default.
func loadScript(args []string) (*script.Script, error) {
	if len(args) == 0 {
		return script.Default(), nil
	}

	return script.Load(args[0])
}

func trace(args []string) (*script.Trace, error) {
	s, err := loadScript(args)
	if err != nil {
		return nil, err
	}

	return script.Run(s, dynarray.New[any]())
}

func runScript(cmd *cobra.Command, args []string) error {
	tr, err := trace(args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err := render.Table(out, tr); err != nil {
		return err
	}
	if withPlot {
		fmt.Fprintln(out)
		fmt.Fprintln(out, render.Plot(tr))
	}
	if failed := len(tr.Failed()); failed > 0 {
		fmt.Fprintf(out, "\n%d step(s) failed\n", failed)
	}

	return nil
}

func plotScript(cmd *cobra.Command, args []string) error {
	tr, err := trace(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), render.Plot(tr))

	return nil
}

func printScript(cmd *cobra.Command, args []string) error {
	data, err := script.Default().Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)

	return err
}
