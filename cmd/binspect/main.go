package main

import (
	"github.com/spf13/cobra"

	binspect "github.com/seanhagen/binspect/library"
)

func main() {
	cobra.CheckErr(rootCmd.Execute())
}

var debugLogging bool

// rootCmd represents the base command; there are no subcommands
var rootCmd = &cobra.Command{
	Use:   "binspect <path>",
	Short: "Resolve a file path and dump the raw bytes of the file",
	Long: `Binspect takes the path to a file, resolves it to a canonical
absolute path, reads the whole file into memory, and prints a debug
rendering of the resolved path followed by the bytes it read.

Relative paths are resolved against the current working directory, and
symlinks are followed to their targets before reading.`,

	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger(debugLogging)
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		dumper, err := binspect.NewDumper(binspect.Config{
			Output: cmd.OutOrStdout(),
		})
		if err != nil {
			return err
		}

		return dumper.Run(args)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&debugLogging, "debug", "d", false,
		"enable debug logging of each pipeline step",
	)
}
