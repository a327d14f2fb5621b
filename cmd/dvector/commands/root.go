package commands

import (
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "dvector",
	Short: "Speaker corpus preparation for d-vector training",
	Long: `dvector - turn speaker-organized audio into training features.

Each root directory holds one subdirectory per speaker. 'dvector prepare'
extracts a log mel spectrogram from every audio file and writes it under a
numbered speaker directory in the destination.

Examples:
  # Prepare two corpora into an existing directory
  mkdir -p features
  dvector prepare VCTK/wav48 LibriSpeech/train-clean-100 -s features`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
