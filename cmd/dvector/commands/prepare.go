package commands

import (
	"github.com/spf13/cobra"

	"github.com/AppleHolic/dvector/pkg/cli"
	"github.com/AppleHolic/dvector/pkg/corpus"
	"github.com/AppleHolic/dvector/pkg/feature"
)

var saveDir string

var prepareCmd = &cobra.Command{
	Use:   "prepare <root>... -s <save_dir>",
	Short: "Extract spectrograms from speaker directories",
	Long: `Extract log mel spectrograms from every speaker directory under the
given roots.

Speakers are numbered from 1 in the order they are found: roots in the order
given, speakers in name order within a root. A speaker without audio files is
reported and skipped without using a number.

The destination must already exist. A speaker directory that already exists
in the destination is an error, so a second run into the same destination
fails instead of overwriting.

Audio files are found recursively below each speaker directory. WAV, FLAC,
MP3 and Ogg Vorbis are decoded.

Output layout:
  <save_dir>/s0001(<speaker>)/<utterance>.msgpack`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPrepare,
}

func init() {
	prepareCmd.Flags().StringVarP(&saveDir, "save_dir", "s", "", "path to the directory to save processed objects")
	_ = prepareCmd.MarkFlagRequired("save_dir")
	rootCmd.AddCommand(prepareCmd)
}

func runPrepare(cmd *cobra.Command, args []string) error {
	errOut := cmd.ErrOrStderr()

	p := &corpus.Pipeline{
		Discoverer: corpus.AudioFiles{},
		Extractor:  feature.NewMel(),
		Logger:     cli.NewLogger(errOut, verbose),
		Progress:   newProgress(errOut),
	}
	sum, err := p.Prepare(cmd.Context(), args, saveDir)
	if err != nil {
		return err
	}

	cli.PrintSuccess(errOut, "Wrote %d speakers (%d utterances) to %s", sum.Speakers, sum.Utterances, sum.Destination)
	return cli.Output(sum, cli.OutputOptions{
		Format: cli.FormatYAML,
		Writer: cmd.OutOrStdout(),
	})
}
