// Package cli provides terminal helpers shared by dvector commands:
// result output (YAML, JSON), status lines and logger setup.
//
// Example usage:
//
//	logger := cli.NewLogger(cmd.ErrOrStderr(), verbose)
//	...
//	cli.Output(summary, cli.OutputOptions{
//	    Format: cli.FormatYAML,
//	    Writer: cmd.OutOrStdout(),
//	})
package cli
