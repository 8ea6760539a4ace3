package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/runegrid/pkg/config"
	"github.com/matzehuels/runegrid/pkg/pipeline"
	"github.com/matzehuels/runegrid/pkg/render/window"
)

// completionCommand prints shell completion scripts.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Print a completion script for your shell.

  bash:        source <(runegrid completion bash)
  zsh:         runegrid completion zsh > "${fpath[1]}/_runegrid"
  fish:        runegrid completion fish | source
  powershell:  runegrid completion powershell | Out-String | Invoke-Expression

Presets, output formats and stop keys complete as values.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// registerCompletions attaches value completions to flags that take a
// fixed vocabulary. Flags missing from cmd are skipped.
func registerCompletions(cmd *cobra.Command) {
	complete := func(flag string, values func() []string) {
		if cmd.Flags().Lookup(flag) == nil && cmd.PersistentFlags().Lookup(flag) == nil {
			return
		}
		_ = cmd.RegisterFlagCompletionFunc(flag, func(_ *cobra.Command, _ []string, prefix string) ([]string, cobra.ShellCompDirective) {
			return completeList(values(), prefix)
		})
	}
	complete("preset", config.PresetNames)
	complete("format", func() []string { return pipeline.FormatNames })
	complete("stop-key", window.KeyNames)
}

// completeList completes comma-separated values, keeping what was typed
// before the last comma.
func completeList(values []string, prefix string) ([]string, cobra.ShellCompDirective) {
	head, last := "", prefix
	if i := strings.LastIndex(prefix, ","); i >= 0 {
		head, last = prefix[:i+1], prefix[i+1:]
	}
	var matches []string
	for _, v := range values {
		if strings.HasPrefix(v, last) {
			matches = append(matches, head+v)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
