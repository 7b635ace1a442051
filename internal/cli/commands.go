package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/frece/internal/version"
	"github.com/arthur-debert/frece/pkg/config"
	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/arthur-debert/frece/pkg/tools"
	"github.com/arthur-debert/frece/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// argRange validates the positional argument count as a usage error.
func argRange(min, max int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < min || len(args) > max {
			return errors.Newf(errors.ErrInvalidInput, "usage: %s %s", cmd.CommandPath(), usage)
		}
		return nil
	}
}

func onlyValidArgs(cmd *cobra.Command, args []string) error {
	return usageError(cobra.OnlyValidArgs(cmd, args))
}

func newScanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "scan <dir> [ext]",
		Short:   MsgScanShort,
		Example: MsgScanExample,
		GroupID: "core",
		Args:    argRange(1, 2, "<dir> [ext]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ext string
			if len(args) == 2 {
				ext = args[1]
			}
			result, err := a.scanByExtension(cmd.Context(), args[0], ext)
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(result)
		},
	}
}

func newFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "find <dir> <name>",
		Short:   MsgFindShort,
		GroupID: "core",
		Args:    argRange(2, 2, "<dir> <name>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.findByName(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(result)
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list <dir>",
		Short:   MsgListShort,
		GroupID: "core",
		Args:    argRange(1, 1, "<dir>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := a.catalogDir(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(summary)
		},
	}
}

func newRecoverCmd(a *app) *cobra.Command {
	var (
		ext           string
		name          string
		onCollision   string
		workers       int
		verify        bool
		dryRun        bool
		preserveTimes bool
	)

	cmd := &cobra.Command{
		Use:     "recover <source> [dest]",
		Short:   MsgRecoverShort,
		Long:    MsgRecoverLong,
		Example: MsgRecoverExample,
		GroupID: "core",
		Args:    argRange(1, 2, "<source> [dest]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ext != "" && name != "" {
				return errors.New(errors.ErrInvalidInput, "--ext and --name cannot be combined")
			}

			opts := a.recoverOptions()
			flags := cmd.Flags()
			if flags.Changed("on-collision") {
				policy, err := types.ParseCollisionPolicy(onCollision)
				if err != nil {
					return err
				}
				opts.Policy = policy
			}
			if flags.Changed("workers") {
				if workers < 1 {
					return errors.Newf(errors.ErrInvalidInput, "--workers must be at least 1, got %d", workers)
				}
				opts.Workers = workers
			}
			if flags.Changed("verify") {
				opts.Verify = verify
			}
			if flags.Changed("preserve-times") {
				opts.PreserveTimes = preserveTimes
			}
			opts.DryRun = dryRun

			req := recoverRequest{Source: args[0], Extension: ext, Name: name, Options: opts}
			if len(args) == 2 {
				req.Destination = args[1]
			}

			outcome, err := a.recoverFiles(cmd.Context(), req)
			if err != nil {
				return err
			}
			if err := a.renderer.RenderResult(outcome); err != nil {
				return err
			}

			switch {
			case outcome.Cancelled:
				return silentExit(ExitError, errors.New(errors.ErrCancelled, "recovery interrupted"))
			case outcome.HasFailures():
				return silentExit(ExitPartial, errors.Newf(errors.ErrCopyFailed, "%d files failed", outcome.Failed))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&ext, "ext", "", MsgFlagExt)
	f.StringVar(&name, "name", "", MsgFlagName)
	f.StringVar(&onCollision, "on-collision", "overwrite", MsgFlagOnCollision)
	f.IntVar(&workers, "workers", 1, MsgFlagWorkers)
	f.BoolVar(&verify, "verify", false, MsgFlagVerify)
	f.BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	f.BoolVar(&preserveTimes, "preserve-times", true, MsgFlagPreserveTimes)

	_ = cmd.RegisterFlagCompletionFunc("on-collision", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(types.CollisionPolicies))
		for _, p := range types.CollisionPolicies {
			names = append(names, string(p))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func newAliasesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "aliases",
		Short:   MsgAliasesShort,
		GroupID: "misc",
		Args:    argRange(0, 0, ""),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderer.RenderResult(a.resolver.Aliases())
		},
	}
}

func newToolCmd(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "tool <name> [--dir D] [-- args...]",
		Short:   MsgToolShort,
		Long:    MsgToolLong,
		GroupID: "core",
		Args:    argRange(1, 1<<16, "<name> [-- args...]"),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 || a.cfg == nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return a.cfg.Tools.Known, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir := ""
			if dir != "" {
				resolved, err := a.resolver.Resolve(dir)
				if err != nil {
					return err
				}
				workDir = resolved.Path
			}

			run, err := a.runner.Run(cmd.Context(), tools.Tool{Name: args[0], Args: args[1:]}, workDir)
			if run == nil {
				return err
			}
			if rerr := a.renderer.RenderResult(run); rerr != nil {
				return rerr
			}
			if err != nil {
				return silentExit(ExitError, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", MsgFlagToolDir)
	return cmd
}

func newManCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "man <command>",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    argRange(1, 1, "<command>"),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return a.manuals.ListTopics(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a.manuals.WriteManual(cmd.OutOrStdout(), args[0])
			return nil
		},
	}
}

func newConsoleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "console",
		Short:   MsgConsoleShort,
		GroupID: "core",
		Args:    argRange(0, 0, ""),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConsole(cmd)
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    argRange(0, 0, ""),
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := io.WriteString(cmd.OutOrStdout(), config.DefaultContent())
				return err
			}
			data, err := config.Generate(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    argRange(0, 0, ""),
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, version.String())
			if verbose, _ := cmd.Flags().GetCount("verbose"); verbose > 0 {
				fmt.Fprintf(out, "  commit: %s\n", version.Commit)
				fmt.Fprintf(out, "  built:  %s\n", version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(argRange(1, 1, "[bash|zsh|fish|powershell]"), onlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				err = cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				err = cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
			}
			return err
		},
	}
}
