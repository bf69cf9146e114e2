package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lsb-release/internal/app"
	"lsb-release/internal/types"
)

type showOptions struct {
	ID          bool
	Description bool
	Release     bool
	Codename    bool
	All         bool
	Short       bool
	Format      string
}

func newShowCommand(root *RootConfig) *cobra.Command {
	opts := showOptions{}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show distribution information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd, root, opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.ID, "id", "i", false, "Show distributor ID")
	cmd.Flags().BoolVarP(&opts.Description, "description", "d", false, "Show description of this distribution")
	cmd.Flags().BoolVarP(&opts.Release, "release", "r", false, "Show release number of this distribution")
	cmd.Flags().BoolVarP(&opts.Codename, "codename", "c", false, "Show code name of this distribution")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Show all of the above information")
	cmd.Flags().BoolVarP(&opts.Short, "short", "s", false, "Show requested information in short format")
	cmd.Flags().StringVar(&opts.Format, "format", string(types.OutputFormatText), "Output format (text|yaml)")
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("short", cmd.Flags().Lookup("short"))
	_ = viper.BindPFlag("all", cmd.Flags().Lookup("all"))
	return cmd
}

func runShow(cmd *cobra.Command, root *RootConfig, opts showOptions) error {
	opts.Short = resolveBool(cmd, opts.Short, "short", "short")
	opts.All = resolveBool(cmd, opts.All, "all", "all")
	service := newAppService()
	return service.Show(cmd.Context(), app.ShowRequest{
		DistroInfoRequest: app.DistroInfoRequest{
			DebianVersionPath: resolveString(cmd, root.DebianVersionFile, "etc_debian_version", "debian-version-file"),
			LSBReleasePath:    resolveString(cmd, root.LSBReleaseFile, "etc_lsb_release", "lsb-release-file"),
		},
		Fields: selectedFields(opts),
		Short:  opts.Short,
		Format: types.OutputFormat(resolveString(cmd, opts.Format, "format", "format")),
		Out:    cmd.OutOrStdout(),
	})
}

// selectedFields keeps the lsb_release display order regardless of the
// order the flags were given in.
func selectedFields(opts showOptions) []types.DistroField {
	if opts.All {
		return []types.DistroField{
			types.FieldModules,
			types.FieldID,
			types.FieldDescription,
			types.FieldRelease,
			types.FieldCodename,
		}
	}
	fields := make([]types.DistroField, 0, 4)
	if opts.ID {
		fields = append(fields, types.FieldID)
	}
	if opts.Description {
		fields = append(fields, types.FieldDescription)
	}
	if opts.Release {
		fields = append(fields, types.FieldRelease)
	}
	if opts.Codename {
		fields = append(fields, types.FieldCodename)
	}
	if len(fields) == 0 {
		return []types.DistroField{types.FieldModules, types.FieldDescription}
	}
	return fields
}
