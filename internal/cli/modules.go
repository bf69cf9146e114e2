package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lsb-release/internal/adapters"
)

type modulesOptions struct {
	List bool
}

func newModulesCommand() *cobra.Command {
	opts := modulesOptions{}
	cmd := &cobra.Command{
		Use:   "modules",
		Short: "List installed LSB modules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runModules(cmd, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.List, "list", false, "Print one module per line")
	return cmd
}

func runModules(cmd *cobra.Command, opts modulesOptions) error {
	service := newAppService()
	result, err := service.InstalledModules(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(result.Modules) == 0 {
		_, err = fmt.Fprintln(out, adapters.NoModulesMessage)
		return err
	}
	separator := ":"
	if opts.List {
		separator = "\n"
	}
	_, err = fmt.Fprintln(out, strings.Join(result.Modules, separator))
	return err
}
