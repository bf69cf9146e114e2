package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lsb-release/internal/adapters"
	"lsb-release/internal/app"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "LSB"

var newAppService = app.NewService

type RootConfig struct {
	ConfigFile        string
	LogLevel          string
	DebianVersionFile string
	LSBReleaseFile    string
}

func Execute() {
	if code := execute(newRootCommand()); code != 0 {
		os.Exit(code)
	}
}

// execute runs root and reports a failure on stderr, returning the
// process exit code.
func execute(root *cobra.Command) int {
	err := root.Execute()
	if err == nil {
		return 0
	}
	log.Error().Err(err).Msg(errorMessage(err))
	return exitCodeForError(err)
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:           "lsb-release",
		Short:         "Print Debian distribution and LSB module information",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	flags.StringVar(&cfg.LogLevel, "log-level", "warn", "Log level")
	flags.StringVar(&cfg.DebianVersionFile, "debian-version-file", adapters.DefaultDebianVersionPath, "Path of the Debian version marker")
	flags.StringVar(&cfg.LSBReleaseFile, "lsb-release-file", adapters.DefaultLSBReleasePath, "Path of the lsb-release override file")
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("etc_debian_version", flags.Lookup("debian-version-file"))
	_ = viper.BindPFlag("etc_lsb_release", flags.Lookup("lsb-release-file"))

	cmd.AddCommand(newShowCommand(&cfg))
	cmd.AddCommand(newModulesCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("lsb-release")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/lsb-release")
	if err := viper.ReadInConfig(); err != nil {
		log.Debug().Err(err).Msg("no config file loaded")
	}
	return nil
}

// setupLogging writes to stderr so stdout carries only the report.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument:
		return 2
	case errbuilder.CodeNotFound, errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
