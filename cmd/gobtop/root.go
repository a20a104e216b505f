package gobtop

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/gobtop/internal/version"
	"github.com/arthur-debert/gobtop/pkg/cobrax/topics"
	"github.com/arthur-debert/gobtop/pkg/config"
	"github.com/arthur-debert/gobtop/pkg/errors"
	"github.com/arthur-debert/gobtop/pkg/logging"
	"github.com/arthur-debert/gobtop/pkg/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := newApp()

	rootCmd := &cobra.Command{
		Use:     version.ProgramName,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.bootstrap(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd)
		},
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.flags.Verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&a.flags.Output, "output", "o", "auto", MsgFlagOutput)
	flags.StringVar(&a.flags.ConfigFile, "config", "", MsgFlagConfig)

	// Monitor flags only make sense for the root command
	rootCmd.Flags().BoolVar(&a.flags.LowColor, "low-color", false, MsgFlagLowColor)
	rootCmd.Flags().BoolVarP(&a.flags.TTYOn, "tty_on", "t", false, MsgFlagTTYOn)
	rootCmd.Flags().BoolVar(&a.flags.TTYOff, "tty_off", false, MsgFlagTTYOff)
	rootCmd.Flags().IntVarP(&a.flags.Preset, "preset", "p", noPreset, MsgFlagPreset)
	rootCmd.Flags().BoolVar(&a.flags.UTFForce, "utf-force", false, MsgFlagUTFForce)
	rootCmd.Flags().BoolVar(&a.flags.Debug, "debug", false, MsgFlagDebug)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	opts := topics.Options{
		FS:         &afero.FromIOFS{FS: topicFiles},
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if _, err := topics.InitializeWithOptions(rootCmd, "topics", opts); err != nil {
		a.logger.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// run loads the config, applies the command line overrides and prints the
// resulting state
func (a *app) run(cmd *cobra.Command) error {
	if !a.flags.UTFForce && !utf8Locale(os.Getenv) {
		return errors.New(errors.ErrInvalidInput, MsgErrNoUTF8)
	}

	r, err := a.renderer(cmd)
	if err != nil {
		return err
	}

	store, report, _, err := a.loadStore(a.configPath())
	if err != nil {
		return err
	}
	if report != nil {
		if err := r.RenderResult(report); err != nil {
			return err
		}
	}

	a.applyLogLevel(store)
	a.applyOverrides(cmd, store)

	lowColor, tty := store.GetBool("lowcolor"), store.GetBool("tty_mode")
	profile := ui.ApplyColorProfile(lowColor, tty)
	a.logger.Debug().Int("profile", int(profile)).Msg("Color profile selected")

	summary := fmt.Sprintf(MsgSummaryFormat,
		store.CurrentPreset(), strings.Join(store.CurrentBoxes(), " "), store.GetInt("update_ms"))
	if err := r.RenderMessage(summary); err != nil {
		return err
	}
	if tty {
		if err := r.RenderMessage(MsgModeTTY); err != nil {
			return err
		}
	}
	if lowColor {
		return r.RenderMessage(MsgModeLowColor)
	}
	return nil
}

// applyLogLevel honors log_level from the config unless --debug or -v asked
// for something else
func (a *app) applyLogLevel(store *config.Store) {
	level := store.GetString("log_level")
	switch {
	case a.flags.Debug:
		level = "DEBUG"
	case a.flags.Verbosity > 0:
		return
	}
	if err := logging.ApplyLevel(level); err != nil {
		a.logger.Warn().Err(err).Str("level", level).Msg("Ignoring log level")
	}
}

func (a *app) applyOverrides(cmd *cobra.Command, store *config.Store) {
	tty := store.GetBool("force_tty")
	switch {
	case a.flags.TTYOn:
		tty = true
	case a.flags.TTYOff:
		tty = false
	}
	store.SetBool("tty_mode", tty)

	if a.flags.LowColor {
		store.SetBool("lowcolor", true)
	}

	if a.flags.Preset == noPreset {
		return
	}
	if err := store.ApplyPreset(a.flags.Preset); err != nil {
		a.logger.Warn().Err(err).Int("preset", a.flags.Preset).Msg("Preset not applied")
		a.warn(cmd, fmt.Sprintf(MsgPresetFallback, a.flags.Preset))
		_ = store.ApplyPreset(0)
	}
}
