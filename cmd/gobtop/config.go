package gobtop

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/arthur-debert/gobtop/pkg/config"
	"github.com/arthur-debert/gobtop/pkg/errors"
	"github.com/arthur-debert/gobtop/pkg/ui/display"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "core",
	}

	cmd.AddCommand(newConfigCheckCmd(a))
	cmd.AddCommand(newConfigShowCmd(a))
	cmd.AddCommand(newConfigKeysCmd(a))
	cmd.AddCommand(newConfigDescribeCmd(a))
	cmd.AddCommand(newConfigPresetsCmd(a))
	cmd.AddCommand(newConfigPathsCmd(a))

	return cmd
}

func newConfigCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: MsgConfigCheckShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath()
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return errors.New(errors.ErrNotFound, MsgErrNoConfig)
			}

			_, report, warnings, err := a.loadStore(path)
			if err != nil {
				return err
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			if err := r.RenderResult(report); err != nil {
				return err
			}
			if !report.Found {
				return errors.Newf(errors.ErrNotFound, "config file %s does not exist", path).
					WithDetail("path", path)
			}
			return warnings.Err()
		},
	}
}

func newConfigShowCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := config.Format(strings.ToLower(format))
			if !slices.Contains(config.Formats, f) {
				return errors.Newf(errors.ErrInvalidInput, "unknown format %q, use one of: %s", format, formatNames()).
					WithDetail("format", format)
			}

			store, _, _, err := a.loadStore(a.configPath())
			if err != nil {
				return err
			}
			out, err := store.Export(f)
			if err != nil {
				return err
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(out)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(config.FormatConf), MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return strings.Split(formatNames(), ", "), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func formatNames() string {
	names := make([]string, 0, len(config.Formats))
	for _, f := range config.Formats {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func newConfigKeysCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "keys",
		Short: MsgConfigKeysShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, _, err := a.loadStore(a.configPath())
			if err != nil {
				return err
			}

			list := &display.SettingList{Settings: []display.Setting{}}
			for _, e := range store.Schema().Entries() {
				if !all && !e.Documented() {
					continue
				}
				list.Settings = append(list.Settings, settingOf(store, e))
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(list)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, MsgFlagAll)
	return cmd
}

func newConfigDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <key>",
		Short: MsgConfigDescribeShort,
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var keys []string
			for _, e := range config.DefaultSchema.Entries() {
				if strings.HasPrefix(e.Key, toComplete) {
					keys = append(keys, e.Key)
				}
			}
			return keys, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, _, err := a.loadStore(a.configPath())
			if err != nil {
				return err
			}

			e, ok := store.Schema().Lookup(args[0])
			if !ok {
				return errors.Newf(errors.ErrUnknownKey, MsgErrUnknownKey, args[0]).
					WithDetail("key", args[0])
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(&display.SettingDetail{Setting: settingOf(store, e)})
		},
	}
}

func newConfigPresetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: MsgConfigPresetsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, _, err := a.loadStore(a.configPath())
			if err != nil {
				return err
			}

			list := &display.PresetList{Current: store.CurrentPreset()}
			for _, p := range store.Presets() {
				list.Presets = append(list.Presets, p.String())
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(list)
		},
	}
}

func newConfigPathsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: MsgConfigPathsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.paths == nil && a.flags.ConfigFile == "" {
				return errors.New(errors.ErrNotFound, MsgErrNoConfig)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgPathConfigFile, a.configPath())
			if a.paths != nil {
				fmt.Fprintf(out, MsgPathLogFile, a.paths.LogFile())
				fmt.Fprintf(out, MsgPathUserThemes, orNone(a.paths.UserThemeDir()))
				fmt.Fprintf(out, MsgPathSystemTheme, orNone(a.paths.ThemeDir()))
			}
			return nil
		},
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// settingOf describes entry e with its live value in store
func settingOf(store *config.Store, e config.Entry) display.Setting {
	s := display.Setting{
		Key:        e.Key,
		Type:       string(e.Type),
		Default:    e.Default,
		Help:       e.Help,
		Documented: e.Documented(),
	}
	switch e.Type {
	case config.TypeString:
		s.Value = store.GetString(e.Key)
	case config.TypeBool:
		s.Value = strconv.FormatBool(store.GetBool(e.Key))
	case config.TypeInt:
		s.Value = strconv.Itoa(store.GetInt(e.Key))
	}
	return s
}
