package config

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/gobtop/pkg/errors"
)

// Format is an output format for the effective settings
type Format string

const (
	FormatConf Format = "conf"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Formats lists the supported export formats
var Formats = []Format{FormatConf, FormatTOML, FormatYAML}

// View is a typed snapshot of the settings most callers care about
type View struct {
	ColorTheme      string   `koanf:"color_theme"`
	ThemeBackground bool     `koanf:"theme_background"`
	Truecolor       bool     `koanf:"truecolor"`
	RoundedCorners  bool     `koanf:"rounded_corners"`
	GraphSymbol     string   `koanf:"graph_symbol"`
	ShownBoxes      []string `koanf:"shown_boxes"`
	UpdateMs        int      `koanf:"update_ms"`
	ProcSorting     string   `koanf:"proc_sorting"`
	ProcTree        bool     `koanf:"proc_tree"`
	TempScale       string   `koanf:"temp_scale"`
	ClockFormat     string   `koanf:"clock_format"`
	VimKeys         bool     `koanf:"vim_keys"`
	LogLevel        string   `koanf:"log_level"`
}

// Koanf loads the documented live values into a koanf instance
func (s *Store) Koanf() (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(s.Values(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load settings into koanf")
	}
	return k, nil
}

// Export renders the effective settings in the given format
func (s *Store) Export(format Format) ([]byte, error) {
	if format == FormatConf {
		return []byte(s.GenerateConfigContent()), nil
	}

	k, err := s.Koanf()
	if err != nil {
		return nil, err
	}

	var parser koanf.Parser
	switch format {
	case FormatTOML:
		parser = toml.Parser()
	case FormatYAML:
		parser = yaml.Parser()
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q", format).
			WithDetail("format", string(format))
	}

	out, err := k.Marshal(parser)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to marshal settings as %s", format)
	}
	return out, nil
}

// Decode unmarshals the documented live values into out, which must be a
// pointer to a struct using koanf tags. Space separated strings decode into
// string slices.
func (s *Store) Decode(out any) error {
	k, err := s.Koanf()
	if err != nil {
		return err
	}

	conf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           out,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(" "),
			),
		},
	}
	if err := k.UnmarshalWithConf("", out, conf); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to decode settings into %T", out)
	}
	return nil
}

// View returns the typed snapshot of the live settings
func (s *Store) View() (View, error) {
	var v View
	err := s.Decode(&v)
	return v, err
}
