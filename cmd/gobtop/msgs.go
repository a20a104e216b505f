package gobtop

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort           = "Resource monitor configuration front end"
	MsgRootLong            = "gobtop loads, validates and reports on the gobtop configuration file.\n\nRun without a command it loads the config, applies the command line\noverrides and prints the resulting state. Use 'gobtop help topics' for\ndocumentation on the config file format."
	MsgConfigShort         = "Inspect the configuration"
	MsgConfigCheckShort    = "Validate a config file and list rejected values"
	MsgConfigShowShort     = "Print the effective configuration"
	MsgConfigKeysShort     = "List known settings"
	MsgConfigDescribeShort = "Describe one setting"
	MsgConfigPresetsShort  = "List layout presets"
	MsgConfigPathsShort    = "Print the directories gobtop uses"
	MsgVersionShort        = "Print version information"
	MsgCompletionShort     = "Generate shell completion script"

	// Status messages
	MsgSummaryFormat   = "preset %d, boxes: %s, update every %d ms"
	MsgModeTTY         = "tty mode on"
	MsgModeLowColor    = "low color mode on"
	MsgPresetFallback  = "preset %d does not exist, using the default layout"
	MsgVersionFormat   = "%s version %s\n  commit: %s\n  built:  %s\n"
	MsgPathConfigFile  = "config file:      %s\n"
	MsgPathLogFile     = "log file:         %s\n"
	MsgPathUserThemes  = "user themes:      %s\n"
	MsgPathSystemTheme = "system themes:    %s\n"

	// Warning messages
	MsgWarnNoConfigDir = "Could not get path to user HOME folder, logging and config saving disabled."
	MsgWarnConfigDir   = "Could not create or access gobtop config directory, logging and config saving disabled."
	MsgWarnEnvHint     = "Make sure $XDG_CONFIG_HOME or $HOME environment variables are correctly set to fix this."

	// Error messages
	MsgErrNoUTF8     = "No UTF-8 locale detected! Use --utf-force argument to force start if you're sure your terminal can handle it."
	MsgErrLoadConfig = "failed to load config: %w"
	MsgErrFlags      = "invalid flags: %s"
	MsgErrUnknownKey = "unknown setting %q, see 'gobtop config keys --all'"
	MsgErrNoConfig   = "no config file available"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagOutput   = "Output format: auto, term, text or json"
	MsgFlagConfig   = "Config file to use instead of the default one"
	MsgFlagLowColor = "Disable truecolor, converts 24-bit colors to 256-color"
	MsgFlagTTYOn    = "Force (ON) tty mode, max 16 colors and tty friendly graph symbols"
	MsgFlagTTYOff   = "Force (OFF) tty mode"
	MsgFlagPreset   = "Start with preset, integer value between 0-9"
	MsgFlagUTFForce = "Force start even if no UTF-8 locale was detected"
	MsgFlagDebug    = "Start in DEBUG mode, sets loglevel to DEBUG"
	MsgFlagFormat   = "Format: conf, toml or yaml"
	MsgFlagAll      = "Include runtime-only settings"

	// Completion help
	MsgCompletionLong = `To load completions:

Bash:
  $ source <(gobtop completion bash)

Zsh:
  $ gobtop completion zsh > "${fpath[1]}/_gobtop"

Fish:
  $ gobtop completion fish | source

PowerShell:
  PS> gobtop completion powershell | Out-String | Invoke-Expression
`
)
