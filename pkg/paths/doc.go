// Package paths provides centralized path handling for gobtop.
//
// It resolves where the config file, the log file and the theme directories
// live, following the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/gobtop, falling back to $HOME/.config/gobtop
//   - Log file: <config dir>/gobtop.log
//   - User themes: <config dir>/themes
//   - System themes: <binary>/../share/gobtop/themes, then
//     /usr/local/share/gobtop/themes and /usr/share/gobtop/themes
//
// # Environment Variables
//
//   - GOBTOP_CONFIG_DIR: Override the config directory
//
// # Usage
//
//	p, err := paths.New(filesystem.NewOS(), "")
//	if err != nil {
//	    // no usable home folder: run with defaults, config saving disabled
//	}
//	if err := p.EnsureDirs(); err != nil { ... }
//	cfgFile := p.ConfigFile() // ~/.config/gobtop/gobtop.conf
package paths
