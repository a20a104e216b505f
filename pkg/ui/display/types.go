package display

// Warning is one rejected config value
type Warning struct {
	Key     string `json:"key"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
}

// ConfigReport is the outcome of loading a config file
type ConfigReport struct {
	Path     string    `json:"path"`
	Version  string    `json:"version"`
	Found    bool      `json:"found"`
	Dirty    bool      `json:"dirty"`
	Warnings []Warning `json:"warnings"`
}

// OK reports whether the file loaded without warnings
func (r *ConfigReport) OK() bool {
	return len(r.Warnings) == 0
}

// Setting describes one setting and its effective value
type Setting struct {
	Key        string `json:"key"`
	Type       string `json:"type"`
	Default    string `json:"default"`
	Value      string `json:"value,omitempty"`
	Help       string `json:"help,omitempty"`
	Documented bool   `json:"documented"`
}

// Changed reports whether the effective value differs from the default
func (s Setting) Changed() bool {
	return s.Value != "" && s.Value != s.Default
}

// SettingList is a set of settings, in schema order
type SettingList struct {
	Settings []Setting `json:"settings"`
}

// SettingDetail is the long description of one setting
type SettingDetail struct {
	Setting
}

// PresetList shows the available layouts
type PresetList struct {
	Current int      `json:"current"`
	Presets []string `json:"presets"`
}
