package config

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/gobtop/internal/version"
)

// Header returns the first line of a config file written for ver
func Header(ver string) string {
	return "#? Config file for " + version.ProgramName + " v. " + ver
}

// GenerateConfigContent renders the live documented settings in config file
// format: the version header, then every setting preceded by its help text.
func (s *Store) GenerateConfigContent() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	b.WriteString(Header(s.version))
	b.WriteString("\n")

	for _, e := range s.schema.entries {
		if !e.Documented() {
			continue
		}
		b.WriteString("\n")
		for _, line := range strings.Split(e.Help, "\n") {
			b.WriteString("#* ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString(e.Key)
		b.WriteString(" = ")
		b.WriteString(s.formatValue(e))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *Store) formatValue(e Entry) string {
	switch e.Type {
	case TypeBool:
		if s.bools.live[e.Key] {
			return "True"
		}
		return "False"
	case TypeInt:
		return strconv.Itoa(s.ints.live[e.Key])
	default:
		return `"` + s.strs.live[e.Key] + `"`
	}
}
