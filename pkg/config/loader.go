package config

import (
	"bufio"
	"io"
	"strings"

	"github.com/arthur-debert/gobtop/pkg/errors"
	"github.com/arthur-debert/gobtop/pkg/filesystem"
	"github.com/arthur-debert/gobtop/pkg/logging"
)

// Warnings are the values rejected by one Load, in file order
type Warnings []*errors.GobtopError

// Messages returns the user facing message of every warning
func (w Warnings) Messages() []string {
	out := make([]string, len(w))
	for i, e := range w {
		out[i] = e.Message
	}
	return out
}

// Keys returns the setting named by every warning
func (w Warnings) Keys() []string {
	out := make([]string, len(w))
	for i, e := range w {
		out[i] = e.Detail("key")
	}
	return out
}

// Err summarizes the warnings as one error, nil when there are none
func (w Warnings) Err() error {
	if len(w) == 0 {
		return nil
	}
	return errors.Newf(errors.ErrInvalidInput, "%d invalid config value(s)", len(w)).
		WithDetail("messages", w.Messages())
}

// Load reads the config file into the store. Rejected values are returned as
// warnings and leave the previous value in place; only I/O failures are
// returned as an error.
func (s *Store) Load() (Warnings, error) {
	done := logging.LogOperationStart(s.logger, "load")
	defer done()

	exists, err := filesystem.Exists(s.fs, s.path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to access config file %s", s.path)
	}
	if !exists {
		s.logger.Info().Str("path", s.path).Msg("Config file not found, a new one should be written")
		s.dirty.Store(true)
		return nil, nil
	}

	f, err := s.fs.Open(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to open config file %s", s.path)
	}
	defer func() { _ = f.Close() }()

	return s.LoadFrom(f)
}

// LoadFrom reads config content from r. The first line is the header and must
// contain the program version.
func (s *Store) LoadFrom(r io.Reader) (Warnings, error) {
	br := bufio.NewReader(r)

	header, err := readLine(br)
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to read config header")
	}
	if err == io.EOF && header == "" {
		s.logger.Debug().Str("path", s.path).Msg("Config file is empty")
		return nil, nil
	}

	if !strings.Contains(header, s.version) {
		s.logger.Info().Str("header", header).Str("version", s.version).
			Msg("Config file version mismatch, a new one should be written")
		s.dirty.Store(true)
	}

	var warnings Warnings
	lineNo := 1
	for err == nil {
		var raw string
		raw, err = readLine(br)
		if err != nil && err != io.EOF {
			return warnings, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config line %d", lineNo+1)
		}
		if err == io.EOF && raw == "" {
			break
		}
		lineNo++

		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if !s.schema.Documented(key) {
			continue
		}

		if w := s.apply(key, StripQuotes(strings.TrimSpace(value))); w != nil {
			w.WithDetail("line", lineNo)
			s.logger.Warn().Str("key", key).Int("line", lineNo).Msg(w.Message)
			warnings = append(warnings, w)
		}
	}

	if len(warnings) > 0 {
		s.dirty.Store(true)
	}
	s.logger.Debug().Int("warnings", len(warnings)).Bool("dirty", s.Dirty()).Msg("Config loaded")
	return warnings, nil
}

// readLine returns the next line without its terminator. Lines have no
// length limit. io.EOF is returned with the last unterminated line.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}

// apply validates one raw value and stores it on success
func (s *Store) apply(key, value string) *errors.GobtopError {
	entry, ok := s.schema.Lookup(key)
	if !ok {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	gated := s.locked.Load()

	switch entry.Type {
	case TypeBool:
		v, err := ValidateBool(key, value)
		if err != nil {
			return err
		}
		s.bools.set(key, v, gated)

	case TypeInt:
		v, err := ValidateInt(key, value)
		if err != nil {
			return err
		}
		s.ints.set(key, v, gated)

	case TypeString:
		eff, err := checkString(key, value, s.levels)
		if err != nil {
			return err
		}
		s.strs.set(key, value, gated)
		s.effect(eff, gated)

	default:
		return errors.Newf(errors.ErrTypeMismatch, "Setting %s has unsupported type %s", key, entry.Type).
			WithDetail("key", key)
	}
	return nil
}
