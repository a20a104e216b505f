package config

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/arthur-debert/gobtop/internal/version"
	"github.com/arthur-debert/gobtop/pkg/errors"
	"github.com/arthur-debert/gobtop/pkg/filesystem"
	"github.com/arthur-debert/gobtop/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Settings is the view of the store that the rest of gobtop depends on
type Settings interface {
	GetString(key string) string
	GetBool(key string) bool
	GetInt(key string) int
	SetString(key, value string)
	SetBool(key string, value bool)
	SetInt(key string, value int)

	Lock()
	Unlock()
	Locked() bool

	Dirty() bool
	CurrentBoxes() []string
	Presets() []Preset
	CurrentPreset() int
	ApplyPreset(index int) error
}

// Options configures a Store. Zero fields get defaults.
type Options struct {
	// Path of the config file read by Load
	Path string
	// FS is used for all file access, the OS filesystem by default
	FS afero.Fs
	// Version must appear in the config file header
	Version string
	// LogLevels are the valid log_level values
	LogLevels []string
	// Logger defaults to the "config" component logger
	Logger *zerolog.Logger
	// Schema defaults to the embedded schema
	Schema *Schema
}

// Store holds the typed settings. It is safe for concurrent use.
type Store struct {
	mu sync.Mutex

	schema  *Schema
	fs      afero.Fs
	path    string
	version string
	levels  []string
	logger  zerolog.Logger

	strs  table[string]
	bools table[bool]
	ints  table[int]

	locked atomic.Bool
	dirty  atomic.Bool

	boxes         []string
	presets       []Preset
	currentPreset int

	// box and preset changes held back until Unlock
	staged stringEffect
}

var _ Settings = (*Store)(nil)

// New creates a store holding the schema defaults
func New(opts Options) *Store {
	s := &Store{
		schema:  opts.Schema,
		fs:      opts.FS,
		path:    opts.Path,
		version: opts.Version,
		levels:  opts.LogLevels,
		strs:    newTable[string](),
		bools:   newTable[bool](),
		ints:    newTable[int](),
	}
	if s.schema == nil {
		s.schema = DefaultSchema
	}
	if s.fs == nil {
		s.fs = filesystem.NewOS()
	}
	if s.version == "" {
		s.version = version.Version
	}
	if s.levels == nil {
		s.levels = logging.Levels()
	}
	if opts.Logger != nil {
		s.logger = *opts.Logger
	} else {
		s.logger = logging.GetLogger("config")
	}

	for _, e := range s.schema.entries {
		switch e.Type {
		case TypeString:
			s.strs.live[e.Key] = e.Default
		case TypeBool:
			s.bools.live[e.Key] = ParseBool(e.Default)
		case TypeInt:
			n, _ := parseInt32(e.Default)
			s.ints.live[e.Key] = n
		}
	}

	s.boxes = fields(s.strs.live["shown_boxes"], " ")
	s.presets = []Preset{DefaultPreset}
	if user, err := ParsePresets(s.strs.live["presets"]); err == nil {
		s.presets = append(s.presets, user...)
	} else {
		s.logger.Error().Err(err).Msg("Default presets value is invalid")
	}

	return s
}

// Path returns the config file path
func (s *Store) Path() string {
	return s.path
}

// Version is the program version expected in the config file header
func (s *Store) Version() string {
	return s.version
}

// Schema returns the schema the store was built from
func (s *Store) Schema() *Schema {
	return s.schema
}

func (s *Store) GetString(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.strs.get(key)
	if !ok {
		s.logger.Error().Str("key", key).Msg("Unknown string setting")
	}
	return v
}

func (s *Store) GetBool(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.bools.get(key)
	if !ok {
		s.logger.Error().Str("key", key).Msg("Unknown bool setting")
	}
	return v
}

func (s *Store) GetInt(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.ints.get(key)
	if !ok {
		s.logger.Error().Str("key", key).Msg("Unknown int setting")
	}
	return v
}

// SetString stores value for key, in the pending table while locked
func (s *Store) SetString(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setString(key, value)
}

func (s *Store) SetBool(key string, value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.bools.has(key) {
		s.logger.Error().Str("key", key).Msg("Unknown bool setting")
		return
	}
	s.touch(key)
	s.bools.set(key, value, s.locked.Load())
}

func (s *Store) SetInt(key string, value int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ints.has(key) {
		s.logger.Error().Str("key", key).Msg("Unknown int setting")
		return
	}
	s.touch(key)
	s.ints.set(key, value, s.locked.Load())
}

func (s *Store) setString(key, value string) {
	if !s.strs.has(key) {
		s.logger.Error().Str("key", key).Msg("Unknown string setting")
		return
	}
	s.touch(key)
	s.strs.set(key, value, s.locked.Load())
}

// touch marks the store dirty when key is written to the config file
func (s *Store) touch(key string) {
	if s.schema.Documented(key) {
		s.dirty.Store(true)
	}
}

// Lock engages the gate: writes are buffered until Unlock
func (s *Store) Lock() {
	s.locked.Store(true)
}

// Unlock applies every buffered write, then releases the gate
func (s *Store) Unlock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strs.apply()
	s.bools.apply()
	s.ints.apply()
	s.effect(s.staged, false)
	s.staged = stringEffect{}
	s.locked.Store(false)
}

// effect updates the box selection and presets derived from a string
// setting, or stages them while gated. Callers hold s.mu.
func (s *Store) effect(eff stringEffect, gated bool) {
	if gated {
		if eff.boxes != nil {
			s.staged.boxes = eff.boxes
		}
		if eff.presets != nil {
			s.staged.presets = eff.presets
		}
		return
	}
	if eff.boxes != nil {
		s.boxes = eff.boxes
	}
	if eff.presets != nil {
		s.presets = append([]Preset{DefaultPreset}, eff.presets...)
	}
}

func (s *Store) Locked() bool {
	return s.locked.Load()
}

// Pending returns the buffered value of key while the gate is engaged
func (s *Store) Pending(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.strs.pendingValue(key); ok {
		return v, true
	}
	if v, ok := s.bools.pendingValue(key); ok {
		return v, true
	}
	if v, ok := s.ints.pendingValue(key); ok {
		return v, true
	}
	return nil, false
}

// Dirty reports whether the config file should be rewritten
func (s *Store) Dirty() bool {
	return s.dirty.Load()
}

// CurrentBoxes returns the active box selection
func (s *Store) CurrentBoxes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.boxes...)
}

// Presets returns the builtin layout followed by the user presets
func (s *Store) Presets() []Preset {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Preset, len(s.presets))
	for i, p := range s.presets {
		out[i] = Preset{Boxes: append([]BoxSpec(nil), p.Boxes...)}
	}
	return out
}

func (s *Store) CurrentPreset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPreset
}

// positionKeys maps a box to the bool setting flipped by its position flag
var positionKeys = map[string]string{
	"cpu":  "cpu_bottom",
	"mem":  "mem_below_net",
	"proc": "proc_left",
}

// ApplyPreset switches to preset index, 0 being the builtin layout. The
// box selection, shown_boxes and per-box settings are updated.
func (s *Store) ApplyPreset(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.presets) {
		return errors.Newf(errors.ErrNotFound, "Preset %d does not exist, %d presets available", index, len(s.presets)).
			WithDetail("index", index)
	}

	p := s.presets[index]
	for _, b := range p.Boxes {
		if key, ok := positionKeys[b.Name]; ok {
			s.touch(key)
			s.bools.set(key, b.Position == 1, s.locked.Load())
		}
		s.setString("graph_symbol_"+b.Name, b.Symbol)
	}
	names := p.Names()
	s.effect(stringEffect{boxes: names}, s.locked.Load())
	s.setString("shown_boxes", strings.Join(names, " "))
	s.currentPreset = index

	s.logger.Debug().Int("preset", index).Str("layout", p.String()).Msg("Applied preset")
	return nil
}

// Values returns the live values of every documented setting
func (s *Store) Values() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]any)
	for _, e := range s.schema.entries {
		if !e.Documented() {
			continue
		}
		switch e.Type {
		case TypeString:
			out[e.Key] = s.strs.live[e.Key]
		case TypeBool:
			out[e.Key] = s.bools.live[e.Key]
		case TypeInt:
			out[e.Key] = s.ints.live[e.Key]
		}
	}
	return out
}
