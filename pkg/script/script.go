package script

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/muesli/termenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"

	"github.com/caillouc/TacTix/pkg/uttt"
)

var (
	scriptFile = "tactix/script.yaml"
)

// Crosses sends noughts to the top left sub-grid, noughts answers in its
// center and then tries to move twice, which the engine rejects
const DefaultScript = `name: default
color: auto
log_level: info
moves:
  - move: B3a3
    turn: x
  - move: A3b2
    turn: o
  - move: B2a3
    turn: o
`

type InvalidScript struct {
	err string
}

func (e *InvalidScript) Error() string {
	return fmt.Sprintf("Script error: %s", e.err)
}

func invalid(format string, args ...any) error {
	return &InvalidScript{err: fmt.Sprintf(format, args...)}
}

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Move struct {
	Move string `yaml:"move"`
	Turn string `yaml:"turn,omitempty"`
}

type Script struct {
	Name     string `yaml:"name"`
	Color    string `yaml:"color"`
	LogLevel string `yaml:"log_level"`
	Moves    []Move `yaml:"moves"`

	steps []Step
	level zapcore.Level
}

// A single validated move of the script
type Step struct {
	Pos uttt.Position
	// Side making the move, meaningful only if HasTurn is set,
	// otherwise the side to move plays it
	Turn    uttt.TurnType
	HasTurn bool
}

// Load the script from given path. With an empty path, the script is searched
// in the XDG config directories, if there is none DefaultScript is used
func Load(path string) (*Script, error) {
	if path == "" {
		absPath, err := xdg.SearchConfigFile(scriptFile)
		if err != nil {
			return Parse([]byte(DefaultScript))
		}
		path = absPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, invalid("file %s does not exist", path)
		}
		return nil, err
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse and validate a YAML script
func Parse(data []byte) (*Script, error) {
	s := &Script{}
	if err := yaml.UnmarshalStrict(data, s); err != nil {
		return nil, invalid("unable to parse yaml: %v", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Check the settings and every move, fills the steps
func (s *Script) Validate() error {
	switch s.Color {
	case "":
		s.Color = ColorAuto
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return invalid("unknown color mode %q, expected auto, always or never", s.Color)
	}

	if err := s.level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return invalid("unknown log level %q", s.LogLevel)
	}

	s.steps = make([]Step, 0, len(s.Moves))
	for i, m := range s.Moves {
		pos, err := uttt.ParsePosition(m.Move)
		if err != nil {
			return invalid("move %d: %v", i, err)
		}

		step := Step{Pos: pos}
		if m.Turn != "" {
			if step.Turn, err = uttt.ParseTurn(m.Turn); err != nil {
				return invalid("move %d: %v", i, err)
			}
			step.HasTurn = true
		}
		s.steps = append(s.steps, step)
	}
	return nil
}

// Getters
func (s *Script) Steps() []Step {
	return s.steps
}

func (s *Script) Level() zapcore.Level {
	return s.level
}

// Get the termenv profile for the color mode, auto detects it from the
// environment and stdout
func (s *Script) Profile() termenv.Profile {
	switch s.Color {
	case ColorAlways:
		return termenv.ANSI256
	case ColorNever:
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}
