// Package config loads and validates device profiles. A profile names
// the states a device exposes and the commands peers may send; lw serve
// turns it into a running protocol engine.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	TransportUnix = "unix"
	TransportTCP  = "tcp"

	KindInt   = "int"
	KindFloat = "float"

	// DefaultBufReserve pre-sizes the engine input buffer.
	DefaultBufReserve = 150
)

// Config is a device profile.
type Config struct {
	Name       string          `toml:"name"`
	Listen     string          `toml:"listen"`
	Transport  string          `toml:"transport"`
	Delimiter  string          `toml:"delimiter"`
	LogPath    string          `toml:"log_path"`
	BufReserve int             `toml:"buf_reserve"`
	States     []StateConfig   `toml:"states"`
	Commands   []CommandConfig `toml:"commands"`
}

// StateConfig declares one named exchange state.
type StateConfig struct {
	Name string   `toml:"name"`
	Kind string   `toml:"kind"`
	Min  *float64 `toml:"min"`
	Max  *float64 `toml:"max"`
}

// CommandConfig declares one command qualifier and its arguments.
type CommandConfig struct {
	Qualifier string      `toml:"qualifier"`
	Args      []ArgConfig `toml:"args"`
}

// ArgConfig declares one command argument. When State names a declared
// state, applying the argument writes through that state and the kind
// defaults to the state's kind.
type ArgConfig struct {
	Name     string   `toml:"name"`
	State    string   `toml:"state"`
	Kind     string   `toml:"kind"`
	Optional bool     `toml:"optional"`
	Min      *float64 `toml:"min"`
	Max      *float64 `toml:"max"`
}

// Default returns a profile serving on the state-dir unix socket with no
// states or commands beyond the built-ins.
func Default() *Config {
	stateDir := DefaultStateDir()
	return &Config{
		Name:       "linewire",
		Listen:     filepath.Join(stateDir, "linewire.sock"),
		Transport:  TransportUnix,
		Delimiter:  "\n",
		LogPath:    filepath.Join(stateDir, "linewire.log"),
		BufReserve: DefaultBufReserve,
	}
}

// Load reads a profile from a TOML file, filling unset fields from
// Default.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	cfg := Default()
	if err := toml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Listen == "" {
		return errors.New("listen address is required")
	}
	if c.Transport != TransportUnix && c.Transport != TransportTCP {
		return fmt.Errorf("invalid transport: %s", c.Transport)
	}
	if len(c.Delimiter) != 1 {
		return errors.New("delimiter must be a single character")
	}
	if c.BufReserve < 0 {
		return errors.New("buf_reserve must not be negative")
	}

	seenStates := make(map[string]bool, len(c.States))
	for _, s := range c.States {
		if s.Name == "" {
			return errors.New("state name is required")
		}
		if seenStates[s.Name] {
			return fmt.Errorf("duplicate state: %s", s.Name)
		}
		seenStates[s.Name] = true
		if s.Kind != KindInt && s.Kind != KindFloat {
			return fmt.Errorf("state %s: invalid kind: %s", s.Name, s.Kind)
		}
		if s.Min != nil && s.Max != nil && *s.Min > *s.Max {
			return fmt.Errorf("state %s: min exceeds max", s.Name)
		}
	}

	seenCommands := make(map[string]bool, len(c.Commands))
	for _, cmd := range c.Commands {
		if cmd.Qualifier == "" {
			return errors.New("command qualifier is required")
		}
		if seenCommands[cmd.Qualifier] {
			return fmt.Errorf("duplicate command: %s", cmd.Qualifier)
		}
		seenCommands[cmd.Qualifier] = true

		seenArgs := make(map[string]bool, len(cmd.Args))
		for _, arg := range cmd.Args {
			if arg.Name == "" {
				return fmt.Errorf("command %s: argument name is required", cmd.Qualifier)
			}
			if seenArgs[arg.Name] {
				return fmt.Errorf("command %s: duplicate argument: %s", cmd.Qualifier, arg.Name)
			}
			seenArgs[arg.Name] = true
			if arg.State != "" && !seenStates[arg.State] {
				return fmt.Errorf("command %s: argument %s references unknown state: %s",
					cmd.Qualifier, arg.Name, arg.State)
			}
			if arg.Kind != "" && arg.Kind != KindInt && arg.Kind != KindFloat {
				return fmt.Errorf("command %s: argument %s: invalid kind: %s",
					cmd.Qualifier, arg.Name, arg.Kind)
			}
			if arg.State == "" && arg.Kind == "" {
				return fmt.Errorf("command %s: argument %s needs a kind or a state",
					cmd.Qualifier, arg.Name)
			}
		}
	}

	return nil
}

// ArgKind resolves an argument's effective kind, falling back to the
// bound state's kind.
func (c *Config) ArgKind(arg ArgConfig) string {
	if arg.Kind != "" {
		return arg.Kind
	}
	for _, s := range c.States {
		if s.Name == arg.State {
			return s.Kind
		}
	}
	return KindFloat
}

// DefaultProfilePath returns the profile the CLI uses when -p is not
// given.
func DefaultProfilePath() string {
	return filepath.Join(DefaultStateDir(), "profile.toml")
}

// DefaultStateDir returns the XDG-compliant state directory.
// Precedence: LINEWIRE_STATE_DIR > XDG_STATE_HOME/linewire > ~/.local/state/linewire
func DefaultStateDir() string {
	if d := os.Getenv("LINEWIRE_STATE_DIR"); d != "" {
		return d
	}
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "linewire")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".local", "state", "linewire")
	}
	return filepath.Join(home, ".local", "state", "linewire")
}

// Starter is a commented example profile written by "lw init".
const Starter = `# linewire device profile
name = "thermostat"
listen = "127.0.0.1:7070"
transport = "tcp"

[[states]]
name = "setpoint"
kind = "float"
min = 5.0
max = 35.0

[[states]]
name = "fan"
kind = "int"
min = 0
max = 3

[[commands]]
qualifier = "set"

[[commands.args]]
name = "setpoint"
state = "setpoint"
optional = true

[[commands.args]]
name = "fan"
state = "fan"
optional = true
`
