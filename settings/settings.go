package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oomph-ac/puppeteer/game"
	"github.com/oomph-ac/puppeteer/oerror"
	"github.com/oomph-ac/puppeteer/puppet"
	"github.com/oomph-ac/puppeteer/simulation"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings contains everything that can be configured for a simulation.
type Settings struct {
	Simulation Simulation `toml:"simulation" yaml:"simulation"`
	Puppet     Puppet     `toml:"puppet" yaml:"puppet"`
	Puppeteer  Puppeteer  `toml:"puppeteer" yaml:"puppeteer"`
	Logging    Logging    `toml:"logging" yaml:"logging"`
}

// Simulation configures the simulator and its clock.
type Simulation struct {
	// TickRate is the amount of ticks simulated per second.
	TickRate int `toml:"tick_rate" yaml:"tick_rate"`
	// MaxBounces is the amount of surfaces a single motion may be redirected by.
	MaxBounces      int     `toml:"max_bounces" yaml:"max_bounces"`
	VerticalEpsilon float32 `toml:"vertical_epsilon" yaml:"vertical_epsilon"`
}

// Puppet configures the collider and geometry parameters of puppets.
type Puppet struct {
	CapsuleRadius    float32 `toml:"capsule_radius" yaml:"capsule_radius"`
	CapsuleLength    float32 `toml:"capsule_length" yaml:"capsule_length"`
	SkinThickness    float32 `toml:"skin_thickness" yaml:"skin_thickness"`
	StepHeight       float32 `toml:"step_height" yaml:"step_height"`
	StepMoveDistance float32 `toml:"step_move_distance" yaml:"step_move_distance"`
	// MaxSlopeAngle is in degrees.
	MaxSlopeAngle float32 `toml:"max_slope_angle" yaml:"max_slope_angle"`
}

// Puppeteer configures the locomotion profile of puppets. Rates are per second, timers are in
// milliseconds.
type Puppeteer struct {
	Acceleration               float32 `toml:"acceleration" yaml:"acceleration"`
	Deceleration               float32 `toml:"deceleration" yaml:"deceleration"`
	TurnSpeed                  float32 `toml:"turn_speed" yaml:"turn_speed"`
	AirAcceleration            float32 `toml:"air_acceleration" yaml:"air_acceleration"`
	AirDeceleration            float32 `toml:"air_deceleration" yaml:"air_deceleration"`
	AirTurnSpeed               float32 `toml:"air_turn_speed" yaml:"air_turn_speed"`
	MaxSpeed                   float32 `toml:"max_speed" yaml:"max_speed"`
	Gravity                    float32 `toml:"gravity" yaml:"gravity"`
	JumpHeight                 float32 `toml:"jump_height" yaml:"jump_height"`
	TimeToJumpApex             float32 `toml:"time_to_jump_apex" yaml:"time_to_jump_apex"`
	JumpCutoff                 float32 `toml:"jump_cutoff" yaml:"jump_cutoff"`
	DownwardMovementMultiplier float32 `toml:"downward_movement_multiplier" yaml:"downward_movement_multiplier"`
	MaxAirJumps                uint32  `toml:"max_air_jumps" yaml:"max_air_jumps"`
	CoyoteTimeMs               int64   `toml:"coyote_time_ms" yaml:"coyote_time_ms"`
	JumpBufferMs               int64   `toml:"jump_buffer_ms" yaml:"jump_buffer_ms"`
}

// Logging configures the logger.
type Logging struct {
	// Level is a logrus level name, such as "info" or "debug".
	Level string `toml:"level" yaml:"level"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	settings := Settings{}
	settings.Simulation.TickRate = game.DefaultTickRate
	settings.Simulation.MaxBounces = game.DefaultMaxBounces
	settings.Simulation.VerticalEpsilon = game.DefaultVerticalEpsilon

	settings.Puppet.CapsuleRadius = game.DefaultCapsuleRadius
	settings.Puppet.CapsuleLength = game.DefaultCapsuleLength
	settings.Puppet.SkinThickness = game.DefaultSkinThickness
	settings.Puppet.StepHeight = game.DefaultStepHeight
	settings.Puppet.StepMoveDistance = game.DefaultStepMoveDistance
	settings.Puppet.MaxSlopeAngle = game.DefaultMaxSlopeAngle

	profile := puppet.DefaultProfile()
	settings.Puppeteer = Puppeteer{
		Acceleration:               profile.Acceleration,
		Deceleration:               profile.Deceleration,
		TurnSpeed:                  profile.TurnSpeed,
		AirAcceleration:            profile.AirAcceleration,
		AirDeceleration:            profile.AirDeceleration,
		AirTurnSpeed:               profile.AirTurnSpeed,
		MaxSpeed:                   profile.MaxSpeed,
		Gravity:                    profile.Gravity,
		JumpHeight:                 profile.JumpHeight,
		TimeToJumpApex:             profile.TimeToJumpApex,
		JumpCutoff:                 profile.JumpCutoff,
		DownwardMovementMultiplier: profile.DownwardMovementMultiplier,
		MaxAirJumps:                profile.MaxAirJumps,
		CoyoteTimeMs:               profile.CoyoteTime.Milliseconds(),
		JumpBufferMs:               profile.JumpBuffer.Milliseconds(),
	}

	settings.Logging.Level = logrus.InfoLevel.String()
	return settings
}

// SaveDefault will create and save the default settings file, encoded according to the extension of
// the path. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return oerror.New(game.ErrorSettingsExist, path)
	}
	data, err := encode(path, DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not
// exist. Values missing from the file keep their defaults.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, oerror.New(game.ErrorSettingsMissing, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %w", err)
	}

	settings := DefaultSettings()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &settings)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &settings)
	default:
		return Settings{}, oerror.New(game.ErrorSettingsFormat, ext)
	}
	if err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	return settings, nil
}

func encode(path string, s Settings) ([]byte, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return toml.Marshal(s)
	case ".yaml", ".yml":
		return yaml.Marshal(s)
	default:
		return nil, oerror.New(game.ErrorSettingsFormat, ext)
	}
}

// Options returns the simulator options described by the settings.
func (s Settings) Options() simulation.Options {
	return simulation.Options{
		MaxBounces:      s.Simulation.MaxBounces,
		VerticalEpsilon: s.Simulation.VerticalEpsilon,
	}
}

// Capsule returns the puppet collider described by the settings.
func (s Settings) Capsule() game.Capsule {
	return game.Capsule{Radius: s.Puppet.CapsuleRadius, Length: s.Puppet.CapsuleLength}
}

// Params returns the puppet geometry parameters described by the settings.
func (s Settings) Params() puppet.Params {
	return puppet.Params{
		SkinThickness:    s.Puppet.SkinThickness,
		StepMoveDistance: s.Puppet.StepMoveDistance,
		StepHeight:       s.Puppet.StepHeight,
		MaxSlopeAngle:    s.Puppet.MaxSlopeAngle,
	}
}

// Profile returns the locomotion profile described by the settings.
func (s Settings) Profile() puppet.Profile {
	p := s.Puppeteer
	return puppet.Profile{
		Acceleration:               p.Acceleration,
		Deceleration:               p.Deceleration,
		TurnSpeed:                  p.TurnSpeed,
		AirAcceleration:            p.AirAcceleration,
		AirDeceleration:            p.AirDeceleration,
		AirTurnSpeed:               p.AirTurnSpeed,
		MaxSpeed:                   p.MaxSpeed,
		Gravity:                    p.Gravity,
		JumpHeight:                 p.JumpHeight,
		TimeToJumpApex:             p.TimeToJumpApex,
		JumpCutoff:                 p.JumpCutoff,
		DownwardMovementMultiplier: p.DownwardMovementMultiplier,
		MaxAirJumps:                p.MaxAirJumps,
		CoyoteTime:                 time.Duration(p.CoyoteTimeMs) * time.Millisecond,
		JumpBuffer:                 time.Duration(p.JumpBufferMs) * time.Millisecond,
	}
}

// LogLevel returns the configured logrus level.
func (s Settings) LogLevel() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(s.Logging.Level)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid log level: %w", err)
	}
	return lvl, nil
}
