// Package config loads user-supplied SCPI command tables from
// scpi.yml/scpi.yaml, letting the CLI resolve instrument-specific
// commands on top of the built-in IEEE 488.2 set.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/scpi-lang/scpi/runtime/command"
	"github.com/scpi-lang/scpi/runtime/registry"
)

// Config is the parsed scpi.yml content.
type Config struct {
	Instrument string          `mapstructure:"instrument"`
	Builtin    bool            `mapstructure:"builtin"` // include the IEEE 488.2 table
	Table      []CommandConfig `mapstructure:"table"`
}

// CommandConfig declares one command of a user table.
type CommandConfig struct {
	Expression string `mapstructure:"expression"`
	Type       string `mapstructure:"type"`   // int, float, str, bool, int-array, float-array, str-array, func, idn, err, err-array
	Access     string `mapstructure:"access"` // rw, ro, wo
	Doc        string `mapstructure:"doc"`
}

// Load reads scpi.yml or scpi.yaml from the current directory. A missing
// file is not an error: the defaults describe an empty table with the
// built-in command set enabled.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("builtin", true)

	v.SetConfigName("scpi")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("scpi")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file, defaults apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// Registry builds the command registry described by the config: the
// built-in IEEE 488.2 set (unless disabled) extended with the user
// table, in declaration order.
func (c *Config) Registry() (*registry.Registry, error) {
	var r *registry.Registry
	if c.Builtin {
		r = registry.NewIEEE4882()
	} else {
		r = registry.New()
	}

	for _, cc := range c.Table {
		cmd, err := cc.Command()
		if err != nil {
			return nil, err
		}
		if _, err := r.Set(cc.Expression, cmd); err != nil {
			return nil, fmt.Errorf("invalid expression %q: %w", cc.Expression, err)
		}
	}

	return r, nil
}

// Command builds the command metadata for one table line.
func (cc CommandConfig) Command() (*command.Command, error) {
	access := strings.ToLower(cc.Access)
	if access == "" {
		access = "rw"
	}

	switch strings.ToLower(cc.Type) {
	case "func", "":
		return command.Func(cc.Doc), nil
	case "idn":
		cmd := command.IDN()
		if cc.Doc != "" {
			cmd.Doc = cc.Doc
		}
		return cmd, nil
	case "err":
		return command.Err(cc.Doc), nil
	case "err-array":
		return command.ErrArray(cc.Doc), nil
	case "int":
		return byAccess(access, cc, command.Int, command.IntRO, command.IntWO)
	case "float":
		return byAccess(access, cc, command.Float, command.FloatRO, command.FloatWO)
	case "str", "string":
		return byAccess(access, cc, command.Str, command.StrRO, command.StrWO)
	case "bool", "onoff", "on-off":
		return byAccess(access, cc, command.OnOff, command.OnOffRO, command.OnOffWO)
	case "int-array":
		return byAccess(access, cc, nil, command.IntArrayRO, nil)
	case "float-array":
		return byAccess(access, cc, nil, command.FloatArrayRO, nil)
	case "str-array":
		return byAccess(access, cc, command.StrArray, command.StrArrayRO, nil)
	}
	return nil, fmt.Errorf("unknown command type %q for %q", cc.Type, cc.Expression)
}

func byAccess(access string, cc CommandConfig, rw, ro, wo func(string) *command.Command) (*command.Command, error) {
	var ctor func(string) *command.Command
	switch access {
	case "rw":
		ctor = rw
	case "ro":
		ctor = ro
	case "wo":
		ctor = wo
	default:
		return nil, fmt.Errorf("unknown access %q for %q", access, cc.Expression)
	}
	if ctor == nil {
		return nil, fmt.Errorf("type %q does not support access %q (%s)", cc.Type, access, cc.Expression)
	}
	return ctor(cc.Doc), nil
}
