// Package config provides viper-backed settings for cmd/sqltok, bound to
// pflag flags. It is a deliberately simplified adaptation of
// multigres-multigres/go/viperutil's typed Value[T]/Registry pattern: that
// package splits a "static" registry from a file-watched "dynamic" one so
// long-running servers can hot-reload config. sqltok is a single-shot CLI,
// not a server, so that split (and its background watch goroutine) has no
// analogue here — see DESIGN.md. What is kept is the shape that matters for
// a CLI: a typed accessor per setting, with a default, an env var, and a
// flag all wired through one registration call.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Value is a typed, named configuration setting backed by a *viper.Viper.
type Value[T any] struct {
	v       *viper.Viper
	key     string
	get     func(v *viper.Viper, key string) T
	defVal  T
}

// Get returns the current value: flag, if set, else env var, else config
// file, else the default — viper's own precedence order.
func (val Value[T]) Get() T { return val.get(val.v, val.key) }

// Default returns the value's zero-config default.
func (val Value[T]) Default() T { return val.defVal }

// Registry holds one *viper.Viper for a single cmd/sqltok invocation.
type Registry struct {
	v *viper.Viper
}

// New returns an empty Registry.
func New() *Registry {
	v := viper.New()
	v.SetEnvPrefix("SQLTOK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	return &Registry{v: v}
}

// String registers a string setting named key, with the given default and
// flag name, and binds it to fs. Call after fs.Parse has not yet happened;
// BindPFlag reads the flag lazily on Get.
func (r *Registry) String(fs *pflag.FlagSet, key, flagName, def, usage string) Value[string] {
	fs.String(flagName, def, usage)
	_ = r.v.BindPFlag(key, fs.Lookup(flagName))
	r.v.SetDefault(key, def)
	return Value[string]{v: r.v, key: key, defVal: def, get: (*viper.Viper).GetString}
}

// Bool registers a bool setting named key.
func (r *Registry) Bool(fs *pflag.FlagSet, key, flagName string, def bool, usage string) Value[bool] {
	fs.Bool(flagName, def, usage)
	_ = r.v.BindPFlag(key, fs.Lookup(flagName))
	r.v.SetDefault(key, def)
	return Value[bool]{v: r.v, key: key, defVal: def, get: (*viper.Viper).GetBool}
}

// LoadFile reads the config file at path (if non-empty) into the
// registry. An empty path is a no-op; a path that does not exist, or a
// file that cannot be read or parsed, is an error.
func (r *Registry) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	r.v.SetConfigFile(path)
	if err := r.v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return nil
}
