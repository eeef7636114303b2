package pkgconfig

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to upper-cased keys when reading the environment,
// with dots replaced by underscores (log.level -> ULIDGEN_LOG_LEVEL).
const EnvPrefix = "ULIDGEN"

// Config reads configuration values by dotted key.
type Config interface {
	GetInt(key string) int64
	GetBool(key string) bool
	GetString(key string) string
	Set(key string, value any)
	Close() error
}

// Defaults holds the built-in value of every key ulidgen reads.
//
//nolint:gochecknoglobals // read-only defaults table
var Defaults = map[string]any{
	"log.level":      "warn",
	"output.format":  "text",
	"new.count":      1,
	"new.monotonic":  false,
	"new.encoding":   "text",
	"stress.workers": 8,
	"stress.count":   10000,
}

// Viper is a Config implementation backed by github.com/spf13/viper.
type Viper struct {
	v *viper.Viper
}

// NewViper loads configuration from pathFile, which may be empty to rely on
// defaults and environment only.
//
// The config file type is inferred by Viper from the filename extension.
func NewViper(pathFile string) (*Viper, error) {
	v := viper.New()

	for key, value := range Defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if pathFile != "" {
		v.SetConfigFile(pathFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", pathFile, err)
		}
	}

	return &Viper{v: v}, nil
}

// GetInt returns the value for key as int64.
func (vc *Viper) GetInt(key string) int64 {
	return vc.v.GetInt64(key)
}

// GetBool returns the value for key as bool.
func (vc *Viper) GetBool(key string) bool {
	return vc.v.GetBool(key)
}

// GetString returns the value for key as string.
func (vc *Viper) GetString(key string) string {
	return vc.v.GetString(key)
}

// Set overrides key with the highest priority.
func (vc *Viper) Set(key string, value any) {
	vc.v.Set(key, value)
}

// Close implements io.Closer for interface compatibility.
func (vc *Viper) Close() error {
	// No resources to close for Viper; this is just for interface completeness.
	return nil
}
