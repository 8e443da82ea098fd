package pkgconfig

import (
	"encoding/base64"
	"errors"
	"path"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. GOBRC_ENGINE_MAX_WORKERS.
const EnvPrefix = "GOBRC"

// Viper is a Config implementation backed by github.com/spf13/viper.
type Viper struct {
	v *viper.Viper
}

// NewViper loads configuration from pathFile on top of Defaults.
//
// A missing file is not an error, so the CLI works without any config on
// disk. The file type is inferred from the extension.
func NewViper(pathFile string) (*Viper, error) {
	v := viper.New()

	for key, value := range Defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if pathFile != "" {
		filename := path.Base(pathFile)
		configName := filename[:len(filename)-len(path.Ext(filename))]

		v.AddConfigPath(path.Dir(pathFile))
		v.SetConfigName(configName)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	return &Viper{v: v}, nil
}

// Set overrides key for the lifetime of this config, taking precedence over
// the file and the environment. CLI flags use it.
func (vc *Viper) Set(key string, value any) {
	vc.v.Set(key, value)
}

// GetInt returns the value for key as int64.
func (vc *Viper) GetInt(key string) int64 {
	return vc.v.GetInt64(key)
}

// GetBool returns the value for key as bool.
func (vc *Viper) GetBool(key string) bool {
	return vc.v.GetBool(key)
}

// GetFloat returns the value for key as float64.
func (vc *Viper) GetFloat(key string) float64 {
	return vc.v.GetFloat64(key)
}

// GetString returns the value for key as string.
func (vc *Viper) GetString(key string) string {
	return vc.v.GetString(key)
}

// GetBinary returns the value for key decoded from base64, or nil.
func (vc *Viper) GetBinary(key string) []byte {
	data, err := base64.StdEncoding.DecodeString(vc.v.GetString(key))
	if err != nil {
		return nil
	}

	return data
}

// GetArray returns the value for key split by commas.
func (vc *Viper) GetArray(key string) []string {
	raw := strings.TrimSpace(vc.v.GetString(key))
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// GetMap returns the value for key parsed from "k:v,k:v" pairs.
func (vc *Viper) GetMap(key string) map[string]string {
	m := make(map[string]string)

	for _, pair := range strings.Split(vc.v.GetString(key), ",") {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) == 2 {
			m[kv[0]] = kv[1]
		}
	}

	return m
}

// Close implements io.Closer for interface compatibility.
func (vc *Viper) Close() error {
	return nil
}
