package config

import (
	"strings"

	"github.com/rendau/rester/resterTools"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "RESTER"

type Conf struct {
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	Debug       bool   `mapstructure:"DEBUG"`
	AppPath     string `mapstructure:"APP_PATH"`
	LogFilePath string `mapstructure:"LOG_FILE_PATH"`
}

func defaults() Conf {
	return Conf{
		LogLevel:    "info",
		AppPath:     ".",
		LogFilePath: "rester_api_logs.log",
	}
}

// Load reads the configuration from, in increasing priority: defaults,
// the optional config file, RESTER_* env variables and set flags.
// flags maps config keys to flag names.
func Load(confPath string, fs *pflag.FlagSet, flags map[string]string) (*Conf, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resterTools.SetViperDefaultsFromObj(v, defaults())

	if confPath != "" {
		v.SetConfigFile(confPath)

		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	if fs != nil {
		for key, name := range flags {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	conf := &Conf{}

	if err := v.Unmarshal(conf); err != nil {
		return nil, err
	}

	return conf, nil
}
