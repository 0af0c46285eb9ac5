package config

import (
	"os"

	"github.com/spf13/viper"
)

// loadEnvFiles merges KEY=VALUE files into v if they exist. Errors are
// ignored; real environment variables still win through AutomaticEnv.
func loadEnvFiles(v *viper.Viper, paths ...string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		v.SetConfigFile(path)
		v.SetConfigType("env")
		_ = v.MergeInConfig()
	}
}
