// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/huewheel/huewheel/constant"
	"github.com/huewheel/huewheel/filesystem"
	"github.com/huewheel/huewheel/where"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvKeyReplacer normalizes configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// DotEnv is the name of the optional dotenv file read from the config directory.
const DotEnv = ".env"

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	if err := loadDotEnv(); err != nil {
		return err
	}

	viper.SetConfigName(constant.Huewheel)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Huewheel)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// loadDotEnv exports the variables of <config>/.env into the process environment.
// Variables that are already set win over the file.
func loadDotEnv() error {
	path := filepath.Join(where.Config(), DotEnv)

	file, err := filesystem.API().Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open %s: %w", DotEnv, err)
	}
	defer file.Close()

	vars, err := godotenv.Parse(file)
	if err != nil {
		return fmt.Errorf("parse %s: %w", DotEnv, err)
	}

	for name, value := range vars {
		if _, ok := lookupEnv(name); ok {
			continue
		}
		if err := setEnv(name, value); err != nil {
			return err
		}
	}

	return nil
}
