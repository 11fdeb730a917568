package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config задаёт маркер выражения и префикс комментария.
type Config struct {
	Trigger string `yaml:"trigger" toml:"trigger"`
	Prefix  string `yaml:"prefix" toml:"prefix"`
}

func defaultConfig() *Config {
	return &Config{
		Trigger: defaultTrigger,
		Prefix:  defaultPrefix,
	}
}

// loadConfig читает конфиг поверх значений по умолчанию.
// Без явного пути никакие файлы не читаются.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ResourceError{Op: "не удалось прочитать конфиг", Path: path, Err: err}
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, config)
	} else {
		err = yaml.Unmarshal(data, config)
	}
	if err != nil {
		return nil, &ResourceError{Op: "ошибка разбора конфига", Path: path, Err: err}
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Trigger == "" {
		return fmt.Errorf("%w: пустой маркер выражения", ErrInvalidConfig)
	}
	if utf8.RuneCountInString(c.Prefix) != 2 {
		return fmt.Errorf("%w: префикс комментария должен состоять из двух символов, получено %q", ErrInvalidConfig, c.Prefix)
	}
	return nil
}
