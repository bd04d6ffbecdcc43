package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"apod-wallpaper/wallpaper/modes"
)

const (
	DefaultEndpoint   = "https://api.nasa.gov/planetary/apod"
	DefaultFilename   = "apod.jpg"
	DefaultConfigFile = "apod-wallpaper.yaml"
	DefaultEnvFile    = ".env"
)

// ErrMissingAPIKey is returned when APOD_KEY is absent or empty.
var ErrMissingAPIKey = errors.New("APOD_KEY must be set in the environment")

type Config struct {
	APIKey     string
	Endpoint   string
	PictureDir string
	Filename   string
	FillMode   modes.FillStyle
	// Timeout bounds each HTTP request. Zero means no timeout.
	Timeout time.Duration
	Debug   bool
}

// Destination is the fixed path every run writes the picture to.
func (c *Config) Destination() string {
	return filepath.Join(c.PictureDir, c.Filename)
}

// fileConfig mirrors the optional YAML file. Every key may be omitted.
//
// Example:
//
//	endpoint: https://api.nasa.gov/planetary/apod
//	picture_dir: /home/me/Pictures/apod
//	filename: apod.jpg
//	fill_mode: zoom
//	timeout: 30s
type fileConfig struct {
	Endpoint   string `yaml:"endpoint"`
	PictureDir string `yaml:"picture_dir"`
	Filename   string `yaml:"filename"`
	FillMode   string `yaml:"fill_mode"`
	Timeout    string `yaml:"timeout"`
}

// Load assembles the run configuration. Values come from, in increasing priority:
// built-in defaults, the YAML file named by APOD_CONFIG, a .env file in the
// working directory, and the process environment.
func Load() (*Config, error) {
	// A missing .env is fine; variables already in the environment are not overridden.
	_ = godotenv.Load(DefaultEnvFile)

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APOD_CONFIG", DefaultConfigFile)

	file, err := loadFile(v.GetString("APOD_CONFIG"))
	if err != nil {
		return nil, err
	}

	v.SetDefault("APOD_ENDPOINT", firstNonEmpty(file.Endpoint, DefaultEndpoint))
	v.SetDefault("APOD_PICTURE_DIR", firstNonEmpty(file.PictureDir, xdg.UserDirs.Pictures))
	v.SetDefault("APOD_FILENAME", firstNonEmpty(file.Filename, DefaultFilename))
	v.SetDefault("APOD_FILL_MODE", file.FillMode)
	v.SetDefault("APOD_TIMEOUT", firstNonEmpty(file.Timeout, "0"))
	v.SetDefault("APOD_DEBUG", false)

	key := v.GetString("APOD_KEY")
	if key == "" {
		return nil, ErrMissingAPIKey
	}

	fill, err := modes.Parse(v.GetString("APOD_FILL_MODE"))
	if err != nil {
		return nil, fmt.Errorf("APOD_FILL_MODE: %w", err)
	}

	timeout, err := time.ParseDuration(v.GetString("APOD_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("APOD_TIMEOUT: %w", err)
	}

	pictureDir := v.GetString("APOD_PICTURE_DIR")
	if pictureDir == "" {
		return nil, errors.New("could not find picture directory")
	}

	return &Config{
		APIKey:     key,
		Endpoint:   v.GetString("APOD_ENDPOINT"),
		PictureDir: pictureDir,
		Filename:   v.GetString("APOD_FILENAME"),
		FillMode:   fill,
		Timeout:    timeout,
		Debug:      v.GetBool("APOD_DEBUG"),
	}, nil
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fc, nil
	}
	if err != nil {
		return fc, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
