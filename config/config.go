package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

// Defaults reproduce the fixed constants of the visualization: a 45 degree
// counter-clockwise rotation applied to the unit vector pointing right.
const (
	defaultAngleDegrees = 45.0
	defaultVectorX      = 1.0
	defaultVectorY      = 0.0
	defaultOutputFile   = "rotation.png"
	defaultImageSize    = 1000
	defaultWindowWidth  = 1000
	defaultWindowHeight = 1000
	defaultWindowTitle  = "2D Rotation Matrix"
)

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	viperConfig.SetDefault("rotation.angledegrees", defaultAngleDegrees)
	viperConfig.SetDefault("rotation.vectorx", defaultVectorX)
	viperConfig.SetDefault("rotation.vectory", defaultVectorY)
	viperConfig.SetDefault("output.filename", defaultOutputFile)
	viperConfig.SetDefault("output.imagesize", defaultImageSize)
	viperConfig.SetDefault("window.width", defaultWindowWidth)
	viperConfig.SetDefault("window.height", defaultWindowHeight)
	viperConfig.SetDefault("window.title", defaultWindowTitle)

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func (c *Config) GetAngleDegrees() float64 {
	if c.config.IsSet("ROTATION_ANGLE_DEGREES") {
		return c.config.GetFloat64("ROTATION_ANGLE_DEGREES")
	}

	return c.config.GetFloat64("rotation.angledegrees")
}

func (c *Config) GetVectorX() float64 {
	if c.config.IsSet("ROTATION_VECTOR_X") {
		return c.config.GetFloat64("ROTATION_VECTOR_X")
	}

	return c.config.GetFloat64("rotation.vectorx")
}

func (c *Config) GetVectorY() float64 {
	if c.config.IsSet("ROTATION_VECTOR_Y") {
		return c.config.GetFloat64("ROTATION_VECTOR_Y")
	}

	return c.config.GetFloat64("rotation.vectory")
}

func (c *Config) GetOutputFilename() string {
	outputFilename := c.config.GetString("OUTPUT_FILENAME")
	if len(outputFilename) == 0 {
		outputFilename = c.config.GetString("output.filename")
	}

	return outputFilename
}

func (c *Config) GetImageSize() int {
	imageSize := c.config.GetInt("OUTPUT_IMAGE_SIZE")
	if imageSize == 0 {
		imageSize = c.config.GetInt("output.imagesize")
	}

	return imageSize
}

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}

	return windowTitle
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
