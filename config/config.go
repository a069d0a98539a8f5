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
	setDefaults(viperConfig)
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

// Defaults reproduce the grid of the original comparison plot:
// theta 60..120 step 1, phi 30..60 step 5.
func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1000)
	v.SetDefault("window.height", 750)
	v.SetDefault("window.title", "Mirror angle transforms")

	v.SetDefault("sweep.theta.start", 60)
	v.SetDefault("sweep.theta.end", 120)
	v.SetDefault("sweep.theta.step", 1)
	v.SetDefault("sweep.phi.start", 30)
	v.SetDefault("sweep.phi.end", 60)
	v.SetDefault("sweep.phi.step", 5)

	v.SetDefault("output.file", "")
	v.SetDefault("output.dpi", 96)
	v.SetDefault("display.window", true)
	v.SetDefault("plot.marker_radius", 3)
	v.SetDefault("log.level", "info")
}

func (c *Config) GetWindowWidth() int {
	return c.getInt("WINDOW_WIDTH", "window.width")
}

func (c *Config) GetWindowHeight() int {
	return c.getInt("WINDOW_HEIGHT", "window.height")
}

func (c *Config) GetWindowTitle() string {
	return c.getString("WINDOW_TITLE", "window.title")
}

// GetMirrorThetaRange returns start, end and step of the mirror theta sweep in degrees.
func (c *Config) GetMirrorThetaRange() (start, end, step float64) {
	return c.getFloat("MIRROR_THETA_START", "sweep.theta.start"),
		c.getFloat("MIRROR_THETA_END", "sweep.theta.end"),
		c.getFloat("MIRROR_THETA_STEP", "sweep.theta.step")
}

// GetMirrorPhiRange returns start, end and step of the mirror phi sweep in degrees.
func (c *Config) GetMirrorPhiRange() (start, end, step float64) {
	return c.getFloat("MIRROR_PHI_START", "sweep.phi.start"),
		c.getFloat("MIRROR_PHI_END", "sweep.phi.end"),
		c.getFloat("MIRROR_PHI_STEP", "sweep.phi.step")
}

// GetOutputFile is where the chart is exported; empty disables export.
func (c *Config) GetOutputFile() string {
	return c.getString("OUTPUT_FILE", "output.file")
}

func (c *Config) GetOutputDPI() int {
	return c.getInt("OUTPUT_DPI", "output.dpi")
}

func (c *Config) GetShowWindow() bool {
	if c.config.IsSet("SHOW_WINDOW") {
		return c.config.GetBool("SHOW_WINDOW")
	}
	return c.config.GetBool("display.window")
}

func (c *Config) GetMarkerRadius() float64 {
	return c.getFloat("MARKER_RADIUS", "plot.marker_radius")
}

func (c *Config) GetLogLevel() string {
	return c.getString("LOG_LEVEL", "log.level")
}

// Environment variables win over the config file, as long as they are set.
func (c *Config) getInt(envKey, fileKey string) int {
	if c.config.IsSet(envKey) {
		return c.config.GetInt(envKey)
	}
	return c.config.GetInt(fileKey)
}

func (c *Config) getFloat(envKey, fileKey string) float64 {
	if c.config.IsSet(envKey) {
		return c.config.GetFloat64(envKey)
	}
	return c.config.GetFloat64(fileKey)
}

func (c *Config) getString(envKey, fileKey string) string {
	value := c.config.GetString(envKey)
	if len(value) == 0 {
		value = c.config.GetString(fileKey)
	}
	return value
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
		slog.Warn("failed to find config file within config directory, will use defaults and environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
