package cmd

import (
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"bvi.dev/pkg/bvi/internal/adapter"
	"bvi.dev/pkg/bvi/internal/domain"
	m "bvi.dev/pkg/bvi/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "bvi"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	verboseFlagName   = "verbose"
	logFileFlagName   = "log-file"
	noTUIFlagName     = "no-tui"
	nameFlagName      = "name"
	frameworkFlagName = "framework"
	featureFlagName   = "feature"

	noTUIConfigKey = "ui.no_tui"

	registryURLKey     = "registry.url"
	registryTimeoutKey = "registry.timeout"
	scaffoldVueKey     = "scaffold.vue"
	scaffoldNuxtKey    = "scaffold.nuxt"
	cleanVueKey        = "clean.vue"
	cleanNuxtKey       = "clean.nuxt"

	defaultRegistryTimeout = 30 * time.Second
	defaultScaffoldVue     = "npm create vue@latest"
	defaultScaffoldNuxt    = "npm create nuxt"
	defaultNoTUI           = false

	envPrefix = "BVI"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".bvi.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	// Values from .env become regular environment variables for viper.
	_ = godotenv.Load()

	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(noTUIConfigKey, defaultNoTUI)
	viper.SetDefault(registryURLKey, adapter.DefaultRegistryURL)
	viper.SetDefault(registryTimeoutKey, int64(defaultRegistryTimeout.Seconds()))
	viper.SetDefault(scaffoldVueKey, defaultScaffoldVue)
	viper.SetDefault(scaffoldNuxtKey, defaultScaffoldNuxt)
	viper.SetDefault(cleanVueKey, domain.DefaultCleanPatterns[m.FrameworkVue])
	viper.SetDefault(cleanNuxtKey, domain.DefaultCleanPatterns[m.FrameworkNuxt])

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	// Without a config file the defaults and environment still apply.
	_ = viper.ReadInConfig()
}

// registryTimeout reads registry.timeout as seconds.
func registryTimeout() time.Duration {
	seconds := viper.GetInt64(registryTimeoutKey)
	if seconds <= 0 {
		return 0
	}

	return time.Duration(seconds) * time.Second
}

func scaffoldCommands() map[m.Framework]string {
	return map[m.Framework]string{
		m.FrameworkVue:  viper.GetString(scaffoldVueKey),
		m.FrameworkNuxt: viper.GetString(scaffoldNuxtKey),
	}
}

func cleanPatternOptions() []domain.ConfiguratorOption {
	return []domain.ConfiguratorOption{
		domain.WithCleanPatterns(m.FrameworkVue, viper.GetStringSlice(cleanVueKey)),
		domain.WithCleanPatterns(m.FrameworkNuxt, viper.GetStringSlice(cleanNuxtKey)),
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels are accepted too (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at
// Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
