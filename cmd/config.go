package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "torment"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	baseFlagName    = "base"
	sortFlagName    = "sort"
	formatFlagName  = "format"
	verboseFlagName = "verbose"

	baseConfigKey      = "discover.base"
	sortConfigKey      = "discover.sort"
	extensionConfigKey = "discover.extension"
	markerConfigKey    = "discover.package_marker"
	formatConfigKey    = "output.format"

	defaultBase      = "fixtures"
	defaultSort      = sortByName
	defaultExtension = ".go"
	defaultMarker    = "doc.go"
	defaultFormat    = "table"

	sortByName  = "name"
	sortByDepth = "depth"

	envPrefix = "TORMENT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".torment.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(baseConfigKey, defaultBase)
	viper.SetDefault(sortConfigKey, defaultSort)
	viper.SetDefault(extensionConfigKey, defaultExtension)
	viper.SetDefault(markerConfigKey, defaultMarker)
	viper.SetDefault(formatConfigKey, defaultFormat)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	readConfig()
}

// readConfig loads torment.yaml when present. A missing file is the normal
// case; anything else is reported and the defaults stay in effect.
func readConfig() {
	if err := viper.ReadInConfig(); err != nil && !isMissingConfig(err) {
		slog.Warn("failed to read config file", "file", viper.ConfigFileUsed(), "error", err)
	}
}

// isMissingConfig reports both search misses and, since SetConfigFile pins
// an explicit path, a plain not-exist error from opening it.
func isMissingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError

	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
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

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
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
