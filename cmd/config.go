// Package cmd provides the CLI surface: the run, show, and status verbs
// wrapping the internal/engine, internal/session, and internal/report
// packages, with cobra for the command tree and viper for config/env/flag
// layering.
package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configBaseName   = "mutant"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	sessionFlagName     = "session"
	testCmdFlagName     = "test-cmd"
	functionFlagName    = "function"
	timeoutMultFlagName = "timeout-mult"
	jsonFlagName        = "json"
	quietFlagName       = "quiet"
	inPlaceFlagName     = "in-place"

	sessionConfigKey     = "run.session"
	testCmdConfigKey     = "run.test_cmd"
	timeoutMultConfigKey = "run.timeout_mult"

	defaultSession     = "default"
	defaultTestCmd     = "pytest"
	defaultTimeoutMult = 3

	envPrefix = "MUTANT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".mutant.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values
// feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(sessionConfigKey, defaultSession)
	viper.SetDefault(testCmdConfigKey, defaultTestCmd)
	viper.SetDefault(timeoutMultConfigKey, defaultTimeoutMult)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	// The config file is optional; a missing or unreadable mutant.yaml
	// leaves the defaults and environment in effect.
	_ = viper.ReadInConfig()
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

	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger builds the process-global slog logger, writing through
// lumberjack for rotation.
func configureLogger(verbose bool) *slog.Logger {
	logPath := viper.GetString(logFilenameKey)
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

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{Level: logLevel})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)

	return globalLogger
}
