package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/swiftloan/swiftloan-cli/internal/adapters/letter"
	"github.com/swiftloan/swiftloan-cli/internal/adapters/llm/gemini"
	transcripttoml "github.com/swiftloan/swiftloan-cli/internal/adapters/transcript/toml"
	"github.com/swiftloan/swiftloan-cli/internal/ports"
)

const (
	configDirName = ".swiftloan"
	envPrefix     = "SWIFTLOAN"

	apiKeyKey        = "api_key"
	modelNameKey     = "model.name"
	strictUploadsKey = "chat.strict_uploads"
	letterDirKey     = "letter.output_dir"
)

type app struct {
	logger   *slog.Logger
	logLevel *slog.LevelVar

	modelName     string
	strictUploads bool

	newModelClient func(ctx context.Context) (ports.ModelClient, error)
	letterRenderer ports.LetterRenderer
	transcripts    *transcripttoml.Store
	now            func() time.Time
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, configDirName)

	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(configDir)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	cfg.SetDefault(modelNameKey, gemini.DefaultModel)
	cfg.SetDefault(strictUploadsKey, false)
	cfg.SetDefault(letterDirKey, filepath.Join(configDir, "letters"))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	logLevel := new(slog.LevelVar)
	logLevel.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	apiKey := cfg.GetString(apiKeyKey)
	modelName := cfg.GetString(modelNameKey)

	return &app{
		logger:        logger,
		logLevel:      logLevel,
		modelName:     modelName,
		strictUploads: cfg.GetBool(strictUploadsKey),
		newModelClient: func(ctx context.Context) (ports.ModelClient, error) {
			return gemini.NewClient(ctx, apiKey, modelName, logger)
		},
		letterRenderer: letter.NewRenderer(cfg.GetString(letterDirKey), ports.SystemClock{}),
		transcripts:    transcripttoml.NewStore(),
		now:            time.Now,
	}, nil
}
