package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Flarenzy/subnetter/internal/auth"
	"github.com/Flarenzy/subnetter/internal/domain"
	apihttp "github.com/Flarenzy/subnetter/internal/http"
)

const shutdownTimeout = 5 * time.Second

type Config struct {
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`

	AuthEnabled bool   `yaml:"auth_enabled"`
	Issuer      string `yaml:"auth_issuer"`
	Audience    string `yaml:"auth_audience"`
	JWKSURL     string `yaml:"auth_jwks_url"`

	// MaxSubnets caps the subnet count of a single request. Zero means no
	// limit.
	MaxSubnets     uint64     `yaml:"max_subnets"`
	DefaultWorkers int        `yaml:"default_workers"`
	Verify         bool       `yaml:"verify_partitions"`
	LogLevel       slog.Level `yaml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		Port:           "4040",
		ReadTimeout:    3 * time.Second,
		WriteTimeout:   3 * time.Second,
		MaxSubnets:     1 << 16,
		DefaultWorkers: 4,
		LogLevel:       slog.LevelInfo,
	}
}

// LoadConfig reads the YAML file named by SUBNETTER_CONFIG, if any, and then
// applies environment overrides.
func LoadConfig() (Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("SUBNETTER_CONFIG"); path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}

	if cfg.AuthEnabled && cfg.Issuer == "" {
		return Config{}, errors.New("AUTH_ENABLED requires AUTH_ISSUER")
	}
	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("PORT"); ok && v != "" {
		cfg.Port = v
	}
	if v, ok := lookup("AUTH_ISSUER"); ok {
		cfg.Issuer = v
	}
	if v, ok := lookup("AUTH_AUDIENCE"); ok {
		cfg.Audience = v
	}
	if v, ok := lookup("AUTH_JWKS_URL"); ok {
		cfg.JWKSURL = v
	}

	var err error
	if v, ok := lookup("READ_TIMEOUT"); ok {
		if cfg.ReadTimeout, err = time.ParseDuration(v); err != nil {
			return fmt.Errorf("READ_TIMEOUT: %w", err)
		}
	}
	if v, ok := lookup("WRITE_TIMEOUT"); ok {
		if cfg.WriteTimeout, err = time.ParseDuration(v); err != nil {
			return fmt.Errorf("WRITE_TIMEOUT: %w", err)
		}
	}
	if v, ok := lookup("AUTH_ENABLED"); ok {
		if cfg.AuthEnabled, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("AUTH_ENABLED: %w", err)
		}
	}
	if v, ok := lookup("VERIFY_PARTITIONS"); ok {
		if cfg.Verify, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("VERIFY_PARTITIONS: %w", err)
		}
	}
	if v, ok := lookup("MAX_SUBNETS"); ok {
		if cfg.MaxSubnets, err = strconv.ParseUint(v, 10, 64); err != nil {
			return fmt.Errorf("MAX_SUBNETS: %w", err)
		}
	}
	if v, ok := lookup("DEFAULT_WORKERS"); ok {
		if cfg.DefaultWorkers, err = domain.ParseWorkers(v); err != nil {
			return fmt.Errorf("DEFAULT_WORKERS: %w", err)
		}
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}
	return nil
}

func newAuthenticator(ctx context.Context, cfg Config) (auth.Authenticator, error) {
	return auth.NewKeycloakAuthenticator(ctx, auth.Config{
		Enabled:  cfg.AuthEnabled,
		Issuer:   cfg.Issuer,
		Audience: cfg.Audience,
		JWKSURL:  cfg.JWKSURL,
	})
}

func newLogger(cfg Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
}

func Run(ctx context.Context, cfg Config) error {
	listener, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
	}
	return Serve(ctx, cfg, listener)
}

// Serve runs the API on listener until ctx is done. Authentication is set up
// before the listener accepts anything.
func Serve(ctx context.Context, cfg Config, listener net.Listener) error {
	logger := newLogger(cfg)

	authenticator, err := newAuthenticator(ctx, cfg)
	if err != nil {
		return err
	}

	service := domain.NewLoggingPartitionService(logger, domain.NewPartitionService(domain.Options{
		MaxSubnets:     cfg.MaxSubnets,
		DefaultWorkers: cfg.DefaultWorkers,
		Verify:         cfg.Verify,
	}))

	api := apihttp.NewAPI(logger, service, service, authenticator)

	server := &http.Server{
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving api", "addr", listener.Addr().String(), "auth", authenticator != nil)
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
