package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pmajay/portal/internal/api"
	"github.com/pmajay/portal/internal/pkg/constants"
	"github.com/pmajay/portal/internal/pkg/logger"
	"github.com/pmajay/portal/internal/pkg/store"
	"github.com/pmajay/portal/internal/pkg/store/xpgx"
	"github.com/spf13/viper"
)

func main() {
	ctx := context.Background()

	initConfig(ctx)

	pool, err := xpgx.NewPool(ctx, viper.GetString(constants.ViperDatabaseDSN))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	apiService, err := api.NewAPIService(store.NewStore(pool))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := apiService.Shutdown(shutdownCtx); err != nil {
			logger.Errorf(ctx, "shutdown: %s", err.Error())
		}
	}()

	apiService.Serve(viper.GetString(constants.ViperListenAddr))
}

func initConfig(ctx context.Context) {
	viper.SetDefault(constants.ViperListenAddr, ":8080")
	viper.SetDefault(constants.ViperCORSOrigin, "http://localhost:3000")
	viper.SetDefault(constants.ViperDatabaseDSN, "postgres://localhost:5432/pmajay")
	viper.SetDefault(constants.ViperTokenTTL, "24h")
	viper.SetDefault(constants.ViperLGDDirectoryURL, "https://lgdirectory.gov.in/directory")

	viper.SetEnvPrefix("pmajay")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		logger.Warnf(ctx, "no config file, using env and defaults: %s", err.Error())
	}

	// Missing remote settings degrade map/boundary panels to their bundled
	// fallback data; that is logged, not fatal.
	if viper.GetString(constants.ViperRemoteBaseURL) == "" {
		logger.Warnf(ctx, "remote base URL not configured, boundary panels will serve fallback data")
	}
	if viper.GetString(constants.ViperRemoteAPIKey) == "" {
		logger.Warnf(ctx, "remote API key not configured")
	}
	if viper.GetString(constants.ViperSecretKey) == "" {
		logger.Warnf(ctx, "auth secret not configured, issued tokens will not survive restarts")
	}
}
