package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/harnstore/harn-cli/internal/adapters/api"
	chainclip "github.com/harnstore/harn-cli/internal/adapters/clipboard/chain"
	catalogrender "github.com/harnstore/harn-cli/internal/adapters/render/catalog"
	"github.com/harnstore/harn-cli/internal/adapters/snapshot"
	"github.com/harnstore/harn-cli/internal/application"
	"github.com/harnstore/harn-cli/internal/ports"
)

const (
	apiBaseURLKey     = "api.base_url"
	defaultAPIBaseURL = "https://harn-backend.onrender.com/api"
)

type app struct {
	service   *application.Service
	clipboard ports.Clipboard

	renderProducts      func([]application.ProductOverview, catalogrender.RenderOptions) (string, error)
	renderProductDetail func(application.ProductOverview, catalogrender.RenderOptions) (string, error)
	renderAccounts      func(application.AccountListing, catalogrender.RenderOptions) (string, error)
	renderAccountDetail func(application.AccountDetail, catalogrender.RenderOptions) (string, error)

	now func() time.Time
}

func wireApp() (*app, error) {
	// Best effort; running without a .env file is the normal case.
	_ = godotenv.Load()

	cfg := viper.New()
	cfg.SetDefault(apiBaseURLKey, defaultAPIBaseURL)

	store, err := snapshot.NewStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire snapshot store: %w", err)
	}

	source := api.NewClient(envOrDefault("HARN_API_BASE_URL", cfg.GetString(apiBaseURLKey)), http.DefaultClient)

	clipboard, err := chainclip.NewNativeFirstWithOSC52Fallback(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("wire clipboard chain: %w", err)
	}

	return &app{
		service:             application.NewService(source, store, clipboard, ports.SystemClock{}),
		clipboard:           clipboard,
		renderProducts:      catalogrender.RenderProducts,
		renderProductDetail: catalogrender.RenderProductDetail,
		renderAccounts:      catalogrender.RenderAccounts,
		renderAccountDetail: catalogrender.RenderAccountDetail,
		now:                 time.Now,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
