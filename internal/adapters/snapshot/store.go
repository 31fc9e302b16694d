package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/harnstore/harn-cli/internal/domain"
	"github.com/harnstore/harn-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName      = "config"
	configType      = "toml"
	catalogPathKey  = "catalog.path"
	catalogFileMode = 0o600
	catalogDirMode  = 0o700
	configDir       = ".harn"
	catalogFile     = "catalog.toml"
	tempFilePattern = ".catalog-*.toml.tmp"
)

// Store keeps the last fetched catalog in a TOML file so the viewer works
// without a network round trip on every invocation.
type Store struct {
	catalogPath string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SnapshotStore = (*Store)(nil)

func NewStore(cfg *viper.Viper) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, configDir, catalogFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetDefault(catalogPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	catalogPath := cfg.GetString(catalogPathKey)
	if catalogPath == "" {
		return nil, errors.New("catalog path is empty")
	}
	catalogPath, err = normalizeCatalogPath(catalogPath)
	if err != nil {
		return nil, err
	}

	return &Store{catalogPath: catalogPath, mu: lockForPath(catalogPath)}, nil
}

func (s *Store) Load(ctx context.Context) (domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return domain.Catalog{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.catalogPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Catalog{}, ports.ErrNoSnapshot
		}
		return domain.Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.Catalog{}, fmt.Errorf("decode catalog file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return domain.Catalog{}, err
	}
	file.applyDefaults()

	return fromSchema(file), nil
}

func (s *Store) Save(ctx context.Context, catalog domain.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file := toSchema(catalog)
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(s.catalogPath), catalogDirMode); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode catalog file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.catalogPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp catalog file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp catalog file: %w", err)
	}

	if err := tempFile.Chmod(catalogFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp catalog file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp catalog file: %w", err)
	}

	if err := os.Rename(tempName, s.catalogPath); err != nil {
		return fmt.Errorf("replace catalog file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(s.catalogPath, catalogFileMode); err != nil {
		return fmt.Errorf("chmod catalog file: %w", err)
	}

	return nil
}

func normalizeCatalogPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve catalog path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(catalog domain.Catalog) fileSchema {
	products := make([]productSchema, 0, len(catalog.Products))
	for _, product := range catalog.Products {
		products = append(products, toProductSchema(product))
	}

	accounts := make([]accountSchema, 0, len(catalog.Accounts))
	for _, account := range catalog.Accounts {
		accounts = append(accounts, toAccountSchema(account))
	}

	return fileSchema{
		Version:   currentSchemaVersion,
		FetchedAt: formatTime(catalog.FetchedAt),
		Products:  products,
		Accounts:  accounts,
	}
}

func fromSchema(file fileSchema) domain.Catalog {
	products := make([]domain.Product, 0, len(file.Products))
	for _, product := range file.Products {
		products = append(products, fromProductSchema(product))
	}

	accounts := make([]domain.Account, 0, len(file.Accounts))
	for _, account := range file.Accounts {
		accounts = append(accounts, fromAccountSchema(account))
	}

	return domain.Catalog{
		Products:  products,
		Accounts:  accounts,
		FetchedAt: parseTime(file.FetchedAt),
	}
}

func toProductSchema(product domain.Product) productSchema {
	tiers := make([]tierSchema, 0, len(product.Tiers))
	for _, tier := range product.Tiers {
		tiers = append(tiers, tierSchema{
			DurationDays: tier.DurationDays,
			Cost:         tier.Cost,
			Price:        tier.Price,
			AgentPrice:   tier.AgentPrice,
		})
	}

	return productSchema{
		ID:           string(product.ID),
		Name:         product.Name,
		Tiers:        tiers,
		Screens:      product.Screens,
		ColorPrimary: product.ColorPrimary,
		LogoURL:      product.LogoURL,
		Remark:       product.Remark,
		OpenPreOrder: product.OpenPreOrder,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
}

func fromProductSchema(product productSchema) domain.Product {
	tiers := make([]domain.PricingTier, 0, len(product.Tiers))
	for _, tier := range product.Tiers {
		tiers = append(tiers, domain.PricingTier{
			DurationDays: tier.DurationDays,
			Cost:         tier.Cost,
			Price:        tier.Price,
			AgentPrice:   tier.AgentPrice,
		})
	}

	return domain.Product{
		ID:           domain.PlatformID(product.ID),
		Name:         product.Name,
		Tiers:        tiers,
		Screens:      product.Screens,
		ColorPrimary: product.ColorPrimary,
		LogoURL:      product.LogoURL,
		Remark:       product.Remark,
		OpenPreOrder: product.OpenPreOrder,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
}

func toAccountSchema(account domain.Account) accountSchema {
	return accountSchema{
		ID:            string(account.ID),
		Platform:      string(account.Platform),
		UserName:      account.UserName,
		Email:         account.Email,
		Password:      account.Password,
		Link:          account.Link,
		ScreenName:    account.ScreenName,
		PIN:           account.PIN,
		DayType:       account.DayType,
		Amount:        account.Amount,
		Cost:          account.Cost,
		StartDate:     account.StartDate,
		EndDate:       account.EndDate,
		RealStartDate: account.RealStartDate,
		RealEndDate:   account.RealEndDate,
		PaymentDate:   account.PaymentDate,
		Status:        string(account.Status),
	}
}

func fromAccountSchema(account accountSchema) domain.Account {
	return domain.Account{
		ID:            domain.AccountID(account.ID),
		Platform:      domain.PlatformID(account.Platform),
		UserName:      account.UserName,
		Email:         account.Email,
		Password:      account.Password,
		Link:          account.Link,
		ScreenName:    account.ScreenName,
		PIN:           account.PIN,
		DayType:       account.DayType,
		Amount:        account.Amount,
		Cost:          account.Cost,
		StartDate:     account.StartDate,
		EndDate:       account.EndDate,
		RealStartDate: account.RealStartDate,
		RealEndDate:   account.RealEndDate,
		PaymentDate:   account.PaymentDate,
		Status:        domain.AccountStatus(account.Status),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
