// Command seed loads fixture wallets from a YAML file and creates them
// through the mock ledger, so a fresh environment starts with the same
// default wallets the dashboard ships with.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/tobenna/walletdash/pkg/config"
	"github.com/tobenna/walletdash/pkg/ledger"
	"github.com/tobenna/walletdash/pkg/localstore"
	"github.com/tobenna/walletdash/pkg/models"
	"github.com/tobenna/walletdash/pkg/storage"
)

type fixture struct {
	Email    string             `yaml:"email"`
	Balances map[string]float64 `yaml:"balances"`
}

type fixtureFile struct {
	Wallets []fixture `yaml:"wallets"`
}

func main() {
	fixturesPath := flag.String("fixtures", "fixtures.yaml", "path to the fixtures file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	raw, err := os.ReadFile(*fixturesPath)
	if err != nil {
		logger.Fatal("failed to read fixtures", zap.String("path", *fixturesPath), zap.Error(err))
	}
	var fixtures fixtureFile
	if err := yaml.Unmarshal(raw, &fixtures); err != nil {
		logger.Fatal("failed to parse fixtures", zap.Error(err))
	}

	ctx := context.Background()
	kv, err := openKV(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open store backend", zap.Error(err))
	}

	svc := ledger.NewService(storage.NewKVStorage(kv), logger)

	for _, f := range fixtures.Wallets {
		res := svc.CreateWallet(ctx, f.Email)
		if !res.OK() {
			logger.Error("failed to create fixture wallet",
				zap.String("email", f.Email),
				zap.Int("status", res.Status))
			continue
		}
		for code, amount := range f.Balances {
			if amount == 0 {
				continue
			}
			dep := svc.Deposit(ctx, ledger.DepositParams{
				Email:    f.Email,
				Amount:   amount,
				Currency: models.Currency(code),
			})
			if !dep.OK() {
				logger.Error("failed to seed balance",
					zap.String("email", f.Email),
					zap.String("currency", code),
					zap.Int("status", dep.Status))
			}
		}
		logger.Info("seeded wallet", zap.String("email", f.Email))
	}
}

func openKV(ctx context.Context, cfg *config.Config) (localstore.KV, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return localstore.NewMemoryKV(), nil
	case config.BackendSQLite:
		return localstore.NewSQLiteKV(ctx, cfg.DatabasePath)
	default:
		return localstore.NewFileKV(filepath.Clean(cfg.DataDir))
	}
}
