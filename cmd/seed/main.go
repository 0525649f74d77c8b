// Command seed loads the default breed, status and store vocabulary and,
// when CATTERY_SEED_ADMIN_EMAIL and CATTERY_SEED_ADMIN_PASSWORD are set,
// creates the first admin user. Entries that already exist are skipped.
// Usage: go run ./cmd/seed [-file path/to/seed.yaml]
package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"cattery/internal/config"
	"cattery/internal/domain"
	"cattery/internal/repository/postgres"
	"cattery/internal/service"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Breeds   []string `yaml:"breeds"`
	Statuses []struct {
		Label string `yaml:"label"`
		Value string `yaml:"value"`
		Color string `yaml:"color"`
		Hint  string `yaml:"hint"`
	} `yaml:"statuses"`
	Stores []struct {
		Name      string `yaml:"name"`
		StoreType string `yaml:"store_type"`
	} `yaml:"stores"`
	Configs map[string]interface{} `yaml:"configs"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	file := flag.String("file", "", "seed YAML file (defaults to the embedded seed)")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: failed to read .env: %v", err)
	}

	raw := defaultSeed
	if *file != "" {
		b, err := os.ReadFile(*file)
		if err != nil {
			return fmt.Errorf("read seed file: %w", err)
		}
		raw = b
	}
	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	breeds := service.NewCatBreedService(postgres.NewCatBreedRepo(db))
	statuses := service.NewCatStatusService(postgres.NewCatStatusRepo(db))
	stores := service.NewStoreService(postgres.NewStoreRepo(db))
	configs, err := service.NewConfigService(postgres.NewConfigRepo(db))
	if err != nil {
		return err
	}
	users := service.NewUserService(postgres.NewUserRepo(db))

	created := 0
	for i, b := range seed.Breeds {
		_, err := breeds.Create(ctx, service.CatBreedInput{Label: b, Value: b, SortOrder: i})
		if ok, err := skipDuplicate(err, domain.ErrDuplicateBreed); err != nil {
			return fmt.Errorf("seed breed %q: %w", b, err)
		} else if ok {
			created++
		}
	}
	log.Printf("breeds: %d created, %d total", created, len(seed.Breeds))

	created = 0
	for i, s := range seed.Statuses {
		_, err := statuses.Create(ctx, service.CatStatusInput{Label: s.Label, Value: s.Value, Color: s.Color, Hint: s.Hint, SortOrder: i})
		if ok, err := skipDuplicate(err, domain.ErrDuplicateStatus); err != nil {
			return fmt.Errorf("seed status %q: %w", s.Value, err)
		} else if ok {
			created++
		}
	}
	log.Printf("statuses: %d created, %d total", created, len(seed.Statuses))

	created = 0
	for _, s := range seed.Stores {
		input := service.CreateStoreInput{Name: s.Name}
		if s.StoreType != "" {
			st := domain.StoreType(s.StoreType)
			input.StoreType = &st
		}
		_, err := stores.Create(ctx, input)
		if ok, err := skipDuplicate(err, domain.ErrDuplicateStore); err != nil {
			return fmt.Errorf("seed store %q: %w", s.Name, err)
		} else if ok {
			created++
		}
	}
	log.Printf("stores: %d created, %d total", created, len(seed.Stores))

	for key, value := range seed.Configs {
		if _, err := configs.Get(ctx, key); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("read config %q: %w", key, err)
		}
		b, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode config %q: %w", key, err)
		}
		if _, err := configs.Set(ctx, key, service.SetConfigInput{Value: b}); err != nil {
			return fmt.Errorf("seed config %q: %w", key, err)
		}
	}

	email := os.Getenv("CATTERY_SEED_ADMIN_EMAIL")
	password := os.Getenv("CATTERY_SEED_ADMIN_PASSWORD")
	if email != "" && password != "" {
		ok, err := users.EnsureAdmin(ctx, email, password, os.Getenv("CATTERY_SEED_ADMIN_NAME"))
		if err != nil {
			return fmt.Errorf("seed admin user: %w", err)
		}
		if ok {
			log.Printf("admin user %s created", email)
		} else {
			log.Printf("admin user %s already exists", email)
		}
	}

	log.Println("seed complete")
	return nil
}

// skipDuplicate reports whether an entry was created; a duplicate is not an error.
func skipDuplicate(err, duplicate error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, duplicate):
		return false, nil
	default:
		return false, err
	}
}
