package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type mongoEnv struct {
	Driver string `env:"STORE_DRIVER" envDefault:"mongo"`

	Host     string `env:"MONGO_HOST" envDefault:"localhost"`
	Port     int    `env:"MONGO_PORT" envDefault:"27017"`
	User     string `env:"MONGO_INITDB_ROOT_USERNAME" envDefault:""`
	Password string `env:"MONGO_INITDB_ROOT_PASSWORD" envDefault:""`
	DBName   string `env:"MONGO_DATABASE" envDefault:"printmanage"`
	AuthDB   string `env:"MONGO_AUTH_DB" envDefault:"admin"`

	CustomersCollection string `env:"MONGO_CUSTOMERS_COLLECTION" envDefault:"customers"`
	RecordsCollection   string `env:"MONGO_RECORDS_COLLECTION" envDefault:"records"`
	InventoryCollection string `env:"MONGO_INVENTORY_COLLECTION" envDefault:"inventory"`
}

type mongo struct {
	raw mongoEnv
}

func NewMongoConfig() (*mongo, error) {
	var raw mongoEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &mongo{raw: raw}, nil
}

func (cfg *mongo) Driver() string       { return cfg.raw.Driver }
func (cfg *mongo) DatabaseName() string { return cfg.raw.DBName }

func (cfg *mongo) CustomersCollection() string { return cfg.raw.CustomersCollection }
func (cfg *mongo) RecordsCollection() string   { return cfg.raw.RecordsCollection }
func (cfg *mongo) InventoryCollection() string { return cfg.raw.InventoryCollection }

func (cfg *mongo) DSN() string {
	if cfg.raw.User == "" {
		return fmt.Sprintf("mongodb://%s:%d/%s",
			cfg.raw.Host,
			cfg.raw.Port,
			cfg.raw.DBName,
		)
	}
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%d/%s?authSource=%s",
		cfg.raw.User,
		cfg.raw.Password,
		cfg.raw.Host,
		cfg.raw.Port,
		cfg.raw.DBName,
		cfg.raw.AuthDB,
	)
}
