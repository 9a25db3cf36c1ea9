package common

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	FabricConfig string `env:"FABRIC_CONFIG" envDefault:"connection-profile.yaml"`
	Channel      string `env:"FABRIC_CHANNEL" envDefault:"papernet"`
	Chaincode    string `env:"FABRIC_CHAINCODE" envDefault:"papercontract"`
	Contract     string `env:"FABRIC_CONTRACT" envDefault:"org.papernet.commercialpaper"`
	MSP          string `env:"MSP_ID" envDefault:"MagnetoCorpMSP"`
	WalletPath   string `env:"WALLET_PATH" envDefault:"wallet"`
	Identity     string `env:"WALLET_IDENTITY" envDefault:"appUser"`
	CertPath     string `env:"CERT_PATH"`
	KeyPath      string `env:"KEY_PATH"`
	JWTSecret    string `env:"JWT_SECRET" envDefault:"super-secret-key-change-me"`
	JWTIssuer    string `env:"JWT_ISSUER" envDefault:"papernet-auth-service"`
	DB           DBConfig
}

type DBConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
	Name     string `env:"DB_NAME" envDefault:"papernet"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// DSN renders the lib/pq connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// LoadConfig reads the service configuration from the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
