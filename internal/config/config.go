package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"artvault/internal/models"
)

// StoreConfig is the file-backed part of the configuration: settlement wallets
// shown at checkout and media URL options. Connection settings stay in the
// environment.
type StoreConfig struct {
	Gallery GallerySettings `toml:"gallery"`
	Media   MediaSettings   `toml:"media"`
	Wallets []models.Wallet `toml:"wallets"`
}

// GallerySettings holds storefront identity used on receipts.
type GallerySettings struct {
	Name         string `toml:"name"`
	SupportEmail string `toml:"support_email"`
}

// MediaSettings controls how durable image URLs are built.
type MediaSettings struct {
	Bucket        string `toml:"bucket"`
	PublicBaseURL string `toml:"public_base_url"`
}

// Load reads the TOML config file. A missing file yields the defaults so the
// service can boot in development without one.
func Load(filename string) (*StoreConfig, error) {
	config := defaults()
	if filename == "" {
		return config, nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return config, nil
	}
	if _, err := toml.DecodeFile(filename, config); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	if config.Media.Bucket == "" {
		config.Media.Bucket = "artvault-media"
	}
	return config, nil
}

func defaults() *StoreConfig {
	return &StoreConfig{
		Gallery: GallerySettings{
			Name:         "Artvault Gallery",
			SupportEmail: "support@artvault.example",
		},
		Media: MediaSettings{
			Bucket: "artvault-media",
		},
		Wallets: []models.Wallet{
			{Name: "Bitcoin", Symbol: "BTC", Address: "bc1qexamplebtcaddress1234567890", Network: "Bitcoin"},
			{Name: "Tether (USDT)", Symbol: "USDT", Address: "TUSDTexampleaddress1234567890", Network: "TRC20"},
			{Name: "Ethereum", Symbol: "ETH", Address: "0xExampleEthAddress1234567890", Network: "ERC20"},
		},
	}
}
