package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type BoardConfig struct {
	FeaturedLimit          int    `mapstructure:"featured_limit"`
	MetricsAddress         string `mapstructure:"metrics_address"`
	PaymentRetentionInDays int    `mapstructure:"payment_retention_days"`
	SeedSampleData         bool   `mapstructure:"seed_sample_data"`
}

func (config BoardConfig) validate() error {

	if config.FeaturedLimit < 0 {
		return fmt.Errorf("featured limit must be non-negative")
	}

	if config.PaymentRetentionInDays <= 0 {
		return fmt.Errorf("payment retention days must be greater than zero")
	}

	return nil
}

func (config BoardConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("board.featured_limit", "FEATURED_LIMIT"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("board.metrics_address", "METRICS_ADDRESS"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("board.payment_retention_days", "PAYMENT_RETENTION_DAYS"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("board.seed_sample_data", "SEED_SAMPLE_DATA"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
