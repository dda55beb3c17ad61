package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type PaymentConfig struct {
	GatewayURL           string  `mapstructure:"gateway_url"`
	KeyID                string  `mapstructure:"key_id"`
	PostingFeePaise      int     `mapstructure:"posting_fee_paise"`
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second"`
}

func (config PaymentConfig) validate() error {

	var missingFields []string

	if config.GatewayURL == "" {
		missingFields = append(missingFields, "gateway_url")
	}

	if config.KeyID == "" {
		missingFields = append(missingFields, "key_id")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missingFields, ", "))
	}

	if config.PostingFeePaise < 0 {
		return fmt.Errorf("posting fee must be non-negative")
	}

	return nil
}

func (config PaymentConfig) bindEnvironmentVariables() error {
	var errs []error
	if err := viper.BindEnv("payment.gateway_url", "PAYMENT_GATEWAY_URL"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("payment.key_id", "PAYMENT_KEY_ID"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("payment.posting_fee_paise", "PAYMENT_POSTING_FEE_PAISE"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
