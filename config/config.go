package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/slighter12/go-lib/database/postgres"
)

const defaultPath = "."

// Defaults applied when a section is missing from the YAML file.
const (
	defaultEarnPointsPerCurrencyUnit = 1
	defaultRedeemCurrencyPerPoint    = "0.01"
	defaultLowStockThreshold         = 10
	defaultRecentOrderLimit          = 50
	defaultReportLimit               = 10
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Loyalty holds the point/currency conversion policy.
	Loyalty *LoyaltyConfig `json:"loyalty" yaml:"loyalty"`

	// Inventory holds stock reporting thresholds.
	Inventory *InventoryConfig `json:"inventory" yaml:"inventory"`

	// Orders holds order browsing limits.
	Orders *OrdersConfig `json:"orders" yaml:"orders"`

	// Reports holds aggregate report limits.
	Reports *ReportsConfig `json:"reports" yaml:"reports"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoyaltyConfig defines the loyalty-point conversion rates. The redeem rate is
// kept as a decimal string so currency values are never parsed through floats.
type LoyaltyConfig struct {
	EarnPointsPerCurrencyUnit int64  `json:"earnPointsPerCurrencyUnit" yaml:"earnPointsPerCurrencyUnit"`
	RedeemCurrencyPerPoint    string `json:"redeemCurrencyPerPoint" yaml:"redeemCurrencyPerPoint"`
}

// RedeemRate parses the redeem rate into a decimal. Values that fail to
// parse fall back to the default rate; applyDefaults already guarantees a
// non-empty string.
func (c *LoyaltyConfig) RedeemRate() decimal.Decimal {
	rate, err := decimal.NewFromString(c.RedeemCurrencyPerPoint)
	if err != nil {
		return decimal.RequireFromString(defaultRedeemCurrencyPerPoint)
	}

	return rate
}

// InventoryConfig defines inventory reporting thresholds.
type InventoryConfig struct {
	LowStockThreshold int `json:"lowStockThreshold" yaml:"lowStockThreshold"`
}

// OrdersConfig defines order browsing limits.
type OrdersConfig struct {
	RecentLimit int `json:"recentLimit" yaml:"recentLimit"`
}

// ReportsConfig defines aggregate report row limits.
type ReportsConfig struct {
	TopLimit int `json:"topLimit" yaml:"topLimit"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Loyalty == nil {
		cfg.Loyalty = &LoyaltyConfig{}
	}
	if cfg.Loyalty.EarnPointsPerCurrencyUnit <= 0 {
		cfg.Loyalty.EarnPointsPerCurrencyUnit = defaultEarnPointsPerCurrencyUnit
	}
	if strings.TrimSpace(cfg.Loyalty.RedeemCurrencyPerPoint) == "" {
		cfg.Loyalty.RedeemCurrencyPerPoint = defaultRedeemCurrencyPerPoint
	}

	if cfg.Inventory == nil {
		cfg.Inventory = &InventoryConfig{}
	}
	if cfg.Inventory.LowStockThreshold <= 0 {
		cfg.Inventory.LowStockThreshold = defaultLowStockThreshold
	}

	if cfg.Orders == nil {
		cfg.Orders = &OrdersConfig{}
	}
	if cfg.Orders.RecentLimit <= 0 {
		cfg.Orders.RecentLimit = defaultRecentOrderLimit
	}

	if cfg.Reports == nil {
		cfg.Reports = &ReportsConfig{}
	}
	if cfg.Reports.TopLimit <= 0 {
		cfg.Reports.TopLimit = defaultReportLimit
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
