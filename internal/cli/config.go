package cli

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "TABLEFMT"

// Setting keys. Each is also a flag name; the environment variable is the
// key upper-cased with the TABLEFMT_ prefix and dashes replaced by
// underscores.
const (
	keyLogLevel = "log-level"
	keyFormat   = "format"
	keyTable    = "table"
)

// newConfig returns settings for cmd: flags set on the command line win
// over the environment, which wins over flag defaults.
func newConfig(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	if err := v.BindPFlags(cmd.InheritedFlags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	return v, nil
}

// configureLogger applies the log-level setting to log.
func configureLogger(log *logrus.Logger, v *viper.Viper) error {
	level, err := logrus.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return fmt.Errorf("invalid %s: %w", keyLogLevel, err)
	}
	log.SetLevel(level)
	return nil
}
