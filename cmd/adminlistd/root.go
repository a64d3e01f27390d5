package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/app"
	"github.com/iov-one/adminlist/errors"
	"github.com/iov-one/adminlist/identity"
	"github.com/iov-one/adminlist/store/iavl"
)

const (
	flagHome     = "home"
	flagContract = "contract"
	flagPrefix   = "bech32_prefix"
	flagLogLevel = "log_level"
	flagDebug    = "debug"

	envPrefix = "ADMINLIST"

	// contractLabel is used to derive the contract address when bech32
	// addresses are used.
	contractLabel = "adminlist"

	// defaultMockContract is the contract address used together with the
	// mock address validation.
	defaultMockContract = "contract"
)

// NewRootCmd returns the adminlistd command with all subcommands attached.
// Every instance uses its own configuration.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "adminlistd",
		Short:         "Admin list contract with shared donations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v)
		},
	}

	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".adminlist")
	flags := root.PersistentFlags()
	flags.String(flagHome, defaultHome, "directory to store files under")
	flags.String(flagContract, "", "contract account address (derived from the prefix if not set)")
	flags.String(flagPrefix, "", "bech32 prefix of valid addresses, mock addresses are used if empty")
	flags.String(flagLogLevel, "info", "log level (debug, info, error, none)")
	flags.Bool(flagDebug, false, "include stack traces in error messages")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	root.AddCommand(
		initCmd(v),
		executeCmd(v),
		queryCmd(v),
		balanceCmd(v),
		versionCmd(),
	)
	return root
}

// loadConfig reads an optional config.toml file from the home directory.
// Flags and environment variables take precedence over the file.
func loadConfig(v *viper.Viper) error {
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(v.GetString(flagHome))
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return errors.Wrapf(errors.ErrInput, "config: %s", err)
	}
	return nil
}

func newLogger(v *viper.Viper, w io.Writer) (log.Logger, error) {
	logger := log.NewTMLogger(log.NewSyncWriter(w)).With("module", "adminlist")
	opt, err := log.AllowLevel(v.GetString(flagLogLevel))
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return log.NewFilter(logger, opt), nil
}

// addressing returns the address validator and the contract address
// configured for this home.
func addressing(v *viper.Viper) (adminlist.AddressValidator, adminlist.Address, error) {
	contract := adminlist.Address(v.GetString(flagContract))

	prefix := v.GetString(flagPrefix)
	if prefix == "" {
		if contract == "" {
			contract = defaultMockContract
		}
		return identity.Mock{}, contract, nil
	}

	validator := identity.Bech32{Prefix: prefix}
	if contract == "" {
		addr, err := identity.ContractAddress(prefix, contractLabel)
		if err != nil {
			return nil, "", err
		}
		return validator, addr, nil
	}
	if _, err := validator.ValidateAddress(contract.String()); err != nil {
		return nil, "", errors.Wrap(err, "contract")
	}
	return validator, contract, nil
}

// openHost loads the persistent state stored in the home directory. The
// returned function must be called to release the database.
func openHost(cmd *cobra.Command, v *viper.Viper) (*app.Host, func(), error) {
	logger, err := newLogger(v, os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	validator, contract, err := addressing(v)
	if err != nil {
		return nil, nil, err
	}

	dir := filepath.Join(v.GetString(flagHome), "data")
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, nil, errors.Wrapf(errors.ErrDatabase, "create %q: %s", dir, err)
	}
	commit, err := iavl.NewCommitStore(dir, "adminlist")
	if err != nil {
		return nil, nil, err
	}
	host, err := app.NewHost(commit, app.Config{
		Validator: validator,
		Contract:  contract,
		Logger:    logger,
	})
	if err != nil {
		commit.Close()
		return nil, nil, err
	}
	return host, commit.Close, nil
}
