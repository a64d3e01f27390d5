package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iov-one/adminlist"
	"github.com/iov-one/adminlist/app"
	"github.com/iov-one/adminlist/coin"
	"github.com/iov-one/adminlist/errors"
)

func initCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "init <genesis.json>",
		Short: "Load the genesis file into a new state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := app.LoadGenesis(args[0])
			if err != nil {
				return err
			}
			host, closeHost, err := openHost(cmd, v)
			if err != nil {
				return err
			}
			defer closeHost()

			if err := host.InitGenesis(context.Background(), gen); err != nil {
				return reportErr(cmd.OutOrStdout(), v, err)
			}
			id, err := host.Commit()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), commitOutput{
				ChainID: host.ChainID(),
				Height:  id.Version,
				Hash:    fmt.Sprintf("%X", id.Hash),
			})
		},
	}
}

func executeCmd(v *viper.Viper) *cobra.Command {
	var (
		sender string
		funds  coin.Coins
	)
	cmd := &cobra.Command{
		Use:   "execute <message.json>",
		Short: "Execute a message as the sender and commit the result",
		Example: `  adminlistd execute --sender owner '{"add_members": {"admins": ["user"]}}'
  adminlistd execute --sender donor --funds 5cosmos '{"donate": {}}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			host, closeHost, err := openHost(cmd, v)
			if err != nil {
				return err
			}
			defer closeHost()

			res, err := host.Execute(context.Background(), sender, funds, []byte(args[0]))
			if err != nil {
				return reportErr(cmd.OutOrStdout(), v, err)
			}
			id, err := host.Commit()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), executeOutput{
				Height: id.Version,
				Log:    res.Log,
				Tags:   tags(res),
			})
		},
	}
	cmd.Flags().StringVar(&sender, "sender", "", "address of the caller")
	cmd.Flags().Var(&coinsValue{coins: &funds}, "funds", "coins attached to the call, for example 5cosmos,3atom")
	return cmd
}

func queryCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "query <query.json>",
		Short:   "Answer a read only query",
		Example: `  adminlistd query '{"admin_list": {}}'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, v, []byte(args[0]))
		},
	}
}

func balanceCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <address>",
		Short: "Show coins held by an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := json.Marshal(map[string]interface{}{
				"balance": map[string]string{"address": args[0]},
			})
			if err != nil {
				return err
			}
			return runQuery(cmd, v, raw)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), adminlist.Version())
		},
	}
}

func runQuery(cmd *cobra.Command, v *viper.Viper, raw []byte) error {
	host, closeHost, err := openHost(cmd, v)
	if err != nil {
		return err
	}
	defer closeHost()

	res, err := host.Query(context.Background(), raw)
	if err != nil {
		return reportErr(cmd.OutOrStdout(), v, err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(res))
	return err
}

type commitOutput struct {
	ChainID string `json:"chain_id"`
	Height  int64  `json:"height"`
	Hash    string `json:"hash"`
}

type executeOutput struct {
	Height int64       `json:"height"`
	Log    string      `json:"log,omitempty"`
	Tags   []tagOutput `json:"tags"`
}

type tagOutput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type errorOutput struct {
	Code uint32 `json:"code"`
	Log  string `json:"log"`
}

func tags(res *adminlist.Result) []tagOutput {
	pairs := app.Tags(res)
	out := make([]tagOutput, len(pairs))
	for i, p := range pairs {
		out[i] = tagOutput{Key: string(p.Key), Value: string(p.Value)}
	}
	return out
}

// reportErr prints the ABCI code and log of the failure. The returned error
// makes the command exit with a non zero status.
func reportErr(w io.Writer, v *viper.Viper, err error) error {
	code, log := errors.ABCIInfo(err, v.GetBool(flagDebug))
	if perr := printJSON(w, errorOutput{Code: code, Log: log}); perr != nil {
		return perr
	}
	return errors.Redact(err, v.GetBool(flagDebug))
}

func printJSON(w io.Writer, obj interface{}) error {
	raw, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}

// coinsValue implements pflag.Value for a set of coins.
type coinsValue struct {
	coins *coin.Coins
}

var _ pflag.Value = (*coinsValue)(nil)

func (c *coinsValue) String() string {
	if c.coins == nil {
		return ""
	}
	return c.coins.String()
}

func (c *coinsValue) Set(raw string) error {
	cs, err := coin.ParseCoins(raw)
	if err != nil {
		return err
	}
	*c.coins = cs
	return nil
}

func (c *coinsValue) Type() string {
	return "coins"
}
