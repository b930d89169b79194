// Command tcbdemo fills a TCB table with the given endpoints and reports
// which ones survive eviction.
//
//	tcbdemo --capacity 1 127.0.0.1:80 192.168.0.1:443
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/IvanBrykalov/lru/internal/logging"
	"github.com/IvanBrykalov/lru/tcb"
)

var defaultEndpoints = []string{"127.0.0.1:80", "192.168.0.1:443"}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("TCBDEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "tcbdemo [addr:port ...]",
		Short:         "Insert endpoints into an LRU TCB table and print the survivors",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(logging.Config{
				Level:  v.GetString("log-level"),
				Format: logging.Format(v.GetString("log-format")),
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = defaultEndpoints
			}
			if err := run(stdout, log, v.GetInt("capacity"), args); err != nil {
				log.Error().Err(err).Msg("tcbdemo failed")
				return err
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Int("capacity", 1, "maximum number of TCBs kept")
	f.String("log-level", "debug", "log level")
	f.String("log-format", string(logging.FormatConsole), "log format: json | console")
	_ = v.BindPFlags(f)

	return cmd
}

func run(stdout io.Writer, log zerolog.Logger, capacity int, keys []string) error {
	table, err := tcb.NewTable(tcb.Config{Capacity: capacity}, log)
	if err != nil {
		return err
	}

	for _, k := range keys {
		ep, err := tcb.Parse(k)
		if err != nil {
			return err
		}
		t := tcb.New(ep, nil)
		if err := table.Put(ep, t); err != nil {
			return err
		}
		log.Info().Str("endpoint", k).Stringer("tcb_id", t.ID).Msg("tcb stored")
	}

	eps, err := table.Endpoints()
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "capacity=%d stored=%d evicted=%d\n", capacity, table.Len(), table.Evictions())
	for _, ep := range eps {
		fmt.Fprintln(stdout, ep)
	}
	return nil
}
