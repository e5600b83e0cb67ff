package main

import (
	"encoding/json"
	"fmt"
	"strings"

	redisStorage "p2p-offerbook/internal/adapter/storage/redis"
	"p2p-offerbook/internal/core/domain"

	"github.com/spf13/cobra"
)

var (
	filterOffers []string
	filterNodes  []string
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Manage the published ban rules",
	Long: `Ban rules flag offers by id and offerers by host. Running nodes pick up
changes on their next filter sync.`,
}

var filterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the rules currently in force",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, closeFn, err := openFilterStore(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		rules, err := store.Load(cmd.Context())
		if err != nil {
			return err
		}
		if rules == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "no rules in force")
			return nil
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rules)
	},
}

var filterSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace the rules",
	Long: `Replaces the published rules. Node entries are normalized the way
offerer hosts are compared.

Example usage:
  offerbook filter set --offer abc123 --node badpeer.onion:9999`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		store, closeFn, err := openFilterStore(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		rules := &domain.FilterRules{}
		for _, id := range filterOffers {
			if id = strings.TrimSpace(id); id != "" {
				rules.BannedOfferIDs = append(rules.BannedOfferIDs, id)
			}
		}
		for _, host := range filterNodes {
			if host = domain.NormalizeHostName(host, cfg.Market.HostSuffix); host != "" {
				rules.BannedNodeAddresses = append(rules.BannedNodeAddresses, host)
			}
		}
		return store.Publish(cmd.Context(), rules)
	},
}

var filterClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Withdraw all rules",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, closeFn, err := openFilterStore(cmd)
		if err != nil {
			return err
		}
		defer closeFn()
		return store.Publish(cmd.Context(), nil)
	},
}

func init() {
	rootCmd.AddCommand(filterCmd)
	filterCmd.AddCommand(filterShowCmd, filterSetCmd, filterClearCmd)

	filterSetCmd.Flags().StringSliceVar(&filterOffers, "offer", nil, "Banned offer id (repeatable)")
	filterSetCmd.Flags().StringSliceVar(&filterNodes, "node", nil, "Banned offerer host (repeatable)")
}

func openFilterStore(cmd *cobra.Command) (*redisStorage.FilterRuleStore, func(), error) {
	cfg, log, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	rdb, err := redisStorage.NewClient(cmd.Context(), cfg.Redis, log)
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	return redisStorage.NewFilterRuleStore(rdb), func() { _ = rdb.Close() }, nil
}
