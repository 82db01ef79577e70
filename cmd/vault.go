package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "mint backed asset against a reserve position",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		user, asset, amount := vaultFlags(cmd)

		db := provideDatabase()
		defer db.Close()

		system := provideSystem(rootCmd.Version)
		if err := provideVaultService(system, db).Mint(ctx, user, asset, amount); err != nil {
			cmd.PrintErrln("mint failed:", err)
			return
		}

		fmt.Printf("minted %s to %s\n", amount, user)
	},
}

var paybackCmd = &cobra.Command{
	Use:   "payback",
	Short: "pay back debt and burn backed asset",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		user, asset, amount := vaultFlags(cmd)

		db := provideDatabase()
		defer db.Close()

		system := provideSystem(rootCmd.Version)
		if err := provideVaultService(system, db).Payback(ctx, user, asset, amount); err != nil {
			cmd.PrintErrln("payback failed:", err)
			return
		}

		fmt.Printf("paid back %s from %s\n", amount, user)
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "query minting power and health ratio",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		user, _ := cmd.Flags().GetString("user")
		asset, _ := cmd.Flags().GetString("asset")

		db := provideDatabase()
		defer db.Close()

		system := provideSystem(rootCmd.Version)
		vaultService := provideVaultService(system, db)

		power, err := vaultService.RemainingMintingPower(ctx, user, asset)
		if err != nil {
			cmd.PrintErrln("minting power failed:", err)
			return
		}
		fmt.Println("minting power:", power)

		ratio, err := vaultService.HealthRatio(ctx, user, asset)
		if err != nil {
			cmd.PrintErrln("health ratio:", err)
			return
		}
		fmt.Println("health ratio:", ratio)
	},
}

func vaultFlags(cmd *cobra.Command) (user, asset string, amount decimal.Decimal) {
	user, _ = cmd.Flags().GetString("user")
	asset, _ = cmd.Flags().GetString("asset")

	raw, _ := cmd.Flags().GetString("amount")
	amount, err := decimal.NewFromString(raw)
	if err != nil || !amount.IsPositive() {
		panic("invalid amount")
	}

	return user, asset, amount
}

func init() {
	for _, c := range []*cobra.Command{mintCmd, paybackCmd, healthCmd} {
		c.Flags().StringP("user", "u", "", "user id")
		c.Flags().StringP("asset", "a", "", "reserve asset id")
		rootCmd.AddCommand(c)
	}

	mintCmd.Flags().StringP("amount", "q", "", "amount in backed asset base units")
	paybackCmd.Flags().StringP("amount", "q", "", "amount in backed asset base units")
}
