package cmd

import (
	"fmt"

	"cdp/pkg/id"

	"github.com/spf13/cobra"
)

// deposit credits a user's reserve position. Stands in for the external
// reserve custody flow when running against a local ledger.
var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "credit reserve collateral to a user position",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		user, asset, amount := vaultFlags(cmd)

		db := provideDatabase()
		defer db.Close()

		reservePos := id.ReservePositionID(asset, cfg.App.BackedAssetID)
		if err := provideLedger(db).Mint(ctx, user, reservePos, amount, nil); err != nil {
			cmd.PrintErrln("deposit failed:", err)
			return
		}

		fmt.Printf("deposited %s of %s for %s\n", amount, asset, user)
	},
}

func init() {
	rootCmd.AddCommand(depositCmd)
	depositCmd.Flags().StringP("user", "u", "", "user id")
	depositCmd.Flags().StringP("asset", "a", "", "reserve asset id")
	depositCmd.Flags().StringP("amount", "q", "", "amount in reserve asset base units")
}
