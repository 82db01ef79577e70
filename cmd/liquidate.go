package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var liquidateCmd = &cobra.Command{
	Use:   "liquidate",
	Short: "seize collateral from a liquidatable position",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		liquidator, _ := cmd.Flags().GetString("liquidator")
		user, _ := cmd.Flags().GetString("user")
		asset, _ := cmd.Flags().GetString("asset")

		db := provideDatabase()
		defer db.Close()

		system := provideSystem(rootCmd.Version)
		seizure, err := provideGuardService(system, db).Liquidate(ctx, liquidator, user, asset)
		if err != nil {
			cmd.PrintErrln("liquidate failed:", err)
			return
		}

		fmt.Printf("seized %s (liquidator %s, treasury %s) for cost %s\n",
			seizure.CollateralSeized, seizure.LiquidatorAmount, seizure.TreasuryAmount, seizure.Cost)
	},
}

func init() {
	rootCmd.AddCommand(liquidateCmd)
	liquidateCmd.Flags().StringP("liquidator", "l", "", "liquidator user id")
	liquidateCmd.Flags().StringP("user", "u", "", "liquidated user id")
	liquidateCmd.Flags().StringP("asset", "a", "", "reserve asset id")
}
