package cmd

import (
	"fmt"

	"cdp/core"
	"cdp/pkg/id"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

var addReserveCmd = &cobra.Command{
	Use:   "add-reserve",
	Short: "register a reserve asset with its collateral factor",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		asset, _ := cmd.Flags().GetString("asset")
		symbol, _ := cmd.Flags().GetString("symbol")
		decimals := cast.ToInt32(cmd.Flag("decimals").Value.String())
		numerator := cast.ToInt64(cmd.Flag("numerator").Value.String())
		denominator := cast.ToInt64(cmd.Flag("denominator").Value.String())

		if asset == "" || decimals <= 0 || numerator <= 0 || denominator <= 0 {
			cmd.PrintErrln("invalid reserve registration")
			return
		}

		db := provideDatabase()
		defer db.Close()

		reserve := &core.Reserve{
			AssetID:           asset,
			Symbol:            symbol,
			Decimals:          decimals,
			FactorNumerator:   decimal.NewFromInt(numerator),
			FactorDenominator: decimal.NewFromInt(denominator),
			PositionID:        id.ReservePositionID(asset, cfg.App.BackedAssetID),
			Status:            core.ReserveStatusActive,
		}

		if err := provideReserveStore(db).Save(ctx, db, reserve); err != nil {
			cmd.PrintErrln("save reserve failed:", err)
			return
		}

		fmt.Println("registered reserve", asset, "position", reserve.PositionID)
	},
}

func init() {
	rootCmd.AddCommand(addReserveCmd)
	addReserveCmd.Flags().StringP("asset", "a", "", "reserve asset id")
	addReserveCmd.Flags().StringP("symbol", "s", "", "reserve symbol")
	addReserveCmd.Flags().String("decimals", "8", "reserve asset decimals")
	addReserveCmd.Flags().String("numerator", "150", "collateral factor numerator")
	addReserveCmd.Flags().String("denominator", "100", "collateral factor denominator")
}
