package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var approveCmd = &cobra.Command{
	Use:   "approve",
	Short: "grant a spender allowance on the backed asset",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		owner, _ := cmd.Flags().GetString("owner")
		spender, _ := cmd.Flags().GetString("spender")

		raw, _ := cmd.Flags().GetString("amount")
		amount, err := decimal.NewFromString(raw)
		if err != nil || amount.IsNegative() {
			cmd.PrintErrln("invalid amount:", raw)
			return
		}

		db := provideDatabase()
		defer db.Close()

		if err := provideTokenStore(db).Approve(ctx, owner, spender, amount); err != nil {
			cmd.PrintErrln("approve failed:", err)
			return
		}

		fmt.Printf("approved %s for %s by %s\n", amount, spender, owner)
	},
}

var grantMinterCmd = &cobra.Command{
	Use:   "grant-minter",
	Short: "grant the mint role on the backed asset",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		user, _ := cmd.Flags().GetString("user")
		if user == "" {
			cmd.PrintErrln("user required")
			return
		}

		db := provideDatabase()
		defer db.Close()

		if err := provideTokenStore(db).GrantMintRole(ctx, user); err != nil {
			cmd.PrintErrln("grant minter failed:", err)
			return
		}

		fmt.Println("granted mint role to", user)
	},
}

func init() {
	rootCmd.AddCommand(approveCmd)
	approveCmd.Flags().StringP("owner", "o", "", "allowance owner user id")
	approveCmd.Flags().StringP("spender", "s", "", "spender user id")
	approveCmd.Flags().StringP("amount", "q", "", "allowance in backed asset base units")

	rootCmd.AddCommand(grantMinterCmd)
	grantMinterCmd.Flags().StringP("user", "u", "", "user id to grant the mint role")
}
