package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	assettypes "artifacte/x/asset/types"
	auctiontypes "artifacte/x/auction/types"
)

// Auction --------------------------------------------------------------------

func newAuctionTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "auction",
		Short:                      "Auction transactions",
		DisableFlagParsing:         false,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		newAuctionCreateCmd(),
		newAuctionBidCmd(),
		newAuctionSettleCmd(),
	)
	return cmd
}

func newAuctionCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [asset-id] [start-price] [end-time]",
		Short: "Open an auction for an asset",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			startPrice, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("parse start-price: %w", err)
			}
			endTime, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("parse end-time: %w", err)
			}

			msg := &auctiontypes.MsgCreateAuction{
				Creator:    clientCtx.GetFromAddress().String(),
				AssetId:    args[0],
				StartPrice: startPrice,
				EndTime:    endTime,
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// newAuctionBidCmd resolves the refund target from chain state so callers do
// not have to pass the displaced bidder by hand.
func newAuctionBidCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bid [asset-id] [amount]",
		Short: "Place a bid, refunding the displaced bidder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("parse amount: %w", err)
			}

			previousBidder, err := cmd.Flags().GetString("previous-bidder")
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("previous-bidder") {
				qc := auctiontypes.NewQueryClient(clientCtx)
				res, err := qc.GetAuction(cmd.Context(), &auctiontypes.QueryGetAuctionRequest{AssetId: args[0]})
				if err != nil {
					return fmt.Errorf("query auction %s: %w", args[0], err)
				}
				previousBidder = res.Auction.CurrentBidder
			}

			msg := &auctiontypes.MsgPlaceBid{
				Creator:        clientCtx.GetFromAddress().String(),
				AssetId:        args[0],
				Amount:         amount,
				PreviousBidder: strings.TrimSpace(previousBidder),
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	cmd.Flags().String("previous-bidder", "", "Explicit refund target; defaults to the recorded high bidder")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func newAuctionSettleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle [asset-id]",
		Short: "Settle an ended auction, paying the seller",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &auctiontypes.MsgSettle{
				Creator: clientCtx.GetFromAddress().String(),
				AssetId: args[0],
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// Asset ----------------------------------------------------------------------

func newAssetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "asset",
		Short:                      "Asset registry transactions",
		DisableFlagParsing:         false,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		newAssetCreateCmd(),
	)
	return cmd
}

func newAssetCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [asset-id] [name] [category] [appraised-value]",
		Short: "Register an asset record",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			catName := strings.ToUpper(args[2])
			if !strings.HasPrefix(catName, "ASSET_CATEGORY_") {
				catName = "ASSET_CATEGORY_" + catName
			}
			category, ok := assettypes.AssetCategory_value[catName]
			if !ok {
				return fmt.Errorf("unknown category %q", args[2])
			}
			value, err := strconv.ParseUint(args[3], 10, 64)
			if err != nil {
				return fmt.Errorf("parse appraised-value: %w", err)
			}

			grade, err := cmd.Flags().GetString("condition-grade")
			if err != nil {
				return err
			}
			imageURI, err := cmd.Flags().GetString("image-uri")
			if err != nil {
				return err
			}

			msg := &assettypes.MsgCreateAsset{
				Creator:        clientCtx.GetFromAddress().String(),
				AssetId:        args[0],
				Name:           args[1],
				Category:       assettypes.AssetCategory(category),
				AppraisedValue: value,
				ConditionGrade: grade,
				ImageUri:       imageURI,
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	cmd.Flags().String("condition-grade", "", "Optional condition grade")
	cmd.Flags().String("image-uri", "", "Optional image URI")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
