package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"dfp-sync/internal/core/domain"
	"dfp-sync/internal/core/port"
)

type openFunc func(ctx context.Context, stderr io.Writer) (port.LineItemUseCase, func(), error)

func newRootCmd(open openFunc) *cobra.Command {
	var timeout time.Duration

	root := &cobra.Command{
		Use:          "lineitemctl",
		Short:        "Synchronize campaigns with ad server line items",
		SilenceUsage: true,
	}
	root.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall deadline for the command")

	// withUseCase runs fn against a freshly wired use case.
	withUseCase := func(cmd *cobra.Command, fn func(ctx context.Context, svc port.LineItemUseCase) (any, error)) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		svc, closeFn, err := open(ctx, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer closeFn()

		out, err := fn(ctx, svc)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	root.AddCommand(
		newUpsertCmd(withUseCase),
		newDeactivateCmd(withUseCase),
		newAssociateCmd(withUseCase),
	)
	return root
}

type runner func(cmd *cobra.Command, fn func(ctx context.Context, svc port.LineItemUseCase) (any, error)) error

func newUpsertCmd(run runner) *cobra.Command {
	var campaignPath, userPath string
	cmd := &cobra.Command{
		Use:   "upsert",
		Short: "Create or update the line item of a campaign",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				campaign domain.Campaign
				user     domain.User
			)
			if err := readJSON(campaignPath, &campaign); err != nil {
				return err
			}
			if err := readJSON(userPath, &user); err != nil {
				return err
			}
			return run(cmd, func(ctx context.Context, svc port.LineItemUseCase) (any, error) {
				return svc.UpsertLineItem(ctx, user, campaign)
			})
		},
	}
	cmd.Flags().StringVar(&campaignPath, "campaign", "", "path to the campaign JSON file")
	cmd.Flags().StringVar(&userPath, "user", "", "path to the advertiser JSON file")
	_ = cmd.MarkFlagRequired("campaign")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newDeactivateCmd(run runner) *cobra.Command {
	var campaignPath string
	cmd := &cobra.Command{
		Use:   "deactivate",
		Short: "Deactivate every creative association of a campaign's line item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var campaign domain.Campaign
			if err := readJSON(campaignPath, &campaign); err != nil {
				return err
			}
			return run(cmd, func(ctx context.Context, svc port.LineItemUseCase) (any, error) {
				changed, err := svc.Deactivate(ctx, campaign)
				if err != nil {
					return nil, err
				}
				return map[string]bool{"changed": changed}, nil
			})
		},
	}
	cmd.Flags().StringVar(&campaignPath, "campaign", "", "path to the campaign JSON file")
	_ = cmd.MarkFlagRequired("campaign")
	return cmd
}

func newAssociateCmd(run runner) *cobra.Command {
	var lineItemID, creativeID int64
	cmd := &cobra.Command{
		Use:   "associate",
		Short: "Attach a creative to a line item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if lineItemID <= 0 || creativeID <= 0 {
				return errors.New("--lineitem and --creative must be positive ids")
			}
			return run(cmd, func(ctx context.Context, svc port.LineItemUseCase) (any, error) {
				return svc.AssociateWithCreative(ctx,
					domain.Record{"id": lineItemID},
					domain.Record{"id": creativeID},
				)
			})
		},
	}
	cmd.Flags().Int64Var(&lineItemID, "lineitem", 0, "ad server line item id")
	cmd.Flags().Int64Var(&creativeID, "creative", 0, "ad server creative id")
	_ = cmd.MarkFlagRequired("lineitem")
	_ = cmd.MarkFlagRequired("creative")
	return cmd
}

func readJSON(path string, dst any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err = json.NewDecoder(f).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
