package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"kinolink/internal/catalog"
	"kinolink/internal/franchise"
	"kinolink/internal/resolve"
	"kinolink/internal/sslink"
	"kinolink/internal/textutil"
)

func newFranchiseCommand(configFlag *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "franchise <query>",
		Short: "Resolve a title and list its franchise members",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configFlag)
			if err != nil {
				return err
			}
			client, err := newCatalogClient(cfg)
			if err != nil {
				return err
			}
			resolver := resolve.New(client, nil)
			aggregator := franchise.New(client, nil)

			query := textutil.ParseQuery(strings.Join(args, " "))
			if query.Title == "" {
				return errors.New("nothing left of the query after normalization")
			}

			ctx := cmd.Context()
			best, err := resolver.Best(ctx, query)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if best == nil {
				fmt.Fprintln(out, "No matches.")
				return nil
			}

			details, err := client.GetByID(ctx, best.ID, catalog.DetailFields)
			if err != nil {
				fmt.Fprintf(out, "Warning: detail lookup failed: %v\n", err)
				details = nil
			}

			items := aggregator.Collect(ctx, details, *best, query.Title)
			rows := make([][]string, 0, len(items))
			for _, item := range items {
				rows = append(rows, []string{
					strconv.FormatInt(item.ID, 10),
					item.Name,
					item.Kind.String(),
					formatYear(item.Year),
					sslink.WatchURL(item.ID, item.Kind),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "NAME", "KIND", "YEAR", "LINK"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}
	return cmd
}
