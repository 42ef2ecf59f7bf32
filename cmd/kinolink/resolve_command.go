package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"kinolink/internal/resolve"
	"kinolink/internal/sslink"
	"kinolink/internal/textutil"
)

func newResolveCommand(configFlag *string) *cobra.Command {
	var limit int
	var noFollow bool

	cmd := &cobra.Command{
		Use:   "resolve <query>",
		Short: "Resolve a title query and print ranked catalog matches",
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

			query := textutil.ParseQuery(strings.Join(args, " "))
			if query.Title == "" {
				return errors.New("nothing left of the query after normalization")
			}

			ctx := cmd.Context()
			ranked, err := resolver.Rank(ctx, query)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(ranked) == 0 {
				fmt.Fprintln(out, "No matches.")
				return nil
			}
			if limit > 0 && len(ranked) > limit {
				ranked = ranked[:limit]
			}

			rows := make([][]string, 0, len(ranked))
			for _, cand := range ranked {
				rows = append(rows, []string{
					strconv.FormatInt(cand.ID, 10),
					cand.Name,
					cand.Kind.String(),
					formatYear(cand.Year),
					strconv.FormatFloat(cand.Score, 'f', 2, 64),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "NAME", "KIND", "YEAR", "SCORE"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight},
			))

			best := ranked[0]
			link := sslink.WatchURL(best.ID, best.Kind)
			if !noFollow {
				links := newLinkResolver(cfg)
				if final, err := links.FinalURL(ctx, link); err != nil {
					fmt.Fprintf(out, "Warning: could not resolve final link: %v\n", err)
				} else {
					best.Kind = sslink.KindFromFinalURL(final, best.Kind)
					link = final
				}
			}
			fmt.Fprintf(out, "Best: %s (%s, %s)\n", best.Name, best.Kind, formatYear(best.Year))
			fmt.Fprintf(out, "Watch: %s\n", link)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of matches to print")
	cmd.Flags().BoolVar(&noFollow, "no-follow", false, "Skip resolving the final watch link")
	return cmd
}
