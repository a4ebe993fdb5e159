package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/suparena/entitybond"
	"github.com/suparena/entitybond/config"
	"github.com/suparena/entitybond/datastore"
	"github.com/suparena/entitybond/datastore/ddb"
	"github.com/suparena/entitybond/datastore/testmodels"
	"github.com/suparena/entitybond/internal/ctxlog"
	"github.com/suparena/entitybond/model"
	"github.com/suparena/entitybond/registry"
)

type systemView struct {
	System  *testmodels.RatingSystem  `json:"system"`
	Records []testmodels.RatingRecord `json:"records"`
}

func newRecordsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "records <systemID>",
		Short: "Print a rating system with its bonded Records relation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, err := opts.load(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			stores, err := openStores(ctx, cfg)
			if err != nil {
				return err
			}
			testmodels.BondRelations(registry.Default, stores)

			systems, err := entitybond.StoreFor[testmodels.RatingSystem](stores)
			if err != nil {
				return err
			}
			return printSystem(ctx, cmd.OutOrStdout(), systems, args[0])
		},
	}
}

func newBondsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bonds",
		Short: "List the relationships bonded to the rating models",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			testmodels.BondRelations(registry.Default, entitybond.NewStores())

			out := cmd.OutOrStdout()
			printBonds(out, "RatingSystem", model.GetBonds[testmodels.RatingSystem](registry.Default))
			printBonds(out, "RatingRecord", model.GetBonds[testmodels.RatingRecord](registry.Default))
		},
	}
}

func printBonds(out io.Writer, typeName string, bonds map[string]registry.Resolver) {
	names := make([]string, 0, len(bonds))
	for name := range bonds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "%s.%s\n", typeName, name)
	}
}

func openStores(ctx context.Context, cfg *config.Config) (*entitybond.Stores, error) {
	systems, err := ddb.NewFromConfig[testmodels.RatingSystem](ctx, cfg)
	if err != nil {
		return nil, err
	}
	records, err := ddb.NewFromConfig[testmodels.RatingRecord](ctx, cfg)
	if err != nil {
		return nil, err
	}

	stores := entitybond.NewStores()
	if err := entitybond.RegisterStore[testmodels.RatingSystem](stores, systems); err != nil {
		return nil, err
	}
	if err := entitybond.RegisterStore[testmodels.RatingRecord](stores, records); err != nil {
		return nil, err
	}
	return stores, nil
}

func printSystem(ctx context.Context, out io.Writer, systems datastore.DataStore[testmodels.RatingSystem], id string) error {
	sys, err := systems.GetOne(ctx, id)
	if err != nil {
		return err
	}

	records, err := model.Related[[]testmodels.RatingRecord](ctx, sys, "Records")
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("relation resolved", "system", id, "relation", "Records", "count", len(records))

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(systemView{System: sys, Records: records})
}
