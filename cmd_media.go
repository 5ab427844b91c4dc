package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/llehouerou/hymnchtv/internal/errmsg"
	"github.com/llehouerou/hymnchtv/internal/hymnal"
	"github.com/llehouerou/hymnchtv/internal/media"
	"github.com/llehouerou/hymnchtv/internal/ui/mediapanel"
)

func newMediaCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Manage the media attached to hymns",
	}

	var fu bool
	keyFlags := func(c *cobra.Command) {
		c.Flags().BoolVar(&fu, "fu", false, "supplement number (大本 only)")
	}

	get := &cobra.Command{
		Use:   "get <hymnal> <number> <kind>",
		Short: "Print the stored media of one kind",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(args[0], args[1], args[2], fu)
			if err != nil {
				return err
			}
			return withStore(cmd, opts, func(ctx context.Context, s *media.Store) error {
				rec, ok, err := s.Get(ctx, key)
				if err != nil {
					return fmt.Errorf("%s: %w", errmsg.OpMediaLoad, err)
				}
				if !ok {
					return fmt.Errorf("no %s media for %s", key.Kind.Short(), key.Hymn)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "uri\t%s\nfile\t%s\n", rec.URI, rec.FilePath)
				return nil
			})
		},
	}
	keyFlags(get)

	var uri, file string
	set := &cobra.Command{
		Use:   "set <hymnal> <number> <kind>",
		Short: "Attach a URI or local file to a hymn",
		Example: `  hymnchtv media set db 12 banzou --file ~/music/db12.mp3
  hymnchtv media set bb 5 url --uri https://example.org/bb5`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if uri == "" && file == "" {
				return fmt.Errorf("one of --uri or --file is required")
			}
			key, err := parseKey(args[0], args[1], args[2], fu)
			if err != nil {
				return err
			}
			return withStore(cmd, opts, func(ctx context.Context, s *media.Store) error {
				if err := s.Put(ctx, media.Record{Key: key, URI: uri, FilePath: file}); err != nil {
					return fmt.Errorf("%s: %w", errmsg.OpMediaSave, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", key)
				return nil
			})
		},
	}
	keyFlags(set)
	set.Flags().StringVar(&uri, "uri", "", "remote or content URI")
	set.Flags().StringVar(&file, "file", "", "local file path")

	rm := &cobra.Command{
		Use:   "rm <hymnal> <number> <kind>",
		Short: "Remove stored media",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(args[0], args[1], args[2], fu)
			if err != nil {
				return err
			}
			return withStore(cmd, opts, func(ctx context.Context, s *media.Store) error {
				n, err := s.Delete(ctx, key)
				if err != nil {
					return fmt.Errorf("%s: %w", errmsg.OpMediaDelete, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %d record(s)\n", n)
				return nil
			})
		},
	}
	keyFlags(rm)

	ls := &cobra.Command{
		Use:   "ls <hymnal>",
		Short: "List the media stored for a hymnal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := hymnal.ParseType(args[0])
			if err != nil {
				return err
			}
			return withStore(cmd, opts, func(ctx context.Context, s *media.Store) error {
				recs, err := s.List(ctx, t)
				if err != nil {
					return fmt.Errorf("%s: %w", errmsg.OpMediaLoad, err)
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, r := range recs {
					fmt.Fprintf(w, "%s\t%s\t%s\n", r.Hymn, r.Kind.Short(), mediapanel.Location(r))
				}
				fmt.Fprintf(w, "%d record(s)\n", len(recs))
				return w.Flush()
			})
		},
	}

	cmd.AddCommand(get, set, rm, ls)
	return cmd
}

func parseKey(typ, number, kind string, fu bool) (media.Key, error) {
	ref, _, err := validateNumber(typ, number, fu)
	if err != nil {
		return media.Key{}, err
	}
	k, err := media.ParseKind(kind)
	if err != nil {
		return media.Key{}, err
	}
	return media.Key{Hymn: ref, Kind: k}, nil
}

// withStore opens the state database for the duration of fn.
func withStore(cmd *cobra.Command, opts *options, fn func(context.Context, *media.Store) error) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	logger, err := opts.consoleLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	mgr, err := opts.openState()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpStateLoad, err)
	}
	defer mgr.Close()

	return fn(cmd.Context(), media.NewStore(mgr.DB(), logger))
}
