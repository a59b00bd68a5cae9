// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/internal/store"
	"github.com/spf13/cobra"
)

var ErrSlotNotFound = errors.New("content slot not found")

// Opener connects to the content store described by the JSON config file at
// configPath ("" means environment only). closeFn releases the connection.
type Opener func(ctx context.Context, configPath string) (repo store.ContentRepository, closeFn func() error, err error)

type cli struct {
	open       Opener
	logger     *logger.Logger
	configPath string
	seedFirst  bool
}

// NewRootCommand builds the contentctl command tree.
func NewRootCommand(open Opener, log *logger.Logger) *cobra.Command {
	c := &cli{open: open, logger: log}

	root := &cobra.Command{
		Use:           "contentctl",
		Short:         "Manage portal content slots",
		Long:          `Seed, watch and inspect the content slots served by the portal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Path to a JSON config file with storage settings")

	seedCmd := &cobra.Command{
		Use:   "seed [dir]",
		Short: "Upsert every *.toml and *.json file in dir as a slot",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runSeed,
	}

	watchCmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Re-seed a slot whenever its file changes",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runWatch,
	}
	watchCmd.Flags().BoolVar(&c.seedFirst, "seed", true, "Seed the whole directory before watching")

	getCmd := &cobra.Command{
		Use:   "get [key]",
		Short: "Print a slot payload as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runGet,
	}

	root.AddCommand(seedCmd, watchCmd, getCmd)
	return root
}

func (c *cli) seeder(ctx context.Context) (*Seeder, func() error, error) {
	repo, closeFn, err := c.open(ctx, c.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open content store: %w", err)
	}
	return NewSeeder(repo, c.logger), closeFn, nil
}

func (c *cli) runSeed(cmd *cobra.Command, args []string) error {
	seeder, closeFn, err := c.seeder(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	n, err := seeder.SeedDir(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d slot(s) from %s\n", n, args[0])
	return nil
}

func (c *cli) runWatch(cmd *cobra.Command, args []string) error {
	seeder, closeFn, err := c.seeder(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	if c.seedFirst {
		n, err := seeder.SeedDir(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d slot(s) from %s\n", n, args[0])
	}

	return seeder.Watch(cmd.Context(), args[0])
}

func (c *cli) runGet(cmd *cobra.Command, args []string) error {
	seeder, closeFn, err := c.seeder(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	doc, found, err := seeder.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrSlotNotFound, args[0])
	}

	out, err := json.MarshalIndent(doc.Payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", args[0], err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
