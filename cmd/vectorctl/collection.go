package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-vectors/vector"
)

func newCollectionCmd(a *app) *cobra.Command {
	collectionCmd := &cobra.Command{
		Use:     "collection",
		Aliases: []string{"col"},
		Short:   "Manage named vector collections",
	}

	collectionCmd.AddCommand(
		&cobra.Command{
			Use:   "add <name> <x,y>...",
			Short: "Append vectors to a collection, creating it if needed",
			Args:  cobra.MinimumNArgs(2),
			RunE:  a.runCollectionAdd,
		},
		indexCmd(&cobra.Command{
			Use:   "remove <name> <index>",
			Short: "Remove the vector at index",
			Args:  cobra.ExactArgs(2),
			RunE:  a.runCollectionRemove,
		}),
		indexCmd(&cobra.Command{
			Use:   "get <name> <index>",
			Short: "Print the vector at index (negative counts from the end)",
			Args:  cobra.ExactArgs(2),
			RunE:  a.runCollectionGet,
		}),
		indexCmd(&cobra.Command{
			Use:   "slice <name> <start> <end>",
			Short: "Print the vectors in [start, end)",
			Args:  cobra.ExactArgs(3),
			RunE:  a.runCollectionSlice,
		}),
		&cobra.Command{
			Use:   "show <name>",
			Short: "Print every vector in a collection",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runCollectionShow,
		},
		&cobra.Command{
			Use:   "list",
			Short: "List stored collections",
			Args:  cobra.NoArgs,
			RunE:  a.runCollectionList,
		},
		&cobra.Command{
			Use:   "delete <name>",
			Short: "Delete a collection",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runCollectionDelete,
		},
		&cobra.Command{
			Use:   "export <name> <file>",
			Short: "Write a collection to a JSON file",
			Args:  cobra.ExactArgs(2),
			RunE:  a.runCollectionExport,
		},
		&cobra.Command{
			Use:   "import <name> <file>",
			Short: "Replace a collection with the contents of a JSON file",
			Args:  cobra.ExactArgs(2),
			RunE:  a.runCollectionImport,
		},
	)

	return collectionCmd
}

// indexCmd stops flag parsing at the collection name so negative indices
// are read as arguments
func indexCmd(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) runCollectionAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	// Parse everything first so a bad argument leaves the collection untouched
	vs := make([]vector.Vector, 0, len(args)-1)
	for _, arg := range args[1:] {
		v, err := vector.Parse(arg)
		if err != nil {
			return err
		}
		vs = append(vs, v)
	}

	c, err := a.loadOrCreate(cmd.Context(), name)
	if err != nil {
		return err
	}
	for _, v := range vs {
		c.Add(v)
	}
	if err := a.save(cmd.Context(), name, c); err != nil {
		return err
	}
	printCollection(cmd, c)
	return nil
}

func (a *app) runCollectionRemove(cmd *cobra.Command, args []string) error {
	name := args[0]
	index, err := parseIndex(args[1])
	if err != nil {
		return err
	}

	c, err := a.load(cmd.Context(), name)
	if err != nil {
		return err
	}
	if err := c.RemoveAt(index); err != nil {
		return err
	}
	if err := a.save(cmd.Context(), name, c); err != nil {
		return err
	}
	printCollection(cmd, c)
	return nil
}

func (a *app) runCollectionGet(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(args[1])
	if err != nil {
		return err
	}

	c, err := a.load(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	v, err := c.At(index)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

func (a *app) runCollectionSlice(cmd *cobra.Command, args []string) error {
	start, err := parseIndex(args[1])
	if err != nil {
		return err
	}
	end, err := parseIndex(args[2])
	if err != nil {
		return err
	}

	c, err := a.load(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	printCollection(cmd, c.Slice(start, end))
	return nil
}

func (a *app) runCollectionShow(cmd *cobra.Command, args []string) error {
	c, err := a.load(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	printCollection(cmd, c)
	return nil
}

func (a *app) runCollectionList(cmd *cobra.Command, args []string) error {
	s, err := a.openStore()
	if err != nil {
		return err
	}
	names, err := s.List(cmd.Context())
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func (a *app) runCollectionDelete(cmd *cobra.Command, args []string) error {
	s, err := a.openStore()
	if err != nil {
		return err
	}
	if err := s.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	a.logger.Info("collection deleted", zap.String("name", args[0]))
	return nil
}

func (a *app) runCollectionExport(cmd *cobra.Command, args []string) error {
	c, err := a.load(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if err := c.Save(args[1]); err != nil {
		return fmt.Errorf("failed to export collection: %w", err)
	}
	a.logger.Info("collection exported",
		zap.String("name", args[0]),
		zap.String("file", args[1]),
		zap.Int("vectors", c.Len()),
	)
	return nil
}

func (a *app) runCollectionImport(cmd *cobra.Command, args []string) error {
	c, err := vector.LoadCollection(args[1])
	if err != nil {
		return fmt.Errorf("failed to import collection: %w", err)
	}
	if err := a.save(cmd.Context(), args[0], c); err != nil {
		return err
	}
	printCollection(cmd, c)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func (a *app) load(ctx context.Context, name string) (*vector.Collection, error) {
	s, err := a.openStore()
	if err != nil {
		return nil, err
	}
	c, err := s.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("collection loaded", zap.String("name", name), zap.Int("vectors", c.Len()))
	return c, nil
}

func (a *app) loadOrCreate(ctx context.Context, name string) (*vector.Collection, error) {
	c, err := a.load(ctx, name)
	if isNotFound(err) {
		a.logger.Debug("creating collection", zap.String("name", name))
		return vector.NewCollection(), nil
	}
	return c, err
}

func (a *app) save(ctx context.Context, name string, c *vector.Collection) error {
	s, err := a.openStore()
	if err != nil {
		return err
	}
	if err := s.Save(ctx, name, c); err != nil {
		return err
	}
	a.logger.Info("collection saved", zap.String("name", name), zap.Int("vectors", c.Len()))
	return nil
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", s, err)
	}
	return i, nil
}

// printCollection writes one vector per line; an empty collection prints nothing
func printCollection(cmd *cobra.Command, c *vector.Collection) {
	if c.IsEmpty() {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), c)
}
