package cli

import (
	"io"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/portfolio/internal/adapters/cli"
	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/secondary"
)

// entityCommands describes the create/list/show/update/delete tree of one entity.
type entityCommands[T any, P models.EntityPtr[T], F any] struct {
	name    string // singular, used in Use and messages
	short   string
	adapter func(out io.Writer) *cliadapter.EntityAdapter[T, P, F]

	// fields registers the record flags shared by create and update.
	fields func(cmd *cobra.Command)
	// fieldNames lists the flags registered by fields.
	fieldNames []string
	// apply copies the changed field flags onto item.
	apply func(cmd *cobra.Command, item P) error

	filterFlags func(cmd *cobra.Command)
	filters     func(cmd *cobra.Command) (F, error)
}

func (e entityCommands[T, P, F]) command() *cobra.Command {
	root := &cobra.Command{
		Use:   e.name,
		Short: e.short,
	}
	root.AddCommand(e.createCmd(), e.listCmd(), e.showCmd(), e.updateCmd(), e.deleteCmd())
	return root
}

func (e entityCommands[T, P, F]) createCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new " + e.name,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			item := P(new(T))
			if err := e.apply(cmd, item); err != nil {
				return err
			}
			return e.adapter(cmd.OutOrStdout()).Create(cmd.Context(), item)
		},
	}
	e.fields(cmd)
	return cmd
}

func (e entityCommands[T, P, F]) updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update an existing " + e.name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], e.name)
			if err != nil {
				return err
			}
			if !anyChanged(cmd, e.fieldNames...) {
				return errNoChanges
			}

			adapter := e.adapter(cmd.OutOrStdout())
			item, err := adapter.Load(cmd.Context(), id)
			if err != nil {
				return err
			}
			if err := e.apply(cmd, item); err != nil {
				return err
			}
			return adapter.Update(cmd.Context(), item)
		},
	}
	e.fields(cmd)
	return cmd
}

func (e entityCommands[T, P, F]) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show " + e.name + " details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], e.name)
			if err != nil {
				return err
			}
			return e.adapter(cmd.OutOrStdout()).Show(cmd.Context(), id)
		},
	}
}

func (e entityCommands[T, P, F]) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a " + e.name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], e.name)
			if err != nil {
				return err
			}
			return e.adapter(cmd.OutOrStdout()).Delete(cmd.Context(), id)
		},
	}
}

func (e entityCommands[T, P, F]) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + e.name + " records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := e.filters(cmd)
			if err != nil {
				return err
			}
			page, err := pageFlags(cmd)
			if err != nil {
				return err
			}
			return e.adapter(cmd.OutOrStdout()).List(cmd.Context(), filters, page)
		},
	}
	if e.filterFlags != nil {
		e.filterFlags(cmd)
	}
	cmd.Flags().Int("page", 1, "Page number")
	cmd.Flags().Int("size", 0, "Page size (default from config)")
	cmd.Flags().String("sort", "", "Sort column")
	cmd.Flags().Bool("desc", false, "Sort descending")
	return cmd
}

func pageFlags(cmd *cobra.Command) (secondary.Page, error) {
	var page secondary.Page
	page.Number, _ = cmd.Flags().GetInt("page")
	page.Size, _ = cmd.Flags().GetInt("size")
	page.SortBy, _ = cmd.Flags().GetString("sort")
	page.Descending, _ = cmd.Flags().GetBool("desc")
	if page.Number < 1 {
		return page, errInvalidPage
	}
	return page, nil
}
