package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/todo-tracker/pkg/client"
)

func newTodoCmd(opts *rootOptions) *cobra.Command {
	todoCmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage todos",
	}

	var createProject int64
	createCmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a todo in a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.client().CreateTodo(cmd.Context(), createProject, args[0], optionalString(cmd, "description"))
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), t)
		},
	}
	createCmd.Flags().Int64Var(&createProject, "project", 0, "Project id")
	createCmd.Flags().String("description", "", "Todo description")
	_ = createCmd.MarkFlagRequired("project")

	var listProject int64
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List todos, optionally for one project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.client()
			var (
				todos []client.Todo
				err   error
			)
			if listProject > 0 {
				todos, err = c.ListProjectTodos(cmd.Context(), listProject)
			} else {
				todos, err = c.ListTodos(cmd.Context())
			}
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), todos)
		},
	}
	listCmd.Flags().Int64Var(&listProject, "project", 0, "Only todos of this project")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			t, err := opts.client().GetTodo(cmd.Context(), id)
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), t)
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			changes := client.TodoChanges{
				Title:       optionalString(cmd, "title"),
				Description: optionalString(cmd, "description"),
			}
			if cmd.Flags().Changed("completed") {
				v, _ := cmd.Flags().GetBool("completed")
				changes.Completed = &v
			}
			t, err := opts.client().UpdateTodo(cmd.Context(), id, changes)
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), t)
		},
	}
	updateCmd.Flags().String("title", "", "New title")
	updateCmd.Flags().String("description", "", "New description")
	updateCmd.Flags().Bool("completed", false, "Mark completed (--completed=false to reopen)")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res, err := opts.client().DeleteTodo(cmd.Context(), id)
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), res)
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a todo between open and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			t, err := opts.client().ToggleTodo(cmd.Context(), id)
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), t)
		},
	}

	var (
		pageProject int64
		pageCursor  int64
		pageLimit   int
		pageAll     bool
	)
	pageCmd := &cobra.Command{
		Use:   "page",
		Short: "Page through a project's todos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.client()
			if pageAll {
				todos, err := client.AllTodos(cmd.Context(), c, pageProject, pageLimit)
				if err != nil {
					return err
				}
				return opts.print(cmd.OutOrStdout(), todos)
			}
			if pageCursor < 0 {
				return fmt.Errorf("--cursor must not be negative")
			}
			page, err := c.TodoPage(cmd.Context(), pageProject, pageCursor, pageLimit)
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), page)
		},
	}
	pageCmd.Flags().Int64Var(&pageProject, "project", 0, "Project id")
	pageCmd.Flags().Int64Var(&pageCursor, "cursor", 0, "Id of the last todo already seen")
	pageCmd.Flags().IntVar(&pageLimit, "limit", 0, "Page size (server default when 0)")
	pageCmd.Flags().BoolVar(&pageAll, "all", false, "Fetch every page")
	_ = pageCmd.MarkFlagRequired("project")

	todoCmd.AddCommand(createCmd, listCmd, getCmd, updateCmd, deleteCmd, toggleCmd, pageCmd)
	return todoCmd
}
