package main

import (
	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/todo-tracker/pkg/client"
)

func newProjectCmd(opts *rootOptions) *cobra.Command {
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.client().CreateProject(cmd.Context(), args[0], optionalString(cmd, "description"))
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), p)
		},
	}
	createCmd.Flags().String("description", "", "Project description")

	var todoTitles []string
	createWithTodosCmd := &cobra.Command{
		Use:   "create-with-todos <name>",
		Short: "Create a project and its todos in one step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			todos := make([]client.NewTodo, 0, len(todoTitles))
			for _, title := range todoTitles {
				todos = append(todos, client.NewTodo{Title: title})
			}
			res, err := opts.client().CreateProjectWithTodos(cmd.Context(), args[0], optionalString(cmd, "description"), todos)
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), res)
		},
	}
	createWithTodosCmd.Flags().String("description", "", "Project description")
	createWithTodosCmd.Flags().StringArrayVar(&todoTitles, "todo", nil, "Todo title (repeatable)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := opts.client().ListProjects(cmd.Context())
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), projects)
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := opts.client().GetProject(cmd.Context(), id)
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), p)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a project with its todos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res, err := opts.client().GetProjectWithTodos(cmd.Context(), id)
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), res)
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a project's name or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := opts.client().UpdateProject(cmd.Context(), id, client.ProjectChanges{
				Name:        optionalString(cmd, "name"),
				Description: optionalString(cmd, "description"),
			})
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), p)
		},
	}
	updateCmd.Flags().String("name", "", "New name")
	updateCmd.Flags().String("description", "", "New description")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project and all of its todos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res, err := opts.client().DeleteProject(cmd.Context(), id)
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), res)
		},
	}

	projectCmd.AddCommand(createCmd, createWithTodosCmd, listCmd, getCmd, showCmd, updateCmd, deleteCmd)
	return projectCmd
}
