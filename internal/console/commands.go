package console

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the console command tree over one in-memory store.
func NewRootCommand(store *Store) *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "In-memory todo console",
		Long: `An in-memory todo console with the same task semantics as the API.

Tasks live only for the duration of the process: run with no arguments to
enter interactive mode, where one session keeps its tasks between commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAddCommand(store),
		newListCommand(store),
		newCompleteCommand(store),
		newUpdateCommand(store),
		newDeleteCommand(store),
	)
	return root
}

func newAddCommand(store *Store) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title> [description]",
		Short: "Create a new task",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var description *string
			if len(args) == 2 {
				description = &args[1]
			}

			task, err := store.Add(args[0], description)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task added: ID %d - %s\n", task.ID, task.Title)
			return nil
		},
	}
}

func newListCommand(store *Store) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Display all tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := store.List()
			out := cmd.OutOrStdout()

			if len(tasks) == 0 {
				fmt.Fprintln(out, "No tasks found. Use 'add' to create a task.")
				return nil
			}

			fmt.Fprintln(out, "Tasks:")
			completed := 0
			for _, task := range tasks {
				status := "[ ]"
				if task.Completed {
					status = "[X]"
					completed++
				}
				fmt.Fprintf(out, "  %d. %s %s\n", task.ID, status, task.Title)
				if task.Description != nil {
					fmt.Fprintf(out, "      Description: %s\n", *task.Description)
				}
			}
			fmt.Fprintf(out, "\nTotal: %d tasks (%d completed, %d pending)\n",
				len(tasks), completed, len(tasks)-completed)
			return nil
		},
	}
}

func newCompleteCommand(store *Store) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Toggle a task's completion status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			task, err := store.ToggleCompletion(id)
			if err != nil {
				return err
			}

			status := "incomplete"
			if task.Completed {
				status = "complete"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %d marked as %s.\n", task.ID, status)
			return nil
		},
	}
}

func newUpdateCommand(store *Store) *cobra.Command {
	var (
		title       string
		description string
	)

	cmd := &cobra.Command{
		Use:   "update <id> [--title] [--description]",
		Short: "Update a task's title and/or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var newTitle, newDescription *string
			if cmd.Flags().Changed("title") {
				newTitle = &title
			}
			if cmd.Flags().Changed("description") {
				newDescription = &description
			}
			if newTitle == nil && newDescription == nil {
				return fmt.Errorf("nothing to update: provide --title and/or --description")
			}

			task, err := store.Update(id, newTitle, newDescription)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %d updated: %s\n", task.ID, task.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new task title")
	cmd.Flags().StringVar(&description, "description", "", "new task description")
	return cmd
}

func newDeleteCommand(store *Store) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := store.Delete(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %d deleted.\n", id)
			return nil
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task ID %q: must be a number", raw)
	}
	return id, nil
}
