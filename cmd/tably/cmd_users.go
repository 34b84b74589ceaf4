package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chriskampolis/tably/app/models"
	"github.com/chriskampolis/tably/internal/api"
	"github.com/chriskampolis/tably/internal/view"
	"github.com/chriskampolis/tably/pkg/validate"
)

var usersCmd = guarded(&cobra.Command{
	Use:   "users",
	Short: "Manage staff accounts (manager)",
})

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List staff accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := boot()
		users, err := client.ListUsers(cmd.Context())
		if err != nil {
			return err
		}
		return view.Users(cmd.OutOrStdout(), users)
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a staff account",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := boot()

		input := api.UserInput{}
		input.Username, _ = cmd.Flags().GetString("username")
		input.Email, _ = cmd.Flags().GetString("email")
		input.FirstName, _ = cmd.Flags().GetString("first-name")
		input.LastName, _ = cmd.Flags().GetString("last-name")
		input.Password, _ = cmd.Flags().GetString("password")
		role, _ := cmd.Flags().GetString("role")
		input.Role = models.UserRole(role)

		if errs := validate.Struct(input); validate.HasErrors(errs) {
			return validationError(errs)
		}

		user, err := client.CreateUser(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created user #%d %q.\n", user.ID, user.Username)
		return nil
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a staff account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := boot()
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("id must be an integer: %q", args[0])
		}

		var patch api.UserPatch
		if cmd.Flags().Changed("email") {
			v, _ := cmd.Flags().GetString("email")
			patch.Email = &v
		}
		if cmd.Flags().Changed("first-name") {
			v, _ := cmd.Flags().GetString("first-name")
			patch.FirstName = &v
		}
		if cmd.Flags().Changed("last-name") {
			v, _ := cmd.Flags().GetString("last-name")
			patch.LastName = &v
		}
		if cmd.Flags().Changed("role") {
			v, _ := cmd.Flags().GetString("role")
			role := models.UserRole(v)
			patch.Role = &role
		}
		if cmd.Flags().Changed("active") {
			v, _ := cmd.Flags().GetBool("active")
			patch.IsActive = &v
		}

		user, err := client.UpdateUser(cmd.Context(), id, patch)
		if err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated user #%d %q.\n", user.ID, user.Username)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a staff account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := boot()
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("id must be an integer: %q", args[0])
		}
		if !confirm(cmd, fmt.Sprintf("Delete user #%d?", id)) {
			return nil
		}
		if err := client.DeleteUser(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted user #%d.\n", id)
		return nil
	},
}

func init() {
	usersCreateCmd.Flags().String("username", "", "login name")
	usersCreateCmd.Flags().String("email", "", "email address")
	usersCreateCmd.Flags().String("first-name", "", "first name")
	usersCreateCmd.Flags().String("last-name", "", "last name")
	usersCreateCmd.Flags().String("role", "employee", "manager or employee")
	usersCreateCmd.Flags().String("password", "", "initial password")

	usersUpdateCmd.Flags().String("email", "", "email address")
	usersUpdateCmd.Flags().String("first-name", "", "first name")
	usersUpdateCmd.Flags().String("last-name", "", "last name")
	usersUpdateCmd.Flags().String("role", "", "manager or employee")
	usersUpdateCmd.Flags().Bool("active", true, "whether the account is active")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersCreateCmd)
	usersCmd.AddCommand(usersUpdateCmd)
	usersCmd.AddCommand(usersDeleteCmd)
}
