package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chriskampolis/tably/internal/guard"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Exchange username and password for an API token",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, client := boot()

		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		reader := bufio.NewReader(cmd.InOrStdin())
		if username == "" {
			fmt.Fprint(cmd.OutOrStdout(), "Username: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read username: %w", err)
			}
			username = strings.TrimSpace(line)
		}
		if password == "" {
			fmt.Fprint(cmd.OutOrStdout(), "Password: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			password = strings.TrimSpace(line)
		}

		pair, err := client.Login(cmd.Context(), username, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		if err := store.Login(pair.Access, pair.Refresh); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s.\n", username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Erase the stored tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _ := boot()
		if err := store.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		return nil
	},
}

var whoamiCmd = guarded(&cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user and role",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := boot()
		profile, err := client.Me(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", profile.Username, profile.Role)
		return nil
	},
})

func init() {
	loginCmd.Flags().String("username", "", "username (prompted when omitted)")
	loginCmd.Flags().String("password", "", "password (prompted when omitted)")
}

// confirm asks a y/N question on the command's streams.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// guarded wraps a command with the session guard as its pre-run hook.
func guarded(cmd *cobra.Command) *cobra.Command {
	cmd.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		store, _ := boot()
		return guard.Require(store)(c, args)
	}
	return cmd
}
