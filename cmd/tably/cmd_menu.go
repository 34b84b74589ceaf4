package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chriskampolis/tably/app/models"
	"github.com/chriskampolis/tably/internal/api"
	"github.com/chriskampolis/tably/internal/order"
	"github.com/chriskampolis/tably/internal/view"
	"github.com/chriskampolis/tably/pkg/validate"
)

var menuCmd = guarded(&cobra.Command{
	Use:   "menu",
	Short: "Browse the menu, grouped by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := boot()
		items, err := client.ListMenuItems(cmd.Context())
		if err != nil {
			return err
		}
		return view.Menu(cmd.OutOrStdout(), order.GroupMenu(items))
	},
})

var menuItemsCmd = guarded(&cobra.Command{
	Use:   "menu-items",
	Short: "Manage menu items (manager)",
})

var menuItemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List menu items",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := boot()
		items, err := client.ListMenuItems(cmd.Context())
		if err != nil {
			return err
		}
		return view.Menu(cmd.OutOrStdout(), order.GroupMenu(items))
	},
}

var menuItemsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a menu item",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := boot()

		input := api.MenuItemInput{}
		input.Name, _ = cmd.Flags().GetString("name")
		input.Price, _ = cmd.Flags().GetString("price")
		input.Availability, _ = cmd.Flags().GetInt("availability")
		category, _ := cmd.Flags().GetString("category")
		input.Category = models.Category(category)

		if errs := validate.Struct(input); validate.HasErrors(errs) {
			return validationError(errs)
		}

		item, err := client.CreateMenuItem(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("failed to create menu item: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created menu item #%d %q.\n", item.ID, item.Name)
		return nil
	},
}

var menuItemsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a menu item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := boot()
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("id must be an integer: %q", args[0])
		}

		var patch api.MenuItemPatch
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			patch.Name = &v
		}
		if cmd.Flags().Changed("price") {
			v, _ := cmd.Flags().GetString("price")
			patch.Price = &v
		}
		if cmd.Flags().Changed("availability") {
			v, _ := cmd.Flags().GetInt("availability")
			patch.Availability = &v
		}
		if cmd.Flags().Changed("category") {
			v, _ := cmd.Flags().GetString("category")
			cat := models.Category(v)
			patch.Category = &cat
		}

		item, err := client.UpdateMenuItem(cmd.Context(), id, patch)
		if err != nil {
			return fmt.Errorf("failed to update menu item: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated menu item #%d %q.\n", item.ID, item.Name)
		return nil
	},
}

var menuItemsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a menu item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := boot()
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("id must be an integer: %q", args[0])
		}
		if !confirm(cmd, fmt.Sprintf("Delete menu item #%d?", id)) {
			return nil
		}
		if err := client.DeleteMenuItem(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete menu item: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted menu item #%d.\n", id)
		return nil
	},
}

func validationError(errs map[string]string) error {
	for _, msg := range errs {
		return fmt.Errorf("invalid input: %s", msg)
	}
	return nil
}

func init() {
	menuItemsCreateCmd.Flags().String("name", "", "item name")
	menuItemsCreateCmd.Flags().String("price", "", "decimal price, e.g. 9.50")
	menuItemsCreateCmd.Flags().Int("availability", 0, "portions available")
	menuItemsCreateCmd.Flags().String("category", "MAIN", "APPETIZER, MAIN, DESSERT or DRINK")

	menuItemsUpdateCmd.Flags().String("name", "", "item name")
	menuItemsUpdateCmd.Flags().String("price", "", "decimal price")
	menuItemsUpdateCmd.Flags().Int("availability", 0, "portions available")
	menuItemsUpdateCmd.Flags().String("category", "", "APPETIZER, MAIN, DESSERT or DRINK")

	menuItemsCmd.AddCommand(menuItemsListCmd)
	menuItemsCmd.AddCommand(menuItemsCreateCmd)
	menuItemsCmd.AddCommand(menuItemsUpdateCmd)
	menuItemsCmd.AddCommand(menuItemsDeleteCmd)
}
