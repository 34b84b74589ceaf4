package main

import (
	"github.com/spf13/cobra"

	"github.com/chriskampolis/tably/internal/view"
)

var completedOrdersCmd = guarded(&cobra.Command{
	Use:   "completed-orders",
	Short: "List completed orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := boot()
		orders, err := client.CompletedOrders(cmd.Context())
		if err != nil {
			return err
		}
		return view.Orders(cmd.OutOrStdout(), orders)
	},
})
