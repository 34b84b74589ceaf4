// Package view renders backend data as terminal tables.
package view

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/chriskampolis/tably/app/models"
	"github.com/chriskampolis/tably/internal/order"
)

// Menu prints the menu grouped by category in display order.
func Menu(w io.Writer, groups []order.CategoryGroup) error {
	for _, group := range groups {
		fmt.Fprintf(w, "%s\n", group.Category.Label())

		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
		fmt.Fprintln(tw, "  ID\tNAME\tPRICE\tAVAILABLE")
		for _, item := range group.Items {
			fmt.Fprintf(tw, "  %d\t%s\t%s\t%d\n", item.ID, item.Name, item.Price, item.Availability)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}

// OrderSheet prints the menu with draft quantities and the derived total.
func OrderSheet(w io.Writer, wf *order.Workflow) error {
	fmt.Fprintf(w, "Order for table %d\n\n", wf.Table())

	for _, group := range wf.GroupedMenu() {
		fmt.Fprintf(w, "%s\n", group.Category.Label())

		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
		fmt.Fprintln(tw, "  ID\tNAME\tPRICE\tAVAILABLE\tQTY")
		for _, item := range group.Items {
			fmt.Fprintf(tw, "  %d\t%s\t%s\t%d\t%d\n",
				item.ID, item.Name, item.Price, item.Availability, wf.Quantity(item.ID))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	if current := wf.Current(); current != nil {
		fmt.Fprintf(w, "Current order: #%d (%s)\n", current.ID, current.Status)
	}
	fmt.Fprintf(w, "Total: %.2f\n", wf.Total())
	return nil
}

// Orders prints a list of orders, one row each.
func Orders(w io.Writer, orders []models.Order) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ID\tTABLE\tPLACED BY\tSTATUS\tCREATED\tTOTAL")
	for _, o := range orders {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%.2f\n",
			o.ID, o.TableNumber, o.PlacedBy, o.Status, o.CreatedAt, o.TotalPrice)
	}
	return tw.Flush()
}

// Users prints staff accounts, one row each.
func Users(w io.Writer, users []models.User) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tNAME\tROLE\tACTIVE")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s %s\t%s\t%t\n",
			u.ID, u.Username, u.Email, u.FirstName, u.LastName, u.Role, u.IsActive)
	}
	return tw.Flush()
}
