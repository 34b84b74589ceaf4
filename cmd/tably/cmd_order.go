package main

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chriskampolis/tably/internal/order"
	"github.com/chriskampolis/tably/internal/view"
)

var orderCmd = guarded(&cobra.Command{
	Use:   "order",
	Short: "Interactive order screen for a table",
	Long: `Open the order screen for a table. Commands inside the screen:

  table <n>        switch to table n (loads its in-progress order, if any)
  set <id> <qty>   set the draft quantity for a menu item
  show             redraw the menu with quantities and total
  submit           submit the draft as the table's order
  complete         mark the current order completed (asks for confirmation)
  quit             leave the order screen`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client := boot()
		table, _ := cmd.Flags().GetInt("table")

		wf := order.New(client)
		if err := wf.LoadMenu(cmd.Context()); err != nil {
			return fmt.Errorf("load menu: %w", err)
		}
		if err := wf.SelectTable(cmd.Context(), table); err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Could not load orders for table %d: %v\n", table, err)
		}

		out := cmd.OutOrStdout()
		if err := view.OrderSheet(out, wf); err != nil {
			return err
		}

		scanner := bufio.NewScanner(cmd.InOrStdin())
		fmt.Fprint(out, "> ")
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "quit" || line == "exit" {
				return nil
			}
			if line != "" {
				runOrderCommand(cmd, wf, line)
			}
			fmt.Fprint(out, "> ")
		}
		return scanner.Err()
	},
})

func runOrderCommand(cmd *cobra.Command, wf *order.Workflow, line string) {
	out := cmd.OutOrStdout()
	fields := strings.Fields(line)

	switch fields[0] {
	case "table":
		if len(fields) != 2 {
			fmt.Fprintln(out, "usage: table <n>")
			return
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n <= 0 {
			fmt.Fprintln(out, "table number must be a positive integer")
			return
		}
		if err := wf.SelectTable(cmd.Context(), n); err != nil {
			fmt.Fprintf(out, "Could not load orders for table %d: %v\n", n, err)
			return
		}
		_ = view.OrderSheet(out, wf)

	case "set":
		if len(fields) != 3 {
			fmt.Fprintln(out, "usage: set <id> <qty>")
			return
		}
		id, err1 := strconv.Atoi(fields[1])
		qty, err2 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil {
			fmt.Fprintln(out, "id and qty must be integers")
			return
		}
		if err := wf.SetQuantity(id, qty); err != nil {
			fmt.Fprintln(out, err)
			return
		}
		fmt.Fprintf(out, "Total: %.2f\n", wf.Total())

	case "show":
		_ = view.OrderSheet(out, wf)

	case "submit":
		placed, err := wf.Submit(cmd.Context())
		switch {
		case errors.Is(err, order.ErrEmptyOrder):
			fmt.Fprintln(out, "Select at least one item before submitting.")
		case err != nil:
			fmt.Fprintf(out, "Error submitting order: %v\n", err)
		default:
			fmt.Fprintf(out, "Order #%d submitted for table %d.\n", placed.ID, placed.TableNumber)
		}

	case "complete":
		current := wf.Current()
		if current == nil {
			fmt.Fprintln(out, "No order to complete.")
			return
		}
		if !confirm(cmd, fmt.Sprintf("Complete order #%d? This cannot be undone.", current.ID)) {
			return
		}
		if err := wf.Complete(cmd.Context()); err != nil {
			fmt.Fprintf(out, "Could not complete order: %v\n", err)
			return
		}
		fmt.Fprintf(out, "Order #%d marked as completed.\n", current.ID)

	default:
		fmt.Fprintf(out, "unknown command %q — table, set, show, submit, complete, quit\n", fields[0])
	}
}

func init() {
	orderCmd.Flags().Int("table", 1, "table number to open")
}
