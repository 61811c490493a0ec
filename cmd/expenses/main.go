package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/SaErPu/expense-tracker-web/internal/adapter/gateway"
	"github.com/SaErPu/expense-tracker-web/internal/domain"
	"github.com/SaErPu/expense-tracker-web/internal/infrastructure/config"
	"github.com/SaErPu/expense-tracker-web/internal/infrastructure/logger"
	"github.com/SaErPu/expense-tracker-web/internal/infrastructure/metrics"
	"github.com/SaErPu/expense-tracker-web/internal/usecase"
)

var (
	baseURL string
	timeout time.Duration
)

// printSink surfaces transient notices on the terminal.
type printSink struct{}

func (printSink) Notify(n usecase.Notice) {
	if n.Kind == usecase.NoticeFailure {
		fmt.Fprintln(os.Stderr, n.Message)
		return
	}
	fmt.Println(n.Message)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "expenses",
		Short: "Personal expense ledger",
		Long:  `Record, edit, categorize, filter and total expenses stored by the expense gateway.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "", "Base URL of the expense gateway (default $GATEWAY_URL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Request timeout (default $GATEWAY_TIMEOUT)")

	rootCmd.AddCommand(
		newListCmd(),
		newTotalCmd(),
		newAddCmd(),
		newEditCmd(),
		newDeleteCmd(),
		newGetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newUseCase builds the full client stack from env config and flags.
func newUseCase() (*usecase.ExpenseUseCase, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if baseURL != "" {
		cfg.GatewayURL = baseURL
	}
	if timeout > 0 {
		cfg.GatewayTimeout = timeout
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	client := gateway.NewClient(gateway.Config{
		BaseURL:              cfg.GatewayURL,
		Timeout:              cfg.GatewayTimeout,
		RetryInitialInterval: cfg.RetryInitialInterval,
		RetryMaxInterval:     cfg.RetryMaxInterval,
		RetryMaxElapsedTime:  cfg.RetryMaxElapsedTime,
	}, log, metrics.New())

	return usecase.NewExpenseUseCase(client, usecase.NewListState(), printSink{}, log), nil
}

func newListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses, optionally filtered by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := newUseCase()
			if err != nil {
				return err
			}
			if err := uc.Load(cmd.Context()); err != nil {
				return err
			}

			uc.State().SetCategoryFilter(category)
			printTable(uc.State().FilteredView())
			fmt.Printf("Total: %s\n", uc.State().Total().StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category filter (Groceries, Transport, Leisure, Bills, Other)")
	return cmd
}

func newTotalCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "total",
		Short: "Print the total of the (filtered) expense list",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := newUseCase()
			if err != nil {
				return err
			}
			if err := uc.Load(cmd.Context()); err != nil {
				return err
			}

			uc.State().SetCategoryFilter(category)
			fmt.Println(uc.State().Total().StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category filter")
	return cmd
}

func newAddCmd() *cobra.Command {
	draft := domain.NewDraft()

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := newUseCase()
			if err != nil {
				return err
			}

			created, err := uc.CreateExpense(cmd.Context(), draft)
			if err != nil {
				return err
			}
			fmt.Printf("Created expense %d\n", *created.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&draft.Description, "description", "d", "", "What the money was spent on")
	cmd.Flags().StringVarP(&draft.Amount, "amount", "a", "", "Amount, e.g. 12.50")
	cmd.Flags().StringVar(&draft.Date, "date", draft.Date, "Date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&draft.Category, "category", "c", "", "Category (Groceries, Transport, Leisure, Bills, Other)")
	return cmd
}

func newEditCmd() *cobra.Command {
	var overrides domain.Draft

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			uc, err := newUseCase()
			if err != nil {
				return err
			}

			existing, err := uc.GetExpense(cmd.Context(), id)
			if err != nil {
				return err
			}

			// Seed from the current values, then apply changed flags.
			draft := domain.DraftOf(existing)
			if cmd.Flags().Changed("description") {
				draft.Description = overrides.Description
			}
			if cmd.Flags().Changed("amount") {
				draft.Amount = overrides.Amount
			}
			if cmd.Flags().Changed("date") {
				draft.Date = overrides.Date
			}
			if cmd.Flags().Changed("category") {
				draft.Category = overrides.Category
			}

			if _, err := uc.UpdateExpense(cmd.Context(), draft); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&overrides.Description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&overrides.Amount, "amount", "a", "", "New amount")
	cmd.Flags().StringVar(&overrides.Date, "date", "", "New date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&overrides.Category, "category", "c", "", "New category")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense (asks for confirmation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			uc, err := newUseCase()
			if err != nil {
				return err
			}

			confirm := func(_ context.Context, e domain.Expense) (bool, error) {
				if yes {
					return true, nil
				}
				fmt.Printf("Delete %q (%s on %s)? [y/N]: ", e.Description, e.Amount.StringFixed(2), e.Date)
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, err := reader.ReadString('\n')
				if err != nil {
					return false, err
				}
				return isYes(answer), nil
			}

			deleted, err := uc.DeleteExpense(cmd.Context(), id, confirm)
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Println("Aborted")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single expense as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			uc, err := newUseCase()
			if err != nil {
				return err
			}

			expense, err := uc.GetExpense(cmd.Context(), id)
			if err != nil {
				return err
			}
			printJSON(expenseView{
				ID:          *expense.ID,
				Description: expense.Description,
				Amount:      expense.Amount.StringFixed(2),
				Date:        expense.Date.String(),
				Category:    expense.Category.String(),
			})
			return nil
		},
	}
}

type expenseView struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	Category    string `json:"category"`
}

func printTable(expenses []domain.Expense) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tDESCRIPTION\tCATEGORY\tAMOUNT")
	for _, e := range expenses {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			*e.ID, e.Date, truncate(e.Description, 40), e.Category, e.Amount.StringFixed(2))
	}
	w.Flush()
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to render output: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid expense id %q", s)
	}
	return id, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
