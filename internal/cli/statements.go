package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"rental-ops/internal/dto"
	"rental-ops/internal/models"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newStatementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "statements",
		Aliases: []string{"statement"},
		Short:   "Generate, publish and render owner statements",
	}

	cmd.AddCommand(
		newStatementsGenerateCmd(),
		newStatementsPublishCmd(),
		newStatementsRenderCmd(),
	)
	return cmd
}

func newStatementsGenerateCmd() *cobra.Command {
	var (
		propertyID string
		year       int
		month      int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the statement for a property and month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatementsGenerate(cmd, &dto.GenerateStatementRequest{
				PropertyID: propertyID,
				Year:       year,
				Month:      month,
			})
		},
	}

	cmd.Flags().StringVar(&propertyID, "property", "", "property ID (required)")
	cmd.Flags().IntVar(&year, "year", 0, "statement year (required)")
	cmd.Flags().IntVar(&month, "month", 0, "statement month 1-12 (required)")
	_ = cmd.MarkFlagRequired("property")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}

func runStatementsGenerate(cmd *cobra.Command, req *dto.GenerateStatementRequest) error {
	if _, err := models.NewStatementPeriod(req.Year, req.Month); err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	statement, err := a.container.StatementService.Generate(cmd.Context(), models.SystemCaller(), req)
	if err != nil {
		return fmt.Errorf("generating statement: %w", err)
	}
	return printStatement(cmd, statement)
}

func newStatementsPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish <id>",
		Short: "Publish a statement so its owner can see it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseStatementID(args[0])
			if err != nil {
				return err
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			statement, err := a.container.StatementService.Publish(cmd.Context(), models.SystemCaller(), id)
			if err != nil {
				return fmt.Errorf("publishing statement: %w", err)
			}
			return printStatement(cmd, statement)
		},
	}
}

func newStatementsRenderCmd() *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "render <id>",
		Short: "Write a statement document to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseStatementID(args[0])
			if err != nil {
				return err
			}
			format = strings.ToLower(format)
			if format != models.DocumentFormatPDF && format != models.DocumentFormatXLSX {
				return fmt.Errorf("unsupported format %q (use pdf or xlsx)", format)
			}
			return runStatementsRender(cmd.Context(), cmd, id, format, out)
		},
	}

	cmd.Flags().StringVar(&format, "format", models.DocumentFormatPDF, "document format (pdf|xlsx)")
	cmd.Flags().StringVar(&out, "out", "", "output file (default: the document's own filename)")

	return cmd
}

func runStatementsRender(ctx context.Context, cmd *cobra.Command, id uuid.UUID, format, out string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	doc, err := a.container.DocumentService.Render(ctx, models.SystemCaller(), id, format)
	if err != nil {
		return fmt.Errorf("rendering statement: %w", err)
	}

	if out == "" {
		out = doc.Filename
	}
	if err := os.WriteFile(out, doc.Content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", out, len(doc.Content))
	return nil
}

func parseStatementID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid statement ID %q", raw)
	}
	return id, nil
}

func printStatement(cmd *cobra.Command, statement *models.OwnerStatement) error {
	resp := dto.NewStatementResponse(statement)
	if isJSON() {
		return printJSON(cmd.OutOrStdout(), resp)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Statement %s\n", resp.ID)
	fmt.Fprintf(w, "  Property:       %s\n", resp.PropertyID)
	fmt.Fprintf(w, "  Period:         %s\n", resp.Period)
	fmt.Fprintf(w, "  Revenue:        %s\n", statement.TotalRevenue.StringFixed(2))
	fmt.Fprintf(w, "  Expenses:       %s\n", statement.TotalExpenses.StringFixed(2))
	fmt.Fprintf(w, "  Net income:     %s\n", statement.NetIncome.StringFixed(2))
	fmt.Fprintf(w, "  Management fee: %s\n", statement.ManagementFee.StringFixed(2))
	fmt.Fprintf(w, "  Net payout:     %s\n", statement.NetPayout().StringFixed(2))
	fmt.Fprintf(w, "  Published:      %t\n", resp.IsPublished)
	return nil
}
