package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/simaogato/lifeplan-backend/internal/adapter/report"
	"github.com/simaogato/lifeplan-backend/internal/adapter/repository/memory"
	"github.com/simaogato/lifeplan-backend/internal/domain"
	"github.com/simaogato/lifeplan-backend/internal/usecase/ledger"
	"github.com/simaogato/lifeplan-backend/internal/usecase/planner"
)

func newSimulateCmd(newLogger func() (*zap.Logger, error)) *cobra.Command {
	var (
		file    string
		pdfPath string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Project a scenario file year by year and score it",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			scenario, err := LoadScenario(file)
			if err != nil {
				return err
			}

			plan, err := runScenario(cmd, scenario, log)
			if err != nil {
				return err
			}

			if pdfPath != "" {
				if err := writePDF(pdfPath, plan); err != nil {
					return err
				}
				log.Info("pdf report written", zap.String("path", pdfPath))
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(plan)
			}
			return printPlan(cmd.OutOrStdout(), plan)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "scenario YAML file")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "also write a PDF report to this path")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the plan as JSON")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// runScenario loads the scenario's properties into a fresh session and simulates it
func runScenario(cmd *cobra.Command, scenario *Scenario, log *zap.Logger) (*planner.Plan, error) {
	ctx := cmd.Context()
	ledgerService := ledger.NewLedgerService(memory.NewLedgerRepository(), log)
	plannerService := planner.NewPlannerService(ledgerService, memory.NewSubmissionLog(log), nil, log)

	holdings, err := scenario.HoldingInputs()
	if err != nil {
		return nil, err
	}

	sessionID := uuid.Nil
	if len(holdings) > 0 {
		if sessionID, err = ledgerService.NewSession(ctx); err != nil {
			return nil, err
		}
		for _, h := range holdings {
			if _, err := ledgerService.AddHolding(ctx, sessionID, h); err != nil {
				return nil, fmt.Errorf("property %q: %w", h.Name, err)
			}
		}
	}

	return plannerService.Simulate(ctx, sessionID, scenario.Input())
}

func writePDF(path string, plan *planner.Plan) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := report.RenderPDF(f, plan, time.Now()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printPlan(w io.Writer, plan *planner.Plan) error {
	score := plan.Score
	fmt.Fprintf(w, "Score: %d (grade %s)\n", score.Score, score.Grade)
	fmt.Fprintf(w, "Depletion: %s\n", domain.DescribeDepletion(score.DepletionAge))
	fmt.Fprintf(w, "Monthly spend: %s만원\n", plan.TotalMonthlySpend)
	fmt.Fprintf(w, "Outlook: %s\n", plan.Commentary.Summary)
	for _, sale := range plan.Sales {
		fmt.Fprintf(w, "Sale: %s at %d (%d억)\n", sale.Name, sale.Age, domain.WonToEok(sale.Proceeds))
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "age\tliquid(억)\treal estate(억)\t")
	chart := plan.Chart
	for i, age := range chart.Ages {
		fmt.Fprintf(tw, "%d\t%d\t%d\t\n", age, chart.LiquidEok[i], chart.RealEstateEok[i])
	}
	return tw.Flush()
}
