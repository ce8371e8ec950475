// Command igbackfill fills in missing Instagram handles on barracas by
// matching them against registration contact data. It runs dry by default;
// pass -apply to persist the matches.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"coastal/config"
	logs "coastal/internal/infra/log"
	"coastal/internal/infra/persistence/postgres"
	"coastal/internal/usecase"
	"coastal/internal/usecase/impl"

	"go.uber.org/fx"
)

type runParams struct {
	fx.In
	fx.Shutdowner

	BackfillUC usecase.BackfillUsecase
	Logger     *slog.Logger
}

func main() {
	apply := flag.Bool("apply", false, "persist matched handles instead of reporting only")
	flag.Parse()

	app := fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewBarracaRepository,
			postgres.NewRegistrationRepository,
			impl.NewBackfillService,
		),
		fx.Invoke(func(params runParams) {
			go runBackfill(params, *apply)
		}),
	)

	app.Run()
}

func runBackfill(params runParams, apply bool) {
	report, err := params.BackfillUC.Run(context.Background(), apply)
	if err != nil {
		params.Logger.Error("backfill run failed", slog.Any("error", err))
		_ = params.Shutdown(fx.ExitCode(1))

		return
	}

	printReport(report)

	code := 0
	if len(report.Errors) > 0 {
		code = 1
	}
	_ = params.Shutdown(fx.ExitCode(code))
}

func printReport(report *usecase.BackfillReport) {
	mode := "apply"
	if report.DryRun {
		mode = "dry-run"
	}

	fmt.Printf("Instagram backfill (%s)\n", mode)
	fmt.Printf("  scanned:     %d\n", report.Scanned)
	fmt.Printf("  already set: %d\n", report.AlreadySet)
	fmt.Printf("  matched:     %d\n", report.Matched)
	fmt.Printf("  updated:     %d\n", report.Updated)
	fmt.Printf("  unmatched:   %d\n", report.Unmatched)
	if len(report.Errors) > 0 {
		fmt.Fprintf(os.Stderr, "  errors (%d):\n", len(report.Errors))
		for _, line := range report.Errors {
			fmt.Fprintf(os.Stderr, "    %s\n", line)
		}
	}
}
