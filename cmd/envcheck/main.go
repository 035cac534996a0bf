// Command envcheck runs every fetch operation once against the configured
// upstream and prints the results.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"steadyday.app/internal/app"
	"steadyday.app/internal/config"
	"steadyday.app/internal/core/environment"
	"steadyday.app/pkg/logger"
)

func main() {
	region := flag.String("region", "", "region for the 2-hour forecast and PSI (default national)")
	query := flag.String("query", "", "free-text query for the dengue lookup and the report")
	withReport := flag.Bool("report", false, "also build the combined report for -query")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found or error loading it")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}

	// Keep stdout for results
	slog.SetDefault(logger.NewWithWriter(os.Stderr, logger.ParseLevel(cfg.Logging.Level)).Logger)

	deps, err := app.NewDependencyContainer(app.DependencyConfig{App: cfg})
	if err != nil {
		fmt.Fprintln(os.Stderr, "initialization error:", err)
		os.Exit(1)
	}
	defer func() {
		if err := deps.Cleanup(); err != nil {
			slog.Warn("Error releasing resources", "error", err)
		}
	}()

	application, err := app.NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		fmt.Fprintln(os.Stderr, "initialization error:", err)
		os.Exit(1)
	}

	psiRegion := *region
	if psiRegion == "" {
		psiRegion = "national"
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	uc := application.EnvironmentUseCase()

	fmt.Println("Environmental Data Check")
	fmt.Println("========================")
	printResult("1. 2-hour forecast", uc.TwoHourForecast(ctx, environment.TwoHourRequest{Region: *region}))
	printResult("2. 24-hour forecast", uc.TwentyFourHourForecast(ctx))
	printResult("3. 4-day outlook", uc.FourDayOutlook(ctx))
	printResult("4. PSI", uc.PSI(ctx, psiRegion))
	printResult("5. UV index", uc.UVIndex(ctx))
	printResult("6. Dengue clusters", uc.DengueClusters(ctx, *query))

	if *withReport && *query != "" {
		r := application.ReportUseCase().Build(ctx, *query)
		fmt.Printf("\n7. Report %s (region %s, %s %02d:00, %s)\n", r.ID, r.Region, r.Date, r.TargetHour, r.WeatherSource)
		for _, line := range []string{r.Weather.Summary, r.PSI.Summary, r.UV.Summary, r.Dengue.Summary, r.HistoricalPSI, r.HistoricalUV} {
			fmt.Println("   " + line)
		}
	}
}

func printResult(title string, result environment.FetchResult) {
	mark := "✓"
	if !result.Status {
		mark = "✗"
	} else if result.IsDegraded() {
		mark = "~"
	}

	fmt.Printf("\n%s [%s %s", title, mark, result.Outcome)
	if result.Cause != environment.CauseNone {
		fmt.Printf(", %s", result.Cause)
	}
	fmt.Println("]")
	fmt.Println("   " + result.Summary)
}
