package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// CSVSummaryFormatter renders the summary record as metric/value/
// description rows.
type CSVSummaryFormatter struct{}

func (CSVSummaryFormatter) Name() string { return "csv" }

func (CSVSummaryFormatter) Format(res *Result) ([]byte, error) {
	if res.Summary == nil {
		return nil, fmt.Errorf("csv formatter: result has no summary")
	}
	s := res.Summary

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"Metric", "Value", "Description"},
		{"First Year Withdrawal", FormatCurrency(s.FirstYearWithdrawal), "Nominal withdrawal taken in year 1"},
		{"Mean Final Value", FormatCurrency(s.MeanFinal), "Mean final balance across trials (nominal)"},
		{"Median Final Value", FormatCurrency(s.MedianFinal), "Median final balance across trials (nominal)"},
		{"SD Final Value", FormatCurrency(s.StdDevFinal), "Population standard deviation of final balances (nominal)"},
		{"Mean Final Value (Real)", FormatCurrency(s.MeanFinalReal), "Mean final balance in year-0 purchasing power"},
		{"Median Final Value (Real)", FormatCurrency(s.MedianFinalReal), "Median final balance in year-0 purchasing power"},
		{"SD Final Value (Real)", FormatCurrency(s.StdDevFinalReal), "Population standard deviation, inflation-adjusted"},
		{"Final Year Withdrawal", FormatCurrency(s.FinalYearWithdrawal), "Nominal withdrawal in the final year"},
		{"Depletion Probability", FormatPercent(s.DepletionProbability), "Fraction of trials depleted at or before the horizon"},
		{"Number of Trials", strconv.Itoa(s.NumTrials), "Independent paths simulated"},
		{"Years", strconv.Itoa(s.Years), "Simulation horizon"},
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CSVReport generates CSV file exports for a simulation result.
type CSVReport struct {
	Result *Result
}

// GenerateSummaryCSV writes the summary metrics CSV.
func (r *CSVReport) GenerateSummaryCSV(outputPath string) error {
	data, err := CSVSummaryFormatter{}.Format(r.Result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write summary CSV: %w", err)
	}
	return nil
}

// GeneratePathsCSV writes one row per trial with the full year-by-year
// balance path. Column 0 is the trial index.
func (r *CSVReport) GeneratePathsCSV(outputPath string) error {
	m := r.Result.Matrix
	if m == nil {
		return fmt.Errorf("paths CSV: result has no trial matrix")
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := make([]string, m.Years()+2)
	header[0] = "Trial"
	for t := 0; t <= m.Years(); t++ {
		header[t+1] = "Year" + strconv.Itoa(t)
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := make([]string, m.Years()+2)
	for i := 0; i < m.NumTrials(); i++ {
		row[0] = strconv.Itoa(i)
		for t, v := range m.Row(i) {
			row[t+1] = strconv.FormatFloat(v, 'f', 2, 64)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write trial row: %w", err)
		}
	}

	return nil
}

// GenerateAllCSVReports writes every CSV export into a directory,
// creating it when needed.
func (r *CSVReport) GenerateAllCSVReports(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := r.GenerateSummaryCSV(filepath.Join(outputDir, "simulation_summary.csv")); err != nil {
		return err
	}
	if err := r.GeneratePathsCSV(filepath.Join(outputDir, "simulation_paths.csv")); err != nil {
		return err
	}
	return nil
}
