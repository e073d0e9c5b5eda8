package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	fiv "github.com/no1Abhay/HEAT-EXCHANGER-ANALYSIS/internal/calc/fiv"
	report "github.com/no1Abhay/HEAT-EXCHANGER-ANALYSIS/internal/calc/report"
)

// Offline analysis: reads design parameters from a JSON file, prints the
// acceptance verdicts and writes the PDF report next to them.
func main() {
	paramsPath := flag.String("params", "params.json", "path to the design parameters JSON file")
	outPath := flag.String("out", "CEM_Heat_Exchanger_FIV_Analysis.pdf", "path of the PDF report to write")
	flag.Parse()

	data, err := os.ReadFile(*paramsPath)
	if err != nil {
		log.Fatalf("read params: %v", err)
	}
	var input fiv.Input
	if err := json.Unmarshal(data, &input); err != nil {
		log.Fatalf("parse params: %v", err)
	}
	if err := input.Validate(); err != nil {
		log.Printf("supported tube array patterns: %v", fiv.Patterns())
		log.Fatalf("invalid params: %v", err)
	}

	res, err := fiv.Calculate(input)
	if err != nil {
		log.Fatalf("analysis failed: %v", err)
	}
	criteria := fiv.Evaluate(input, res)

	fmt.Printf("Natural Frequency = %.2f Hz\n", res.NaturalFrequencyHz)
	fmt.Printf("Vortex Shedding Frequency = %.2f Hz\n", res.VortexSheddingHz)
	fmt.Println()
	for _, row := range criteria.Rows() {
		status := "ACCEPTABLE"
		if !row.Criterion.Acceptable {
			status = "NOT ACCEPTABLE"
		}
		fmt.Printf("%-26s %-32s limit %-12s %s\n", row.Mechanism, row.Criterion.Value, row.Criterion.Limit, status)
	}

	pdf := report.Build(input, res, criteria)
	if err := pdf.OutputFileAndClose(*outPath); err != nil {
		log.Fatalf("write report: %v", err)
	}
	log.Printf("report written to %s", *outPath)
}
