package usecase

import (
	"fmt"
	"io"
	"strings"

	"github.com/oilwatch/backend/internal/domain"
)

const bannerWidth = 50

// WriteSummary prints the human-readable refresh summary for one scraper
// run: totals, up to three removed item names, and the mean percentage
// price change with a directional label.
func WriteSummary(w io.Writer, total int, diff domain.SnapshotDiff) {
	banner := strings.Repeat("=", bannerWidth)

	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "  DATA REFRESH SUMMARY")
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "  Total Active Products:   %d\n", total)
	fmt.Fprintf(w, "  New Products Added:      %d\n", len(diff.Added))
	fmt.Fprintf(w, "  Products Removed:        %d\n", len(diff.Removed))

	if len(diff.Removed) > 0 {
		display := make([]string, 0, 4)
		for i, item := range diff.Removed {
			if i == 3 {
				display = append(display, fmt.Sprintf("...and %d more", len(diff.Removed)-3))
				break
			}
			display = append(display, fmt.Sprintf("%s (%s)", item.Name, item.ItemNo))
		}
		fmt.Fprintf(w, "    -> Gone: %s\n", strings.Join(display, ", "))
	}

	fmt.Fprintf(w, "  Price Changes Detected:  %d\n", len(diff.PriceChanges))

	if avg, ok := diff.AveragePriceChange(); ok {
		direction := "DECREASE"
		if avg > 0 {
			direction = "INCREASE"
		}
		fmt.Fprintf(w, "    -> Average Change:     %+.2f%% (%s)\n", avg, direction)
	}

	fmt.Fprintln(w, banner)
	fmt.Fprintln(w)
}

// WriteEnrichmentSummary prints the per-batch enrichment tallies and the
// files the batch produced.
func WriteEnrichmentSummary(w io.Writer, result EnrichmentResult, outputFile, pipFile string) {
	banner := strings.Repeat("=", 60)

	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "ENRICHMENT SUMMARY")
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Total source items:       %d\n", result.Total)
	fmt.Fprintf(w, "Already existed (skip):   %d\n", result.SkippedExisting)
	fmt.Fprintf(w, "Newly enriched:           %d\n", result.Enriched)
	fmt.Fprintf(w, "Failed:                   %d\n", result.Failed)
	fmt.Fprintf(w, "Final encyclopedia size:  %d\n", len(result.Entries))
	fmt.Fprintf(w, "PIP entries exported:     %d\n", len(result.PIP))
	fmt.Fprintln(w, "Output files:")
	fmt.Fprintf(w, " - %s\n", outputFile)
	fmt.Fprintf(w, " - %s\n", pipFile)
	fmt.Fprintln(w, banner)
}

// WriteMergeSummary prints the tallies of a PIP merge pass.
func WriteMergeSummary(w io.Writer, total, updated, missing int) {
	banner := strings.Repeat("=", bannerWidth)

	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "PIP MERGE SUMMARY")
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Total encyclopedia entries: %d\n", total)
	fmt.Fprintf(w, "PIP links updated:          %d\n", updated)
	fmt.Fprintf(w, "Missing PIP entries:        %d\n", missing)
	fmt.Fprintln(w, banner)
}
