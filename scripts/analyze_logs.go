package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalErrors        int
	VouchersCreated    int
	VouchersUpdated    int
	VouchersDeleted    int
	ValidationFailures int
	BatchRuns          int
	BatchItemFailures  int
	CommitFailures     int
	FailedRequests     int
	ErrorPatterns      map[string]int
}

func main() {
	today := time.Now().Format("2006-01-02")
	logDir := "./logs"

	stats := &LogStats{
		ErrorPatterns: make(map[string]int),
	}

	analyzeErrorLogs(filepath.Join(logDir, fmt.Sprintf("error-%s.log", today)), stats)
	analyzeInfoLogs(filepath.Join(logDir, fmt.Sprintf("info-%s.log", today)), stats)

	printReport(stats)
}

func analyzeErrorLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		stats.TotalErrors++

		if strings.Contains(line, "Failed to create voucher") ||
			strings.Contains(line, "Failed to update voucher") {
			stats.ValidationFailures++
		}

		if strings.Contains(line, "commit failed") {
			stats.CommitFailures++
		}

		extractErrorPattern(line, stats)
	}
}

func analyzeInfoLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	batchRe := regexp.MustCompile(`Batch \w+ finished: (\d+) succeeded, (\d+) failed of (\d+)`)
	statusRe := regexp.MustCompile(`Status: (\d{3})`)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.Contains(line, "Successfully created voucher") || strings.Contains(line, "Created voucher") {
			stats.VouchersCreated++
		}
		if strings.Contains(line, "Updated voucher") {
			stats.VouchersUpdated++
		}
		if strings.Contains(line, "Deleted voucher") {
			stats.VouchersDeleted++
		}

		if m := batchRe.FindStringSubmatch(line); m != nil {
			stats.BatchRuns++
			var failed int
			fmt.Sscanf(m[2], "%d", &failed)
			stats.BatchItemFailures += failed
		}

		if m := statusRe.FindStringSubmatch(line); m != nil {
			if m[1][0] == '4' || m[1][0] == '5' {
				stats.FailedRequests++
			}
		}
	}
}

func extractErrorPattern(line string, stats *LogStats) {
	// Strip the log prefix (date, time, file:line) and keep the message body
	parts := strings.SplitN(line, ": ", 3)
	if len(parts) < 3 {
		return
	}
	message := parts[2]

	// Group by the leading words of the message so similar errors collapse
	words := strings.Fields(message)
	if len(words) > 5 {
		words = words[:5]
	}
	stats.ErrorPatterns[strings.Join(words, " ")]++
}

func printReport(stats *LogStats) {
	fmt.Println("=== Voucher Service Log Report ===")
	fmt.Printf("Total errors:          %d\n", stats.TotalErrors)
	fmt.Printf("Vouchers created:      %d\n", stats.VouchersCreated)
	fmt.Printf("Vouchers updated:      %d\n", stats.VouchersUpdated)
	fmt.Printf("Vouchers deleted:      %d\n", stats.VouchersDeleted)
	fmt.Printf("Validation failures:   %d\n", stats.ValidationFailures)
	fmt.Printf("Batch runs:            %d\n", stats.BatchRuns)
	fmt.Printf("Batch item failures:   %d\n", stats.BatchItemFailures)
	fmt.Printf("Commit failures:       %d\n", stats.CommitFailures)
	fmt.Printf("Failed requests (4xx/5xx): %d\n", stats.FailedRequests)

	if len(stats.ErrorPatterns) > 0 {
		fmt.Println("\nTop error patterns:")
		type patternCount struct {
			pattern string
			count   int
		}
		var patterns []patternCount
		for p, c := range stats.ErrorPatterns {
			patterns = append(patterns, patternCount{p, c})
		}
		sort.Slice(patterns, func(i, j int) bool {
			return patterns[i].count > patterns[j].count
		})
		for i, p := range patterns {
			if i >= 10 {
				break
			}
			fmt.Printf("  %4d  %s\n", p.count, p.pattern)
		}
	}
}
