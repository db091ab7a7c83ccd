package utils

import (
	"log"
	"strconv"

	"github.com/shirou/gopsutil/v3/cpu"
)

// GetOptimalWorkerCount determines how many retailer sessions may run at
// once, based on config and system resources. Each session is a full
// headless browser, so the count is kept conservative.
func GetOptimalWorkerCount(configValue string) int {
	// 1. Check for manual override
	if manualWorkers, err := strconv.Atoi(configValue); err == nil && manualWorkers > 0 {
		log.Printf("Using manually configured number of workers: %d", manualWorkers)
		return manualWorkers
	}

	// 2. If set to "auto" or invalid, calculate automatically
	if configValue != "auto" {
		log.Printf("WARN: Invalid workers value '%s'. Defaulting to 'auto' mode.", configValue)
	}

	// Scraping is I/O bound, so logical cores are the right count to
	// divide against.
	cpuCores, err := cpu.Counts(true)
	if err != nil {
		log.Printf("WARN: Could not detect CPU cores. Falling back to default: %d workers.", 2)
		return 2
	}

	// Half the cores, at least one, capped at the number of retailers.
	optimalCount := cpuCores / 2
	if optimalCount < 1 {
		optimalCount = 1
	}
	if optimalCount > 3 {
		optimalCount = 3
	}

	log.Printf("System has %d logical cores. Automatically setting number of workers to: %d", cpuCores, optimalCount)
	return optimalCount
}
