package calendar

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// LoadFile reads a calendar dataset from a local text file.
//
// Format: one entry per line, "YYYY-MM-DD holiday|workday [name]".
// Example: 2026-02-17 holiday Spring Festival
// Blank lines and lines starting with # are ignored.
func LoadFile(filePath string, logger *zap.Logger) (*Dataset, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer file.Close()

	dataset := NewDataset()
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, " ", 3)
		if len(parts) < 2 {
			logger.Warn("Invalid line format", zap.String("line", line))
			continue
		}

		dateStr := parts[0]
		typeStr := parts[1]
		name := ""
		if len(parts) == 3 {
			name = parts[2]
		}

		if _, err := time.Parse(dateLayout, dateStr); err != nil {
			logger.Warn("Failed to parse date", zap.String("date", dateStr), zap.Error(err))
			continue
		}

		switch typeStr {
		case "holiday":
			dataset.AddHoliday(dateStr, name)
		case "workday":
			dataset.AddWorkday(dateStr)
		default:
			logger.Warn("Unknown day type", zap.String("type", typeStr))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading calendar file: %w", err)
	}

	holidays, workdays := dataset.Size()
	logger.Info("Calendar file loaded",
		zap.String("file", filePath),
		zap.Int("holidays", holidays),
		zap.Int("workdays", workdays))

	return dataset, nil
}
