package calendar

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// RemoteSource fetches the official calendar dataset from a yearly JSON feed
// (holiday-cn layout: days with date, name and isOffDay). The fetch happens
// once at startup; lookups always run against the in-memory Dataset.
type RemoteSource struct {
	urlTemplate string // contains a {year} placeholder
	httpClient  *http.Client
	logger      *zap.Logger
}

type remoteFeed struct {
	Year int `json:"year"`
	Days []struct {
		Name     string `json:"name"`
		Date     string `json:"date"`
		IsOffDay bool   `json:"isOffDay"`
	} `json:"days"`
}

func NewRemoteSource(urlTemplate string, timeout time.Duration, logger *zap.Logger) *RemoteSource {
	return &RemoteSource{
		urlTemplate: urlTemplate,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// FetchYears downloads the feeds for the given years into a single Dataset.
// Years whose feed is not yet published are skipped; it fails only when no
// year could be fetched at all.
func (rs *RemoteSource) FetchYears(years ...int) (*Dataset, error) {
	dataset := NewDataset()
	fetched := 0
	var lastErr error

	for _, year := range years {
		if err := rs.fetchYear(year, dataset); err != nil {
			rs.logger.Warn("Calendar feed unavailable",
				zap.Int("year", year),
				zap.Error(err))
			lastErr = err
			continue
		}
		fetched++
	}

	if fetched == 0 {
		return nil, fmt.Errorf("no calendar feed could be fetched: %w", lastErr)
	}
	return dataset, nil
}

func (rs *RemoteSource) fetchYear(year int, dataset *Dataset) error {
	url := strings.ReplaceAll(rs.urlTemplate, "{year}", strconv.Itoa(year))

	rs.logger.Debug("Fetching calendar data",
		zap.String("url", url),
		zap.Int("year", year))

	resp, err := rs.httpClient.Get(url)
	if err != nil {
		return fmt.Errorf("failed to fetch calendar data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("calendar feed returned status %d", resp.StatusCode)
	}

	var feed remoteFeed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return fmt.Errorf("failed to parse calendar feed: %w", err)
	}

	for _, day := range feed.Days {
		if _, err := time.Parse(dateLayout, day.Date); err != nil {
			rs.logger.Warn("Failed to parse date",
				zap.String("date", day.Date),
				zap.Error(err))
			continue
		}
		if day.IsOffDay {
			dataset.AddHoliday(day.Date, day.Name)
		} else {
			dataset.AddWorkday(day.Date)
		}
	}

	rs.logger.Info("Calendar feed fetched",
		zap.Int("year", year),
		zap.Int("days", len(feed.Days)))

	return nil
}
