package calendar

import "time"

const dateLayout = "2006-01-02"

// Dataset implements Authority from two date-keyed sets: official holidays
// and compensatory workdays (weekends swapped in to pay for a long break).
// Dates not listed fall back to the plain Monday-Friday rule.
type Dataset struct {
	holidays map[string]string // date -> holiday name
	workdays map[string]bool   // compensatory working weekends
}

func NewDataset() *Dataset {
	return &Dataset{
		holidays: make(map[string]string),
		workdays: make(map[string]bool),
	}
}

func (d *Dataset) AddHoliday(date, name string) {
	d.holidays[date] = name
}

func (d *Dataset) AddWorkday(date string) {
	d.workdays[date] = true
}

// IsHoliday checks if the given date is an official public holiday
func (d *Dataset) IsHoliday(date time.Time) bool {
	_, ok := d.holidays[date.Format(dateLayout)]
	return ok
}

// IsWorkday checks if the given date is an official working day
func (d *Dataset) IsWorkday(date time.Time) bool {
	key := date.Format(dateLayout)
	if d.workdays[key] {
		return true
	}
	if _, ok := d.holidays[key]; ok {
		return false
	}
	wd := date.Weekday()
	return wd >= time.Monday && wd <= time.Friday
}

// HolidayName returns the name of the holiday on the given date, if any
func (d *Dataset) HolidayName(date time.Time) (string, bool) {
	name, ok := d.holidays[date.Format(dateLayout)]
	return name, ok
}

// Size returns the number of listed holiday and workday dates
func (d *Dataset) Size() (holidays, workdays int) {
	return len(d.holidays), len(d.workdays)
}

// Default returns the packaged official CN public calendar. The dataset is
// published yearly by the State Council; years beyond the packaged range come
// from the dataset file or the remote source.
func Default() *Dataset {
	d := NewDataset()

	type span struct {
		from, to string
		name     string
	}
	spans := []span{
		// 2024
		{"2024-01-01", "2024-01-01", "New Year's Day"},
		{"2024-02-10", "2024-02-17", "Spring Festival"},
		{"2024-04-04", "2024-04-06", "Qingming Festival"},
		{"2024-05-01", "2024-05-05", "Labour Day"},
		{"2024-06-10", "2024-06-10", "Dragon Boat Festival"},
		{"2024-09-15", "2024-09-17", "Mid-Autumn Festival"},
		{"2024-10-01", "2024-10-07", "National Day"},
		// 2025
		{"2025-01-01", "2025-01-01", "New Year's Day"},
		{"2025-01-28", "2025-02-04", "Spring Festival"},
		{"2025-04-04", "2025-04-06", "Qingming Festival"},
		{"2025-05-01", "2025-05-05", "Labour Day"},
		{"2025-05-31", "2025-06-02", "Dragon Boat Festival"},
		{"2025-10-01", "2025-10-08", "National Day / Mid-Autumn"},
	}
	for _, s := range spans {
		from, _ := time.Parse(dateLayout, s.from)
		to, _ := time.Parse(dateLayout, s.to)
		for t := from; !t.After(to); t = t.AddDate(0, 0, 1) {
			d.AddHoliday(t.Format(dateLayout), s.name)
		}
	}

	for _, w := range []string{
		"2024-02-04", "2024-02-18",
		"2024-04-07",
		"2024-04-28", "2024-05-11",
		"2024-09-14",
		"2024-09-29", "2024-10-12",
		"2025-01-26", "2025-02-08",
		"2025-04-27",
		"2025-09-28", "2025-10-11",
	} {
		d.AddWorkday(w)
	}

	return d
}
