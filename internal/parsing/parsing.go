// Package parsing converts raw scraped field strings into normalized numeric
// values. Scraped CSV data is inherently inconsistent, so every function in
// this package is total: any malformed input degrades to the zero value and
// no function panics or returns an error.
package parsing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Suffix multipliers for abbreviated counts like "1.2K" or "3M".
const (
	thousandMultiplier = 1_000
	millionMultiplier  = 1_000_000
)

// Rating bounds.
const (
	minRating = 0.0
	maxRating = 5.0
)

// minutesPerHour converts minute durations to hours.
const minutesPerHour = 60

var (
	// numericPattern matches the first numeric substring, e.g. "12.99" in "$12.99".
	numericPattern = regexp.MustCompile(`[\d.]+`)
	// ratingOutOfPattern matches "X out of 5" style ratings.
	ratingOutOfPattern = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*out\s*of\s*5`)
	// decimalPattern matches decimal numbers for rating extraction.
	decimalPattern = regexp.MustCompile(`\d+\.?\d*`)
	// numberCleaner strips grouping and wrapping characters from counts like "(12,345)".
	numberCleaner = strings.NewReplacer(",", "", "(", "", ")", "")
)

// ParseNumber parses a count from strings like "12,345", "(1,234)" or "1.2M".
// K and M suffixes multiply by 1,000 and 1,000,000. Returns 0 when the value
// cannot be parsed.
func ParseNumber(value string) int {
	value = numberCleaner.Replace(strings.TrimSpace(value))
	if value == "" {
		return 0
	}

	multiplier := 1
	switch {
	case strings.HasSuffix(value, "K"):
		multiplier = thousandMultiplier
		value = strings.TrimSuffix(value, "K")
	case strings.HasSuffix(value, "M"):
		multiplier = millionMultiplier
		value = strings.TrimSuffix(value, "M")
	}

	num, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return int(num * float64(multiplier))
}

// ParsePrice parses a price from strings like "$12.99" or "Free".
// "free" (any case) and unparseable values return 0.0.
func ParsePrice(value string) float64 {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" || value == "free" {
		return 0
	}

	match := numericPattern.FindString(value)
	if match == "" {
		return 0
	}
	price, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return price
}

// ParseDuration parses a duration in hours from strings like "10 hours",
// "3.5 total hours" or "90 min". Minute values are converted to hours and
// rounded to two decimals.
func ParseDuration(value string) float64 {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return 0
	}

	match := numericPattern.FindString(value)
	if match == "" {
		return 0
	}
	num, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}

	if strings.Contains(value, "min") {
		return math.Round(num/minutesPerHour*100) / 100
	}
	return num
}

// ParseRating parses a rating in [0,5] from strings like "4.5" or
// "4.5 out of 5". Falls back to scanning numeric substrings for the first
// value in (0,5]. Returns 0.0 when nothing qualifies.
func ParseRating(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	// Direct conversion is the common case for curated CSV data.
	if rating, err := strconv.ParseFloat(value, 64); err == nil {
		if rating >= minRating && rating <= maxRating {
			return rating
		}
	}

	// "X out of 5" format from scraped aria labels.
	if match := ratingOutOfPattern.FindStringSubmatch(value); match != nil {
		if rating, err := strconv.ParseFloat(match[1], 64); err == nil {
			if rating >= minRating && rating <= maxRating {
				return rating
			}
		}
	}

	// Last resort: the first embedded number in (0,5].
	for _, candidate := range decimalPattern.FindAllString(value, -1) {
		num, err := strconv.ParseFloat(candidate, 64)
		if err != nil {
			continue
		}
		if num > minRating && num <= maxRating {
			return num
		}
	}

	return 0
}
