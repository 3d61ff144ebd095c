package sheet

import (
	"regexp"
	"strings"
)

// StatusKind labels the visual category of a status value.
type StatusKind string

const (
	KindDefault    StatusKind = "default"
	KindSuccess    StatusKind = "success"
	KindError      StatusKind = "error"
	KindWarning    StatusKind = "warning"
	KindProcessing StatusKind = "processing"
	KindPurple     StatusKind = "purple"
	KindInfo       StatusKind = "info"
)

// Status colors match the palette the table renderer expects.
const (
	colorGray   = "#d9d9d9"
	colorGreen  = "#00B050"
	colorRed    = "#FF0000"
	colorAmber  = "#FFC000"
	colorBlue   = "#0070C0"
	colorPurple = "#7030A0"
)

// Status is the classification attached to a status-bearing field.
type Status struct {
	Text  string
	Color string
	Kind  StatusKind
}

var (
	timeOfDayPattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	dayMonthPattern  = regexp.MustCompile(`^\d{1,2}-[A-Za-z]{3}$`)
)

// statusRule is one entry of the classification cascade.
type statusRule struct {
	name    string
	matches func(s string) bool
	result  func(s string) Status
}

// statusRules is evaluated in order; the first matching rule wins. Keyword
// rules deliberately precede pattern rules so e.g. literal keywords are never
// swallowed by the catch-all.
var statusRules = []statusRule{
	{
		name:    "success-keywords",
		matches: keywordSet("ACTIVE", "PASS", "ENABLED", "UNSUSPENDED"),
		result:  func(s string) Status { return Status{Text: s, Color: colorGreen, Kind: KindSuccess} },
	},
	{
		name:    "error-keywords",
		matches: keywordSet("OFF", "FAILED", "INACTIVE", "SUSPENDED"),
		result:  func(s string) Status { return Status{Text: s, Color: colorRed, Kind: KindError} },
	},
	{
		name:    "pending",
		matches: keywordSet("PENDING"),
		result:  func(s string) Status { return Status{Text: s, Color: colorAmber, Kind: KindWarning} },
	},
	{
		name:    "time-of-day",
		matches: timeOfDayPattern.MatchString,
		result: func(s string) Status {
			if s == "00:00" {
				return Status{Text: s, Color: colorGray, Kind: KindDefault}
			}
			return Status{Text: s, Color: colorBlue, Kind: KindProcessing}
		},
	},
	{
		name:    "day-month",
		matches: dayMonthPattern.MatchString,
		result:  func(s string) Status { return Status{Text: s, Color: colorPurple, Kind: KindPurple} },
	},
	{
		name:    "na",
		matches: keywordSet("NA"),
		result:  func(s string) Status { return Status{Text: "NA", Color: colorGray, Kind: KindDefault} },
	},
}

func keywordSet(words ...string) func(string) bool {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return func(s string) bool {
		_, ok := set[s]
		return ok
	}
}

// ClassifyStatus derives the status bundle for a resolved cell value. Empty
// values classify as "NA"; anything unmatched falls through to info.
func ClassifyStatus(value string) Status {
	s := strings.ToUpper(strings.TrimSpace(value))
	if s == "" {
		return Status{Text: "NA", Color: colorGray, Kind: KindDefault}
	}
	for _, rule := range statusRules {
		if rule.matches(s) {
			return rule.result(s)
		}
	}
	return Status{Text: s, Color: colorBlue, Kind: KindInfo}
}
