package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ScheduleConfig is the raw rule map persisted on a doctor. Keys are either
// an ISO date (one-off override) or a weekday key; values are range lists.
type ScheduleConfig map[string]json.RawMessage

func (c ScheduleConfig) Value() (driver.Value, error) {
	if c == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c)
}

func (c *ScheduleConfig) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal schedule JSONB value:", value))
	}

	result := map[string]json.RawMessage{}
	err := json.Unmarshal(bytes, &result)
	*c = ScheduleConfig(result)
	return err
}

type RuleKind int

const (
	RuleDateOverride RuleKind = iota + 1
	RuleWeekday
)

// TimeRange is a working-hour range in minutes since midnight, end exclusive.
type TimeRange struct {
	Start int
	End   int
}

// ScheduleRule is either a DateOverride (Kind RuleDateOverride, Date set)
// or a WeekdayRule (Kind RuleWeekday, Weekday set).
type ScheduleRule struct {
	Kind    RuleKind
	Date    string
	Weekday time.Weekday
	Ranges  []TimeRange
}

// SkippedEntry describes a part of the rule map that could not be used.
// Index is -1 when the whole key was rejected.
type SkippedEntry struct {
	Key    string
	Index  int
	Reason string
}

type rawRange struct {
	Start  *string `json:"start"`
	End    *string `json:"end"`
	Inicio *string `json:"inicio"`
	Fin    *string `json:"fin"`
}

var weekdayNames = map[string]time.Weekday{
	"domingo":   time.Sunday,
	"lunes":     time.Monday,
	"martes":    time.Tuesday,
	"miercoles": time.Wednesday,
	"miércoles": time.Wednesday,
	"jueves":    time.Thursday,
	"viernes":   time.Friday,
	"sabado":    time.Saturday,
	"sábado":    time.Saturday,
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseRuleKey classifies a rule map key and returns its canonical form:
// the ISO date for overrides, the weekday index string for recurring rules.
func ParseRuleKey(key string) (RuleKind, string, time.Weekday, error) {
	trimmed := strings.TrimSpace(key)
	if _, err := time.Parse(DateLayout, trimmed); err == nil {
		return RuleDateOverride, trimmed, 0, nil
	}
	if idx, err := strconv.Atoi(trimmed); err == nil {
		if idx < 0 || idx > 6 {
			return 0, "", 0, fmt.Errorf("weekday index %d out of range 0-6", idx)
		}
		return RuleWeekday, strconv.Itoa(idx), time.Weekday(idx), nil
	}
	if day, ok := weekdayNames[strings.ToLower(trimmed)]; ok {
		return RuleWeekday, strconv.Itoa(int(day)), day, nil
	}
	return 0, "", 0, fmt.Errorf("unrecognized schedule key %q", key)
}

// ParseClock converts "HH:MM" to minutes since midnight.
func ParseClock(value string) (int, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, use HH:MM", value)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock converts minutes since midnight to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Rules normalizes the raw map into typed rules, accepting both the
// start/end and the legacy inicio/fin field names. Keys are visited in
// sorted order; ranges keep their declared order.
func (c ScheduleConfig) Rules() ([]ScheduleRule, []SkippedEntry) {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var rules []ScheduleRule
	var skipped []SkippedEntry

	for _, key := range keys {
		kind, canonical, weekday, err := ParseRuleKey(key)
		if err != nil {
			skipped = append(skipped, SkippedEntry{Key: key, Index: -1, Reason: err.Error()})
			continue
		}

		var entries []json.RawMessage
		if err := json.Unmarshal(c[key], &entries); err != nil {
			skipped = append(skipped, SkippedEntry{Key: key, Index: -1, Reason: "range list is not an array"})
			continue
		}

		rule := ScheduleRule{Kind: kind, Ranges: make([]TimeRange, 0, len(entries))}
		if kind == RuleDateOverride {
			rule.Date = canonical
		} else {
			rule.Weekday = weekday
		}

		for i, entry := range entries {
			r, reason := parseRange(entry)
			if reason != "" {
				skipped = append(skipped, SkippedEntry{Key: key, Index: i, Reason: reason})
				continue
			}
			rule.Ranges = append(rule.Ranges, r)
		}

		rules = append(rules, rule)
	}

	return rules, skipped
}

func parseRange(entry json.RawMessage) (TimeRange, string) {
	var raw rawRange
	if err := json.Unmarshal(entry, &raw); err != nil {
		return TimeRange{}, "range entry is not an object"
	}

	var start, end string
	switch {
	case nonEmpty(raw.Start) && nonEmpty(raw.End):
		start, end = *raw.Start, *raw.End
	case nonEmpty(raw.Inicio) && nonEmpty(raw.Fin):
		start, end = *raw.Inicio, *raw.Fin
	default:
		return TimeRange{}, "missing start/end (or inicio/fin)"
	}

	startMin, err := ParseClock(start)
	if err != nil {
		return TimeRange{}, err.Error()
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return TimeRange{}, err.Error()
	}

	return TimeRange{Start: startMin, End: endMin}, ""
}

func nonEmpty(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
