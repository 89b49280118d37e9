package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustConfig(t *testing.T, raw string) ScheduleConfig {
	t.Helper()
	var cfg ScheduleConfig
	require.NoError(t, cfg.Scan([]byte(raw)))
	return cfg
}

func TestScheduleConfig_RulesNormalizesBothFieldNames(t *testing.T) {
	cfg := mustConfig(t, `{
		"1": [{"start": "08:00", "end": "12:00"}, {"inicio": "14:00", "fin": "18:00"}],
		"2025-03-10": [{"start": "09:00", "end": "10:00"}]
	}`)

	rules, skipped := cfg.Rules()

	assert.Empty(t, skipped)
	require.Len(t, rules, 2)

	// "1" sorts before "2025-03-10"
	assert.Equal(t, RuleWeekday, rules[0].Kind)
	assert.Equal(t, time.Monday, rules[0].Weekday)
	assert.Equal(t, []TimeRange{{Start: 480, End: 720}, {Start: 840, End: 1080}}, rules[0].Ranges)

	assert.Equal(t, RuleDateOverride, rules[1].Kind)
	assert.Equal(t, "2025-03-10", rules[1].Date)
	assert.Equal(t, []TimeRange{{Start: 540, End: 600}}, rules[1].Ranges)
}

func TestScheduleConfig_RulesSkipsMalformedEntries(t *testing.T) {
	cfg := mustConfig(t, `{
		"2": [{"start": "08:00"}, {"desde": "09:00", "hasta": "10:00"}, {"inicio": "10:00", "fin": "11:00"}, "08:00-09:00", {"start": "8h", "end": "9h"}],
		"festivo": [{"start": "08:00", "end": "09:00"}],
		"3": {"start": "08:00", "end": "09:00"}
	}`)

	rules, skipped := cfg.Rules()

	require.Len(t, rules, 1)
	assert.Equal(t, time.Tuesday, rules[0].Weekday)
	assert.Equal(t, []TimeRange{{Start: 600, End: 660}}, rules[0].Ranges)

	require.Len(t, skipped, 6)
	assert.Equal(t, SkippedEntry{Key: "2", Index: 0, Reason: "missing start/end (or inicio/fin)"}, skipped[0])
	assert.Equal(t, 1, skipped[1].Index)
	assert.Equal(t, "range entry is not an object", skipped[2].Reason)
	assert.Equal(t, 4, skipped[3].Index)
	assert.Equal(t, SkippedEntry{Key: "3", Index: -1, Reason: "range list is not an array"}, skipped[4])
	assert.Equal(t, "festivo", skipped[5].Key)
}

func TestScheduleConfig_EmptyOverrideIsKept(t *testing.T) {
	cfg := mustConfig(t, `{"2025-12-25": []}`)

	rules, skipped := cfg.Rules()

	assert.Empty(t, skipped)
	require.Len(t, rules, 1)
	assert.Equal(t, RuleDateOverride, rules[0].Kind)
	assert.Empty(t, rules[0].Ranges)
}

func TestParseRuleKey(t *testing.T) {
	tests := []struct {
		key       string
		kind      RuleKind
		canonical string
		weekday   time.Weekday
		wantErr   bool
	}{
		{key: "2025-03-10", kind: RuleDateOverride, canonical: "2025-03-10"},
		{key: "0", kind: RuleWeekday, canonical: "0", weekday: time.Sunday},
		{key: "6", kind: RuleWeekday, canonical: "6", weekday: time.Saturday},
		{key: "Lunes", kind: RuleWeekday, canonical: "1", weekday: time.Monday},
		{key: "miércoles", kind: RuleWeekday, canonical: "3", weekday: time.Wednesday},
		{key: "friday", kind: RuleWeekday, canonical: "5", weekday: time.Friday},
		{key: "7", wantErr: true},
		{key: "2025-02-30", wantErr: true},
		{key: "feriado", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			kind, canonical, weekday, err := ParseRuleKey(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.canonical, canonical)
			assert.Equal(t, tt.weekday, weekday)
		})
	}
}

func TestClockRoundTrip(t *testing.T) {
	minutes, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, minutes)
	assert.Equal(t, "09:30", FormatClock(minutes))
	assert.Equal(t, "10:15", FormatClock(615))

	_, err = ParseClock("9.30")
	assert.Error(t, err)
}

func TestScheduleConfig_ValueScan(t *testing.T) {
	cfg := ScheduleConfig{"1": json.RawMessage(`[{"start":"08:00","end":"09:00"}]`)}

	value, err := cfg.Value()
	require.NoError(t, err)

	var scanned ScheduleConfig
	require.NoError(t, scanned.Scan(value))
	assert.JSONEq(t, `[{"start":"08:00","end":"09:00"}]`, string(scanned["1"]))

	empty, err := ScheduleConfig(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), empty)
}
