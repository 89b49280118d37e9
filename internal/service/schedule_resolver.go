package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"hospital-agenda/internal/domain/entity"
)

// ParseCalendarDate builds midnight of a YYYY-MM-DD date in loc from its
// day/month/year components, so the weekday never shifts with the server
// UTC offset.
func ParseCalendarDate(value string, loc *time.Location) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(value), "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", value)
	}

	year, errY := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	day, errD := strconv.Atoi(parts[2])
	if errY != nil || errM != nil || errD != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", value)
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	// time.Date normalizes overflow (Feb 30 -> Mar 2); reject it
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, fmt.Errorf("invalid date %q, day out of range", value)
	}

	return date, nil
}

// ResolveRanges picks the ranges that apply to date. A date override always
// wins over the weekday rule; the two are never merged. found is false when
// neither rule exists.
func ResolveRanges(rules []entity.ScheduleRule, date time.Time) (ranges []entity.TimeRange, found bool) {
	iso := date.Format(entity.DateLayout)
	for _, rule := range rules {
		if rule.Kind == entity.RuleDateOverride && rule.Date == iso {
			return rule.Ranges, true
		}
	}

	weekday := date.Weekday()
	for _, rule := range rules {
		if rule.Kind == entity.RuleWeekday && rule.Weekday == weekday {
			return rule.Ranges, true
		}
	}

	return nil, false
}

// GenerateBlocks walks every range from start (inclusive) to end
// (exclusive). The cursor advances by blockMinutes over free time and by
// the appointment's own duration over an occupied slot, so a long
// appointment is reported as one block. Output follows range declaration
// order, then time.
func GenerateBlocks(ranges []entity.TimeRange, blockMinutes int, occupancy *OccupancyIndex) []entity.ScheduleBlock {
	if blockMinutes <= 0 {
		return []entity.ScheduleBlock{}
	}

	blocks := make([]entity.ScheduleBlock, 0)
	for _, r := range ranges {
		cursor := r.Start
		for cursor < r.End {
			label := entity.FormatClock(cursor)

			appointment, ok := occupancy.Lookup(label)
			if !ok {
				blocks = append(blocks, entity.ScheduleBlock{
					Time:            label,
					DurationMinutes: blockMinutes,
					State:           entity.BlockAvailable,
				})
				cursor += blockMinutes
				continue
			}

			duration := appointment.DurationMinutes
			if duration <= 0 {
				duration = blockMinutes
			}
			blocks = append(blocks, entity.ScheduleBlock{
				Time:            label,
				DurationMinutes: duration,
				State:           entity.BlockOccupied,
				Appointment:     SummarizeAppointment(appointment),
			})
			cursor += duration
		}
	}

	return blocks
}
