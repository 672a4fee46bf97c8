// Package calendar serves the curated fashion events schedule.
package calendar

import (
	"fmt"
	"sort"
	"time"

	"tresnow/internal/model"
)

// events is the curated 2026 schedule, keyed YYYY-MM.
var events = map[string][]model.Event{
	"2026-01": {
		{Day: 15, Title: "Paris Haute Couture Week", Type: "runway", Location: "Paris", Description: "Spring/Summer 2026 Haute Couture collections"},
		{Day: 22, Title: "Milan Men's Fashion Week", Type: "runway", Location: "Milan", Description: "Fall/Winter 2026 menswear collections"},
		{Day: 28, Title: "Pitti Uomo", Type: "trade", Location: "Florence", Description: "International menswear trade show"},
	},
	"2026-02": {
		{Day: 5, Title: "New York Fashion Week", Type: "runway", Location: "New York", Description: "Fall/Winter 2026 ready-to-wear collections"},
		{Day: 12, Title: "London Fashion Week", Type: "runway", Location: "London", Description: "Fall/Winter 2026 collections"},
		{Day: 19, Title: "Milan Fashion Week", Type: "runway", Location: "Milan", Description: "Fall/Winter 2026 women's collections"},
		{Day: 26, Title: "Paris Fashion Week", Type: "runway", Location: "Paris", Description: "Fall/Winter 2026 ready-to-wear"},
	},
	"2026-03": {
		{Day: 8, Title: "International Women's Day Fashion Summit", Type: "conference", Location: "Global", Description: "Celebrating women in fashion"},
		{Day: 15, Title: "Sustainable Fashion Week", Type: "conference", Location: "Copenhagen", Description: "Focus on eco-friendly fashion"},
		{Day: 22, Title: "Fashion Revolution Week", Type: "activism", Location: "Global", Description: "Who made my clothes campaign"},
	},
	"2026-04": {
		{Day: 3, Title: "Tokyo Fashion Week", Type: "runway", Location: "Tokyo", Description: "Spring/Summer 2027 collections"},
		{Day: 10, Title: "Australian Fashion Week", Type: "runway", Location: "Sydney", Description: "Resort 2027 collections"},
		{Day: 18, Title: "Fashion Tech Conference", Type: "conference", Location: "San Francisco", Description: "Innovation in fashion technology"},
	},
	"2026-05": {
		{Day: 1, Title: "Met Gala", Type: "gala", Location: "New York", Description: "Fashion's biggest night - theme TBA"},
		{Day: 15, Title: "Cannes Film Festival Fashion", Type: "red-carpet", Location: "Cannes", Description: "Red carpet fashion moments"},
		{Day: 25, Title: "CFDA Fashion Awards", Type: "awards", Location: "New York", Description: "Celebrating American fashion"},
	},
	"2026-06": {
		{Day: 8, Title: "London Men's Fashion Week", Type: "runway", Location: "London", Description: "Spring/Summer 2027 menswear"},
		{Day: 15, Title: "Milan Men's Fashion Week", Type: "runway", Location: "Milan", Description: "Spring/Summer 2027 menswear"},
		{Day: 22, Title: "Paris Men's Fashion Week", Type: "runway", Location: "Paris", Description: "Spring/Summer 2027 menswear"},
	},
}

// EventsForMonth returns the events in a month, ordered by day. Months with
// no scheduled events yield an empty list.
func EventsForMonth(year int, month time.Month) []model.Event {
	key := fmt.Sprintf("%04d-%02d", year, month)
	monthEvents := append([]model.Event(nil), events[key]...)
	sort.Slice(monthEvents, func(i, j int) bool {
		return monthEvents[i].Day < monthEvents[j].Day
	})
	return monthEvents
}

// Months lists the months that have scheduled events, in order.
func Months() []string {
	keys := make([]string, 0, len(events))
	for key := range events {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
