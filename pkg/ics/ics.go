// Package ics генерация iCalendar приглашений для бронирований
// Формат: https://www.kanzaki.com/docs/ical/
package ics

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event данные события для приглашения
type Event struct {
	Title           string
	StartAt         time.Time
	DurationMinutes int
	Location        string
	Description     string
}

// Build собирает ICS документ для события
// Строки разделяются CRLF согласно RFC 5545
func Build(e Event) string {
	start := e.StartAt.UTC()
	end := start.Add(time.Duration(e.DurationMinutes) * time.Minute)
	uid := fmt.Sprintf("studio-%d-%s@photostudio", start.Unix(), uuid.NewString()[:8])

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//SMC PhotoStudio//Booking//EN",
		"CALSCALE:GREGORIAN",
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + formatDate(time.Now().UTC()),
		"DTSTART:" + formatDate(start),
		"DTEND:" + formatDate(end),
		"SUMMARY:" + escape(e.Title),
	}

	if loc := strings.TrimSpace(e.Location); loc != "" {
		lines = append(lines, "LOCATION:"+escape(loc))
	}
	if desc := strings.TrimSpace(e.Description); desc != "" {
		lines = append(lines, "DESCRIPTION:"+escape(desc))
	}

	lines = append(lines, "END:VEVENT", "END:VCALENDAR")
	return strings.Join(lines, "\r\n")
}

// formatDate форматирует время в UTC вид 20260219T140000Z
func formatDate(t time.Time) string {
	return t.Format("20060102T150405Z")
}

func escape(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
