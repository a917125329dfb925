package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	start := time.Date(2026, 2, 19, 14, 0, 0, 0, time.UTC)

	out := Build(Event{
		Title:           "Портретная съемка – Анна",
		StartAt:         start,
		DurationMinutes: 90,
		Location:        "Студия, зал 2",
		Description:     "Принести; реквизит, фон\nи освещение",
	})

	require.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	require.True(t, strings.HasSuffix(out, "END:VCALENDAR"))

	assert.Contains(t, out, "DTSTART:20260219T140000Z")
	assert.Contains(t, out, "DTEND:20260219T153000Z")
	assert.Contains(t, out, "SUMMARY:Портретная съемка – Анна")
	// Спецсимволы экранируются
	assert.Contains(t, out, `LOCATION:Студия\, зал 2`)
	assert.Contains(t, out, `DESCRIPTION:Принести\; реквизит\, фон\nи освещение`)
	// CRLF разделители
	assert.Contains(t, out, "\r\nBEGIN:VEVENT\r\n")
}

func TestBuildOmitsEmptyFields(t *testing.T) {
	out := Build(Event{
		Title:           "Съемка",
		StartAt:         time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	})

	assert.NotContains(t, out, "LOCATION:")
	assert.NotContains(t, out, "DESCRIPTION:")
}
