package timeline

import (
	"bytes"
	"strconv"

	pstrings "rosterpulse/internal/platform/strings"
	"rosterpulse/internal/services/analytics/domain"
)

// PlayersHeader is the fixed players export header row
const PlayersHeader = "Date,Player Name,Availability Status,Match Day Tag,Reason,Notes"

// EventsHeader is the fixed events export header row
const EventsHeader = "Date,Event Type,Event Title,Start Time,End Time,Duration (minutes),Match Day Tag"

// RenderCSV serializes records in canonical order into the players export.
// Name, tag, reason and notes are always double quoted; status is not.
// A nil or empty tag renders as "N/A". Embedded quotes and commas are not
// escaped, downstream consumers depend on the exact unescaped format
func RenderCSV(records []domain.DailyRecord) []byte {
	var b bytes.Buffer
	b.WriteString(PlayersHeader)
	b.WriteByte('\n')
	for _, r := range records {
		tag := pstrings.Deref(r.Tag)
		if tag == "" {
			tag = "N/A"
		}
		b.WriteString(r.Day.Format("2006-01-02"))
		b.WriteString(`,"`)
		b.WriteString(r.PlayerName)
		b.WriteString(`",`)
		b.WriteString(r.Status)
		b.WriteString(`,"`)
		b.WriteString(tag)
		b.WriteString(`","`)
		b.WriteString(r.Reason)
		b.WriteString(`","`)
		b.WriteString(pstrings.Deref(r.Notes))
		b.WriteString("\"\n")
	}
	return b.Bytes()
}

// EventRow is one line of the events export, already label mapped
type EventRow struct {
	Date     string // YYYY-MM-DD
	Type     string
	Title    string
	Start    string
	End      string
	Duration string // minutes, integer or decimal
	Tag      string
}

// NewAggregateRow maps a saved aggregate to an export line
// saved rollups carry no per-event detail, those fields render N/A
func NewAggregateRow(a domain.EventAggregate) EventRow {
	return EventRow{
		Date:     a.Day.Format("2006-01-02"),
		Type:     a.Type,
		Title:    "N/A",
		Start:    "N/A",
		End:      "N/A",
		Duration: strconv.FormatFloat(a.AvgMinutes, 'f', -1, 64),
		Tag:      "N/A",
	}
}

// NewEventRow maps a live event to an export line
func NewEventRow(e domain.Event) EventRow {
	title := e.Title
	if title == "" {
		title = "Untitled Event"
	}
	start, end := e.Start, e.End
	if start == "" {
		start = "N/A"
	}
	if end == "" {
		end = "N/A"
	}
	tag := pstrings.Deref(e.Tag)
	if tag == "" {
		tag = "N/A"
	}
	return EventRow{
		Date:     e.Day.Format("2006-01-02"),
		Type:     domain.EventTypeLabel(e.Type),
		Title:    title,
		Start:    start,
		End:      end,
		Duration: strconv.Itoa(domain.EventMinutes(e.Start, e.End)),
		Tag:      tag,
	}
}

// RenderEventsCSV serializes event rows into the events export
// type and times are bare, title and tag are double quoted
func RenderEventsCSV(rows []EventRow) []byte {
	var b bytes.Buffer
	b.WriteString(EventsHeader)
	b.WriteByte('\n')
	for _, r := range rows {
		b.WriteString(r.Date)
		b.WriteByte(',')
		b.WriteString(r.Type)
		b.WriteString(`,"`)
		b.WriteString(r.Title)
		b.WriteString(`",`)
		b.WriteString(r.Start)
		b.WriteByte(',')
		b.WriteString(r.End)
		b.WriteByte(',')
		b.WriteString(r.Duration)
		b.WriteString(`,"`)
		b.WriteString(r.Tag)
		b.WriteString("\"\n")
	}
	return b.Bytes()
}
