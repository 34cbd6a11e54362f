package calendar

import (
	"fmt"
	"hash/fnv"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Its-donkey/archambeau-site/internal/ui/model"
)

// ICSProductID identifies the feed's producer.
const ICSProductID = "-//Camden Archambeau//Performances//EN"

// defaultEventLength is used for DTEND since the listing carries no end time.
const defaultEventLength = 2 * time.Hour

// maxLineOctets is the longest content line allowed before folding.
const maxLineOctets = 75

// WriteICS writes cards as an iCalendar feed. Cards without a parsed start
// time are skipped.
func WriteICS(w io.Writer, cards []model.PerformanceCard, now time.Time) error {
	var b strings.Builder
	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:"+ICSProductID)
	writeLine(&b, "X-WR-CALNAME:Upcoming Performances")
	writeLine(&b, "CALSCALE:GREGORIAN")
	stamp := now.UTC().Format("20060102T150405Z")
	for _, c := range cards {
		if c.Start.IsZero() {
			continue
		}
		writeLine(&b, "BEGIN:VEVENT")
		writeLine(&b, "UID:"+eventUID(c))
		writeLine(&b, "DTSTAMP:"+stamp)
		if c.AllDay {
			writeLine(&b, "DTSTART;VALUE=DATE:"+c.Start.Format("20060102"))
			writeLine(&b, "DTEND;VALUE=DATE:"+c.Start.AddDate(0, 0, 1).Format("20060102"))
		} else {
			writeLine(&b, "DTSTART:"+c.Start.UTC().Format("20060102T150405Z"))
			writeLine(&b, "DTEND:"+c.Start.Add(defaultEventLength).UTC().Format("20060102T150405Z"))
		}
		writeLine(&b, "SUMMARY:"+escapeText(c.Title))
		if c.Venue != "" {
			writeLine(&b, "LOCATION:"+escapeText(c.Venue))
		}
		if desc := icsDescription(c); desc != "" {
			writeLine(&b, "DESCRIPTION:"+escapeText(desc))
		}
		if c.TicketURL != "" {
			writeLine(&b, "URL:"+c.TicketURL)
		}
		writeLine(&b, "END:VEVENT")
	}
	writeLine(&b, "END:VCALENDAR")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write ics: %w", err)
	}
	return nil
}

// writeLine ends line with CRLF, folding it into continuation lines that
// start with a space. Folds never split a UTF-8 sequence.
func writeLine(b *strings.Builder, line string) {
	limit := maxLineOctets
	for len(line) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}
		b.WriteString(line[:cut])
		b.WriteString("\r\n ")
		line = line[cut:]
		limit = maxLineOctets - 1
	}
	b.WriteString(line)
	b.WriteString("\r\n")
}

func icsDescription(c model.PerformanceCard) string {
	var parts []string
	if c.Ensemble != "" {
		parts = append(parts, "With "+c.Ensemble)
	}
	if c.Description != "" {
		parts = append(parts, c.Description)
	}
	return strings.Join(parts, "\n")
}

func eventUID(c model.PerformanceCard) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(c.Title + "|" + c.Venue))
	return fmt.Sprintf("%s-%08x@performances", c.Start.UTC().Format("20060102T150405Z"), h.Sum32())
}

var icsEscaper = strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\r\n", `\n`, "\n", `\n`)

func escapeText(s string) string {
	return icsEscaper.Replace(s)
}
