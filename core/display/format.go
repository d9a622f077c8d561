package display

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultDateLayout  = "2006-01-02"
	DefaultClockLayout = "15:04:05"
)

// Formatter turns primitive payload fields into display strings for one
// locale. It is immutable and safe to share; none of its methods fail.
type Formatter struct {
	tag         language.Tag
	printer     *message.Printer
	dateLayout  string
	clockLayout string
	loc         *time.Location
}

// FormatOption customises a Formatter.
type FormatOption func(*Formatter)

func WithDateLayout(layout string) FormatOption {
	return func(f *Formatter) {
		if layout != "" {
			f.dateLayout = layout
		}
	}
}

func WithClockLayout(layout string) FormatOption {
	return func(f *Formatter) {
		if layout != "" {
			f.clockLayout = layout
		}
	}
}

func WithLocation(loc *time.Location) FormatOption {
	return func(f *Formatter) {
		if loc != nil {
			f.loc = loc
		}
	}
}

// NewFormatter returns a formatter for locale. An unparseable locale falls back
// to English.
func NewFormatter(locale string, opts ...FormatOption) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	f := Formatter{
		tag:         tag,
		printer:     message.NewPrinter(tag),
		dateLayout:  DefaultDateLayout,
		clockLayout: DefaultClockLayout,
		loc:         time.UTC,
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

func (f Formatter) Language() language.Tag {
	return f.tag
}

// Number formats n with the locale's grouping separators.
func (f Formatter) Number(n int64) string {
	return f.p().Sprint(number.Decimal(n))
}

// Percent formats ratio (0.25 → "25%") in the locale's style.
func (f Formatter) Percent(ratio float64) string {
	return f.p().Sprint(number.Percent(ratio))
}

// Ordinal formats n as "1st", "2nd", ... in English; other locales get the
// plain number followed by a period.
func (f Formatter) Ordinal(n int64) string {
	base, _ := f.tag.Base()
	en, _ := language.English.Base()
	if base != en {
		return f.Number(n) + "."
	}
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return f.Number(n) + suffix
}

// Date formats t in the formatter's location with its date layout.
func (f Formatter) Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(f.location()).Format(orDefault(f.dateLayout, DefaultDateLayout))
}

// Clock formats the time-of-day portion of t.
func (f Formatter) Clock(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(f.location()).Format(orDefault(f.clockLayout, DefaultClockLayout))
}

// Stamp is Date and Clock joined by a space.
func (f Formatter) Stamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return f.Date(t) + " " + f.Clock(t)
}

// p tolerates the zero Formatter.
func (f Formatter) p() *message.Printer {
	if f.printer == nil {
		return message.NewPrinter(language.English)
	}
	return f.printer
}

func (f Formatter) location() *time.Location {
	if f.loc == nil {
		return time.UTC
	}
	return f.loc
}

func orDefault(layout, fallback string) string {
	if layout == "" {
		return fallback
	}
	return layout
}
