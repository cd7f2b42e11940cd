package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrBadFormat        = errors.New("date does not match picker format")
	ErrBeforeMinDate    = errors.New("date is before the earliest selectable date")
	ErrOutOfOrder       = errors.New("end date is before start date")
	ErrAlreadyBound     = errors.New("input already has a date picker")
	ErrUnsupportedToken = errors.New("unsupported date format")
	ErrNotInRange       = errors.New("input is not part of this date range")
)

// PickerConfig mirrors the options the booking page passes to its date-range widget.
type PickerConfig struct {
	// Format uses the widget's tokens: yyyy, mm and dd.
	Format       string
	ShowOneFocus bool
	MinDate      time.Time
}

// DateRange is a start/end pair in the picker's format.
type DateRange struct {
	Start string
	End   string
}

// DateRangePicker binds two inputs so that both stay on or after MinDate
// and end never precedes start.
type DateRangePicker struct {
	start, end *Input
	cfg        PickerConfig
	layout     string
	minDay     time.Time

	open map[*Input]bool
}

// BindDateRange attaches a picker to start and end.
func BindDateRange(start, end *Input, cfg PickerConfig) (*DateRangePicker, error) {
	layout, err := goLayout(cfg.Format)
	if err != nil {
		return nil, err
	}
	if start.Bound() || end.Bound() {
		return nil, ErrAlreadyBound
	}

	y, m, d := cfg.MinDate.Date()
	p := &DateRangePicker{
		start:  start,
		end:    end,
		cfg:    cfg,
		layout: layout,
		minDay: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		open:   make(map[*Input]bool, 2),
	}
	start.attach(p)
	end.attach(p)
	return p, nil
}

// Focus opens the calendar for in. With ShowOneFocus the other input's
// calendar closes.
func (p *DateRangePicker) Focus(in *Input) error {
	if in != p.start && in != p.end {
		return ErrNotInRange
	}
	if p.cfg.ShowOneFocus {
		clear(p.open)
	}
	p.open[in] = true
	return nil
}

// Open reports whether in's calendar is showing.
func (p *DateRangePicker) Open(in *Input) bool {
	return p.open[in]
}

// Range returns the selected dates; ok is false until both are set.
func (p *DateRangePicker) Range() (DateRange, bool) {
	r := DateRange{Start: p.start.Value(), End: p.end.Value()}
	return r, r.Start != "" && r.End != ""
}

func (p *DateRangePicker) set(in *Input, v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		in.store("")
		return nil
	}

	d, err := time.Parse(p.layout, v)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrBadFormat, v)
	}
	if d.Before(p.minDay) {
		return fmt.Errorf("%w: %s", ErrBeforeMinDate, v)
	}

	switch in {
	case p.start:
		if other, ok := p.parsed(p.end); ok && d.After(other) {
			return ErrOutOfOrder
		}
	case p.end:
		if other, ok := p.parsed(p.start); ok && d.Before(other) {
			return ErrOutOfOrder
		}
	}

	in.store(d.Format(p.layout))
	return nil
}

func (p *DateRangePicker) parsed(in *Input) (time.Time, bool) {
	v := in.Value()
	if v == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(p.layout, v)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func goLayout(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: empty", ErrUnsupportedToken)
	}
	layout := format
	for token, repl := range map[string]string{"yyyy": "2006", "mm": "01", "dd": "02"} {
		layout = strings.Replace(layout, token, repl, 1)
	}
	if strings.ContainsAny(layout, "ymd") {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedToken, format)
	}
	return layout, nil
}
