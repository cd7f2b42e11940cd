package ui

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)

func bindPair(t *testing.T) (*Input, *Input, *DateRangePicker) {
	t.Helper()
	start := NewInput("start", "Arrival", false)
	end := NewInput("end", "Departure", false)
	p, err := BindDateRange(start, end, PickerConfig{Format: "yyyy-mm-dd", ShowOneFocus: true, MinDate: today})
	require.NoError(t, err)
	return start, end, p
}

func TestDateRangePicker_AcceptsOrderedDates(t *testing.T) {
	start, end, p := bindPair(t)

	require.NoError(t, start.Set("2026-03-15"))
	require.NoError(t, end.Set("2026-03-18"))

	r, ok := p.Range()
	assert.True(t, ok)
	assert.Equal(t, DateRange{Start: "2026-03-15", End: "2026-03-18"}, r)
}

func TestDateRangePicker_Rejections(t *testing.T) {
	start, end, _ := bindPair(t)

	assert.ErrorIs(t, start.Set("2026-03-14"), ErrBeforeMinDate)
	assert.ErrorIs(t, start.Set("15/03/2026"), ErrBadFormat)
	assert.Empty(t, start.Value())

	require.NoError(t, start.Set("2026-03-20"))
	assert.ErrorIs(t, end.Set("2026-03-19"), ErrOutOfOrder)
	assert.Empty(t, end.Value())

	require.NoError(t, end.Set("2026-03-22"))
	assert.ErrorIs(t, start.Set("2026-03-23"), ErrOutOfOrder)
	assert.Equal(t, "2026-03-20", start.Value())
}

func TestDateRangePicker_SameDayAllowed(t *testing.T) {
	start, end, _ := bindPair(t)
	require.NoError(t, start.Set("2026-04-01"))
	require.NoError(t, end.Set("2026-04-01"))
}

func TestDateRangePicker_ClearValue(t *testing.T) {
	start, _, p := bindPair(t)
	require.NoError(t, start.Set("2026-04-01"))
	require.NoError(t, start.Set(""))

	_, ok := p.Range()
	assert.False(t, ok)
}

func TestDateRangePicker_ShowOneFocus(t *testing.T) {
	start, end, p := bindPair(t)

	require.NoError(t, p.Focus(start))
	require.NoError(t, p.Focus(end))
	assert.False(t, p.Open(start))
	assert.True(t, p.Open(end))

	assert.ErrorIs(t, p.Focus(NewInput("other", "", false)), ErrNotInRange)
}

func TestBindDateRange_Errors(t *testing.T) {
	start, end, _ := bindPair(t)

	_, err := BindDateRange(start, end, PickerConfig{Format: "yyyy-mm-dd", MinDate: today})
	assert.ErrorIs(t, err, ErrAlreadyBound)

	_, err = BindDateRange(NewInput("a", "", false), NewInput("b", "", false), PickerConfig{Format: "yy-m-d"})
	assert.ErrorIs(t, err, ErrUnsupportedToken)
}

func TestBindDateRange_OtherFormat(t *testing.T) {
	start := NewInput("start", "", false)
	end := NewInput("end", "", false)
	_, err := BindDateRange(start, end, PickerConfig{Format: "dd/mm/yyyy", MinDate: today})
	require.NoError(t, err)

	require.NoError(t, start.Set("16/03/2026"))
	assert.Equal(t, "16/03/2026", start.Value())
}

func TestDateRangePicker_NeverBeforeMinOrOutOfOrder(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("selected range stays ordered and on or after min date", prop.ForAll(
		func(offsets []int) bool {
			start := NewInput("start", "", false)
			end := NewInput("end", "", false)
			p, err := BindDateRange(start, end, PickerConfig{Format: "yyyy-mm-dd", MinDate: today})
			if err != nil {
				return false
			}

			for i, off := range offsets {
				v := today.AddDate(0, 0, off).Format("2006-01-02")
				target := start
				if i%2 == 1 {
					target = end
				}
				_ = target.Set(v)
			}

			minDay := today.Format("2006-01-02")
			s, e := start.Value(), end.Value()
			if s != "" && s < minDay {
				return false
			}
			if e != "" && e < minDay {
				return false
			}
			if r, ok := p.Range(); ok && r.End < r.Start {
				return false
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-30, 30)),
	))

	properties.TestingRun(t)
}
