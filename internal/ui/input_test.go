package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInput_DisabledRejectsInput(t *testing.T) {
	in := NewInput("start", "Arrival", true)

	assert.ErrorIs(t, in.Set("2026-01-01"), ErrDisabled)
	assert.Empty(t, in.Value())

	in.Enable()
	require.NoError(t, in.Set("anything"))
	assert.Equal(t, "anything", in.Value())

	in.Disable()
	assert.True(t, in.Disabled())
}

func TestForm_ValuesAndLookup(t *testing.T) {
	start := NewInput("start", "Arrival", true)
	end := NewInput("end", "Departure", true)
	f := NewForm("check-avail-form", start, end)

	f.Enable()
	require.NoError(t, start.Set("a"))
	require.NoError(t, end.Set("b"))

	assert.Equal(t, map[string]string{"start": "a", "end": "b"}, f.Values())

	got, err := f.Input("end")
	require.NoError(t, err)
	assert.Same(t, end, got)

	_, err = f.Input("missing")
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestButton_ClickRunsHandlersInOrder(t *testing.T) {
	b := NewButton("check-availability-button")
	var calls []int
	b.OnClick(func(context.Context) { calls = append(calls, 1) })
	b.OnClick(func(context.Context) { calls = append(calls, 2) })

	b.Click(context.Background())

	assert.Equal(t, []int{1, 2}, calls)
	assert.Equal(t, 2, b.Handlers())
}
