// Package ui models the page elements the booking workflow touches: text
// inputs, the form that groups them, the trigger button and the date-range
// picker bound to a pair of inputs. Elements are passed around as values so
// several independent workflows can coexist on one page.
package ui

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrDisabled = errors.New("input is disabled")
	ErrUnknown  = errors.New("unknown input")
)

// Input is a single text input element.
type Input struct {
	ID          string
	Name        string
	Placeholder string
	Required    bool

	mu       sync.Mutex
	disabled bool
	value    string
	picker   *DateRangePicker
}

func NewInput(id, placeholder string, disabled bool) *Input {
	return &Input{
		ID:          id,
		Name:        id,
		Placeholder: placeholder,
		Required:    true,
		disabled:    disabled,
	}
}

func (in *Input) Disabled() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.disabled
}

func (in *Input) Enable() {
	in.mu.Lock()
	in.disabled = false
	in.mu.Unlock()
}

func (in *Input) Disable() {
	in.mu.Lock()
	in.disabled = true
	in.mu.Unlock()
}

func (in *Input) Value() string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.value
}

// Bound reports whether a date picker has been attached to the input.
func (in *Input) Bound() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.picker != nil
}

// Set types v into the input. A bound picker gets the final say.
func (in *Input) Set(v string) error {
	in.mu.Lock()
	if in.disabled {
		in.mu.Unlock()
		return ErrDisabled
	}
	p := in.picker
	in.mu.Unlock()

	if p != nil {
		return p.set(in, v)
	}
	in.store(v)
	return nil
}

func (in *Input) store(v string) {
	in.mu.Lock()
	in.value = v
	in.mu.Unlock()
}

func (in *Input) attach(p *DateRangePicker) {
	in.mu.Lock()
	in.picker = p
	in.mu.Unlock()
}

// Form groups inputs in display order.
type Form struct {
	ID     string
	Inputs []*Input
}

func NewForm(id string, inputs ...*Input) *Form {
	return &Form{ID: id, Inputs: inputs}
}

func (f *Form) Input(name string) (*Input, error) {
	for _, in := range f.Inputs {
		if in.Name == name {
			return in, nil
		}
	}
	return nil, ErrUnknown
}

func (f *Form) Enable() {
	for _, in := range f.Inputs {
		in.Enable()
	}
}

// Values returns the current value of every input keyed by name.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.Inputs))
	for _, in := range f.Inputs {
		out[in.Name] = in.Value()
	}
	return out
}

// Button is a clickable trigger element.
type Button struct {
	ID string

	mu       sync.Mutex
	handlers []func(context.Context)
}

func NewButton(id string) *Button {
	return &Button{ID: id}
}

func (b *Button) OnClick(h func(context.Context)) {
	b.mu.Lock()
	b.handlers = append(b.handlers, h)
	b.mu.Unlock()
}

// Click runs every registered handler in registration order.
func (b *Button) Click(ctx context.Context) {
	b.mu.Lock()
	hs := append([]func(context.Context){}, b.handlers...)
	b.mu.Unlock()

	for _, h := range hs {
		h(ctx)
	}
}

// Handlers returns how many click handlers are registered.
func (b *Button) Handlers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers)
}
