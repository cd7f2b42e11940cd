package notify

import (
	"context"
	"html/template"
	"time"

	"bookings/internal/ui"
)

type Icon string

const (
	IconNone     Icon = ""
	IconSuccess  Icon = "success"
	IconError    Icon = "error"
	IconWarning  Icon = "warning"
	IconInfo     Icon = "info"
	IconQuestion Icon = "question"
)

type Position string

const (
	PositionTop         Position = "top"
	PositionTopStart    Position = "top-start"
	PositionTopEnd      Position = "top-end"
	PositionCenter      Position = "center"
	PositionBottom      Position = "bottom"
	PositionBottomStart Position = "bottom-start"
	PositionBottomEnd   Position = "bottom-end"
)

const DefaultToastTimer = 3000 * time.Millisecond

// ToastOptions configures Notifier.Toast. Zero fields take the defaults:
// Icon success, Position top-end, Timer 3s.
type ToastOptions struct {
	Msg      string
	Icon     Icon
	Position Position
	Timer    time.Duration
}

func (o ToastOptions) withDefaults() ToastOptions {
	if o.Icon == IconNone {
		o.Icon = IconSuccess
	}
	if o.Position == "" {
		o.Position = PositionTopEnd
	}
	if o.Timer <= 0 {
		o.Timer = DefaultToastTimer
	}
	return o
}

// MessageOptions configures ShowSuccess and ShowError. Every field defaults to "".
type MessageOptions struct {
	Msg    string
	Title  string
	Footer string
}

// Field names read from a custom dialog's form on confirmation.
const (
	FieldStart = "start"
	FieldEnd   = "end"
)

// FieldPair is the payload of a confirmed custom dialog.
type FieldPair struct {
	Start string
	End   string
}

// ResolveFunc receives the outcome of a custom dialog: ok is false when the
// user backed out or left a field empty, and pair is then zero.
type ResolveFunc func(ctx context.Context, pair FieldPair, ok bool) error

// CustomOptions configures ShowCustom.
type CustomOptions struct {
	Icon  Icon
	Title string
	Body  template.HTML
	// Form holds the inputs rendered inside Body; nil for plain messages.
	Form *ui.Form
	// HideConfirmButton removes the confirm affordance; cancel always shows.
	HideConfirmButton bool

	// OnOpen runs before the dialog becomes interactive.
	OnOpen func()
	// OnShown runs once the dialog has rendered.
	OnShown func()
	// OnResolve is required.
	OnResolve ResolveFunc
}
