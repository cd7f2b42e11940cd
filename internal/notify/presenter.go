package notify

import (
	"context"
	"html/template"

	"bookings/internal/ui"
)

type DismissReason string

const (
	DismissConfirm  DismissReason = "confirm"
	DismissCancel   DismissReason = "cancel"
	DismissBackdrop DismissReason = "backdrop"
	DismissClose    DismissReason = "close"
	DismissEsc      DismissReason = "esc"
	DismissTimer    DismissReason = "timer"
)

// Modal is what a Presenter renders for the blocking dialogs.
type Modal struct {
	Icon   Icon
	Title  string
	Text   string
	HTML   template.HTML
	Footer string
	Form   *ui.Form

	ShowConfirmButton bool
	ShowCancelButton  bool
	Backdrop          bool
	FocusConfirm      bool

	// WillOpen must run before the dialog accepts input, DidOpen after it
	// has rendered.
	WillOpen func()
	DidOpen  func()
}

// Outcome is how a modal closed. On confirm, Values holds the form's
// field values keyed by input name.
type Outcome struct {
	Reason DismissReason
	Values map[string]string
}

func (o Outcome) Confirmed() bool {
	return o.Reason == DismissConfirm
}

// Presenter is the alert/dialog rendering capability.
type Presenter interface {
	// ShowToast displays t without blocking. The presenter pauses t while
	// the pointer hovers it and removes it once t.Done() closes.
	ShowToast(ctx context.Context, t *Toast)
	// Fire shows m and blocks until the user closes it.
	Fire(ctx context.Context, m Modal) (Outcome, error)
}
