// Package notify presents toasts, informational modals and two-field input
// dialogs through a pluggable Presenter.
package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

var ErrNoResolver = errors.New("custom dialog requires an OnResolve callback")

type Notifier struct {
	presenter Presenter
	clock     clockwork.Clock
	log       *zap.Logger
}

type Option func(*Notifier)

func WithClock(c clockwork.Clock) Option {
	return func(n *Notifier) { n.clock = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(n *Notifier) { n.log = l }
}

func New(p Presenter, opts ...Option) *Notifier {
	n := &Notifier{
		presenter: p,
		clock:     clockwork.NewRealClock(),
		log:       zap.NewNop(),
	}
	for _, o := range opts {
		o(n)
	}
	return n
}

// Toast shows a non-blocking notification and starts its dismiss timer.
func (n *Notifier) Toast(ctx context.Context, opts ToastOptions) *Toast {
	t := newToast(opts.withDefaults(), n.clock)
	n.presenter.ShowToast(ctx, t)
	t.start()
	return t
}

func (n *Notifier) ShowSuccess(ctx context.Context, opts MessageOptions) error {
	return n.message(ctx, IconSuccess, opts)
}

func (n *Notifier) ShowError(ctx context.Context, opts MessageOptions) error {
	return n.message(ctx, IconError, opts)
}

func (n *Notifier) message(ctx context.Context, icon Icon, opts MessageOptions) error {
	_, err := n.presenter.Fire(ctx, Modal{
		Icon:              icon,
		Title:             opts.Title,
		Text:              opts.Msg,
		Footer:            opts.Footer,
		ShowConfirmButton: true,
	})
	if err != nil {
		return fmt.Errorf("show %s message: %w", icon, err)
	}
	return nil
}

// ShowCustom opens a dialog with confirm and cancel affordances and hands
// the outcome to opts.OnResolve. Cancelling, dismissing, or confirming with
// an empty start or end field all resolve to ok=false.
func (n *Notifier) ShowCustom(ctx context.Context, opts CustomOptions) error {
	if opts.OnResolve == nil {
		return ErrNoResolver
	}

	out, err := n.presenter.Fire(ctx, Modal{
		Icon:              opts.Icon,
		Title:             opts.Title,
		HTML:              opts.Body,
		Form:              opts.Form,
		ShowConfirmButton: !opts.HideConfirmButton,
		ShowCancelButton:  true,
		WillOpen:          opts.OnOpen,
		DidOpen:           opts.OnShown,
	})
	if err != nil {
		return fmt.Errorf("show custom dialog: %w", err)
	}

	pair, ok := resolve(out)
	n.log.Debug("custom dialog resolved",
		zap.String("title", opts.Title),
		zap.String("reason", string(out.Reason)),
		zap.Bool("ok", ok),
	)
	return opts.OnResolve(ctx, pair, ok)
}

func resolve(out Outcome) (FieldPair, bool) {
	if !out.Confirmed() {
		return FieldPair{}, false
	}
	pair := FieldPair{Start: out.Values[FieldStart], End: out.Values[FieldEnd]}
	if pair.Start == "" || pair.End == "" {
		return FieldPair{}, false
	}
	return pair, true
}
