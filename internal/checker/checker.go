// Package checker runs the check-availability workflow for one room: it asks
// for a date range, posts it to the availability service and reports the
// outcome.
package checker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"bookings/internal/domain"
	"bookings/internal/notify"
	"bookings/internal/ui"
)

const (
	FormID     = "check-avail-form"
	DateFormat = "yyyy-mm-dd"

	DialogTitle           = "Choose your dates"
	AvailableMessage      = "Room is available!"
	NoAvailabilityMessage = "No availability"
	GenericErrorMessage   = "Something went wrong, please try again later."
)

// Notifier is the subset of *notify.Notifier the checker needs.
type Notifier interface {
	ShowCustom(ctx context.Context, opts notify.CustomOptions) error
	ShowError(ctx context.Context, opts notify.MessageOptions) error
}

type AvailabilityClient interface {
	Check(ctx context.Context, q Query) (domain.AvailabilityResult, error)
}

type Config struct {
	Notifier  Notifier
	Client    AvailabilityClient
	RoomID    domain.RoomID
	CSRFToken string

	// Clock supplies "today" for the picker's minimum date. Defaults to the real clock.
	Clock  clockwork.Clock
	Logger *zap.Logger
}

type Checker struct {
	notifier Notifier
	client   AvailabilityClient
	roomID   domain.RoomID
	csrf     string
	clock    clockwork.Clock
	log      *zap.Logger

	attach sync.Once
}

func New(cfg Config) (*Checker, error) {
	if cfg.Notifier == nil || cfg.Client == nil {
		return nil, ErrNotConfigured
	}
	if !cfg.RoomID.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoom, cfg.RoomID)
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Checker{
		notifier: cfg.Notifier,
		client:   cfg.Client,
		roomID:   cfg.RoomID,
		csrf:     cfg.CSRFToken,
		clock:    cfg.Clock,
		log:      cfg.Logger.With(zap.String("room_id", string(cfg.RoomID))),
	}, nil
}

// AttachTrigger makes trigger start the workflow on click. Only the first
// call has an effect.
func (c *Checker) AttachTrigger(trigger *ui.Button) {
	c.attach.Do(func() {
		trigger.OnClick(func(ctx context.Context) {
			if err := c.Run(ctx); err != nil {
				c.log.Warn("check availability workflow failed", zap.Error(err))
			}
		})
	})
}

// Run opens the date dialog and, if the user confirms a range, checks it.
func (c *Checker) Run(ctx context.Context) error {
	start := ui.NewInput(notify.FieldStart, "Arrival", true)
	end := ui.NewInput(notify.FieldEnd, "Departure", true)
	form := ui.NewForm(FormID, start, end)

	body, err := datesFormHTML(start.ID, end.ID)
	if err != nil {
		return fmt.Errorf("render dates form: %w", err)
	}

	var bindErr error
	return c.notifier.ShowCustom(ctx, notify.CustomOptions{
		Title: DialogTitle,
		Body:  body,
		Form:  form,
		OnOpen: func() {
			_, bindErr = ui.BindDateRange(start, end, ui.PickerConfig{
				Format:       DateFormat,
				ShowOneFocus: true,
				MinDate:      c.clock.Now(),
			})
		},
		OnShown: func() {
			if bindErr == nil {
				form.Enable()
			}
		},
		OnResolve: func(ctx context.Context, pair notify.FieldPair, ok bool) error {
			if bindErr != nil {
				return fmt.Errorf("bind date picker: %w", bindErr)
			}
			if !ok {
				return nil
			}
			return c.check(ctx, pair)
		},
	})
}

func (c *Checker) check(ctx context.Context, pair notify.FieldPair) error {
	res, err := c.client.Check(ctx, Query{
		Start:     pair.Start,
		End:       pair.End,
		CSRFToken: c.csrf,
		RoomID:    c.roomID,
	})
	if errors.Is(err, context.Canceled) {
		c.log.Info("availability check cancelled", zap.String("start", pair.Start), zap.String("end", pair.End))
		return nil
	}
	if err != nil {
		c.log.Error("availability check failed",
			zap.String("start", pair.Start),
			zap.String("end", pair.End),
			zap.Error(err),
		)
		if showErr := c.notifier.ShowError(ctx, notify.MessageOptions{Msg: GenericErrorMessage}); showErr != nil {
			return errors.Join(err, showErr)
		}
		return err
	}

	if !res.OK {
		return c.notifier.ShowError(ctx, notify.MessageOptions{Msg: NoAvailabilityMessage})
	}

	body, err := availableHTML(res)
	if err != nil {
		return fmt.Errorf("render availability: %w", err)
	}
	return c.notifier.ShowCustom(ctx, notify.CustomOptions{
		Icon:              notify.IconSuccess,
		Body:              body,
		HideConfirmButton: true,
		OnResolve:         func(context.Context, notify.FieldPair, bool) error { return nil },
	})
}
