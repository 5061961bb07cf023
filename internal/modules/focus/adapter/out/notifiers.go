package out

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/godbus/dbus/v5"

	"najah/internal/modules/focus/domain"
	focusout "najah/internal/modules/focus/port/out"
)

const appName = "NAJAH"

// Message returns the user-facing prompt shown when an interval ends.
func Message(kind domain.NotificationKind) string {
	if kind == domain.WorkDone {
		return "C'est l'heure d'une pause !"
	}
	return "C'est reparti pour une session focus !"
}

// BellNotifier rings the terminal bell and prints the prompt.
type BellNotifier struct {
	w io.Writer
}

func NewBellNotifier(w io.Writer) focusout.NotificationSink {
	return &BellNotifier{w: w}
}

func (n *BellNotifier) Notify(_ context.Context, kind domain.NotificationKind) error {
	if _, err := fmt.Fprintf(n.w, "\a%s\n", Message(kind)); err != nil {
		return fmt.Errorf("write bell: %w", err)
	}
	return nil
}

// DBusNotifier posts a desktop notification through
// org.freedesktop.Notifications on the session bus. After the first
// failed connect it stays silent for the rest of the process.
type DBusNotifier struct {
	connect     func() (*dbus.Conn, error)
	unavailable atomic.Bool
}

func NewDBusNotifier() focusout.NotificationSink {
	return &DBusNotifier{connect: dialSessionBus}
}

// dialSessionBus opens a private connection so closing it never tears
// down the process-wide shared one.
func dialSessionBus() (*dbus.Conn, error) {
	conn, err := dbus.SessionBusPrivate()
	if err != nil {
		return nil, err
	}
	if err := conn.Auth(nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if err := conn.Hello(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("hello: %w", err)
	}
	return conn, nil
}

func (n *DBusNotifier) Notify(ctx context.Context, kind domain.NotificationKind) error {
	if n.unavailable.Load() {
		return nil
	}
	conn, err := n.connect()
	if err != nil {
		n.unavailable.Store(true)
		return fmt.Errorf("connect session bus: %w", err)
	}
	defer conn.Close()

	summary := "Session terminée"
	if kind == domain.BreakDone {
		summary = "Pause terminée"
	}
	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.CallWithContext(ctx, "org.freedesktop.Notifications.Notify", 0,
		appName,
		uint32(0),
		"alarm-symbolic",
		summary,
		Message(kind),
		[]string{},
		map[string]dbus.Variant{
			"urgency": dbus.MakeVariant(byte(2)),
		},
		int32(0),
	)
	if call.Err != nil {
		return fmt.Errorf("send notification: %w", call.Err)
	}
	return nil
}

// FuncNotifier adapts a function, used by the TUI to receive completions.
type FuncNotifier func(ctx context.Context, kind domain.NotificationKind) error

func (f FuncNotifier) Notify(ctx context.Context, kind domain.NotificationKind) error {
	return f(ctx, kind)
}

// MultiNotifier delivers to every sink and joins their errors.
type MultiNotifier []focusout.NotificationSink

func (m MultiNotifier) Notify(ctx context.Context, kind domain.NotificationKind) error {
	var errs []error
	for _, sink := range m {
		if sink == nil {
			continue
		}
		if err := sink.Notify(ctx, kind); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
