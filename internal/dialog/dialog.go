// Package dialog models alert dialogs whose concrete style is chosen by a
// parameterized factory method.
package dialog

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnknownKind is returned for an alert kind New does not know how to make.
var ErrUnknownKind = errors.New("unknown alert kind")

// Kind selects an alert style.
type Kind int

const (
	// Done is an alert with a single confirm button.
	Done Kind = iota
	// Confirm is an alert with confirm and cancel buttons.
	Confirm
	// Share is the usual share sheet.
	Share
)

// Kinds returns every alert kind in declaration order.
func Kinds() []Kind { return []Kind{Done, Confirm, Share} }

func (k Kind) String() string {
	switch k {
	case Done:
		return "done"
	case Confirm:
		return "confirm"
	case Share:
		return "share"
	default:
		return "unknown"
	}
}

// ParseKind maps a kind name to its Kind. Matching is case-insensitive.
//
// Postcondition: Returns ErrUnknownKind (wrapped) for an unrecognized name.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "done":
		return Done, nil
	case "confirm":
		return Confirm, nil
	case "share":
		return Share, nil
	default:
		return 0, fmt.Errorf("alert %q: %w", name, ErrUnknownKind)
	}
}

// Alert is a displayable dialog.
type Alert interface {
	// Kind reports which style the alert is.
	Kind() Kind
	// Buttons lists the alert's buttons in display order.
	Buttons() []string
	// Show writes the alert's style description to w.
	Show(w io.Writer) error
}

// New is the factory method: it returns the concrete alert for kind.
//
// Postcondition: Returns ErrUnknownKind (wrapped) for a kind outside Kinds().
func New(kind Kind) (Alert, error) {
	switch kind {
	case Done:
		return DoneAlert{}, nil
	case Confirm:
		return ConfirmAlert{}, nil
	case Share:
		return ShareAlert{}, nil
	default:
		return nil, fmt.Errorf("alert kind %d: %w", int(kind), ErrUnknownKind)
	}
}

// DoneAlert has a single confirm button.
type DoneAlert struct{}

func (DoneAlert) Kind() Kind { return Done }
func (DoneAlert) Buttons() []string { return []string{"OK"} }
func (a DoneAlert) Show(w io.Writer) error {
	return show(w, "Completion alert style.", a.Buttons())
}

// ConfirmAlert has confirm and cancel buttons.
type ConfirmAlert struct{}

func (ConfirmAlert) Kind() Kind { return Confirm }
func (ConfirmAlert) Buttons() []string { return []string{"OK", "Cancel"} }
func (a ConfirmAlert) Show(w io.Writer) error {
	return show(w, "Alert style with two buttons (confirm and cancel).", a.Buttons())
}

// ShareAlert is the common share sheet.
type ShareAlert struct{}

func (ShareAlert) Kind() Kind { return Share }
func (ShareAlert) Buttons() []string {
	return []string{"Message", "Mail", "Copy Link", "Cancel"}
}
func (a ShareAlert) Show(w io.Writer) error {
	return show(w, "Common share sheet alert style.", a.Buttons())
}

func show(w io.Writer, desc string, buttons []string) error {
	labels := make([]string, len(buttons))
	for i, b := range buttons {
		labels[i] = "[ " + b + " ]"
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n", desc, strings.Join(labels, " ")); err != nil {
		return fmt.Errorf("showing alert: %w", err)
	}
	return nil
}
