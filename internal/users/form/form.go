// Package form holds the edit state of a single user record.
//
// A Form is always in exactly one of three states. The displayed record only
// changes when a save is confirmed; while a save is in flight the viewer keeps
// seeing the last committed record.
//
//	Viewing --Edit------> Editing --BeginSave--> Saving --FinishSave(nil)--> Viewing
//	Viewing <--Cancel---- Editing <--FinishSave(err)-- Saving
//
// A Form belongs to one view and is not safe for concurrent use.
package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/tech0-step3/portal-web/internal/users/domain"
)

type State int

const (
	Viewing State = iota
	Editing
	Saving
)

func (s State) String() string {
	switch s {
	case Viewing:
		return "viewing"
	case Editing:
		return "editing"
	case Saving:
		return "saving"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Field names an editable field of a user.
type Field string

const (
	FieldName       Field = "name"
	FieldEmail      Field = "email"
	FieldPrefecture Field = "prefecture"
)

// Fields lists the editable fields in display order.
var Fields = []Field{FieldName, FieldEmail, FieldPrefecture}

var (
	ErrInvalidTransition = errors.New("invalid form transition")
	ErrUnknownField      = errors.New("unknown form field")
	ErrSaveFailed        = errors.New("save failed")
)

// Updater persists a user edit.
type Updater interface {
	UpdateUser(ctx context.Context, id string, patch domain.Patch) error
}

type Form struct {
	state     State
	committed domain.User
	draft     domain.User
}

// New returns a form in the Viewing state showing u.
func New(u domain.User) *Form {
	return &Form{state: Viewing, committed: u, draft: u}
}

func (f *Form) State() State { return f.state }

// Displayed is the record shown to the viewer: always the last committed one.
func (f *Form) Displayed() domain.User { return f.committed }

// Draft is the editable copy.
func (f *Form) Draft() domain.User { return f.draft }

// Edit enters the Editing state with a fresh copy of the displayed record.
func (f *Form) Edit() error {
	if f.state != Viewing {
		return f.invalid("edit")
	}
	f.draft = f.committed
	f.state = Editing
	return nil
}

// Set changes one field of the draft.
func (f *Form) Set(field Field, value string) error {
	if f.state != Editing {
		return f.invalid("set " + string(field))
	}
	switch field {
	case FieldName:
		f.draft.Name = value
	case FieldEmail:
		f.draft.Email = value
	case FieldPrefecture:
		f.draft.Prefecture = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Value reads one field of the draft.
func (f *Form) Value(field Field) string {
	switch field {
	case FieldName:
		return f.draft.Name
	case FieldEmail:
		return f.draft.Email
	case FieldPrefecture:
		return f.draft.Prefecture
	}
	return ""
}

// Cancel drops the draft and returns to Viewing without touching the backend.
func (f *Form) Cancel() error {
	if f.state != Editing {
		return f.invalid("cancel")
	}
	f.draft = f.committed
	f.state = Viewing
	return nil
}

// BeginSave moves to Saving and returns the draft to submit. No further edits
// or saves are accepted until FinishSave.
func (f *Form) BeginSave() (domain.User, error) {
	if f.state != Editing {
		return domain.User{}, f.invalid("save")
	}
	f.state = Saving
	return f.draft, nil
}

// FinishSave resolves an in-flight save. On success the draft becomes the
// displayed record; on failure the form goes back to Editing with the draft
// intact.
func (f *Form) FinishSave(err error) error {
	if f.state != Saving {
		return f.invalid("finish save")
	}
	if err != nil {
		f.state = Editing
		return nil
	}
	f.committed = f.draft
	f.state = Viewing
	return nil
}

// Changes is the partial update that turns the displayed record into the
// draft. It is empty when nothing was edited.
func (f *Form) Changes() domain.Patch {
	return domain.DiffPatch(f.committed, f.draft)
}

// Save runs BeginSave, the update and FinishSave in one call. Only the
// changed fields are submitted, keyed by the committed record's ID. A save
// with no changes returns to Viewing without calling u.
func (f *Form) Save(ctx context.Context, u Updater) error {
	if _, err := f.BeginSave(); err != nil {
		return err
	}

	patch := f.Changes()
	if patch.Empty() {
		return f.FinishSave(nil)
	}

	updateErr := u.UpdateUser(ctx, f.committed.ID, patch)
	if err := f.FinishSave(updateErr); err != nil {
		return err
	}
	if updateErr != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, updateErr)
	}
	return nil
}

func (f *Form) invalid(op string) error {
	return fmt.Errorf("%w: cannot %s while %s", ErrInvalidTransition, op, f.state)
}
