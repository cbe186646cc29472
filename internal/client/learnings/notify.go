package learnings

import "context"

type Kind string

const (
	KindValidation Kind = "validation"
	KindError      Kind = "error"
)

// User-facing texts.
const (
	TitleError         = "Error"
	TitleInputError    = "Input Error"
	TitleConfirmDelete = "Confirm Deletion"

	MsgCategoriesFailed = "Failed to fetch categories. Please try again later."
	MsgItemsFailed      = "Failed to fetch learning items. Please try again later."
	MsgCreateFailed     = "Could not create learning item. Please try again."
	MsgDeleteFailed     = "Could not delete learning item. Please try again."
	MsgInvalidTitle     = "Please enter a valid title"
	MsgConfirmDelete    = "Are you sure you want to delete this learning item?"
)

type Notification struct {
	Kind    Kind
	Title   string
	Message string
}

// Notifier shows one-off messages to the user.
type Notifier interface {
	Notify(n Notification)
}

// Confirmer asks the user a yes/no question. Returning false cancels the
// pending action.
type Confirmer interface {
	Confirm(ctx context.Context, title, message string) bool
}
