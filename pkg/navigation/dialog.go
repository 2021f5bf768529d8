package navigation

import "github.com/google/uuid"

// ActionRole tags a dialog or alert action with presentation semantics.
type ActionRole int

const (
	// RoleDefault is an ordinary action.
	RoleDefault ActionRole = iota
	// RoleDestructive marks an action that deletes or discards something.
	RoleDestructive
	// RoleCancel marks the action that closes the dialog without effect.
	RoleCancel
)

// String returns the role name for logging and rendering.
func (r ActionRole) String() string {
	switch r {
	case RoleDefault:
		return "default"
	case RoleDestructive:
		return "destructive"
	case RoleCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// DialogAction is one titled choice offered within a confirmation dialog.
// Identity is synthetic per instance: two actions created with identical
// titles remain distinct, so a dialog may legitimately offer duplicate
// labels.
type DialogAction struct {
	id string

	// Title is the label shown to the user.
	Title string

	// Role tags the action for rendering (destructive actions are typically
	// highlighted, cancel actions placed last).
	Role ActionRole

	// Action is invoked when the user selects this choice. May be nil.
	Action func()
}

// NewDialogAction creates a dialog action with a fresh synthetic identity.
func NewDialogAction(title string, role ActionRole, action func()) DialogAction {
	return DialogAction{
		id:     uuid.NewString(),
		Title:  title,
		Role:   role,
		Action: action,
	}
}

// ID returns the action's synthetic identifier.
func (a DialogAction) ID() string {
	return a.id
}

// ConfirmationDialog is a one-shot overlay offering an ordered set of
// actions. At most one dialog is active at a time; showing a new one
// replaces any prior dialog.
type ConfirmationDialog struct {
	Title   string
	Message string // optional
	Actions []DialogAction
}

// Alert is an opaque one-shot overlay payload. At most one alert is active
// at a time; showing a new one replaces any prior alert.
type Alert struct {
	Title   string
	Message string
	Buttons []AlertButton
}

// AlertButton is one choice offered by an alert. The container treats the
// alert payload as opaque; running a button's action and clearing the alert
// is the rendering layer's job.
type AlertButton struct {
	Title  string
	Role   ActionRole
	Action func()
}
