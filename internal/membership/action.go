package membership

// Action selects one operation of the user angel type page.
type Action string

const (
	ActionDeleteAll  Action = "delete_all"
	ActionConfirmAll Action = "confirm_all"
	ActionConfirm    Action = "confirm"
	ActionDelete     Action = "delete"
	ActionUpdate     Action = "update"
	ActionAdd        Action = "add"
)

// ParseAction matches value exactly against the known actions.
func ParseAction(value string) (Action, bool) {
	switch a := Action(value); a {
	case ActionDeleteAll, ActionConfirmAll, ActionConfirm, ActionDelete, ActionUpdate, ActionAdd:
		return a, true
	}
	return "", false
}

// SubmitField is the form field whose presence applies the action.
func (a Action) SubmitField() string {
	switch a {
	case ActionDeleteAll:
		return "deny_all"
	case ActionConfirmAll:
		return "confirm_all"
	case ActionConfirm:
		return "confirm_user"
	case ActionDelete:
		return "delete"
	default:
		return "submit"
	}
}
