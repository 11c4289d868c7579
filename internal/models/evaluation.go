package models

import "strings"

type Action string

const (
	ActionReview Action = "review"
	ActionMatch  Action = "match"
)

// ParseAction maps a submitted button value to an Action. The second
// return value is false for anything that is not a known action.
func ParseAction(value string) (Action, bool) {
	switch Action(strings.ToLower(strings.TrimSpace(value))) {
	case ActionReview:
		return ActionReview, true
	case ActionMatch:
		return ActionMatch, true
	default:
		return "", false
	}
}
