package activity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Field length limits enforced by the create/edit form.
const (
	MinTextLength = 3
	MaxTextLength = 100
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reasons []string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", strings.Join(r.Reasons, "; "))
}

// CreateActivityContext provides context for activity creation guards.
type CreateActivityContext struct {
	Name        string
	Responsible string
	EndDate     time.Time
	Type        string
	Today       time.Time
}

// UpdateActivityContext provides context for activity edit guards.
// Nil fields are not being changed and are not checked.
type UpdateActivityContext struct {
	Name        *string
	Responsible *string
	EndDate     *time.Time
	Description *string
	Type        *string
	Today       time.Time
}

// CanCreateActivity evaluates whether an activity can be created.
// Rules:
// - Name must be 3-100 characters
// - Responsible must be 3-100 characters
// - End date must be today or later
// - Type must be Research, Teaching or Outreach
func CanCreateActivity(ctx CreateActivityContext) GuardResult {
	var reasons []string
	reasons = appendIf(reasons, checkText("name", ctx.Name))
	reasons = appendIf(reasons, checkText("responsible", ctx.Responsible))
	reasons = appendIf(reasons, checkEndDate(ctx.EndDate, ctx.Today))
	reasons = appendIf(reasons, checkType(ctx.Type))
	return result(reasons)
}

// CanUpdateActivity evaluates whether an activity edit can be applied.
// Rules:
// - At least one field must be changed
// - Each changed field follows the creation rules
func CanUpdateActivity(ctx UpdateActivityContext) GuardResult {
	if ctx.Name == nil && ctx.Responsible == nil && ctx.EndDate == nil && ctx.Description == nil && ctx.Type == nil {
		return GuardResult{
			Allowed: false,
			Reasons: []string{"nothing to update"},
		}
	}

	var reasons []string
	if ctx.Name != nil {
		reasons = appendIf(reasons, checkText("name", *ctx.Name))
	}
	if ctx.Responsible != nil {
		reasons = appendIf(reasons, checkText("responsible", *ctx.Responsible))
	}
	if ctx.EndDate != nil {
		reasons = appendIf(reasons, checkEndDate(*ctx.EndDate, ctx.Today))
	}
	if ctx.Type != nil {
		reasons = appendIf(reasons, checkType(*ctx.Type))
	}
	return result(reasons)
}

func checkText(field, value string) string {
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	if n < MinTextLength {
		return fmt.Sprintf("%s must be at least %d characters", field, MinTextLength)
	}
	if n > MaxTextLength {
		return fmt.Sprintf("%s must be at most %d characters", field, MaxTextLength)
	}
	return ""
}

func checkEndDate(end, today time.Time) string {
	if end.IsZero() {
		return "end date is required"
	}
	if calendarBefore(end, today) {
		return "end date must be today or later"
	}
	return ""
}

// calendarBefore compares calendar days, each in its own location.
func calendarBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}

func checkType(value string) string {
	if _, err := ParseType(value); err != nil {
		return "type must be one of Research, Teaching, Outreach"
	}
	return ""
}

func appendIf(reasons []string, reason string) []string {
	if reason == "" {
		return reasons
	}
	return append(reasons, reason)
}

func result(reasons []string) GuardResult {
	if len(reasons) > 0 {
		return GuardResult{Allowed: false, Reasons: reasons}
	}
	return GuardResult{Allowed: true}
}
