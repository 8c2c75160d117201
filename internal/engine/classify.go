package engine

import (
	"strings"

	"github.com/amritsharan/credit-dashboard-hackathon/internal/model"
)

// eventRule binds an event category to the keywords that imply it.
type eventRule struct {
	Category model.EventCategory
	Keywords []string
}

// eventRules is evaluated in order; the first matching rule wins.
var eventRules = []eventRule{
	{model.EventHighRisk, []string{"debt", "bankruptcy", "default", "restructuring", "liquidation"}},
	{model.EventPositive, []string{"earnings beat", "growth", "profit", "record", "surge", "rally"}},
	{model.EventWarning, []string{"warn", "decline", "drop", "miss", "loss", "lawsuit"}},
}

// ClassifyEvent maps a headline to an event category by case-insensitive
// substring matching. Headlines matching no rule are neutral.
func ClassifyEvent(title string) model.EventCategory {
	lower := strings.ToLower(title)
	for _, rule := range eventRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Category
			}
		}
	}
	return model.EventNeutral
}
