package wellness

import (
	"fmt"
	"math"
	"time"
)

// Goal tracks progress toward a user-defined target.
type Goal struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"-"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	GoalType     GoalType  `json:"goal_type"`
	TargetValue  int       `json:"target_value"`
	CurrentValue int       `json:"current_value"`
	StartDate    string    `json:"start_date"`
	TargetDate   string    `json:"target_date"`
	Completed    bool      `json:"completed"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProgressPercentage returns completion as a 0-100 percentage, rounded
// to two decimals and capped at 100.
func (g *Goal) ProgressPercentage() float64 {
	if g.TargetValue == 0 {
		return 0.0
	}
	progress := math.Min(100.0, float64(g.CurrentValue)/float64(g.TargetValue)*100)
	return math.Round(progress*100) / 100
}

// DaysRemaining returns the number of days until the target date,
// negative when overdue.
func (g *Goal) DaysRemaining(today time.Time) int {
	target, err := time.Parse("2006-01-02", g.TargetDate)
	if err != nil {
		return 0
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(target.Sub(day).Hours() / 24)
}

// IsOverdue reports whether the target date has passed without completion.
func (g *Goal) IsOverdue(today time.Time) bool {
	return !g.Completed && g.DaysRemaining(today) < 0
}

// ValidateGoal checks a full goal payload. Partial updates validate
// only the fields they touch.
func ValidateGoal(title, description string, goalType GoalType, targetValue int, targetDate string) map[string]string {
	problems := map[string]string{}
	if len(title) < MinGoalTitleLength || len(title) > MaxGoalTitleLength {
		problems["title"] = fmt.Sprintf("Ensure this field has between %d and %d characters", MinGoalTitleLength, MaxGoalTitleLength)
	}
	if description != "" && (len(description) < MinGoalDescriptionLength || len(description) > MaxGoalDescriptionLength) {
		problems["description"] = fmt.Sprintf("Ensure this field has between %d and %d characters", MinGoalDescriptionLength, MaxGoalDescriptionLength)
	}
	if goalType != "" && !ValidGoalType(goalType) {
		problems["goal_type"] = fmt.Sprintf("%q is not a valid choice", string(goalType))
	}
	if targetValue <= 0 {
		problems["target_value"] = "Ensure this value is greater than 0"
	}
	if _, err := time.Parse("2006-01-02", targetDate); err != nil {
		problems["target_date"] = "Date has wrong format. Use YYYY-MM-DD"
	}
	if len(problems) == 0 {
		return nil
	}
	return problems
}
