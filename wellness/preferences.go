package wellness

import (
	"fmt"
	"time"
)

// Preferences extends a user account with application settings.
type Preferences struct {
	UserID              string    `json:"-"`
	ReminderEnabled     bool      `json:"reminder_enabled"`
	ReminderTime        string    `json:"reminder_time"`
	NotificationEnabled bool      `json:"notification_enabled"`
	PreferredTheme      Theme     `json:"preferred_theme"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// DefaultPreferences returns the settings assigned to a new user.
func DefaultPreferences(userID string, now time.Time) *Preferences {
	return &Preferences{
		UserID:         userID,
		ReminderTime:   DefaultReminderTime,
		PreferredTheme: ThemeAuto,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// PreferencesPatch carries a partial update; nil fields are untouched.
type PreferencesPatch struct {
	ReminderEnabled     *bool   `json:"reminder_enabled,omitempty"`
	ReminderTime        *string `json:"reminder_time,omitempty"`
	NotificationEnabled *bool   `json:"notification_enabled,omitempty"`
	PreferredTheme      *Theme  `json:"preferred_theme,omitempty"`
}

// Validate checks the supplied fields of a partial update.
func (p *PreferencesPatch) Validate() map[string]string {
	problems := map[string]string{}
	if p.ReminderTime != nil {
		if _, err := time.Parse("15:04:05", *p.ReminderTime); err != nil {
			problems["reminder_time"] = "Time has wrong format. Use HH:MM:SS"
		}
	}
	if p.PreferredTheme != nil && !ValidTheme(*p.PreferredTheme) {
		problems["preferred_theme"] = fmt.Sprintf("%q is not a valid choice", string(*p.PreferredTheme))
	}
	if len(problems) == 0 {
		return nil
	}
	return problems
}

// Apply merges the patch into prefs and stamps the update time.
func (p *PreferencesPatch) Apply(prefs *Preferences, now time.Time) {
	if p.ReminderEnabled != nil {
		prefs.ReminderEnabled = *p.ReminderEnabled
	}
	if p.ReminderTime != nil {
		prefs.ReminderTime = *p.ReminderTime
	}
	if p.NotificationEnabled != nil {
		prefs.NotificationEnabled = *p.NotificationEnabled
	}
	if p.PreferredTheme != nil {
		prefs.PreferredTheme = *p.PreferredTheme
	}
	prefs.UpdatedAt = now
}
