package dto

// UserSettings: preferensi yang disimpan per user
type UserSettings struct {
	EmailNotifications bool `json:"email_notifications"`
	SMSNotifications   bool `json:"sms_notifications"`
	FeeReminders       bool `json:"fee_reminders"`
	DarkMode           bool `json:"dark_mode"`
}

func DefaultUserSettings() UserSettings {
	return UserSettings{
		EmailNotifications: true,
		SMSNotifications:   false,
		FeeReminders:       true,
		DarkMode:           false,
	}
}

// Update (partial): field nil = tidak diubah
type UpdateUserSettingsRequest struct {
	EmailNotifications *bool `json:"email_notifications"`
	SMSNotifications   *bool `json:"sms_notifications"`
	FeeReminders       *bool `json:"fee_reminders"`
	DarkMode           *bool `json:"dark_mode"`
}

func (r UpdateUserSettingsRequest) Apply(s *UserSettings) {
	if r.EmailNotifications != nil {
		s.EmailNotifications = *r.EmailNotifications
	}
	if r.SMSNotifications != nil {
		s.SMSNotifications = *r.SMSNotifications
	}
	if r.FeeReminders != nil {
		s.FeeReminders = *r.FeeReminders
	}
	if r.DarkMode != nil {
		s.DarkMode = *r.DarkMode
	}
}
