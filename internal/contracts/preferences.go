package contracts

import "github.com/personalfinancemanagentdashboard/babu/internal/domain/preferences"

// PreferencesUpdateRequest patches stored preferences. A missing
// custom_categories key keeps the saved list; an empty array clears it.
type PreferencesUpdateRequest struct {
	Theme            *string  `json:"theme" binding:"omitempty,oneof=system light dark"`
	CustomCategories []string `json:"custom_categories"`
}

type PreferencesResponse struct {
	Preferences *preferences.Preference `json:"preferences"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
