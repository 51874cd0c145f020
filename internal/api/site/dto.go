package siteapi

// PublicSettingsResponse is all the public site learns about settings.
type PublicSettingsResponse struct {
	PageVisibility map[string]bool `json:"pageVisibility"`
}
