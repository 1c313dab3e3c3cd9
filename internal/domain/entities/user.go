package entities

// UnknownUserName is reported when a user record has no display name.
const UnknownUserName = "Unknown"

// User is the subset of the account record the forecasting service reads.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DisplayName returns the user's name, falling back to UnknownUserName.
func (u User) DisplayName() string {
	if u.Name == "" {
		return UnknownUserName
	}
	return u.Name
}
