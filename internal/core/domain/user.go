package domain

// User is the read-only projection of a platform user this service needs:
// display names for journal creators and petty cash custodians. User
// management itself belongs to another service.
type User struct {
	UserID      string `json:"userID"`
	DisplayName string `json:"displayName"`
}
