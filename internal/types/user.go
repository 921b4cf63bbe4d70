package types

// UserResponse is the identity shape returned by the auth endpoints
// and cached by the client for scoping subsequent requests.
type UserResponse struct {
	ID        uint   `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
