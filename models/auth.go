package models

// LoginRequest is the payload for the demo login. GuestID, when present,
// lets the service replay an add-to-cart intent deferred before login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	GuestID  string `json:"guest_id"`
}

// LoginResponse carries the session token. ReplayedAdd is true when a
// deferred add-to-cart intent was applied to the cart during this login.
type LoginResponse struct {
	Token       string `json:"token"`
	UserID      string `json:"user_id"`
	ReplayedAdd bool   `json:"replayed_add"`
}
