package gateway

// Method is the request verb, modeled as a value since transport is out of
// scope. Mutating operations only accept MethodPost; the check runs before
// any store or token work.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodPatch  Method = "PATCH"
	MethodDelete Method = "DELETE"
)

// AccountCommand is the request body for register and login.
type AccountCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials is the login response: a short-lived access token and a
// long-lived refresh token, both opaque to the holder.
type Credentials struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
