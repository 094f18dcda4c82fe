package lineauth

// Profile is the identity LINE vouches for after verifying an id token.
// UserID is the stable identifier tested against the operator allow-list.
type Profile struct {
	UserID      string
	DisplayName string
	Picture     string
}

// verifyResponse is the wire shape of the LINE id-token verify endpoint
type verifyResponse struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Aud     string `json:"aud"`
	Error   string `json:"error"`
	Desc    string `json:"error_description"`
}
