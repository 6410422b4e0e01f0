package jwt

// Claims are the caller attributes carried by a verified bearer token.
type Claims struct {
	Subject string
	Issuer  string
}

// Verifier validates bearer tokens presented by callers.
type Verifier interface {
	Verify(token string) (*Claims, error)
}
