package jwt

import "errors"

var _ Verifier = (*StubVerifier)(nil)

type StubVerifier struct {
	VerifyFunc func(token string) (*Claims, error)
}

func (s *StubVerifier) Verify(token string) (*Claims, error) {
	if s.VerifyFunc == nil {
		return nil, errors.New("Verify() not implemented by stub")
	}
	return s.VerifyFunc(token)
}
