// Package service defines interfaces for domain services backed by external systems:
// identity verification, tokens, payments, events and labels.
package service

import "context"

// VerifiedIdentity is what the identity provider vouches for after checking an ID token.
type VerifiedIdentity struct {
	UID           string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}

// IdentityVerifier checks identity-provider ID tokens (Firebase Authentication).
type IdentityVerifier interface {
	// VerifyIDToken validates the token signature, audience and expiry.
	VerifyIDToken(ctx context.Context, idToken string) (*VerifiedIdentity, error)
}
