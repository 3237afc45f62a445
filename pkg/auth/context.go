package auth

import (
	"context"
)

type contextKey string

const (
	// ContextKeyWallet is the context key for the caller's wallet address
	ContextKeyWallet contextKey = "wallet_address"
	// ContextKeySubject is the context key for the token subject, when the
	// caller was identified by a bearer token
	ContextKeySubject contextKey = "subject"
)

// WithWallet adds the caller's normalized wallet address to the context
func WithWallet(ctx context.Context, wallet string) context.Context {
	return context.WithValue(ctx, ContextKeyWallet, wallet)
}

// WalletFromContext retrieves the caller's wallet address from the context
func WalletFromContext(ctx context.Context) (string, bool) {
	wallet, ok := ctx.Value(ContextKeyWallet).(string)
	return wallet, ok && wallet != ""
}

// WithSubject adds the token subject to the context
func WithSubject(ctx context.Context, sub string) context.Context {
	return context.WithValue(ctx, ContextKeySubject, sub)
}

// SubjectFromContext retrieves the token subject from the context
func SubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(ContextKeySubject).(string)
	return sub, ok
}
