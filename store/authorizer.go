// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Authorizer confirms that a delete request carries a token issued for
// that specific store.
type Authorizer interface {
	Authorize(id int64, token string) bool
}

// TokenAuthorizer issues and checks HMAC-SHA256 tokens bound to a store id.
type TokenAuthorizer struct {
	secret []byte
}

// NewTokenAuthorizer returns an authorizer keyed with secret.
func NewTokenAuthorizer(secret []byte) *TokenAuthorizer {
	return &TokenAuthorizer{secret: secret}
}

// Token returns the delete token for id.
func (a *TokenAuthorizer) Token(id int64) string {
	return hex.EncodeToString(a.mac(id))
}

// Authorize reports whether token was issued for id.
func (a *TokenAuthorizer) Authorize(id int64, token string) bool {
	if len(a.secret) == 0 || token == "" {
		return false
	}

	got, err := hex.DecodeString(token)
	if err != nil {
		return false
	}

	return hmac.Equal(got, a.mac(id))
}

func (a *TokenAuthorizer) mac(id int64) []byte {
	h := hmac.New(sha256.New, a.secret)
	h.Write([]byte("delete_store_" + strconv.FormatInt(id, 10)))

	return h.Sum(nil)
}
