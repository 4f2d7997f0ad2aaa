// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package authapi provides the authentication backend contract and its mock
// implementation for the keygate TUI.
package authapi

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/keygate-tui/internal/directory"
	"github.com/jeranaias/keygate-tui/internal/pending"
	"github.com/jeranaias/keygate-tui/internal/util"
)

// =============================================================================
// SENTINEL TABLES
// =============================================================================

// Login sentinel emails. These are checked before the credential lookup,
// so a sentinel wins even if a matching account exists.
const (
	SentinelNetworkError = "network@error.com"
	SentinelServerError  = "server@error.com"
	SentinelTimeout      = "timeout@error.com"
	SentinelInvalidEmail = "invalid@email.com"
	SentinelNotFound     = "notfound@user.com"
	SentinelLocked       = "locked@account.com"
	SentinelSuspended    = "suspended@user.com"
	SentinelExpiredPass  = "expired@password.com"
	SentinelRateLimit    = "ratelimit@test.com"
	SentinelMaintenance  = "maintenance@test.com"
)

// Verify sentinel session IDs, checked before the session lookup.
const (
	SentinelExpiredSession = "expired_session_12345"
	SentinelInvalidSession = "invalid_session_12345"
)

// Fixed second-factor codes.
const (
	// CodeAlwaysInvalid always fails INVALID_2FA_CODE.
	CodeAlwaysInvalid = "111111"

	// CodeLockout always fails TOO_MANY_ATTEMPTS.
	CodeLockout = "000000"
)

// acceptedCodes is the set of codes that verify successfully. Resend does
// not rotate this set; every accepted code stays valid for the life of the
// session. That is a mock simplification, not part of the contract.
var acceptedCodes = map[string]bool{
	"123456": true,
	"131311": true,
}

// =============================================================================
// LATENCY
// =============================================================================

// Latency configures the simulated round-trip delay per operation.
type Latency struct {
	Login   time.Duration
	Verify  time.Duration
	Resend  time.Duration
	Timeout time.Duration // extra wait before the timeout sentinel fails
}

// DefaultLatency mirrors a believable remote service.
func DefaultLatency() Latency {
	return Latency{
		Login:   1000 * time.Millisecond,
		Verify:  800 * time.Millisecond,
		Resend:  500 * time.Millisecond,
		Timeout: 3 * time.Second,
	}
}

// NoLatency resolves every call immediately. For tests.
func NoLatency() Latency {
	return Latency{}
}

// =============================================================================
// MOCK CLIENT
// =============================================================================

// MockClient simulates the remote authentication service. All side effects
// are confined to the injected session repository; the credential directory
// is read-only.
type MockClient struct {
	directory directory.Store
	sessions  pending.Repository
	latency   Latency
	ttl       time.Duration

	// now is the clock source, swappable in tests to drive TTL expiry
	// without sleeping.
	now func() time.Time
}

// NewMockClient creates a mock backend over the given directory and
// session repository.
func NewMockClient(dir directory.Store, sessions pending.Repository, latency Latency) *MockClient {
	return &MockClient{
		directory: dir,
		sessions:  sessions,
		latency:   latency,
		ttl:       pending.DefaultTTL,
		now:       time.Now,
	}
}

// SetClock overrides the clock source. For tests.
func (m *MockClient) SetClock(now func() time.Time) {
	m.now = now
}

// SetTTL overrides the pending session validity window. For tests.
func (m *MockClient) SetTTL(ttl time.Duration) {
	m.ttl = ttl
}

// delay simulates network latency, honoring context cancellation.
func delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// =============================================================================
// LOGIN
// =============================================================================

// Login performs the first-factor check. Sentinel emails take priority over
// the credential lookup.
func (m *MockClient) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if err := delay(ctx, m.latency.Login); err != nil {
		return LoginResult{}, err
	}

	switch email {
	case SentinelNetworkError:
		return LoginResult{}, ErrNetwork
	case SentinelServerError:
		return LoginResult{}, NewAuthError("", 500, "Internal server error")
	case SentinelTimeout:
		// The original never resolves this request; it rejects after an
		// extended delay. Model that as an additional wait then a timeout.
		if err := delay(ctx, m.latency.Timeout); err != nil {
			return LoginResult{}, err
		}
		return LoginResult{}, ErrTimeout
	case SentinelInvalidEmail:
		return LoginResult{}, NewAuthError(CodeInvalidEmail, 400, "Invalid email format")
	case SentinelNotFound:
		return LoginResult{}, NewAuthError(CodeUserNotFound, 404, "User not found")
	case SentinelLocked:
		return LoginResult{}, NewAuthError(CodeAccountLocked, 423,
			"Account is locked due to too many failed attempts")
	case SentinelSuspended:
		return LoginResult{}, NewAuthError(CodeAccountSuspended, 403, "Account is suspended")
	case SentinelExpiredPass:
		return LoginResult{}, NewAuthError(CodePasswordExpired, 403, "Password has expired")
	case SentinelRateLimit:
		return LoginResult{}, NewAuthError(CodeRateLimitExceeded, 429,
			"Too many login attempts. Please try again later.")
	case SentinelMaintenance:
		return LoginResult{}, NewAuthError(CodeServiceUnavailable, 503,
			"Service is temporarily unavailable for maintenance")
	}

	acct, err := m.directory.Verify(email, password)
	if err != nil {
		// Absent account and wrong password collapse into one answer so
		// the response does not leak which emails exist.
		return LoginResult{}, NewAuthError(CodeInvalidCredentials, 401, "Invalid email or password")
	}

	if acct.RequiresTwoFactor {
		session := pending.Session{
			ID:        newSessionID(m.now()),
			Email:     acct.Email,
			CreatedAt: m.now(),
		}
		m.sessions.Put(session)
		return LoginResult{
			RequiresTwoFactor: true,
			SessionID:         session.ID,
			Message:           "Please enter your 2FA code",
		}, nil
	}

	// Direct login: the token is minted here, on the backend, same as the
	// two-factor path. See VerifyCode.
	return LoginResult{
		RequiresTwoFactor: false,
		Token:             newToken(m.now()),
		Message:           "Login successful",
	}, nil
}

// =============================================================================
// VERIFY CODE
// =============================================================================

// VerifyCode checks a six-digit code against a pending session. The session
// is single-use: it is deleted on success and on TTL expiry.
func (m *MockClient) VerifyCode(ctx context.Context, sessionID, code string) (VerifyResult, error) {
	if err := delay(ctx, m.latency.Verify); err != nil {
		return VerifyResult{}, err
	}

	switch sessionID {
	case SentinelExpiredSession:
		return VerifyResult{}, NewAuthError(CodeSessionExpired, 401,
			"Session has expired. Please login again.")
	case SentinelInvalidSession:
		return VerifyResult{}, NewAuthError(CodeInvalidSession, 400, "Invalid session")
	}

	session, ok := m.sessions.Get(sessionID)
	if !ok {
		return VerifyResult{}, NewAuthError(CodeInvalidSession, 401, "Invalid or expired session")
	}

	if session.Expired(m.now(), m.ttl) {
		m.sessions.Delete(sessionID)
		return VerifyResult{}, NewAuthError(CodeSessionExpired, 401,
			"Session has expired. Please login again.")
	}

	switch {
	case code == CodeAlwaysInvalid:
		return VerifyResult{}, NewAuthError(CodeInvalid2FACode, 400, "Invalid verification code")
	case code == CodeLockout:
		return VerifyResult{}, NewAuthError(CodeTooManyAttempts, 423,
			"Too many invalid attempts. Account temporarily locked.")
	case !acceptedCodes[code]:
		return VerifyResult{}, NewAuthError(CodeInvalid2FACode, 400, "Invalid verification code")
	}

	m.sessions.Delete(sessionID)
	return VerifyResult{
		Token:   newToken(m.now()),
		Message: "Authentication successful",
	}, nil
}

// =============================================================================
// RESEND CODE
// =============================================================================

// ResendCode refreshes the session's validity window. No new code value is
// modeled; the accepted set stays as-is.
func (m *MockClient) ResendCode(ctx context.Context, sessionID string) (ResendResult, error) {
	if err := delay(ctx, m.latency.Resend); err != nil {
		return ResendResult{}, err
	}

	if !m.sessions.Refresh(sessionID, m.now()) {
		return ResendResult{}, NewAuthError(CodeInvalidSession, 401, "Invalid or expired session")
	}

	return ResendResult{
		Message: "New verification code sent to your authenticator app",
	}, nil
}

// =============================================================================
// ID MINTING
// =============================================================================

// newSessionID mints a unique pending session identifier.
func newSessionID(now time.Time) string {
	return "session_" + util.Int64ToString(now.UnixMilli()) + "_" + shortID()
}

// newToken mints an opaque authentication token. No expiry or revocation is
// modeled.
func newToken(now time.Time) string {
	return "token_" + util.Int64ToString(now.UnixMilli()) + "_" + shortID()
}

// shortID returns a compact random suffix.
func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}
