// Package auth mints and verifies the two opaque token kinds the Agent API
// relies on: operator-issued invitation tokens that grant a
// newly-registering agent visibility into one project, and the
// csa_<agent_id>_<opaque> bearer token issued at registration. Plain
// crypto/hmac signing; nothing here needs a token library.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// IssueInvitation mints an opaque invitation token granting visibility into
// projectID, signed with secret.
func IssueInvitation(projectID int64, secret []byte) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(projectID))
	mac := hmac.New(sha256.New, secret)
	mac.Write(buf[:])
	sig := mac.Sum(nil)
	return fmt.Sprintf("%d.%s", projectID, base64.RawURLEncoding.EncodeToString(sig))
}

// ParseInvitation validates token against secret and returns the project ID
// it grants, or an error if the token is malformed or its signature is invalid.
func ParseInvitation(token string, secret []byte) (int64, error) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("auth: malformed invitation token")
	}
	projectID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("auth: malformed invitation token: %w", err)
	}
	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return 0, fmt.Errorf("auth: malformed invitation signature: %w", err)
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(projectID))
	mac := hmac.New(sha256.New, secret)
	mac.Write(buf[:])
	want := mac.Sum(nil)
	if !hmac.Equal(sig, want) {
		return 0, fmt.Errorf("auth: invalid invitation signature")
	}
	return projectID, nil
}

// agentTokenPrefix is the fixed prefix of every agent bearer token.
const agentTokenPrefix = "csa"

// IssueAgentToken mints a bearer token of the form csa_<agent_id>_<opaque>
// for agentID. The opaque segment is random and is the only part ever
// compared on authentication — stored, hashed-free, as the Agent.token
// field.
func IssueAgentToken(agentID int64) (string, error) {
	opaque := make([]byte, 24)
	if _, err := rand.Read(opaque); err != nil {
		return "", fmt.Errorf("auth: failed to generate token: %w", err)
	}
	return fmt.Sprintf("%s_%d_%s", agentTokenPrefix, agentID, base64.RawURLEncoding.EncodeToString(opaque)), nil
}

// AgentIDFromToken extracts the agent_id segment of a csa_<agent_id>_<opaque>
// token without verifying it against the store — callers must still look
// the token up and compare it exactly.
func AgentIDFromToken(token string) (int64, error) {
	parts := strings.SplitN(token, "_", 3)
	if len(parts) != 3 || parts[0] != agentTokenPrefix {
		return 0, fmt.Errorf("auth: malformed agent token")
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("auth: malformed agent token: %w", err)
	}
	return id, nil
}
