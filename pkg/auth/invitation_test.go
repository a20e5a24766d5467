package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvitation_RoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	token := IssueInvitation(42, secret)

	projectID, err := ParseInvitation(token, secret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), projectID)
}

func TestInvitation_RejectsWrongSecret(t *testing.T) {
	token := IssueInvitation(42, []byte("secret-a"))
	_, err := ParseInvitation(token, []byte("secret-b"))
	assert.Error(t, err)
}

func TestInvitation_RejectsTamperedProject(t *testing.T) {
	secret := []byte("test-secret")
	token := IssueInvitation(42, secret)

	parts := strings.SplitN(token, ".", 2)
	tampered := "7." + parts[1]
	_, err := ParseInvitation(tampered, secret)
	assert.Error(t, err)
}

func TestInvitation_RejectsGarbage(t *testing.T) {
	secret := []byte("test-secret")
	for _, token := range []string{"", "no-dot", "abc.def", "1.!!!not-base64!!!"} {
		_, err := ParseInvitation(token, secret)
		assert.Error(t, err, "token %q must be rejected", token)
	}
}

func TestAgentToken_FormatAndExtraction(t *testing.T) {
	token, err := IssueAgentToken(17)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "csa_17_"))

	id, err := AgentIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(17), id)
}

func TestAgentToken_Uniqueness(t *testing.T) {
	a, err := IssueAgentToken(1)
	require.NoError(t, err)
	b, err := IssueAgentToken(1)
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "the opaque segment must be random")
}

func TestAgentIDFromToken_Malformed(t *testing.T) {
	for _, token := range []string{"", "csa_", "csa_x_y", "other_1_abc", "csa_1"} {
		_, err := AgentIDFromToken(token)
		assert.Error(t, err, "token %q must be rejected", token)
	}
}
