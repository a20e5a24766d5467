package resources

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalRegistry_SignAndVerify(t *testing.T) {
	reg := NewLocalRegistry("http://store.local", []byte("test-secret"), time.Minute)
	lc := int64(1000)
	reg.PutObjectMeta("resources/word_list/abc", ObjectMeta{Checksum: "1B2M2Y8AsgTpgAmY7PhCfg==", LineCount: &lc})

	signed, err := reg.SignDownload(context.Background(), "resources/word_list/abc")
	require.NoError(t, err)
	assert.Equal(t, "1B2M2Y8AsgTpgAmY7PhCfg==", signed.Checksum)
	assert.True(t, strings.HasPrefix(signed.URL, "http://store.local/files/"))

	u, err := url.Parse(signed.URL)
	require.NoError(t, err)
	expires, err := ParseExpiry(u.Query().Get("expires"))
	require.NoError(t, err)

	handle, err := url.PathUnescape(strings.TrimPrefix(u.Path, "/files/"))
	require.NoError(t, err)
	assert.Equal(t, "resources/word_list/abc", handle)

	require.NoError(t, reg.VerifyURL("GET", handle, expires, u.Query().Get("sig")))

	// A signature for GET does not authorize PUT.
	assert.Error(t, reg.VerifyURL("PUT", handle, expires, u.Query().Get("sig")))
	// Tampered handle fails.
	assert.Error(t, reg.VerifyURL("GET", "resources/word_list/other", expires, u.Query().Get("sig")))
}

func TestLocalRegistry_UnknownHandle(t *testing.T) {
	reg := NewLocalRegistry("http://store.local", []byte("test-secret"), time.Minute)

	_, err := reg.SignDownload(context.Background(), "resources/word_list/missing")
	assert.ErrorIs(t, err, ErrUnknownHandle)

	_, err = reg.LineCount(context.Background(), "resources/word_list/missing")
	assert.ErrorIs(t, err, ErrUnknownHandle)
}

func TestLocalRegistry_LineCountUnknownUntilSet(t *testing.T) {
	reg := NewLocalRegistry("http://store.local", []byte("test-secret"), time.Minute)
	reg.PutObjectMeta("resources/rule_list/r1", ObjectMeta{Checksum: "x"})

	count, err := reg.LineCount(context.Background(), "resources/rule_list/r1")
	require.NoError(t, err)
	assert.Nil(t, count)

	lc := int64(64)
	reg.PutObjectMeta("resources/rule_list/r1", ObjectMeta{Checksum: "x", LineCount: &lc})
	count, err = reg.LineCount(context.Background(), "resources/rule_list/r1")
	require.NoError(t, err)
	require.NotNil(t, count)
	assert.Equal(t, int64(64), *count)
}

func TestLocalRegistry_ExpiredURL(t *testing.T) {
	reg := NewLocalRegistry("http://store.local", []byte("test-secret"), time.Minute)
	expired := time.Now().Add(-time.Hour).Unix()
	sig := reg.sign("GET", "resources/word_list/abc", expired)
	assert.Error(t, reg.VerifyURL("GET", "resources/word_list/abc", expired, sig))
}
