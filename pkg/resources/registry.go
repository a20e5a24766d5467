// Package resources defines the registry contract the core uses to reach
// attack resource files (word lists, rule lists, mask lists, serialized hash
// lists). The object bytes live in external storage that is out of scope;
// this package covers only the metadata surface the core needs: signed
// download/upload URLs, content checksums, and asynchronously-computed line
// counts. A readiness poller refreshes line counts so attacks blocked on
// unprocessed resources become dispatchable without operator action.
package resources

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// SignedFile describes one downloadable object: a presigned URL and the
// object's MD5 checksum, base64-encoded, matching the AttackResourceFile
// wire contract.
type SignedFile struct {
	URL      string
	Checksum string
}

// Registry is the metadata surface of the external object store.
type Registry interface {
	// SignDownload returns a time-limited download URL and the stored
	// object's MD5 checksum for fileHandle.
	SignDownload(ctx context.Context, fileHandle string) (SignedFile, error)

	// SignUpload returns a time-limited upload URL for fileHandle.
	SignUpload(ctx context.Context, fileHandle string) (string, error)

	// LineCount returns the object's line count, or nil if the async
	// counting pipeline has not finished for this handle yet.
	LineCount(ctx context.Context, fileHandle string) (*int64, error)
}

// ErrUnknownHandle is returned for a handle the registry has never seen.
var ErrUnknownHandle = fmt.Errorf("resources: unknown file handle")

// ObjectMeta is the per-object metadata a LocalRegistry tracks.
type ObjectMeta struct {
	Checksum  string
	LineCount *int64
}

// LocalRegistry is an in-process Registry for development and tests: URLs
// are HMAC-signed against a shared secret and metadata lives in a guarded
// map, refreshed by whatever finalizes uploads (tests set it directly).
type LocalRegistry struct {
	baseURL string
	secret  []byte
	ttl     time.Duration

	mu      sync.RWMutex
	objects map[string]ObjectMeta
}

// NewLocalRegistry creates a LocalRegistry serving signed URLs under baseURL.
func NewLocalRegistry(baseURL string, secret []byte, ttl time.Duration) *LocalRegistry {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &LocalRegistry{
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
		ttl:     ttl,
		objects: make(map[string]ObjectMeta),
	}
}

// PutObjectMeta records (or replaces) the metadata for fileHandle. Called by
// the upload-finalization path and by tests.
func (r *LocalRegistry) PutObjectMeta(fileHandle string, meta ObjectMeta) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.objects[fileHandle] = meta
}

// SignDownload implements Registry.
func (r *LocalRegistry) SignDownload(_ context.Context, fileHandle string) (SignedFile, error) {
	r.mu.RLock()
	meta, ok := r.objects[fileHandle]
	r.mu.RUnlock()
	if !ok {
		return SignedFile{}, fmt.Errorf("%w: %s", ErrUnknownHandle, fileHandle)
	}
	return SignedFile{
		URL:      r.signURL("GET", fileHandle),
		Checksum: meta.Checksum,
	}, nil
}

// SignUpload implements Registry. Uploads need no prior metadata: the handle
// is minted before the first byte is stored.
func (r *LocalRegistry) SignUpload(_ context.Context, fileHandle string) (string, error) {
	return r.signURL("PUT", fileHandle), nil
}

// LineCount implements Registry.
func (r *LocalRegistry) LineCount(_ context.Context, fileHandle string) (*int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	meta, ok := r.objects[fileHandle]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHandle, fileHandle)
	}
	return meta.LineCount, nil
}

// signURL builds <base>/files/<handle>?expires=<unix>&sig=<hmac> where the
// signature covers method, handle, and expiry.
func (r *LocalRegistry) signURL(method, fileHandle string) string {
	expires := time.Now().Add(r.ttl).Unix()
	sig := r.sign(method, fileHandle, expires)
	return fmt.Sprintf("%s/files/%s?expires=%d&sig=%s",
		r.baseURL, url.PathEscape(fileHandle), expires, sig)
}

func (r *LocalRegistry) sign(method, fileHandle string, expires int64) string {
	mac := hmac.New(sha256.New, r.secret)
	fmt.Fprintf(mac, "%s\n%s\n%d", method, fileHandle, expires)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// VerifyURL checks a previously-signed URL's method, handle, expiry, and
// signature. Used by whatever serves /files/ in development deployments.
func (r *LocalRegistry) VerifyURL(method, fileHandle string, expires int64, sig string) error {
	if time.Now().Unix() > expires {
		return fmt.Errorf("resources: signed url expired")
	}
	want := r.sign(method, fileHandle, expires)
	if !hmac.Equal([]byte(sig), []byte(want)) {
		return fmt.Errorf("resources: invalid url signature")
	}
	return nil
}

// ParseExpiry is a helper for VerifyURL callers handling raw query values.
func ParseExpiry(v string) (int64, error) {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("resources: malformed expiry: %w", err)
	}
	return n, nil
}
