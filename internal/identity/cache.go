package identity

import (
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// sessionTokenTTL bounds how long an interactively acquired credential is
// served from cache. Bearer tokens live about an hour; renew well before.
const sessionTokenTTL = 45 * time.Minute

// SessionCache remembers credentials acquired interactively so that later
// requests in the same pane session resolve on the silent tier.
type SessionCache struct {
	mu      sync.Mutex
	entries map[string]oauth2.Token
}

func NewSessionCache() *SessionCache {
	return &SessionCache{entries: make(map[string]oauth2.Token)}
}

// SourceFor returns the cached source for the scope set, or nil when the
// cache holds nothing usable for it.
func (c *SessionCache) SourceFor(scopes []string) oauth2.TokenSource {
	c.mu.Lock()
	defer c.mu.Unlock()

	token, ok := c.entries[scopeKey(scopes)]
	if !ok || !token.Valid() {
		return nil
	}
	cached := token
	return oauth2.StaticTokenSource(&cached)
}

func (c *SessionCache) Put(scopes []string, accessToken string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[scopeKey(scopes)] = oauth2.Token{
		AccessToken: accessToken,
		Expiry:      time.Now().Add(sessionTokenTTL),
	}
}

func (c *SessionCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]oauth2.Token)
}

func scopeKey(scopes []string) string {
	sorted := append([]string(nil), scopes...)
	sort.Strings(sorted)
	return strings.Join(sorted, " ")
}
