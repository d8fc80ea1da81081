package identity

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// SourceFor returns a token source scoped to the requested permission set,
// backed by whatever session cache the deployment carries. A nil source
// means no cached session exists.
type SourceFor func(scopes []string) oauth2.TokenSource

// SilentStrategy acquires a credential from an already-active session with
// no user interaction. Any failure falls through to the interactive tier.
type SilentStrategy struct {
	sourceFor SourceFor
}

func NewSilentStrategy(sourceFor SourceFor) *SilentStrategy {
	return &SilentStrategy{sourceFor: sourceFor}
}

func (s *SilentStrategy) Name() string { return TierSilent }

func (s *SilentStrategy) Acquire(_ context.Context, scopes []string) Result {
	source := s.sourceFor(scopes)
	if source == nil {
		return fallthroughWith(fmt.Errorf("no cached session"))
	}

	token, err := source.Token()
	if err != nil {
		return fallthroughWith(fmt.Errorf("silent acquisition failed: %w", err))
	}
	if !token.Valid() {
		return fallthroughWith(fmt.Errorf("cached token expired"))
	}
	return acquired(token.AccessToken)
}
