package identity

import "context"

// Tier names, in the order they are attempted.
const (
	TierSilent = "silent"
	TierPopup  = "popup"
	TierDialog = "dialog"
)

type Outcome int

const (
	// OutcomeAcquired means the tier produced a credential.
	OutcomeAcquired Outcome = iota
	// OutcomeFallthrough means the tier failed in a way the next tier may
	// recover from.
	OutcomeFallthrough
	// OutcomeFatal means no later tier can help and the failure surfaces to
	// the caller.
	OutcomeFatal
)

type Result struct {
	Outcome Outcome
	Token   string
	Err     error
}

// Strategy is one credential-acquisition tier. Tiers are tried strictly in
// order; each one decides whether its failure lets the next tier run.
type Strategy interface {
	Name() string
	Acquire(ctx context.Context, scopes []string) Result
}

func acquired(token string) Result {
	return Result{Outcome: OutcomeAcquired, Token: token}
}

func fallthroughWith(err error) Result {
	return Result{Outcome: OutcomeFallthrough, Err: err}
}

func fatal(err error) Result {
	return Result{Outcome: OutcomeFatal, Err: err}
}
