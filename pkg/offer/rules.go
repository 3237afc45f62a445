package offer

import (
	"fmt"

	"github.com/google/uuid"
)

// Rule names the transition rule that authorised a status change.
type Rule string

const (
	RuleTraderAccept Rule = "trader_accept"
	RuleFulfiller    Rule = "fulfiller"
	RuleClaim        Rule = "claim"
	RuleFallback     Rule = "fallback"
)

// FallbackPolicy decides who may move an offer to a non-reserved stage
// (e.g. SETTLED, CANCELLED) once no party-specific rule applies.
type FallbackPolicy string

const (
	// FallbackParticipants lets the trader or the fulfiller perform the
	// transition, guarded on their identity.
	FallbackParticipants FallbackPolicy = "participants"
	// FallbackOpen lets any resolved caller perform the transition, keyed on
	// the offer id only.
	FallbackOpen FallbackPolicy = "open"
	// FallbackDisabled rejects every transition not covered by a
	// party-specific rule.
	FallbackDisabled FallbackPolicy = "disabled"
)

// ParseFallbackPolicy validates a policy name. Empty selects FallbackParticipants.
func ParseFallbackPolicy(v string) (FallbackPolicy, error) {
	switch p := FallbackPolicy(v); p {
	case "":
		return FallbackParticipants, nil
	case FallbackParticipants, FallbackOpen, FallbackDisabled:
		return p, nil
	default:
		return "", fmt.Errorf("unknown fallback policy %q", v)
	}
}

// Guard is the compare half of a conditional write. The stored record must
// satisfy every set field for the patch to apply.
type Guard struct {
	// MaxStatus bounds the stored status from above, keeping writes monotonic
	// even if the record advanced after it was loaded.
	MaxStatus   Status
	TraderID    *uuid.UUID
	FulfillerID *uuid.UUID
	NoFulfiller bool
	// OnChainID, when set, requires the stored on-chain id to be empty or
	// equal to it. The id is recorded once.
	OnChainID *string
}

// Patch is the write half of a conditional write. Nil fields are left untouched.
type Patch struct {
	Status      Status
	FulfillerID *uuid.UUID
	OnChainID   *string
}

// Transition is a planned conditional write.
type Transition struct {
	Rule  Rule
	Guard Guard
	Patch Patch
}

// Request is a status change attempt by a resolved caller.
type Request struct {
	Requested Status
	Caller    uuid.UUID
	OnChainID *string
}

type callerRole struct {
	trader    bool
	fulfiller bool
}

type rule struct {
	name  Rule
	when  func(role callerRole, req Request) bool
	apply func(o *Offer, role callerRole, req Request, policy FallbackPolicy) (*Transition, error)
}

// rules is evaluated in order and the first match wins.
var rules = []rule{
	{
		name: RuleTraderAccept,
		when: func(role callerRole, req Request) bool {
			return role.trader && req.Requested == StatusAcceptedByA
		},
		apply: func(o *Offer, _ callerRole, req Request, _ FallbackPolicy) (*Transition, error) {
			caller := req.Caller
			t := &Transition{
				Rule:  RuleTraderAccept,
				Guard: Guard{MaxStatus: req.Requested, TraderID: &caller},
				Patch: Patch{Status: req.Requested},
			}
			if req.OnChainID != nil {
				if o.OnChainID != "" && o.OnChainID != *req.OnChainID {
					return nil, fmt.Errorf("%w: on-chain id already recorded", ErrInvalidTransition)
				}
				t.Guard.OnChainID = req.OnChainID
				t.Patch.OnChainID = req.OnChainID
			}
			return t, nil
		},
	},
	{
		name: RuleFulfiller,
		when: func(role callerRole, req Request) bool {
			return role.fulfiller && (req.Requested == StatusClaimedByB || req.Requested == StatusConfirmedB)
		},
		apply: func(o *Offer, _ callerRole, req Request, _ FallbackPolicy) (*Transition, error) {
			caller := req.Caller
			return &Transition{
				Rule:  RuleFulfiller,
				Guard: Guard{MaxStatus: req.Requested, FulfillerID: &caller},
				Patch: Patch{Status: req.Requested},
			}, nil
		},
	},
	{
		name: RuleClaim,
		when: func(role callerRole, req Request) bool {
			return req.Requested == StatusClaimedByB && !role.fulfiller
		},
		apply: func(o *Offer, role callerRole, req Request, _ FallbackPolicy) (*Transition, error) {
			if role.trader {
				return nil, fmt.Errorf("%w: trader cannot claim own offer", ErrUnauthorized)
			}
			caller := req.Caller
			// emptiness is re-checked by the store at write time
			return &Transition{
				Rule:  RuleClaim,
				Guard: Guard{MaxStatus: req.Requested, NoFulfiller: true},
				Patch: Patch{Status: req.Requested, FulfillerID: &caller},
			}, nil
		},
	},
	{
		name: RuleFallback,
		when: func(_ callerRole, req Request) bool {
			return !req.Requested.Reserved()
		},
		apply: func(o *Offer, role callerRole, req Request, policy FallbackPolicy) (*Transition, error) {
			caller := req.Caller
			t := &Transition{
				Rule:  RuleFallback,
				Guard: Guard{MaxStatus: req.Requested},
				Patch: Patch{Status: req.Requested},
			}
			switch policy {
			case FallbackOpen:
				return t, nil
			case FallbackParticipants:
				switch {
				case role.trader:
					t.Guard.TraderID = &caller
				case role.fulfiller:
					t.Guard.FulfillerID = &caller
				default:
					return nil, fmt.Errorf("%w: caller is not a participant", ErrUnauthorized)
				}
				return t, nil
			default:
				return nil, fmt.Errorf("%w: %s requires a participant rule", ErrUnauthorized, req.Requested)
			}
		},
	},
}

// Planner turns a status change request into a guarded conditional write.
type Planner struct {
	fallback FallbackPolicy
}

// NewPlanner creates a Planner with the given fallback policy.
func NewPlanner(fallback FallbackPolicy) *Planner {
	if fallback == "" {
		fallback = FallbackParticipants
	}
	return &Planner{fallback: fallback}
}

// Fallback returns the configured fallback policy.
func (p *Planner) Fallback() FallbackPolicy { return p.fallback }

// Plan validates req against o and returns the write the first matching rule
// prescribes. It does not touch storage.
func (p *Planner) Plan(o *Offer, req Request) (*Transition, error) {
	if o == nil {
		return nil, ErrNotFound
	}
	if err := CheckAdvance(o.Status, req.Requested); err != nil {
		return nil, err
	}
	role := callerRole{
		trader:    o.IsTrader(req.Caller),
		fulfiller: o.IsFulfiller(req.Caller),
	}
	for _, r := range rules {
		if r.when(role, req) {
			return r.apply(o, role, req, p.fallback)
		}
	}
	return nil, fmt.Errorf("%w: no rule allows %s for this caller", ErrUnauthorized, req.Requested)
}
