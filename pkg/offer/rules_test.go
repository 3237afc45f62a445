package offer

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func newTestOffer(status Status, trader uuid.UUID, fulfiller *uuid.UUID) *Offer {
	o := New(trader, uuid.New(), uuid.New())
	o.Status = status
	o.FulfillerID = fulfiller
	return o
}

func ptr[T any](v T) *T { return &v }

func TestPlanner_TraderAccept(t *testing.T) {
	trader := uuid.New()
	o := newTestOffer(StatusCreated, trader, nil)
	onChain := "0xdeadbeef"

	tr, err := NewPlanner(FallbackParticipants).Plan(o, Request{
		Requested: StatusAcceptedByA,
		Caller:    trader,
		OnChainID: &onChain,
	})
	if err != nil {
		t.Fatalf("Plan() failed: %v", err)
	}
	if tr.Rule != RuleTraderAccept {
		t.Fatalf("expected rule %s, got %s", RuleTraderAccept, tr.Rule)
	}
	if tr.Guard.TraderID == nil || *tr.Guard.TraderID != trader {
		t.Fatalf("expected guard on trader id")
	}
	if tr.Guard.MaxStatus != StatusAcceptedByA {
		t.Fatalf("expected max status %s, got %s", StatusAcceptedByA, tr.Guard.MaxStatus)
	}
	if tr.Patch.OnChainID == nil || *tr.Patch.OnChainID != onChain {
		t.Fatalf("expected on-chain id in patch")
	}
	if tr.Patch.FulfillerID != nil {
		t.Fatalf("trader acceptance must not touch the fulfiller")
	}
}

func TestPlanner_ClaimGuardsOnEmptyFulfiller(t *testing.T) {
	claimer := uuid.New()
	o := newTestOffer(StatusAcceptedByA, uuid.New(), nil)

	tr, err := NewPlanner(FallbackParticipants).Plan(o, Request{Requested: StatusClaimedByB, Caller: claimer})
	if err != nil {
		t.Fatalf("Plan() failed: %v", err)
	}
	if tr.Rule != RuleClaim {
		t.Fatalf("expected rule %s, got %s", RuleClaim, tr.Rule)
	}
	if !tr.Guard.NoFulfiller {
		t.Fatalf("claim must be guarded on an empty fulfiller")
	}
	if tr.Guard.FulfillerID != nil {
		t.Fatalf("claim must not pin the loaded fulfiller")
	}
	if tr.Patch.FulfillerID == nil || *tr.Patch.FulfillerID != claimer {
		t.Fatalf("claim must write the caller as fulfiller")
	}
}

func TestPlanner_ClaimOnClaimedOfferStillPlansGuardedWrite(t *testing.T) {
	o := newTestOffer(StatusClaimedByB, uuid.New(), ptr(uuid.New()))

	tr, err := NewPlanner(FallbackParticipants).Plan(o, Request{Requested: StatusClaimedByB, Caller: uuid.New()})
	if err != nil {
		t.Fatalf("Plan() failed: %v", err)
	}
	if tr.Rule != RuleClaim || !tr.Guard.NoFulfiller {
		t.Fatalf("expected guarded claim, got %+v", tr)
	}
}

func TestPlanner_TraderCannotClaimOwnOffer(t *testing.T) {
	trader := uuid.New()
	o := newTestOffer(StatusAcceptedByA, trader, nil)

	_, err := NewPlanner(FallbackOpen).Plan(o, Request{Requested: StatusClaimedByB, Caller: trader})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestPlanner_FulfillerConfirm(t *testing.T) {
	fulfiller := uuid.New()
	o := newTestOffer(StatusClaimedByB, uuid.New(), &fulfiller)

	tr, err := NewPlanner(FallbackDisabled).Plan(o, Request{Requested: StatusConfirmedB, Caller: fulfiller})
	if err != nil {
		t.Fatalf("Plan() failed: %v", err)
	}
	if tr.Rule != RuleFulfiller {
		t.Fatalf("expected rule %s, got %s", RuleFulfiller, tr.Rule)
	}
	if tr.Guard.FulfillerID == nil || *tr.Guard.FulfillerID != fulfiller {
		t.Fatalf("expected guard on fulfiller id")
	}
}

func TestPlanner_BackwardMoveRejected(t *testing.T) {
	trader := uuid.New()
	o := newTestOffer(StatusAcceptedByA, trader, nil)

	_, err := NewPlanner(FallbackOpen).Plan(o, Request{Requested: StatusCreated, Caller: trader})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestPlanner_UnknownStatusRejected(t *testing.T) {
	trader := uuid.New()
	o := newTestOffer(StatusCreated, trader, nil)

	_, err := NewPlanner(FallbackOpen).Plan(o, Request{Requested: Status(15), Caller: trader})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestPlanner_StrangerCannotTriggerReservedStages(t *testing.T) {
	trader := uuid.New()
	fulfiller := uuid.New()
	stranger := uuid.New()

	policies := []FallbackPolicy{FallbackOpen, FallbackParticipants, FallbackDisabled}
	for _, policy := range policies {
		for _, requested := range []Status{StatusAcceptedByA, StatusConfirmedB} {
			o := newTestOffer(StatusCreated, trader, &fulfiller)
			_, err := NewPlanner(policy).Plan(o, Request{Requested: requested, Caller: stranger})
			if !errors.Is(err, ErrUnauthorized) {
				t.Fatalf("policy=%s requested=%s: expected ErrUnauthorized, got %v", policy, requested, err)
			}
		}
	}
}

func TestPlanner_TraderCannotConfirmForFulfiller(t *testing.T) {
	trader := uuid.New()
	o := newTestOffer(StatusClaimedByB, trader, ptr(uuid.New()))

	_, err := NewPlanner(FallbackOpen).Plan(o, Request{Requested: StatusConfirmedB, Caller: trader})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestPlanner_FallbackPolicies(t *testing.T) {
	trader := uuid.New()
	fulfiller := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name       string
		policy     FallbackPolicy
		caller     uuid.UUID
		wantErr    error
		wantTrader bool
		wantFulfil bool
	}{
		{name: "participants trader", policy: FallbackParticipants, caller: trader, wantTrader: true},
		{name: "participants fulfiller", policy: FallbackParticipants, caller: fulfiller, wantFulfil: true},
		{name: "participants stranger", policy: FallbackParticipants, caller: stranger, wantErr: ErrUnauthorized},
		{name: "open stranger", policy: FallbackOpen, caller: stranger},
		{name: "disabled trader", policy: FallbackDisabled, caller: trader, wantErr: ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestOffer(StatusConfirmedB, trader, &fulfiller)
			tr, err := NewPlanner(tt.policy).Plan(o, Request{Requested: StatusSettled, Caller: tt.caller})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Plan() failed: %v", err)
			}
			if tr.Rule != RuleFallback {
				t.Fatalf("expected rule %s, got %s", RuleFallback, tr.Rule)
			}
			if (tr.Guard.TraderID != nil) != tt.wantTrader {
				t.Fatalf("trader guard mismatch: %+v", tr.Guard)
			}
			if (tr.Guard.FulfillerID != nil) != tt.wantFulfil {
				t.Fatalf("fulfiller guard mismatch: %+v", tr.Guard)
			}
			if tr.Guard.MaxStatus != StatusSettled {
				t.Fatalf("expected max status %s, got %s", StatusSettled, tr.Guard.MaxStatus)
			}
		})
	}
}

func TestPlanner_EqualStatusStillAuthorised(t *testing.T) {
	trader := uuid.New()
	o := newTestOffer(StatusAcceptedByA, trader, nil)

	if _, err := NewPlanner(FallbackParticipants).Plan(o, Request{Requested: StatusAcceptedByA, Caller: trader}); err != nil {
		t.Fatalf("re-requesting the current stage should be allowed for the trader: %v", err)
	}
	_, err := NewPlanner(FallbackParticipants).Plan(o, Request{Requested: StatusAcceptedByA, Caller: uuid.New()})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for stranger, got %v", err)
	}
}

func TestPlanner_OnChainIDRecordedOnce(t *testing.T) {
	trader := uuid.New()
	o := newTestOffer(StatusAcceptedByA, trader, nil)
	o.OnChainID = "0xfeed"
	planner := NewPlanner(FallbackParticipants)

	_, err := planner.Plan(o, Request{Requested: StatusAcceptedByA, Caller: trader, OnChainID: ptr("0xbeef")})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition when replacing a recorded on-chain id, got %v", err)
	}

	tr, err := planner.Plan(o, Request{Requested: StatusAcceptedByA, Caller: trader, OnChainID: ptr("0xfeed")})
	if err != nil {
		t.Fatalf("re-sending the recorded on-chain id should be allowed: %v", err)
	}
	if tr.Guard.OnChainID == nil || *tr.Guard.OnChainID != "0xfeed" {
		t.Fatalf("expected the write to be guarded on the on-chain id")
	}

	tr, err = planner.Plan(o, Request{Requested: StatusAcceptedByA, Caller: trader})
	if err != nil {
		t.Fatalf("Plan() failed: %v", err)
	}
	if tr.Guard.OnChainID != nil || tr.Patch.OnChainID != nil {
		t.Fatalf("a request without an on-chain id must leave it untouched")
	}
}

func TestNewPlanner_DefaultFallback(t *testing.T) {
	if got := NewPlanner("").Fallback(); got != FallbackParticipants {
		t.Fatalf("expected %s, got %s", FallbackParticipants, got)
	}
	if got := NewPlanner(FallbackOpen).Fallback(); got != FallbackOpen {
		t.Fatalf("expected %s, got %s", FallbackOpen, got)
	}
}

func TestParseFallbackPolicy(t *testing.T) {
	p, err := ParseFallbackPolicy("")
	if err != nil || p != FallbackParticipants {
		t.Fatalf("expected default participants policy, got %q (%v)", p, err)
	}
	if _, err := ParseFallbackPolicy("anyone"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}
