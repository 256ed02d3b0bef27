package entities

import "testing"

func TestPropertyStatusTransitions(t *testing.T) {
	cases := []struct {
		from    PropertyStatus
		to      PropertyStatus
		allowed bool
	}{
		{PropertyStatusDraft, PropertyStatusPending, true},
		{PropertyStatusDraft, PropertyStatusLive, false},
		{PropertyStatusDraft, PropertyStatusDelisted, false},
		{PropertyStatusPending, PropertyStatusLive, true},
		{PropertyStatusPending, PropertyStatusRejected, true},
		{PropertyStatusPending, PropertyStatusDraft, false},
		{PropertyStatusLive, PropertyStatusDelisted, true},
		{PropertyStatusLive, PropertyStatusDraft, false},
		{PropertyStatusRejected, PropertyStatusPending, true},
		{PropertyStatusRejected, PropertyStatusLive, false},
		{PropertyStatusDelisted, PropertyStatusPending, false},
		{PropertyStatusDelisted, PropertyStatusLive, false},
	}

	for _, tc := range cases {
		p := Property{Status: tc.from}
		if got := p.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestVerificationTransitions(t *testing.T) {
	cases := []struct {
		from    VerificationStatus
		to      VerificationStatus
		allowed bool
	}{
		{VerificationStatusPending, VerificationStatusVerified, true},
		{VerificationStatusPending, VerificationStatusRejected, true},
		{VerificationStatusVerified, VerificationStatusPending, false},
		{VerificationStatusVerified, VerificationStatusRejected, false},
		{VerificationStatusRejected, VerificationStatusVerified, false},
	}

	for _, tc := range cases {
		p := Property{Verification: tc.from}
		if got := p.CanTransitionVerificationTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestPubliclyVisible(t *testing.T) {
	cases := []struct {
		status       PropertyStatus
		verification VerificationStatus
		visible      bool
	}{
		{PropertyStatusLive, VerificationStatusVerified, true},
		{PropertyStatusLive, VerificationStatusPending, false},
		{PropertyStatusLive, VerificationStatusRejected, false},
		{PropertyStatusDraft, VerificationStatusVerified, false},
		{PropertyStatusPending, VerificationStatusVerified, false},
		{PropertyStatusDelisted, VerificationStatusVerified, false},
	}

	for _, tc := range cases {
		p := Property{Status: tc.status, Verification: tc.verification}
		if got := p.PubliclyVisible(); got != tc.visible {
			t.Errorf("status=%s verification=%s: expected visible=%v, got %v", tc.status, tc.verification, tc.visible, got)
		}
	}
}

func TestInquiryTransitions(t *testing.T) {
	i := Inquiry{Status: InquiryStatusPending}
	if !i.CanTransitionTo(InquiryStatusResponded) || !i.CanTransitionTo(InquiryStatusClosed) {
		t.Fatalf("pending should allow responded and closed")
	}

	i.Status = InquiryStatusResponded
	if !i.CanTransitionTo(InquiryStatusClosed) {
		t.Fatalf("responded should allow closed")
	}
	if i.CanTransitionTo(InquiryStatusPending) {
		t.Fatalf("responded should not allow pending")
	}

	i.Status = InquiryStatusClosed
	if i.CanTransitionTo(InquiryStatusResponded) || i.CanTransitionTo(InquiryStatusPending) {
		t.Fatalf("closed is terminal")
	}
}

func TestValidStatusHelpers(t *testing.T) {
	if !ValidPropertyStatus(PropertyStatusLive) || ValidPropertyStatus("published") {
		t.Fatalf("unexpected ValidPropertyStatus results")
	}
	if !ValidVerificationStatus(VerificationStatusVerified) || ValidVerificationStatus("approved") {
		t.Fatalf("unexpected ValidVerificationStatus results")
	}
}

func TestProfileCanListProperties(t *testing.T) {
	for _, tc := range []struct {
		ut  UserType
		can bool
	}{
		{UserTypeOwner, true},
		{UserTypeAgent, true},
		{UserTypeBuyer, false},
		{UserTypeAdmin, false},
	} {
		p := Profile{UserType: tc.ut}
		if got := p.CanListProperties(); got != tc.can {
			t.Errorf("%s: expected %v, got %v", tc.ut, tc.can, got)
		}
	}
}
