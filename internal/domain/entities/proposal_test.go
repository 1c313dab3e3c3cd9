package entities

import (
	"math"
	"testing"
	"time"
)

func f64(v float64) *float64 { return &v }

func pricingTable(items ...PricingItem) Block {
	return Block{ID: "b", Kind: BlockKindPricingTable, PricingItems: items}
}

func TestProposal_Value(t *testing.T) {
	cases := []struct {
		name string
		p    Proposal
		want float64
	}{
		{name: "no blocks", p: Proposal{}, want: 0},
		{
			name: "estimated value overrides items",
			p: Proposal{
				EstimatedValue: f64(5000),
				TaxRate:        f64(20),
				Blocks:         []Block{pricingTable(PricingItem{Price: 100, Type: PricingItemTypeStandard})},
			},
			want: 5000,
		},
		{
			name: "negative estimated value clamps to zero",
			p: Proposal{
				EstimatedValue: f64(-1200),
				Blocks:         []Block{pricingTable(PricingItem{Price: 100, Type: PricingItemTypeStandard})},
			},
			want: 0,
		},
		{
			name: "zero estimated value falls back to items",
			p: Proposal{
				EstimatedValue: f64(0),
				Blocks:         []Block{pricingTable(PricingItem{Price: 250, Type: PricingItemTypeStandard})},
			},
			want: 250,
		},
		{
			name: "optional items excluded",
			p: Proposal{Blocks: []Block{pricingTable(
				PricingItem{Price: 1000, Type: PricingItemTypeStandard},
				PricingItem{Price: 400, Type: PricingItemTypeOptional},
				PricingItem{Price: 50, Type: PricingItemTypeRecurring},
			)}},
			want: 1050,
		},
		{
			name: "all optional",
			p: Proposal{Blocks: []Block{pricingTable(
				PricingItem{Price: 400, Type: PricingItemTypeOptional},
			)}},
			want: 0,
		},
		{
			name: "non pricing blocks ignored",
			p: Proposal{Blocks: []Block{
				{Kind: BlockKindText, PricingItems: []PricingItem{{Price: 999, Type: PricingItemTypeStandard}}},
				pricingTable(PricingItem{Price: 10, Type: PricingItemTypeStandard}),
			}},
			want: 10,
		},
		{
			name: "multiple pricing tables",
			p: Proposal{Blocks: []Block{
				pricingTable(PricingItem{Price: 10, Type: PricingItemTypeStandard}),
				pricingTable(PricingItem{Price: 20.5, Type: PricingItemTypeStandard}),
			}},
			want: 30.5,
		},
		{
			name: "zero tax rate",
			p: Proposal{
				TaxRate: f64(0),
				Blocks:  []Block{pricingTable(PricingItem{Price: 100, Type: PricingItemTypeStandard})},
			},
			want: 100,
		},
		{
			name: "negative total clamps to zero",
			p: Proposal{Blocks: []Block{pricingTable(PricingItem{Price: -100, Type: PricingItemTypeStandard})}},
			want: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Value(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestProposal_ValueAppliesTax(t *testing.T) {
	for _, rate := range []float64{5, 7.5, 19, 21, 100} {
		p := Proposal{
			TaxRate: f64(rate),
			Blocks: []Block{pricingTable(
				PricingItem{Price: 199.99, Type: PricingItemTypeStandard},
				PricingItem{Price: 800.01, Type: PricingItemTypeStandard},
			)},
		}
		want := 1000 * (1 + rate/100)
		if got := p.Value(); math.Abs(got-want) > 1e-9 {
			t.Fatalf("rate %v: expected %v, got %v", rate, want, got)
		}
	}
}

func TestProposal_DecidedAt(t *testing.T) {
	sent := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	declined := sent.Add(24 * time.Hour)
	approved := sent.Add(48 * time.Hour)

	if got := (Proposal{SentAt: &sent}).DecidedAt(); !got.Equal(sent) {
		t.Fatalf("expected sent, got %v", got)
	}
	if got := (Proposal{SentAt: &sent, DeclinedAt: &declined}).DecidedAt(); !got.Equal(declined) {
		t.Fatalf("expected declined, got %v", got)
	}
	if got := (Proposal{SentAt: &sent, DeclinedAt: &declined, ApprovedAt: &approved}).DecidedAt(); !got.Equal(approved) {
		t.Fatalf("expected approved, got %v", got)
	}
	if got := (Proposal{}).DecidedAt(); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestProposalFilter_Matches(t *testing.T) {
	jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	p := Proposal{UserID: "u-1", Status: ProposalStatusApproved, CreatedAt: jan, SentAt: &jan, ApprovedAt: &feb}

	janRange := &TimeRange{From: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), To: feb}

	cases := []struct {
		name string
		f    ProposalFilter
		want bool
	}{
		{name: "empty filter", f: ProposalFilter{}, want: true},
		{name: "other user", f: ProposalFilter{UserID: "u-2"}, want: false},
		{name: "status in set", f: ProposalFilter{Statuses: []ProposalStatus{ProposalStatusDeclined, ProposalStatusApproved}}, want: true},
		{name: "status not in set", f: ProposalFilter{Statuses: OpenProposalStatuses}, want: false},
		{name: "created in range", f: ProposalFilter{CreatedBetween: janRange}, want: true},
		{name: "approved at exclusive end", f: ProposalFilter{ApprovedBetween: janRange}, want: false},
		{name: "sent in range", f: ProposalFilter{SentBetween: janRange}, want: true},
		{name: "not null present", f: ProposalFilter{NotNull: []TimestampField{FieldSentAt, FieldApprovedAt}}, want: true},
		{name: "not null missing", f: ProposalFilter{NotNull: []TimestampField{FieldFirstViewedAt}}, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.f.Matches(p); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDefaultPipelineStages(t *testing.T) {
	now := time.Now().UTC()
	stages := DefaultPipelineStages("u-1", now)
	if len(stages) != 6 {
		t.Fatalf("expected 6 stages, got %d", len(stages))
	}

	wantNames := []string{"Lead", "Qualified", "Proposal Sent", "Negotiation", "Closed Won", "Closed Lost"}
	wantProb := []int{10, 25, 50, 75, 100, 0}
	for i, s := range stages {
		if s.Name != wantNames[i] || s.Probability != wantProb[i] || s.Order != i {
			t.Fatalf("unexpected stage %d: %+v", i, s)
		}
		if s.UserID != "u-1" || s.Color == "" {
			t.Fatalf("unexpected stage %d: %+v", i, s)
		}
	}

	again := DefaultPipelineStages("u-1", now.Add(time.Hour))
	for i := range stages {
		if stages[i].ID != again[i].ID {
			t.Fatalf("expected deterministic ids, got %s and %s", stages[i].ID, again[i].ID)
		}
	}
	if other := DefaultPipelineStages("u-2", now); other[0].ID == stages[0].ID {
		t.Fatalf("expected ids to differ between users")
	}
}

func TestPipelineStageUpdate_Apply(t *testing.T) {
	name := "Discovery"
	prob := 30
	s := PipelineStage{Name: "Lead", Order: 1, Probability: 10, Color: "#fff"}

	got := PipelineStageUpdate{Name: &name, Probability: &prob}.Apply(s)
	if got.Name != "Discovery" || got.Probability != 30 || got.Order != 1 || got.Color != "#fff" {
		t.Fatalf("unexpected stage: %+v", got)
	}
	if !(PipelineStageUpdate{}).IsEmpty() {
		t.Fatalf("expected empty update")
	}
}
