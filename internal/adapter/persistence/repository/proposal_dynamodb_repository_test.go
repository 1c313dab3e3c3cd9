package repository

import (
	"strings"
	"testing"
	"time"

	"proposal_forecasting/internal/domain/entities"
)

func TestBuildProposalQuery(t *testing.T) {
	t.Run("key condition only", func(t *testing.T) {
		expr, err := buildProposalQuery(entities.ProposalFilter{UserID: "u-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expr.KeyCondition() == nil || expr.Filter() != nil {
			t.Fatalf("expected key condition without filter")
		}
	})

	t.Run("combined filter", func(t *testing.T) {
		from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		expr, err := buildProposalQuery(entities.ProposalFilter{
			UserID:          "u-1",
			Statuses:        []entities.ProposalStatus{entities.ProposalStatusApproved},
			ApprovedBetween: &entities.TimeRange{From: from, To: from.AddDate(0, 1, 0)},
			NotNull:         []entities.TimestampField{entities.FieldSentAt},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		filter := expr.Filter()
		if filter == nil {
			t.Fatalf("expected filter expression")
		}
		for _, part := range []string{"IN (", ">=", "<", "attribute_exists"} {
			if !strings.Contains(*filter, part) {
				t.Fatalf("expected %q in %q", part, *filter)
			}
		}
	})
}

func TestProposalItemMapping(t *testing.T) {
	sent := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	stageID := "st-1"
	tax := 10.0
	p := entities.Proposal{
		ID:              "p-1",
		UserID:          "u-1",
		Status:          entities.ProposalStatusSent,
		CreatedAt:       sent.Add(-time.Hour),
		SentAt:          &sent,
		TaxRate:         &tax,
		PipelineStageID: &stageID,
		Blocks: []entities.Block{{
			ID:           "b-1",
			Kind:         entities.BlockKindPricingTable,
			PricingItems: []entities.PricingItem{{ID: "i-1", Name: "Setup", Price: 100, Type: entities.PricingItemTypeStandard}},
		}},
	}

	it := toProposalItem(p)
	if it.ApprovedAt != "" || it.SentAt != "2024-06-01T12:00:00.000000000Z" {
		t.Fatalf("unexpected timestamps: %+v", it)
	}

	got := fromProposalItem(it)
	if got.SentAt == nil || !got.SentAt.Equal(sent) || got.ApprovedAt != nil {
		t.Fatalf("unexpected timestamps after mapping: %+v", got)
	}
	if got.Value() != p.Value() || got.PipelineStageID == nil || *got.PipelineStageID != "st-1" {
		t.Fatalf("unexpected mapped proposal: %+v", got)
	}
}
