package postgres

import (
	"errors"
	"strings"
	"testing"
	"time"

	"proposal_forecasting/internal/domain/entities"
)

func TestBuildFindQuery(t *testing.T) {
	t.Run("requires user", func(t *testing.T) {
		if _, _, err := buildFindQuery(entities.ProposalFilter{}); !errors.Is(err, errProposalFilterWithoutUser) {
			t.Fatalf("expected errProposalFilterWithoutUser, got %v", err)
		}
	})

	t.Run("owner only", func(t *testing.T) {
		query, args, err := buildFindQuery(entities.ProposalFilter{UserID: "u-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(query, "WHERE user_id = $1 ORDER BY") || len(args) != 1 {
			t.Fatalf("unexpected query %q args=%v", query, args)
		}
	})

	t.Run("all conditions", func(t *testing.T) {
		from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0)
		query, args, err := buildFindQuery(entities.ProposalFilter{
			UserID:          "u-1",
			Statuses:        []entities.ProposalStatus{entities.ProposalStatusApproved, entities.ProposalStatusDeclined},
			ApprovedBetween: &entities.TimeRange{From: from, To: to},
			NotNull:         []entities.TimestampField{entities.FieldSentAt},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, part := range []string{"status = ANY($2)", "approved_at >= $3", "approved_at < $4", "sent_at IS NOT NULL"} {
			if !strings.Contains(query, part) {
				t.Fatalf("expected %q in %q", part, query)
			}
		}
		if len(args) != 4 {
			t.Fatalf("expected 4 args, got %v", args)
		}
		statuses, ok := args[1].([]string)
		if !ok || len(statuses) != 2 || statuses[0] != "APPROVED" {
			t.Fatalf("unexpected status arg: %v", args[1])
		}
	})

	t.Run("unknown timestamp", func(t *testing.T) {
		if _, _, err := buildFindQuery(entities.ProposalFilter{UserID: "u-1", NotNull: []entities.TimestampField{"deleted_at"}}); err == nil {
			t.Fatalf("expected error")
		}
	})
}
