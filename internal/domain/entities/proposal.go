package entities

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// ProposalStatus is the lifecycle tag of a proposal.
//
// The forecasting service never transitions a proposal; statuses are owned by the
// proposal authoring service and only read here.

type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "DRAFT"
	ProposalStatusSent     ProposalStatus = "SENT"
	ProposalStatusViewed   ProposalStatus = "VIEWED"
	ProposalStatusApproved ProposalStatus = "APPROVED"
	ProposalStatusDeclined ProposalStatus = "DECLINED"
)

// OpenProposalStatuses are the statuses that still count towards the sales pipeline.
var OpenProposalStatuses = []ProposalStatus{
	ProposalStatusDraft,
	ProposalStatusSent,
	ProposalStatusViewed,
}

// IsOpen reports whether the status is part of the open pipeline.
func (s ProposalStatus) IsOpen() bool {
	for _, open := range OpenProposalStatuses {
		if s == open {
			return true
		}
	}
	return false
}

// BlockKind tags the content blocks of a proposal. Only pricing tables carry items
// that contribute to the proposal value.
type BlockKind string

const (
	BlockKindPricingTable BlockKind = "PRICING_TABLE"
	BlockKindText         BlockKind = "TEXT"
	BlockKindImage        BlockKind = "IMAGE"
	BlockKindSignature    BlockKind = "SIGNATURE"
)

// PricingItemType tags a pricing line. OPTIONAL lines are offered to the client but
// never included in totals.
type PricingItemType string

const (
	PricingItemTypeStandard  PricingItemType = "STANDARD"
	PricingItemTypeOptional  PricingItemType = "OPTIONAL"
	PricingItemTypeRecurring PricingItemType = "RECURRING"
)

type PricingItem struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price float64         `json:"price"`
	Type  PricingItemType `json:"type"`
}

type Block struct {
	ID           string        `json:"id"`
	Kind         BlockKind     `json:"kind"`
	PricingItems []PricingItem `json:"pricing_items,omitempty"`
}

// Proposal is the sales document read by the forecasting engine.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Blocks and their pricing items are stored nested in the proposal item, so every
// read returns them eagerly.
type Proposal struct {
	ID     string         `json:"id"`
	UserID string         `json:"user_id"`
	Title  string         `json:"title"`
	Status ProposalStatus `json:"status"`

	CreatedAt     time.Time  `json:"created_at"`
	SentAt        *time.Time `json:"sent_at,omitempty"`
	FirstViewedAt *time.Time `json:"first_viewed_at,omitempty"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	DeclinedAt    *time.Time `json:"declined_at,omitempty"`

	EstimatedValue  *float64 `json:"estimated_value,omitempty"`
	TaxRate         *float64 `json:"tax_rate,omitempty"`
	Blocks          []Block  `json:"blocks,omitempty"`
	PipelineStageID *string  `json:"pipeline_stage_id,omitempty"`
}

var hundred = decimal.NewFromInt(100)

// Value returns the monetary value of the proposal.
//
// An explicit estimated value overrides everything else. Otherwise the value is the sum
// of the non-optional items of every pricing table, with tax applied when TaxRate > 0.
// Either way the result is never negative.
func (p Proposal) Value() float64 {
	if p.EstimatedValue != nil && *p.EstimatedValue != 0 {
		return math.Max(*p.EstimatedValue, 0)
	}

	total := decimal.Zero
	for _, b := range p.Blocks {
		if b.Kind != BlockKindPricingTable {
			continue
		}
		for _, item := range b.PricingItems {
			if item.Type == PricingItemTypeOptional {
				continue
			}
			total = total.Add(decimal.NewFromFloat(item.Price))
		}
	}

	if p.TaxRate != nil && *p.TaxRate > 0 {
		rate := decimal.NewFromFloat(*p.TaxRate).Div(hundred)
		total = total.Mul(decimal.NewFromInt(1).Add(rate))
	}

	if total.IsNegative() {
		return 0
	}
	return total.InexactFloat64()
}

// DecidedAt is the timestamp used to place a decided proposal in time:
// approval first, then decline, then send.
func (p Proposal) DecidedAt() *time.Time {
	switch {
	case p.ApprovedAt != nil:
		return p.ApprovedAt
	case p.DeclinedAt != nil:
		return p.DeclinedAt
	default:
		return p.SentAt
	}
}
