package entities

import (
	"time"

	"github.com/google/uuid"
)

// PipelineStage is a user-owned bucket used to group open proposals.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Probability (0-100) weights the stage value; Order is the display sort key. The two
// are independent even though the defaults grow together.
type PipelineStage struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Order       int       `json:"order"`
	Probability int       `json:"probability"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PipelineStageUpdate carries the fields of a partial stage update. Nil fields are left
// untouched.
type PipelineStageUpdate struct {
	Name        *string
	Order       *int
	Probability *int
	Color       *string
}

// IsEmpty reports whether the update changes nothing.
func (u PipelineStageUpdate) IsEmpty() bool {
	return u.Name == nil && u.Order == nil && u.Probability == nil && u.Color == nil
}

// Apply returns a copy of s with the update applied.
func (u PipelineStageUpdate) Apply(s PipelineStage) PipelineStage {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Order != nil {
		s.Order = *u.Order
	}
	if u.Probability != nil {
		s.Probability = *u.Probability
	}
	if u.Color != nil {
		s.Color = *u.Color
	}
	return s
}

const (
	StageNameLead         = "Lead"
	StageNameQualified    = "Qualified"
	StageNameProposalSent = "Proposal Sent"
	StageNameNegotiation  = "Negotiation"
	StageNameClosedWon    = "Closed Won"
	StageNameClosedLost   = "Closed Lost"
)

type defaultStage struct {
	name        string
	probability int
	color       string
}

var defaultStages = []defaultStage{
	{StageNameLead, 10, "#94A3B8"},
	{StageNameQualified, 25, "#60A5FA"},
	{StageNameProposalSent, 50, "#A78BFA"},
	{StageNameNegotiation, 75, "#F59E0B"},
	{StageNameClosedWon, 100, "#22C55E"},
	{StageNameClosedLost, 0, "#EF4444"},
}

// stageNamespace seeds the deterministic ids of default stages.
var stageNamespace = uuid.MustParse("5b0c8f0e-7a1d-4c1e-9a6f-3f2d6c1b8e47")

// DefaultStageID returns the deterministic id of a default stage. Two concurrent
// first-use initializations for the same user produce the same ids, so a conditional
// write lets only one of them land.
func DefaultStageID(userID, name string) string {
	return uuid.NewSHA1(stageNamespace, []byte(userID+"/"+name)).String()
}

// DefaultPipelineStages builds the six stages every user starts with.
func DefaultPipelineStages(userID string, now time.Time) []PipelineStage {
	stages := make([]PipelineStage, 0, len(defaultStages))
	for i, d := range defaultStages {
		stages = append(stages, PipelineStage{
			ID:          DefaultStageID(userID, d.name),
			UserID:      userID,
			Name:        d.name,
			Order:       i,
			Probability: d.probability,
			Color:       d.color,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return stages
}

// StatusStageNames maps open statuses to the stage a proposal falls in when it has no
// explicit stage assignment.
var StatusStageNames = map[ProposalStatus]string{
	ProposalStatusDraft:  StageNameLead,
	ProposalStatusSent:   StageNameProposalSent,
	ProposalStatusViewed: StageNameNegotiation,
}
