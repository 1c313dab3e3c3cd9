package repository

import (
	"context"
	"errors"

	"proposal_forecasting/internal/domain/entities"
	"proposal_forecasting/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultProposalsTableName = "proposals"
	proposalsUserIDIndex      = "user_id-index"
)

var errProposalFilterWithoutUser = errors.New("proposal filter requires a user id")

type pricingItemAttr struct {
	ID    string  `dynamodbav:"id"`
	Name  string  `dynamodbav:"name"`
	Price float64 `dynamodbav:"price"`
	Type  string  `dynamodbav:"type"`
}

type blockAttr struct {
	ID           string            `dynamodbav:"id"`
	Kind         string            `dynamodbav:"kind"`
	PricingItems []pricingItemAttr `dynamodbav:"pricing_items,omitempty"`
}

type proposalItem struct {
	ID              string      `dynamodbav:"id"`
	UserID          string      `dynamodbav:"user_id"`
	Title           string      `dynamodbav:"title"`
	Status          string      `dynamodbav:"status"`
	CreatedAt       string      `dynamodbav:"created_at"`
	SentAt          string      `dynamodbav:"sent_at,omitempty"`
	FirstViewedAt   string      `dynamodbav:"first_viewed_at,omitempty"`
	ApprovedAt      string      `dynamodbav:"approved_at,omitempty"`
	DeclinedAt      string      `dynamodbav:"declined_at,omitempty"`
	EstimatedValue  *float64    `dynamodbav:"estimated_value,omitempty"`
	TaxRate         *float64    `dynamodbav:"tax_rate,omitempty"`
	Blocks          []blockAttr `dynamodbav:"blocks,omitempty"`
	PipelineStageID string      `dynamodbav:"pipeline_stage_id,omitempty"`
}

// ProposalDynamoRepository reads proposals written by the proposal authoring service.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id), projecting all attributes
//
// Blocks and pricing items are nested attributes of the proposal item, so a single
// query returns fully loaded proposals.

type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
	}
}

func (r *ProposalDynamoRepository) Find(ctx context.Context, f entities.ProposalFilter) ([]entities.Proposal, error) {
	if f.UserID == "" {
		return nil, errProposalFilterWithoutUser
	}

	expr, err := buildProposalQuery(f)
	if err != nil {
		return nil, err
	}

	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(proposalsUserIDIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})

	proposals := make([]entities.Proposal, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it proposalItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			proposals = append(proposals, fromProposalItem(it))
		}
	}
	return proposals, nil
}

// Put upserts a proposal. The authoring service owns these records; this is only used
// to seed local tables.
func (r *ProposalDynamoRepository) Put(ctx context.Context, p entities.Proposal) error {
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

// buildProposalQuery pushes the whole filter down to DynamoDB: the owner becomes the
// key condition, everything else a filter expression.
func buildProposalQuery(f entities.ProposalFilter) (expression.Expression, error) {
	keyCond := expression.Key("user_id").Equal(expression.Value(f.UserID))

	var conds []expression.ConditionBuilder
	if len(f.Statuses) > 0 {
		values := make([]expression.OperandBuilder, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			values = append(values, expression.Value(string(s)))
		}
		conds = append(conds, expression.Name("status").In(values[0], values[1:]...))
	}
	conds = appendRange(conds, entities.FieldCreatedAt, f.CreatedBetween)
	conds = appendRange(conds, entities.FieldSentAt, f.SentBetween)
	conds = appendRange(conds, entities.FieldApprovedAt, f.ApprovedBetween)
	for _, field := range f.NotNull {
		conds = append(conds, expression.AttributeExists(expression.Name(string(field))))
	}

	b := expression.NewBuilder().WithKeyCondition(keyCond)
	switch len(conds) {
	case 0:
	case 1:
		b = b.WithFilter(conds[0])
	default:
		b = b.WithFilter(expression.And(conds[0], conds[1], conds[2:]...))
	}
	return b.Build()
}

func appendRange(conds []expression.ConditionBuilder, field entities.TimestampField, r *entities.TimeRange) []expression.ConditionBuilder {
	if r == nil {
		return conds
	}
	name := expression.Name(string(field))
	return append(conds,
		name.GreaterThanEqual(expression.Value(formatTime(r.From))),
		name.LessThan(expression.Value(formatTime(r.To))),
	)
}

func toProposalItem(p entities.Proposal) proposalItem {
	it := proposalItem{
		ID:             p.ID,
		UserID:         p.UserID,
		Title:          p.Title,
		Status:         string(p.Status),
		CreatedAt:      formatTime(p.CreatedAt),
		SentAt:         formatOptionalTime(p.SentAt),
		FirstViewedAt:  formatOptionalTime(p.FirstViewedAt),
		ApprovedAt:     formatOptionalTime(p.ApprovedAt),
		DeclinedAt:     formatOptionalTime(p.DeclinedAt),
		EstimatedValue: p.EstimatedValue,
		TaxRate:        p.TaxRate,
	}
	if p.PipelineStageID != nil {
		it.PipelineStageID = *p.PipelineStageID
	}
	for _, b := range p.Blocks {
		ba := blockAttr{ID: b.ID, Kind: string(b.Kind)}
		for _, item := range b.PricingItems {
			ba.PricingItems = append(ba.PricingItems, pricingItemAttr{
				ID:    item.ID,
				Name:  item.Name,
				Price: item.Price,
				Type:  string(item.Type),
			})
		}
		it.Blocks = append(it.Blocks, ba)
	}
	return it
}

func fromProposalItem(it proposalItem) entities.Proposal {
	p := entities.Proposal{
		ID:             it.ID,
		UserID:         it.UserID,
		Title:          it.Title,
		Status:         entities.ProposalStatus(it.Status),
		CreatedAt:      parseTime(it.CreatedAt),
		SentAt:         parseOptionalTime(it.SentAt),
		FirstViewedAt:  parseOptionalTime(it.FirstViewedAt),
		ApprovedAt:     parseOptionalTime(it.ApprovedAt),
		DeclinedAt:     parseOptionalTime(it.DeclinedAt),
		EstimatedValue: it.EstimatedValue,
		TaxRate:        it.TaxRate,
	}
	if it.PipelineStageID != "" {
		id := it.PipelineStageID
		p.PipelineStageID = &id
	}
	for _, ba := range it.Blocks {
		b := entities.Block{ID: ba.ID, Kind: entities.BlockKind(ba.Kind)}
		for _, ia := range ba.PricingItems {
			b.PricingItems = append(b.PricingItems, entities.PricingItem{
				ID:    ia.ID,
				Name:  ia.Name,
				Price: ia.Price,
				Type:  entities.PricingItemType(ia.Type),
			})
		}
		p.Blocks = append(p.Blocks, b)
	}
	return p
}
