package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"proposal_forecasting/internal/domain/entities"
	"proposal_forecasting/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPipelineStagesTableName = "pipeline_stages"
	pipelineStagesUserIDIndex      = "user_id-index"
)

type pipelineStageItem struct {
	ID          string `dynamodbav:"id"`
	UserID      string `dynamodbav:"user_id"`
	Name        string `dynamodbav:"name"`
	Order       int    `dynamodbav:"stage_order"`
	Probability int    `dynamodbav:"probability"`
	Color       string `dynamodbav:"color"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// PipelineStageDynamoRepository persists PipelineStage entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type PipelineStageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPipelineStageRepository = (*PipelineStageDynamoRepository)(nil)

func NewPipelineStageDynamoRepository(ddb *dynamodb.Client) *PipelineStageDynamoRepository {
	return &PipelineStageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PIPELINE_STAGES_TABLE", defaultPipelineStagesTableName),
	}
}

func (r *PipelineStageDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.PipelineStage, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(pipelineStagesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})

	stages := make([]entities.PipelineStage, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it pipelineStageItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			stages = append(stages, fromPipelineStageItem(it))
		}
	}

	// GSI results carry no order guarantee on a non-key attribute.
	sort.SliceStable(stages, func(i, j int) bool {
		return stages[i].Order < stages[j].Order
	})
	return stages, nil
}

func (r *PipelineStageDynamoRepository) GetByID(ctx context.Context, id string) (entities.PipelineStage, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PipelineStage{}, err
	}
	if len(out.Item) == 0 {
		return entities.PipelineStage{}, nil
	}

	var it pipelineStageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PipelineStage{}, err
	}
	return fromPipelineStageItem(it), nil
}

func (r *PipelineStageDynamoRepository) Create(ctx context.Context, s entities.PipelineStage) (entities.PipelineStage, error) {
	if err := r.putNew(ctx, s); err != nil {
		return entities.PipelineStage{}, err
	}
	return s, nil
}

func (r *PipelineStageDynamoRepository) CreateIfAbsent(ctx context.Context, s entities.PipelineStage) (bool, error) {
	return conditionalPutResult(r.putNew(ctx, s))
}

// conditionalPutResult reports whether a put guarded by attribute_not_exists wrote the
// item. A failed condition means the item already exists and is not an error.
func conditionalPutResult(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case isConditionalCheckFailed(err):
		return false, nil
	default:
		return false, err
	}
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func (r *PipelineStageDynamoRepository) putNew(ctx context.Context, s entities.PipelineStage) error {
	av, err := attributevalue.MarshalMap(toPipelineStageItem(s))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *PipelineStageDynamoRepository) Update(ctx context.Context, id string, u entities.PipelineStageUpdate) (entities.PipelineStage, error) {
	upd := expression.Set(expression.Name("updated_at"), expression.Value(formatTime(time.Now())))
	if u.Name != nil {
		upd = upd.Set(expression.Name("name"), expression.Value(*u.Name))
	}
	if u.Order != nil {
		upd = upd.Set(expression.Name("stage_order"), expression.Value(*u.Order))
	}
	if u.Probability != nil {
		upd = upd.Set(expression.Name("probability"), expression.Value(*u.Probability))
	}
	if u.Color != nil {
		upd = upd.Set(expression.Name("color"), expression.Value(*u.Color))
	}

	expr, err := expression.NewBuilder().
		WithUpdate(upd).
		WithCondition(expression.AttributeExists(expression.Name("id"))).
		Build()
	if err != nil {
		return entities.PipelineStage{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       expr.Condition(),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		// attribute_exists(id) failed: the stage is gone.
		if isConditionalCheckFailed(err) {
			return entities.PipelineStage{}, nil
		}
		return entities.PipelineStage{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PipelineStage{}, nil
	}

	var it pipelineStageItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PipelineStage{}, err
	}
	return fromPipelineStageItem(it), nil
}

func (r *PipelineStageDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPipelineStageItem(s entities.PipelineStage) pipelineStageItem {
	return pipelineStageItem{
		ID:          s.ID,
		UserID:      s.UserID,
		Name:        s.Name,
		Order:       s.Order,
		Probability: s.Probability,
		Color:       s.Color,
		CreatedAt:   formatTime(s.CreatedAt),
		UpdatedAt:   formatTime(s.UpdatedAt),
	}
}

func fromPipelineStageItem(it pipelineStageItem) entities.PipelineStage {
	return entities.PipelineStage{
		ID:          it.ID,
		UserID:      it.UserID,
		Name:        it.Name,
		Order:       it.Order,
		Probability: it.Probability,
		Color:       it.Color,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
