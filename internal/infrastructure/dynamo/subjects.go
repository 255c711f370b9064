package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/portfolio-api/internal/domain"
)

// SubjectRepo provides typed DynamoDB operations for the cv_subjects table.
// PK: email — exactly one row per distinct requester address.
type SubjectRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewSubjectRepo(client *dynamodb.Client, tableName string) *SubjectRepo {
	return &SubjectRepo{client: client, tableName: tableName}
}

func (r *SubjectRepo) Put(ctx context.Context, s *domain.CVSubject) error {
	item, err := attributevalue.MarshalMap(s)
	if err != nil {
		return fmt.Errorf("marshal subject: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *SubjectRepo) Get(ctx context.Context, email string) (*domain.CVSubject, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("email", email),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("subject not found: %w", domain.ErrNotFound)
	}
	var s domain.CVSubject
	if err := attributevalue.UnmarshalMap(out.Item, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubjectRepo) Update(ctx context.Context, email string, updates map[string]interface{}) error {
	updates[fieldUpdatedAt] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("email", email),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}

func (r *SubjectRepo) Scan(ctx context.Context) ([]domain.CVSubject, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	var subjects []domain.CVSubject
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}
