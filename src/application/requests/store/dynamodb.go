package store

import (
	"context"
	"errors"
	"strconv"

	"video-fetch-be/src/application/requests/entity"
	"video-fetch-be/src/lib/cerr"
	"video-fetch-be/src/lib/env"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
)

const (
	idField = "id"

	prevStatusValueName   = ":prevStatus"
	prevProgressValueName = ":prevProgress"
	statusAttributeName   = "#status"

	maxUpdateAttempts = 5
)

var _ entity.RequestStore = DynamoDBRequestStore{}

func NewDynamoDBRequestStore(environment env.Environment, tableName string) DynamoDBRequestStore {
	dbSession := session.Must(session.NewSession())

	config := aws.NewConfig().WithRegion("us-east-2").WithCredentials(credentials.NewEnvCredentials())

	if environment == env.Development {
		config = config.WithEndpoint("http://localhost:8000")
	}

	return NewDynamoDBRequestStoreFromClient(dynamodb.New(dbSession, config), tableName)
}

func NewDynamoDBRequestStoreFromClient(client *dynamodb.DynamoDB, tableName string) DynamoDBRequestStore {
	return DynamoDBRequestStore{
		dynamoDBClient: client,
		tableName:      tableName,
	}
}

type DynamoDBRequestStore struct {
	dynamoDBClient *dynamodb.DynamoDB
	tableName      string
}

func (d DynamoDBRequestStore) CreateRequest(ctx context.Context, request entity.DownloadRequest) error {
	item, err := dynamodbattribute.MarshalMap(toDynamoRequest(request))
	if err != nil {
		return cerr.Field("request_id", request.ID).Wrap(err).Error("Failed to marshal download request")
	}

	conditionExpression := "attribute_not_exists(id)"
	_, err = d.dynamoDBClient.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		ConditionExpression: &conditionExpression,
		Item:                item,
		TableName:           &d.tableName,
	})
	if err != nil {
		return cerr.Field("request_id", request.ID).Wrap(err).Error("Failed to put download request into DynamoDB")
	}

	return nil
}

func (d DynamoDBRequestStore) GetRequest(ctx context.Context, requestID string) (entity.DownloadRequest, error) {
	consistentRead := true

	output, err := d.dynamoDBClient.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		ConsistentRead: &consistentRead,
		Key:            makeKey(requestID),
		TableName:      &d.tableName,
	})
	if err != nil {
		return entity.DownloadRequest{}, cerr.Field("request_id", requestID).Wrap(err).Error("Failed to get download request from DynamoDB")
	}

	if len(output.Item) == 0 {
		return entity.DownloadRequest{}, entity.ErrRequestNotFound
	}

	record := dynamoRequest{}
	if err := dynamodbattribute.UnmarshalMap(output.Item, &record); err != nil {
		return entity.DownloadRequest{}, cerr.Field("request_id", requestID).Wrap(err).Error("Failed to unmarshal download request")
	}

	return record.toEntity(), nil
}

func (d DynamoDBRequestStore) UpdateRequest(ctx context.Context, requestID string, updater entity.RequestUpdater) (entity.DownloadRequest, error) {
	var err error
	for i := 0; i < maxUpdateAttempts; i++ {
		var updated entity.DownloadRequest
		updated, err = d.updateRequest(ctx, requestID, updater)
		if err == nil {
			return updated, nil
		}

		if !isConditionalCheckFailure(err) {
			return entity.DownloadRequest{}, err
		}
	}

	return entity.DownloadRequest{}, cerr.Field("request_id", requestID).Wrap(err).Error("Download request kept changing during update")
}

// updateRequest only writes if status and progress are still what updater saw
func (d DynamoDBRequestStore) updateRequest(ctx context.Context, requestID string, updater entity.RequestUpdater) (entity.DownloadRequest, error) {
	current, err := d.GetRequest(ctx, requestID)
	if err != nil {
		return entity.DownloadRequest{}, err
	}

	updated, err := updater(current)
	if err != nil {
		return entity.DownloadRequest{}, err
	}

	item, err := dynamodbattribute.MarshalMap(toDynamoRequest(updated))
	if err != nil {
		return entity.DownloadRequest{}, cerr.Field("request_id", requestID).Wrap(err).Error("Failed to marshal download request")
	}

	conditionExpression := statusAttributeName + " = " + prevStatusValueName + " AND progress = " + prevProgressValueName

	expressionAttributeValues := func() map[string]*dynamodb.AttributeValue {
		prevStatus := dynamodb.AttributeValue{}
		prevStatus.SetS(string(current.Status))

		prevProgress := dynamodb.AttributeValue{}
		prevProgress.SetN(strconv.Itoa(current.Progress))

		return map[string]*dynamodb.AttributeValue{
			prevStatusValueName:   &prevStatus,
			prevProgressValueName: &prevProgress,
		}
	}()

	_, err = d.dynamoDBClient.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		ConditionExpression:       &conditionExpression,
		ExpressionAttributeNames:  map[string]*string{statusAttributeName: aws.String("status")},
		ExpressionAttributeValues: expressionAttributeValues,
		Item:                      item,
		TableName:                 &d.tableName,
	})
	if err != nil {
		return entity.DownloadRequest{}, cerr.Field("request_id", requestID).Wrap(err).Error("Failed to update download request in DynamoDB")
	}

	return updated, nil
}

func isConditionalCheckFailure(err error) bool {
	var awsErr awserr.Error
	if !errors.As(err, &awsErr) {
		return false
	}

	return awsErr.Code() == dynamodb.ErrCodeConditionalCheckFailedException
}

func makeKey(key string) map[string]*dynamodb.AttributeValue {
	attributeValue := dynamodb.AttributeValue{}
	attributeValue.SetS(key)
	return map[string]*dynamodb.AttributeValue{
		idField: &attributeValue,
	}
}
