package storage

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/bhumika0029/polling-app/logging"
)

type SessionStorage interface {
	Get(ctx context.Context, id string) (*Session, error)
	Create(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id string) error
}

type DynamoSessionStorage struct {
	Client    *dynamodb.Client
	TableName string
	TTL       time.Duration
}

func (s *DynamoSessionStorage) Get(ctx context.Context, id string) (*Session, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("SESSION: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      &s.TableName,
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		logging.Log.Errorf("SESSION: GetItem failed: %v", err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrSessionNotFound
	}

	var session Session
	if err := attributevalue.UnmarshalMap(out.Item, &session); err != nil {
		logging.Log.Errorf("SESSION: failed to unmarshal session: %v", err)
		return nil, err
	}

	// TTL deletion in DynamoDB is lazy, expired items can still be read
	if session.ExpiresAt > 0 && time.Now().Unix() >= session.ExpiresAt {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *DynamoSessionStorage) Create(ctx context.Context, session *Session) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	if s.TTL > 0 && session.ExpiresAt == 0 {
		session.ExpiresAt = session.CreatedAt.Add(s.TTL).Unix()
	}

	item, err := attributevalue.MarshalMap(session)
	if err != nil {
		logging.Log.Errorf("SESSION: failed to marshal session: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			logging.Log.Warnf("SESSION: session %s already exists", session.ID)
			return ErrItemWithIDAlreadyExists
		}
		logging.Log.Errorf("SESSION: failed to create session: %v", err)
		return err
	}
	return nil
}

func (s *DynamoSessionStorage) Delete(ctx context.Context, id string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("SESSION: failed to marshal delete key: %v", err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("SESSION: failed to delete session %s: %v", id, err)
		return err
	}
	logging.Log.Infof("SESSION: deleted session %s", id)
	return nil
}
