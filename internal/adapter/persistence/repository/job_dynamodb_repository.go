package repository

import (
	"context"
	"encoding/json"
	"time"

	"slick_jobs/internal/domain/aggregate"
	"slick_jobs/internal/domain/entities"
	"slick_jobs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultJobsTableName       = "jobs"
	defaultAggregatesTableName = "job_aggregates"
	publicLinkKeyIndexName     = "public_link_key-index"
)

// jobItem is the DynamoDB shape of a Job. The entity itself travels as a
// JSON payload; the indexed attributes are lifted to the top level.
type jobItem struct {
	ID            string `dynamodbav:"id"`
	PublicLinkKey string `dynamodbav:"public_link_key"`
	Status        string `dynamodbav:"status"`
	Payload       string `dynamodbav:"payload"`
}

type aggregateItem struct {
	Partition string  `dynamodbav:"partition"`
	Sort      string  `dynamodbav:"sort"`
	JobID     string  `dynamodbav:"job_id"`
	At        string  `dynamodbav:"at"`
	Amount    float64 `dynamodbav:"amount"`
}

// JobDynamoRepository persists jobs and their aggregate index entries in
// DynamoDB.
//
// Table requirements:
//   - jobs: PK id (string), GSI public_link_key-index on public_link_key
//   - job_aggregates: PK partition (string), SK sort (string)
//
// Commit uses TransactWriteItems so the job write and its aggregate delta
// land atomically. A single job mutation touches one job row plus a handful
// of index rows, comfortably inside the 100-item transaction limit. The
// delta handed to Commit never puts and deletes the same key (aggregate.Diff
// guarantees it), which TransactWriteItems requires: it rejects transactions
// with two operations on one item.
type JobDynamoRepository struct {
	ddb             *dynamodb.Client
	jobsTable       string
	aggregatesTable string
}

var (
	_ interfaces.IJobRepository  = (*JobDynamoRepository)(nil)
	_ interfaces.IAggregateIndex = (*JobDynamoRepository)(nil)
)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:             ddb,
		jobsTable:       getenvDefault("JOBS_TABLE", defaultJobsTableName),
		aggregatesTable: getenvDefault("AGGREGATES_TABLE", defaultAggregatesTableName),
	}
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.jobsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it)
}

func (r *JobDynamoRepository) GetByPublicKey(ctx context.Context, key string) (entities.Job, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.jobsTable),
		IndexName:              aws.String(publicLinkKeyIndexName),
		KeyConditionExpression: aws.String("#k = :k"),
		ExpressionAttributeNames: map[string]string{
			"#k": "public_link_key",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":k": &types.AttributeValueMemberS{Value: key},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Items) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it)
}

func (r *JobDynamoRepository) Commit(ctx context.Context, txn interfaces.JobTransaction) error {
	var writes []types.TransactWriteItem

	if txn.Put != nil {
		it, err := toJobItem(*txn.Put)
		if err != nil {
			return err
		}
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.jobsTable),
				Item:      av,
			},
		})
	}

	if txn.DeleteID != "" {
		writes = append(writes, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.jobsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: txn.DeleteID},
				},
			},
		})
	}

	for _, k := range txn.IndexDeletes {
		writes = append(writes, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.aggregatesTable),
				Key: map[string]types.AttributeValue{
					"partition": &types.AttributeValueMemberS{Value: k.Partition},
					"sort":      &types.AttributeValueMemberS{Value: k.Sort},
				},
			},
		})
	}

	for _, e := range txn.IndexPuts {
		av, err := attributevalue.MarshalMap(aggregateItem{
			Partition: e.Partition,
			Sort:      e.Sort,
			JobID:     e.JobID,
			At:        e.At.UTC().Format(time.RFC3339Nano),
			Amount:    e.Amount,
		})
		if err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.aggregatesTable),
				Item:      av,
			},
		})
	}

	if len(writes) == 0 {
		return nil
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	return err
}

func (r *JobDynamoRepository) Range(ctx context.Context, partition, fromSort, toSort string) ([]aggregate.Entry, error) {
	var out []aggregate.Entry
	var startKey map[string]types.AttributeValue

	for {
		resp, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.aggregatesTable),
			KeyConditionExpression: aws.String("#p = :p AND #s BETWEEN :from AND :to"),
			ExpressionAttributeNames: map[string]string{
				"#p": "partition",
				"#s": "sort",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":p":    &types.AttributeValueMemberS{Value: partition},
				":from": &types.AttributeValueMemberS{Value: fromSort},
				":to":   &types.AttributeValueMemberS{Value: toSort},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range resp.Items {
			var it aggregateItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			at, _ := time.Parse(time.RFC3339Nano, it.At)
			out = append(out, aggregate.Entry{
				Partition: it.Partition,
				Sort:      it.Sort,
				JobID:     it.JobID,
				At:        at,
				Amount:    it.Amount,
			})
		}

		if len(resp.LastEvaluatedKey) == 0 {
			break
		}
		startKey = resp.LastEvaluatedKey
	}

	return out, nil
}

func toJobItem(j entities.Job) (jobItem, error) {
	payload, err := json.Marshal(j)
	if err != nil {
		return jobItem{}, err
	}
	return jobItem{
		ID:            j.ID,
		PublicLinkKey: j.PublicLinkKey,
		Status:        string(j.Status),
		Payload:       string(payload),
	}, nil
}

func fromJobItem(it jobItem) (entities.Job, error) {
	var j entities.Job
	if err := json.Unmarshal([]byte(it.Payload), &j); err != nil {
		return entities.Job{}, err
	}
	return j, nil
}
