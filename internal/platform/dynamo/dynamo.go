// Package dynamo is for working with AWS DynamoDB tables.
package dynamo

import (
	"context"
	"errors"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Table wraps a DynamoDB client for writing items to a single table. The
// table is provisioned externally; Table assumes it already exists.
type Table struct {
	client *dynamodb.Client
	name   string
}

// New returns a Table using the default AWS credentials chain.
// This consults (in order) environment vars, config files, EC2 and ECS roles.
// It is an error if the AWS_REGION environment variable is not set or if
// name is empty.
func New(name string) (Table, error) {
	if os.Getenv("AWS_REGION") == "" {
		return Table{}, errors.New("AWS_REGION is not set")
	}

	if name == "" {
		return Table{}, errors.New("table name is not set")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return Table{}, err
	}

	return Table{client: dynamodb.NewFromConfig(cfg), name: name}, nil
}

// Ready returns whether the DynamoDB client has been initialised.
func (t *Table) Ready() bool {
	return t.client != nil
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Put marshals item and writes it to the table as an unconditional upsert:
// an existing item with the same partition key is replaced wholesale.
func (t *Table) Put(ctx context.Context, item interface{}) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}

	_, err = t.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.name),
		Item:      av,
	})

	return err
}
