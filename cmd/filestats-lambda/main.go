// filestats-lambda receives notifications for the creation of text objects
// in AWS S3 and is invoked directly by the Lambda runtime.
// Objects are fetched from S3 and their text statistics are upserted into
// DynamoDB.
package main

import (
	"context"
	"log"
	"os"

	"github.com/GeoNet/filestats/internal/filestats"
	"github.com/GeoNet/filestats/internal/platform/dynamo"
	"github.com/GeoNet/kit/aws/s3"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

var (
	tableName = os.Getenv("STATS_TABLE")
	handler   filestats.Handler
)

func main() {
	s3Client, err := s3.NewWithMaxRetries(3)
	if err != nil {
		log.Fatalf("creating S3 client: %s", err)
	}

	table, err := dynamo.New(tableName)
	if err != nil {
		log.Fatalf("creating DynamoDB client: %s", err)
	}

	// clients are created once per execution environment and shared across
	// invocations.
	handler = filestats.Handler{Getter: &s3Client, Putter: &table}

	lambda.Start(handle)
}

// handle maps the Lambda S3 event onto notifications and processes them.
// A returned error fails the invocation; redelivery is the platform's call.
func handle(ctx context.Context, e events.S3Event) (filestats.Summary, error) {
	log.Printf("event received with %d records", len(e.Records))

	return handler.Process(ctx, notifications(e))
}

func notifications(e events.S3Event) []filestats.Notification {
	var n []filestats.Notification

	for _, r := range e.Records {
		n = append(n, filestats.Notification{
			Bucket:    r.S3.Bucket.Name,
			Key:       r.S3.Object.Key,
			VersionID: r.S3.Object.VersionID,
		})
	}

	return n
}
