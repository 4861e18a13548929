// filestats-consumer receives notifications for the creation of text objects
// in AWS S3.  Notifications are received from SQS.
// Objects are fetched from S3 and their text statistics are upserted into
// DynamoDB.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/GeoNet/filestats/internal/filestats"
	"github.com/GeoNet/filestats/internal/platform/dynamo"
	"github.com/GeoNet/kit/aws/s3"
	"github.com/GeoNet/kit/aws/sqs"
	"github.com/GeoNet/kit/health"
	"github.com/GeoNet/kit/metrics"
)

var (
	queueURL  = os.Getenv("SQS_QUEUE_URL")
	tableName = os.Getenv("STATS_TABLE")
	sqsClient sqs.SQS
	handler   filestats.Handler
)

// notification is for unmarshaling the S3 event notification JSON carried in
// the SQS message body.
type notification struct {
	s3.Event
}

func main() {
	s3Client, err := s3.NewWithMaxRetries(100)
	if err != nil {
		log.Fatalf("creating S3 client: %s", err)
	}

	table, err := dynamo.New(tableName)
	if err != nil {
		log.Fatalf("creating DynamoDB client: %s", err)
	}

	sqsClient, err = sqs.NewWithMaxRetries(100)
	if err != nil {
		log.Fatalf("creating SQS client: %s", err)
	}

	handler = filestats.Handler{Getter: &s3Client, Putter: &table}

	soh := health.New(":8080", time.Minute*5, time.Minute)

	log.Println("listening for messages")

	var r sqs.Raw
	var n notification

	for {
		r, err = sqsClient.Receive(queueURL, 600)
		if err != nil {
			log.Printf("problem receiving message, backing off: %s", err)
			time.Sleep(time.Second * 20)
			continue
		}

		soh.Ok()

		err = metrics.DoProcess(&n, []byte(r.Body))
		if err != nil {
			log.Printf("problem processing message, skipping deletion for redelivery: %s", err)
			continue
		}

		err = sqsClient.Delete(queueURL, r.ReceiptHandle)
		if err != nil {
			log.Printf("problem deleting message, continuing: %s", err)
		}
	}
}

// Process implements metrics.Processor for notification.
func (n *notification) Process(msg []byte) error {
	// n is reused across messages.
	n.Records = nil

	if err := json.Unmarshal(msg, n); err != nil {
		return err
	}

	s, err := handler.Process(context.Background(), notifications(n.Event))
	if err != nil {
		return err
	}

	log.Println(s.Message)

	return nil
}

func notifications(e s3.Event) []filestats.Notification {
	var n []filestats.Notification

	for _, v := range e.Records {
		n = append(n, filestats.Notification{
			Bucket:    v.S3.Bucket.Name,
			Key:       v.S3.Object.Key,
			VersionID: v.S3.Object.VersionId,
		})
	}

	return n
}
