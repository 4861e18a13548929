// filestats-notify lists objects in an S3 bucket and sends synthetic
// ObjectCreated notifications to SQS, so that existing objects can be
// (re)processed by filestats-consumer.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/GeoNet/kit/aws/s3"
	"github.com/GeoNet/kit/aws/sqs"
)

var (
	bucketName string
	keyPrefix  string
	sqsURL     string
	s3Client   s3.S3
	sqsClient  sqs.SQS
)

func init() {
	flag.StringVar(&bucketName, "bucket-name", "", "S3 bucket name which holds the text objects.")
	flag.StringVar(&keyPrefix, "key-prefix", "", "Key prefix to search in the S3 bucket.")
	flag.StringVar(&sqsURL, "sqs-url", "", "SQS queue url to send notifications to. Omit this parameter to show the list of matched keys only.")
	flag.Parse()

	var err error

	s3Client, err = s3.New()
	if err != nil {
		log.Fatalf("creating S3 client: %s", err)
	}

	sqsClient, err = sqs.New()
	if err != nil {
		log.Fatalf("creating SQS client: %s", err)
	}
}

func main() {
	if bucketName == "" {
		flag.Usage()
		return
	}

	fmt.Println("Checking S3 bucket:", bucketName)
	fmt.Println("Search key prefix:", keyPrefix)
	if sqsURL == "" {
		fmt.Println("No sqs-url specified. Displaying matched keys only.")
	} else {
		fmt.Println("Send to SQS:", sqsURL)
	}

	objects, err := s3Client.ListObjects(bucketName, keyPrefix, 1000)
	if err != nil {
		log.Fatalf("listing s3 objects: %s", err)
	}

	cnt := 0

	for _, o := range objects {
		if *o.Size == 0 { // directories have the size of 0
			continue
		}

		if err = send(*o.Key); err != nil {
			log.Fatal(err)
		}

		cnt++
	}

	fmt.Println("Total keys matched:", cnt)
}

// send sends an ObjectCreated notification for key to the SQS queue.
func send(key string) error {
	fmt.Println("Key:", key)

	if sqsURL == "" {
		return nil
	}

	e := s3.Event{
		Records: []s3.EventRecord{
			{
				EventName: "ObjectCreated:Put",
				S3: s3.EventS3{
					Object: s3.EventObject{
						Key: key,
					},
					Bucket: s3.EventBucket{
						Name: bucketName,
					},
				},
			},
		},
	}

	b, err := json.Marshal(e)
	if err != nil {
		return err
	}

	return sqsClient.Send(sqsURL, string(b))
}
