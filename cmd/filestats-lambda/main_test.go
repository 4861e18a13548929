package main

import (
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

func TestNotifications(t *testing.T) {
	e := events.S3Event{
		Records: []events.S3EventRecord{
			{
				EventName: "ObjectCreated:Put",
				S3: events.S3Entity{
					Bucket: events.S3Bucket{Name: "texts"},
					Object: events.S3Object{Key: "my+file%20name.txt", VersionID: "1"},
				},
			},
		},
	}

	n := notifications(e)

	if len(n) != 1 {
		t.Fatalf("expected 1 notification got %d", len(n))
	}

	if n[0].Bucket != "texts" {
		t.Errorf("expected texts got %s", n[0].Bucket)
	}

	// the key stays encoded here, the handler decodes it.
	if n[0].Key != "my+file%20name.txt" {
		t.Errorf("expected the encoded key got %s", n[0].Key)
	}

	if n[0].VersionID != "1" {
		t.Errorf("expected version 1 got %s", n[0].VersionID)
	}
}

func TestNotificationsEmpty(t *testing.T) {
	if n := notifications(events.S3Event{}); len(n) != 0 {
		t.Errorf("expected no notifications got %d", len(n))
	}
}
