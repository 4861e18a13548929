package filestats

import (
	"bytes"
	"context"
	"log"
	"net/url"
	"time"

	"github.com/GeoNet/filestats/internal/textstats"
)

// Messages returned in Summary.Message.
const (
	MsgNoRecords = "no records to process"
	MsgProcessed = "file processed successfully"
)

// Getter fetches the object referred to by key and version from bucket and
// writes it into b. github.com/GeoNet/kit/aws/s3 S3 satisfies this.
type Getter interface {
	Get(bucket, key, version string, b *bytes.Buffer) error
}

// Putter upserts one item into the stats table.
// internal/platform/dynamo Table satisfies this.
type Putter interface {
	Put(ctx context.Context, item interface{}) error
}

// Handler processes object created notifications. The storage and table
// clients are injected so adapters can share long lived connections across
// invocations and tests can substitute fakes.
type Handler struct {
	Getter Getter
	Putter Putter
}

// Process handles one invocation. An empty notification slice is a
// successful no-op and touches no external service. Only the first
// notification is processed even when more are present: the notification
// payload nominally carries many records but this system handles one object
// per invocation. Known limitation carried over from the system it replaces.
//
// Any error is logged and returned wrapped in *Error; no record is written
// for a failed invocation.
func (h *Handler) Process(ctx context.Context, notifications []Notification) (Summary, error) {
	if len(notifications) == 0 {
		log.Println("no records in notification")
		return Summary{Message: MsgNoRecords}, nil
	}

	n := notifications[0]

	fileName, err := DecodeKey(n.Key)
	if err != nil {
		return Summary{}, logged(&Error{Kind: KeyDecoding, Key: n.Key, Err: err})
	}

	log.Printf("processing file %s from bucket %s", fileName, n.Bucket)

	var b bytes.Buffer

	if err := h.Getter.Get(n.Bucket, fileName, n.VersionID, &b); err != nil {
		return Summary{}, logged(&Error{Kind: ObjectFetch, Key: fileName, Err: err})
	}

	stats, err := textstats.Read(&b)
	if err != nil {
		return Summary{}, logged(&Error{Kind: ObjectDecoding, Key: fileName, Err: err})
	}

	r := Record{
		FileName:    fileName,
		LineCount:   stats.Lines,
		WordCount:   stats.Words,
		CharCount:   stats.Chars,
		Preview:     stats.Preview,
		ProcessedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := h.Putter.Put(ctx, r); err != nil {
		return Summary{}, logged(&Error{Kind: Persistence, Key: fileName, Err: err})
	}

	log.Printf("saved stats for %s: %d lines, %d words, %d chars",
		fileName, r.LineCount, r.WordCount, r.CharCount)

	return Summary{
		Message:   MsgProcessed,
		FileName:  fileName,
		LineCount: r.LineCount,
		WordCount: r.WordCount,
		CharCount: r.CharCount,
	}, nil
}

// DecodeKey decodes an object key as delivered in an S3 notification:
// + becomes space, then percent escapes are decoded as UTF-8.
func DecodeKey(key string) (string, error) {
	return url.QueryUnescape(key)
}

// logged logs err and returns it unchanged. Logging is best effort and is
// never itself a cause of failure.
func logged(err *Error) error {
	log.Printf("error processing file: %s", err)
	return err
}
