// Package filestats processes object created notifications for text files in
// AWS S3: the object is fetched, its text statistics are computed, and one
// row per file is upserted into a DynamoDB table keyed by the file name.
package filestats

// Notification identifies one created object. Key is as delivered by the
// notification source: URL encoded, with + for space.
type Notification struct {
	Bucket    string
	Key       string
	VersionID string
}

// Record is one row in the stats table. FileName is the partition key; a
// later record for the same FileName replaces the earlier one wholesale.
type Record struct {
	FileName    string `json:"fileName" dynamodbav:"fileName"`
	LineCount   int    `json:"lineCount" dynamodbav:"lineCount"`
	WordCount   int    `json:"wordCount" dynamodbav:"wordCount"`
	CharCount   int    `json:"charCount" dynamodbav:"charCount"`
	Preview     string `json:"preview" dynamodbav:"preview"`
	ProcessedAt string `json:"processedAt" dynamodbav:"processedAt"`
}

// Summary is the structured result returned to the invoking platform.
type Summary struct {
	Message   string `json:"message"`
	FileName  string `json:"fileName,omitempty"`
	LineCount int    `json:"lineCount"`
	WordCount int    `json:"wordCount"`
	CharCount int    `json:"charCount"`
}
