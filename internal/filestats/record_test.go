package filestats_test

import (
	"testing"

	"github.com/GeoNet/filestats/internal/filestats"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// The stats table is provisioned with fileName (string) as its sole key and
// numeric count attributes, so the marshaled attribute names and types are
// part of the storage contract.
func TestRecordMarshal(t *testing.T) {
	r := filestats.Record{
		FileName:    "notes.txt",
		LineCount:   3,
		WordCount:   4,
		CharCount:   20,
		Preview:     "hello world\nfoo bar\n",
		ProcessedAt: "2025-11-03T21:04:05Z",
	}

	av, err := attributevalue.MarshalMap(r)
	if err != nil {
		t.Fatal(err)
	}

	s, ok := av["fileName"].(*types.AttributeValueMemberS)
	if !ok {
		t.Fatalf("expected fileName to marshal as S got %T", av["fileName"])
	}
	if s.Value != "notes.txt" {
		t.Errorf("expected notes.txt got %s", s.Value)
	}

	for name, expected := range map[string]string{
		"lineCount": "3",
		"wordCount": "4",
		"charCount": "20",
	} {
		n, ok := av[name].(*types.AttributeValueMemberN)
		if !ok {
			t.Errorf("expected %s to marshal as N got %T", name, av[name])
			continue
		}
		if n.Value != expected {
			t.Errorf("expected %s %s got %s", name, expected, n.Value)
		}
	}

	if _, ok := av["preview"].(*types.AttributeValueMemberS); !ok {
		t.Errorf("expected preview to marshal as S got %T", av["preview"])
	}

	if _, ok := av["processedAt"].(*types.AttributeValueMemberS); !ok {
		t.Errorf("expected processedAt to marshal as S got %T", av["processedAt"])
	}
}
