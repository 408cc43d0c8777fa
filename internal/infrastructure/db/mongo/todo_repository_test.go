package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestScopedFilter_CombinesIDAndOwner(t *testing.T) {
	oid := primitive.NewObjectID()

	filter, ok := scopedFilter("user-1", oid.Hex())
	if !ok {
		t.Fatalf("expected valid filter")
	}
	if got := filter["_id"]; got != oid {
		t.Fatalf("expected _id %v, got %v", oid, got)
	}
	if got := filter["user_id"]; got != "user-1" {
		t.Fatalf("expected user_id filter, got %v", got)
	}
	if len(filter) != 2 {
		t.Fatalf("filter must contain exactly id and owner, got %v", filter)
	}
}

func TestScopedFilter_InvalidIDNeverMatches(t *testing.T) {
	for _, id := range []string{"", "not-hex", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		if _, ok := scopedFilter("user-1", id); ok {
			t.Fatalf("expected %q to be rejected", id)
		}
	}
}
