package bootstrap

import (
	"testing"

	"github.com/dalemusser/progresshub/internal/testutil"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestValidateConfig_AcceptsGoodConfig(t *testing.T) {
	cfg := AppConfig{
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "progresshub",
	}
	if err := ValidateConfig(nil, cfg, testLogger()); err != nil {
		t.Errorf("ValidateConfig: unexpected error: %v", err)
	}
}

func TestValidateConfig_RejectsBadURI(t *testing.T) {
	cfg := AppConfig{
		MongoURI:      "http://not-a-mongo-uri",
		MongoDatabase: "progresshub",
	}
	if err := ValidateConfig(nil, cfg, testLogger()); err == nil {
		t.Error("ValidateConfig: expected error for non-mongodb URI")
	}
}

func TestValidateConfig_RejectsEmptyDatabase(t *testing.T) {
	cfg := AppConfig{
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "",
	}
	if err := ValidateConfig(nil, cfg, testLogger()); err == nil {
		t.Error("ValidateConfig: expected error for empty database name")
	}
}

func TestEnsureSchema_CreatesIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoDatabase: db}

	if err := EnsureSchema(ctx, nil, AppConfig{}, deps, testLogger()); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	// Running it again must be a no-op, not a conflict.
	if err := EnsureSchema(ctx, nil, AppConfig{}, deps, testLogger()); err != nil {
		t.Fatalf("EnsureSchema second run failed: %v", err)
	}

	cur, err := db.Collection("learners").Indexes().List(ctx)
	if err != nil {
		t.Fatalf("list indexes: %v", err)
	}
	defer cur.Close(ctx)

	found := false
	for cur.Next(ctx) {
		var idx struct {
			Name string `bson:"name"`
		}
		if err := cur.Decode(&idx); err != nil {
			t.Fatalf("decode index: %v", err)
		}
		if idx.Name == "uniq_email" {
			found = true
		}
	}
	if !found {
		t.Error("expected uniq_email index on learners")
	}
}
