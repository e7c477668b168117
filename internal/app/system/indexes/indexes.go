// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.

The unique index on users.email is load-bearing: idempotent sign-up
relies on the store catching the duplicate-key error rather than doing a
racy read-then-insert.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureDonationRequests(ctx, db); err != nil {
		problems = append(problems, "donation_requests: "+err.Error())
	}
	if err := ensureFunds(ctx, db); err != nil {
		problems = append(problems, "funds: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("users"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "full_name_ci", Value: 1}},
			Options: options.Index().SetName("by_full_name_ci"),
		},
		{
			Keys:    bson.D{{Key: "role", Value: 1}},
			Options: options.Index().SetName("by_role"),
		},
	})
}

func ensureDonationRequests(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("donation_requests"), []mongo.IndexModel{
		// List queries filter by requester/status and always sort newest first.
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_created_desc"),
		},
		{
			Keys:    bson.D{{Key: "requester_email", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_requester_created"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_status_created"),
		},
	})
}

func ensureFunds(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("funds"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_created_desc"),
		},
	})
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameBoolPtr(a, b *bool) bool {
	av := a != nil && *a
	bv := b != nil && *b
	return av == bv
}

// ensureIndexSet reconciles desired indexes against what the collection
// already has: matching key pattern + options is reused, an options
// mismatch (e.g. upgrading to unique) is dropped and recreated, and
// anything missing is created.
func ensureIndexSet(ctx context.Context, coll *mongo.Collection, desired []mongo.IndexModel) error {
	existing := map[string]existingIndex{} // key signature -> index
	cur, err := coll.Indexes().List(ctx)
	if err == nil {
		defer cur.Close(ctx)
		for cur.Next(ctx) {
			var idx existingIndex
			if err := cur.Decode(&idx); err != nil {
				continue
			}
			existing[keySig(idx.Key)] = idx
		}
	}

	var errs []string
	for _, m := range desired {
		var wantUnique *bool
		if m.Options != nil {
			wantUnique = m.Options.Unique
		}
		sig := keySig(m.Keys.(bson.D))

		if ex, ok := existing[sig]; ok {
			if sameBoolPtr(wantUnique, ex.Unique) {
				continue // already in place
			}
			// Options mismatch: drop & recreate.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("drop %s: %v", ex.Name, err))
				continue
			}
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			errs = append(errs, fmt.Sprintf("create %s: %v", sig, err))
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
