package userstore

import (
	"context"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lifelink/internal/app/system/apierr"
	"lifelink/internal/app/system/authz"
	"lifelink/internal/app/system/normalize"
	"lifelink/internal/domain/models"
)

// Store owns the users collection. All user-document mutations in the
// service go through it.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Create inserts a new user after normalizing fields. Sign-up is
// idempotent: when the email already exists the unique index rejects the
// insert and Create reports created=false with no error and no second
// document. This is a single write, not a read-then-insert, so two
// concurrent sign-ups for the same email cannot both create.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, bool, error) {
	u.ID = primitive.NewObjectID()
	u.FullName = normalize.Name(u.FullName)
	u.FullNameCI = text.Fold(u.FullName)
	u.Email = normalize.Email(u.Email)
	u.BloodGroup = normalize.BloodGroup(u.BloodGroup)

	if u.Email == "" {
		return models.User{}, false, apierr.New(apierr.InvalidInput, "email is required")
	}

	// Sign-up never honors caller-supplied privileges.
	u.Role = authz.RoleDonor
	u.Status = authz.StatusActive

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, false, nil
		}
		return models.User{}, false, err
	}
	return u, true, nil
}

// GetByEmail looks up a user by normalized email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apierr.Wrap(apierr.NotFound, "user not found", err)
		}
		return nil, err
	}
	return &u, nil
}

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apierr.Wrap(apierr.NotFound, "user not found", err)
		}
		return nil, err
	}
	return &u, nil
}

// List returns all users, newest first.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// RoleFor resolves a caller's role and status by email. It implements
// authz.Directory; absence comes back as apierr.NotFound so the
// authorization layer can distinguish "no record" from a lookup failure.
func (s *Store) RoleFor(ctx context.Context, email string) (string, string, error) {
	var result struct {
		Role   string `bson:"role"`
		Status string `bson:"status"`
	}

	proj := options.FindOne().SetProjection(bson.M{"role": 1, "status": 1})
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}, proj).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return "", "", apierr.Wrap(apierr.NotFound, "user not found", err)
	}
	if err != nil {
		return "", "", err
	}
	return result.Role, result.Status, nil
}

// profileFields are the only keys a profile update may touch. Email (the
// identity key), role, and status never pass through here.
var profileFields = map[string]bool{
	"full_name":   true,
	"avatar_url":  true,
	"blood_group": true,
	"district":    true,
	"upazila":     true,
}

// UpdateProfile applies a partial profile update to the user owning email.
// Unknown and immutable keys in fields are dropped, not rejected, matching
// the "email field stripped" contract of the profile route.
func (s *Store) UpdateProfile(ctx context.Context, email string, fields map[string]any) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		if !profileFields[k] {
			continue
		}
		set[k] = v
	}
	if name, ok := set["full_name"].(string); ok {
		name = normalize.Name(name)
		set["full_name"] = name
		set["full_name_ci"] = text.Fold(name)
	}
	if bg, ok := set["blood_group"].(string); ok {
		set["blood_group"] = normalize.BloodGroup(bg)
	}
	if len(set) == 1 {
		return apierr.New(apierr.InvalidInput, "no updatable fields supplied")
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"email": normalize.Email(email)}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apierr.New(apierr.NotFound, "user not found")
	}
	return nil
}

// UpdateByID applies an admin field update to an arbitrary user. The
// identity key and document id are stripped so they stay immutable even
// under admin edits, and role/status values must be known ones so a
// typo cannot lock a user out of every role gate.
func (s *Store) UpdateByID(ctx context.Context, id primitive.ObjectID, fields map[string]any) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		if k == "_id" || k == "id" || k == "email" || k == "created_at" {
			continue
		}
		set[k] = v
	}
	if name, ok := set["full_name"].(string); ok {
		name = normalize.Name(name)
		set["full_name"] = name
		set["full_name_ci"] = text.Fold(name)
	}
	if raw, ok := set["role"]; ok {
		role, _ := raw.(string)
		role = normalize.Role(role)
		if !authz.ValidRole(role) {
			return apierr.New(apierr.InvalidInput, `role must be "donor", "volunteer", or "admin"`)
		}
		set["role"] = role
	}
	if raw, ok := set["status"]; ok {
		status, _ := raw.(string)
		status = normalize.Status(status)
		if !authz.ValidStatus(status) {
			return apierr.New(apierr.InvalidInput, `status must be "active" or "blocked"`)
		}
		set["status"] = status
	}
	if len(set) == 1 {
		return apierr.New(apierr.InvalidInput, "no updatable fields supplied")
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apierr.New(apierr.NotFound, "user not found")
	}
	return nil
}

// SetStatus sets a user's status to active or blocked.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	status = normalize.Status(status)
	if !authz.ValidStatus(status) {
		return apierr.New(apierr.InvalidInput, `status must be "active" or "blocked"`)
	}
	return s.setField(ctx, id, "status", status)
}

// SetRole sets a user's role.
func (s *Store) SetRole(ctx context.Context, id primitive.ObjectID, role string) error {
	role = normalize.Role(role)
	if !authz.ValidRole(role) {
		return apierr.New(apierr.InvalidInput, `role must be "donor", "volunteer", or "admin"`)
	}
	return s.setField(ctx, id, "role", role)
}

// PromoteAdminByEmail raises the user with the given email to the admin
// role. Used by the startup bootstrap; a missing user is not an error so
// the admin can sign up after the service first boots.
func (s *Store) PromoteAdminByEmail(ctx context.Context, email string) (bool, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"email": normalize.Email(email)},
		bson.M{"$set": bson.M{"role": authz.RoleAdmin, "updated_at": time.Now().UTC()}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *Store) setField(ctx context.Context, id primitive.ObjectID, key, value string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{key: value, "updated_at": time.Now().UTC()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apierr.New(apierr.NotFound, "user not found")
	}
	return nil
}
