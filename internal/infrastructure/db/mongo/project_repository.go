package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskforge/projecthub/internal/core/domain"
	"github.com/taskforge/projecthub/internal/core/ports"
)

const projectsCollection = "projects"

// ProjectRepository persists projects in MongoDB. The membership set lives
// on the project document itself, so replacing it is a single atomic write.
type ProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection(projectsCollection)}
}

type mongoProject struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	CreatedBy   string             `bson:"created_by"`
	AssignedTo  []string           `bson:"assigned_to"`
	IsDeleted   bool               `bson:"is_deleted"`
	DeletedAt   *time.Time         `bson:"deleted_at,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (mp *mongoProject) toDomain() *domain.Project {
	p := &domain.Project{
		ID:          mp.ID.Hex(),
		Name:        mp.Name,
		Description: mp.Description,
		CreatedBy:   mp.CreatedBy,
		AssignedTo:  mp.AssignedTo,
		IsDeleted:   mp.IsDeleted,
		CreatedAt:   mp.CreatedAt.UTC(),
		UpdatedAt:   mp.UpdatedAt.UTC(),
	}
	if mp.DeletedAt != nil {
		t := mp.DeletedAt.UTC()
		p.DeletedAt = &t
	}
	return p
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	doc := mongoProject{
		Name:        project.Name,
		Description: project.Description,
		CreatedBy:   project.CreatedBy,
		AssignedTo:  project.AssignedTo,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrProjectExists
		}
		return nil, fmt.Errorf("insert project: %w", err)
	}

	created := *project
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ProjectRepository) FindActiveByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	var mp mongoProject
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid, "is_deleted": false}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *ProjectRepository) ListActive(ctx context.Context) ([]*domain.Project, error) {
	cur, err := r.coll.Find(ctx, bson.M{"is_deleted": false})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cur.Close(ctx)

	var projects []*domain.Project
	for cur.Next(ctx) {
		var mp mongoProject
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		projects = append(projects, mp.toDomain())
	}
	return projects, cur.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, id string, upd ports.ProjectUpdate) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.AssignedTo != nil {
		set["assigned_to"] = *upd.AssignedTo
	}

	return r.findAndUpdate(ctx, bson.M{"_id": oid, "is_deleted": false}, bson.M{"$set": set})
}

// SoftDelete sets both lifecycle fields in one write so is_deleted and
// deleted_at can never disagree.
func (r *ProjectRepository) SoftDelete(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	now := time.Now().UTC()
	return r.findAndUpdate(ctx, bson.M{"_id": oid, "is_deleted": false}, bson.M{"$set": bson.M{
		"is_deleted": true,
		"deleted_at": now,
		"updated_at": now,
	}})
}

func (r *ProjectRepository) Restore(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	return r.findAndUpdate(ctx, bson.M{"_id": oid, "is_deleted": true}, bson.M{
		"$set":   bson.M{"is_deleted": false, "updated_at": time.Now().UTC()},
		"$unset": bson.M{"deleted_at": ""},
	})
}

// PermanentDelete purges a project document. The filter requires the
// document to be soft-deleted already; purging an active project reports
// not-found.
func (r *ProjectRepository) PermanentDelete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "is_deleted": true})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) findAndUpdate(ctx context.Context, filter, update bson.M) (*domain.Project, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mp mongoProject
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&mp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrProjectExists
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	return mp.toDomain(), nil
}

// EnsureIndexes creates the unique name constraint, scoped to active
// documents so a soft-deleted project releases its name.
func (r *ProjectRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "name", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "is_deleted", Value: false}}),
		},
		{Keys: bson.D{{Key: "assigned_to", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
