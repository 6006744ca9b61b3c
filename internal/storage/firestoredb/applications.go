package firestoredb

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
)

// ApplicationRepo implements storage.ApplicationRepository on the Firestore
// applications collection.
type ApplicationRepo struct {
	client *firestore.Client
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(client *firestore.Client) *ApplicationRepo {
	return &ApplicationRepo{client: client}
}

var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

func (r *ApplicationRepo) col() *firestore.CollectionRef {
	return r.client.Collection(applicationsCollection)
}

// Create stores a new application record; the store assigns the identifier.
func (r *ApplicationRepo) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	doc := r.col().NewDoc()
	if _, err := doc.Set(ctx, app); err != nil {
		log.Printf("Error creating application for job %s by user %s: %v\n", app.JobID, app.UserID, err)
		return nil, err
	}
	app.ID = doc.ID

	log.Printf("Application created successfully with ID: %s", app.ID)
	return app, nil
}

// GetByID retrieves a single application record.
func (r *ApplicationRepo) GetByID(ctx context.Context, id string) (*models.Application, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			log.Printf("Application not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting application by ID %s: %v\n", id, err)
		return nil, err
	}
	return snapToApplication(snap)
}

// ListByJob returns every application record matching the given job ID.
func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID string) ([]*models.Application, error) {
	return r.list(ctx, "jobId", jobID)
}

// ListByUser returns every application record submitted by the given user.
func (r *ApplicationRepo) ListByUser(ctx context.Context, userID string) ([]*models.Application, error) {
	return r.list(ctx, "userId", userID)
}

func (r *ApplicationRepo) list(ctx context.Context, field, value string) ([]*models.Application, error) {
	iter := r.col().Where(field, "==", value).Documents(ctx)
	defer iter.Stop()

	apps := make([]*models.Application, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Printf("Error listing applications by %s=%s: %v\n", field, value, err)
			return nil, err
		}
		app, err := snapToApplication(snap)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}

// UpdateStatus unconditionally overwrites the stored status. Writing the same
// status twice re-issues the write; the result is the same either way.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
	})
	if err != nil {
		if isNotFound(err) {
			log.Printf("Attempted to update status of non-existent application %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating status for application %s: %v\n", id, err)
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func snapToApplication(snap *firestore.DocumentSnapshot) (*models.Application, error) {
	var app models.Application
	if err := snap.DataTo(&app); err != nil {
		log.Printf("Error decoding application document %s: %v\n", snap.Ref.ID, err)
		return nil, err
	}
	app.ID = snap.Ref.ID
	return &app, nil
}
