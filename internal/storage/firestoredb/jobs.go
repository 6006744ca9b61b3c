package firestoredb

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
)

// JobRepo implements storage.JobRepository on the Firestore jobs collection.
type JobRepo struct {
	client *firestore.Client
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(client *firestore.Client) *JobRepo {
	return &JobRepo{client: client}
}

var _ storage.JobRepository = (*JobRepo)(nil)

func (r *JobRepo) col() *firestore.CollectionRef {
	return r.client.Collection(jobsCollection)
}

// Create stores a new job posting; the store assigns the identifier.
func (r *JobRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	doc := r.col().NewDoc()
	if _, err := doc.Set(ctx, job); err != nil {
		log.Printf("Error creating job %q: %v\n", job.Title, err)
		return nil, err
	}
	job.ID = doc.ID

	log.Printf("Job created successfully with ID: %s", job.ID)
	return job, nil
}

// GetByID retrieves a single job document.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			log.Printf("Job not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting job by ID %s: %v\n", id, err)
		return nil, err
	}
	return snapToJob(snap)
}

// List returns every job document, optionally filtered by poster. The caller
// receives the full result set each call.
func (r *JobRepo) List(ctx context.Context, postedBy string) ([]*models.Job, error) {
	q := r.col().Query
	if postedBy != "" {
		q = q.Where("postedBy", "==", postedBy)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	jobs := make([]*models.Job, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Printf("Error listing jobs: %v\n", err)
			return nil, err
		}
		job, err := snapToJob(snap)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// Delete removes a job document. Applications referencing the job are left in
// place and become orphaned.
func (r *JobRepo) Delete(ctx context.Context, id string) error {
	// Firestore deletes are no-ops on missing documents, so existence is
	// checked first to keep NotFound semantics.
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		log.Printf("Error deleting job %s: %v\n", id, err)
		return err
	}
	return nil
}

// AppendApplicant adds a user ID to the job's applicant list. ArrayUnion gives
// set semantics, so repeated appends never duplicate entries.
func (r *JobRepo) AppendApplicant(ctx context.Context, jobID, userID string) error {
	_, err := r.col().Doc(jobID).Update(ctx, []firestore.Update{
		{Path: "applicants", Value: firestore.ArrayUnion(userID)},
	})
	if err != nil {
		if isNotFound(err) {
			return storage.ErrNotFound
		}
		log.Printf("Error appending applicant %s to job %s: %v\n", userID, jobID, err)
		return err
	}
	return nil
}

func snapToJob(snap *firestore.DocumentSnapshot) (*models.Job, error) {
	var job models.Job
	if err := snap.DataTo(&job); err != nil {
		log.Printf("Error decoding job document %s: %v\n", snap.Ref.ID, err)
		return nil, err
	}
	job.ID = snap.Ref.ID
	return &job, nil
}
