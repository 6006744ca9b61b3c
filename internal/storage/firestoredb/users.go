package firestoredb

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"
)

// UserRepo implements storage.UserRepository on the Firestore users collection.
type UserRepo struct {
	client *firestore.Client
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(client *firestore.Client) *UserRepo {
	return &UserRepo{client: client}
}

var _ storage.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) col() *firestore.CollectionRef {
	return r.client.Collection(usersCollection)
}

// GetByID retrieves a single user document by its identity key.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			log.Printf("User not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by ID %s: %v\n", id, err)
		return nil, err
	}
	return snapToUser(snap)
}

// GetByEmail retrieves a single user by email equality query (including the
// password hash, needed for login).
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	iter := r.col().Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		log.Printf("User not found with email: %s\n", email)
		return nil, storage.ErrNotFound
	}
	if err != nil {
		log.Printf("Error getting user by email %s: %v\n", email, err)
		return nil, err
	}
	return snapToUser(snap)
}

// Create stores a new user document with a store-assigned identity key.
// The store enforces no uniqueness, so the duplicate-email check is a
// best-effort query before the write.
func (r *UserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if _, err := r.GetByEmail(ctx, user.Email); err == nil {
		log.Printf("Attempted to create user with duplicate email %s\n", user.Email)
		return nil, storage.ErrDuplicateEmail
	} else if err != storage.ErrNotFound {
		return nil, err
	}

	doc := r.col().NewDoc()
	if _, err := doc.Set(ctx, user); err != nil {
		log.Printf("Error creating user with email %s: %v\n", user.Email, err)
		return nil, err
	}
	user.ID = doc.ID

	log.Printf("User created successfully with ID: %s", user.ID)
	return user, nil
}

// UpdateProfile applies a field-level partial update; untouched fields keep
// their stored values. Last writer wins.
func (r *UserRepo) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	var updates []firestore.Update
	if req.Name != nil {
		updates = append(updates, firestore.Update{Path: "name", Value: *req.Name})
	}
	if req.Location != nil {
		updates = append(updates, firestore.Update{Path: "location", Value: *req.Location})
	}
	if req.Organization != nil {
		updates = append(updates, firestore.Update{Path: "organization", Value: *req.Organization})
	}
	if req.Industry != nil {
		updates = append(updates, firestore.Update{Path: "industry", Value: *req.Industry})
	}
	if req.Website != nil {
		updates = append(updates, firestore.Update{Path: "website", Value: *req.Website})
	}

	if len(updates) > 0 {
		if _, err := r.col().Doc(req.UserID).Update(ctx, updates); err != nil {
			if isNotFound(err) {
				log.Printf("Attempted to update non-existent user %s\n", req.UserID)
				return nil, storage.ErrNotFound
			}
			log.Printf("Error updating user %s: %v\n", req.UserID, err)
			return nil, err
		}
	}

	return r.GetByID(ctx, req.UserID)
}

// ReplaceSkills overwrites the stored skills list with the given one. This is
// a full replacement, not a merge.
func (r *UserRepo) ReplaceSkills(ctx context.Context, userID string, skills []string) (*models.User, error) {
	_, err := r.col().Doc(userID).Update(ctx, []firestore.Update{
		{Path: "skills", Value: skills},
	})
	if err != nil {
		if isNotFound(err) {
			log.Printf("Attempted to replace skills of non-existent user %s\n", userID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error replacing skills for user %s: %v\n", userID, err)
		return nil, err
	}
	return r.GetByID(ctx, userID)
}

// AppendApplication adds a job ID to the user's application list. ArrayUnion
// gives set semantics, so repeated appends never duplicate entries.
func (r *UserRepo) AppendApplication(ctx context.Context, userID, jobID string) error {
	_, err := r.col().Doc(userID).Update(ctx, []firestore.Update{
		{Path: "applications", Value: firestore.ArrayUnion(jobID)},
	})
	if err != nil {
		if isNotFound(err) {
			return storage.ErrNotFound
		}
		log.Printf("Error appending application %s to user %s: %v\n", jobID, userID, err)
		return err
	}
	return nil
}

func snapToUser(snap *firestore.DocumentSnapshot) (*models.User, error) {
	var user models.User
	if err := snap.DataTo(&user); err != nil {
		log.Printf("Error decoding user document %s: %v\n", snap.Ref.ID, err)
		return nil, err
	}
	user.ID = snap.Ref.ID
	return &user, nil
}
