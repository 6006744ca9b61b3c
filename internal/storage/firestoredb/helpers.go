package firestoredb

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names in the document store.
const (
	usersCollection        = "users"
	jobsCollection         = "jobs"
	applicationsCollection = "applications"
)

// isNotFound reports whether a Firestore error means the document is missing.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
