// Package uploads streams applicant resumes to the blob store.
package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// ErrUnsupportedType is returned before any byte is transferred when the
// declared media type is not on the allow-list.
var ErrUnsupportedType = errors.New("unsupported resume file type")

// allowedResumeTypes maps accepted media types to their object extension.
var allowedResumeTypes = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

// chunkSize controls how often upload progress is reported.
const chunkSize = 256 * 1024

// ProgressFunc receives fractional progress as bytes land in the bucket.
type ProgressFunc func(written, total int64)

// ResumeUploader stores a resume and returns its durable retrieval URL.
type ResumeUploader interface {
	Upload(ctx context.Context, contentType string, size int64, r io.Reader, progress ProgressFunc) (string, error)
}

// GCSResumeUploader implements ResumeUploader on a Cloud Storage bucket.
type GCSResumeUploader struct {
	bucket     *storage.BucketHandle
	bucketName string
}

// NewGCSResumeUploader creates an uploader writing into the named bucket.
func NewGCSResumeUploader(client *storage.Client, bucketName string) *GCSResumeUploader {
	return &GCSResumeUploader{
		bucket:     client.Bucket(bucketName),
		bucketName: bucketName,
	}
}

var _ ResumeUploader = (*GCSResumeUploader)(nil)

// ValidateContentType checks the declared media type against the allow-list.
// Callers run this before opening the upload stream.
func ValidateContentType(contentType string) error {
	if _, ok := allowedResumeTypes[contentType]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	return nil
}

// Upload streams the resume into the bucket in chunks, reporting fractional
// progress after each one, and returns the object's durable URL. On failure
// the partial object is never finalized; the caller may retry the upload
// independently of the rest of the form.
func (u *GCSResumeUploader) Upload(ctx context.Context, contentType string, size int64, r io.Reader, progress ProgressFunc) (string, error) {
	if err := ValidateContentType(contentType); err != nil {
		return "", err
	}

	objectName := path.Join("resumes", uuid.NewString()+allowedResumeTypes[contentType])
	writer := u.bucket.Object(objectName).NewWriter(ctx)
	writer.ContentType = contentType

	written, err := copyInChunks(writer, r, size, progress)
	if err != nil {
		_ = writer.Close()
		log.Printf("Resume upload failed for object %s after %d bytes: %v", objectName, written, err)
		return "", fmt.Errorf("failed to write resume to bucket: %w", err)
	}

	if err := writer.Close(); err != nil {
		log.Printf("Error finalizing resume object %s: %v", objectName, err)
		return "", fmt.Errorf("failed to finalize resume upload: %w", err)
	}

	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucketName, objectName)
	log.Printf("Resume uploaded successfully: %s (%d bytes)", url, written)
	return url, nil
}

// copyInChunks moves the stream one chunk at a time, reporting cumulative
// progress after every chunk.
func copyInChunks(w io.Writer, r io.Reader, size int64, progress ProgressFunc) (int64, error) {
	var written int64
	for {
		n, err := io.CopyN(w, r, chunkSize)
		written += n
		if progress != nil && size > 0 {
			progress(written, size)
		}
		if err == io.EOF {
			return written, nil
		}
		if err != nil {
			return written, err
		}
	}
}
