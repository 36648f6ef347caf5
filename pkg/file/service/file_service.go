package service

import "context"

// FileService runs the upload and summarization flows over a spooled
// upload file. Both methods remove the file at path on every exit path.
type FileService interface {
	Upload(path, mediaType string) error
	Summarize(ctx context.Context, path, mediaType, fileName string) (string, error)
}
