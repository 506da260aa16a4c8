// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package fs

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type S3Filesystem struct {
	svc    *s3.S3
	bucket string
}

func NewS3Filesystem(session *session.Session, stage string) (*S3Filesystem, error) {
	s3Filesystem := &S3Filesystem{svc: s3.New(session)}

	s3Filesystem.bucket = "terrainlab-" + stage + "-snapshots"

	return s3Filesystem, nil
}

var s3ContentTypes = map[string]string{
	".json": "application/json",
	".png":  "image/png",
}

func (s3Filesystem *S3Filesystem) WriteFile(filename string, data []byte) error {
	readSeeker := bytes.NewReader(data)

	// Patch S3's limited vocabulary of default content types
	var contentType *string
	for ext, mime := range s3ContentTypes {
		if strings.HasSuffix(filename, ext) {
			contentType = aws.String(mime)
			break
		}
	}

	req, _ := s3Filesystem.svc.PutObjectRequest(&s3.PutObjectInput{
		Bucket:       aws.String(s3Filesystem.bucket),
		Key:          aws.String(filename),
		Body:         readSeeker,
		CacheControl: aws.String("no-transform, public, max-age=60"),
		ContentType:  contentType,
	})
	return req.Send()
}

func (s3Filesystem *S3Filesystem) ReadFile(filename string) ([]byte, error) {
	out, err := s3Filesystem.svc.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(s3Filesystem.bucket),
		Key:    aws.String(filename),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == s3.ErrCodeNoSuchKey {
			return nil, fmt.Errorf("%w: %s", ErrNotExist, filename)
		}
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}
