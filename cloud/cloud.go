// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cloud picks where snapshots and rendered images are stored.
package cloud

import (
	"errors"
	"strings"

	"github.com/SoftbearStudios/terrainlab/cloud/db"
	"github.com/SoftbearStudios/terrainlab/cloud/fs"
)

// Options selects a backend. With an empty Stage, files go to Dir and
// nothing is indexed.
type Options struct {
	Stage  string `json:"stage"`
	Region string `json:"region"`
	Dir    string `json:"dir"`
}

// Cloud pairs a file store with an optional index database.
// A nil Database means offline.
type Cloud struct {
	Options
	Filesystem fs.Filesystem
	Database   db.Database
}

func (cloud *Cloud) String() string {
	var builder strings.Builder
	builder.WriteByte('[')
	if cloud.Stage == "" {
		builder.WriteString("offline ")
		builder.WriteString(cloud.Dir)
	} else {
		builder.WriteString(cloud.Region)
		builder.WriteByte(' ')
		builder.WriteString(cloud.Stage)
	}
	builder.WriteByte(']')
	return builder.String()
}

// Offline stores files under dir.
func Offline(dir string) *Cloud {
	return &Cloud{
		Options:    Options{Dir: dir},
		Filesystem: fs.NewLocalFilesystem(dir),
	}
}

// New returns an offline Cloud unless opts names a stage, in which case
// files go to S3 and snapshots are indexed in DynamoDB.
func New(opts Options) (*Cloud, error) {
	if opts.Stage == "" {
		return Offline(opts.Dir), nil
	}
	if opts.Region == "" {
		return nil, errors.New("missing region")
	}

	session, err := getAWSSession(opts.Region)
	if err != nil {
		return nil, err
	}

	cloud := &Cloud{Options: opts}

	cloud.Filesystem, err = fs.NewS3Filesystem(session, opts.Stage)
	if err != nil {
		return nil, err
	}
	cloud.Database, err = db.NewDynamoDBDatabase(session, opts.Stage)
	if err != nil {
		return nil, err
	}

	return cloud, nil
}
