// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

import (
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/guregu/dynamo"
)

type DynamoDBDatabase struct {
	svc            *dynamodb.DynamoDB
	db             *dynamo.DB
	snapshotsTable dynamo.Table
}

func NewDynamoDBDatabase(session *session.Session, stage string) (*DynamoDBDatabase, error) {
	ddb := &DynamoDBDatabase{svc: dynamodb.New(session)}
	ddb.db = dynamo.NewFromIface(ddb.svc)
	ddb.snapshotsTable = ddb.db.Table("terrainlab-" + stage + "-snapshots")
	return ddb, nil
}

func (ddb *DynamoDBDatabase) PutSnapshot(snapshot Snapshot) error {
	err := ddb.snapshotsTable.Put(snapshot).If("attribute_not_exists(id)").Run()
	if err != nil {
		if _, ok := err.(*dynamodb.ConditionalCheckFailedException); ok {
			// Already indexed
			return nil
		}
	}
	return err
}

func (ddb *DynamoDBDatabase) ReadSnapshots() (snapshots []Snapshot, err error) {
	err = ddb.snapshotsTable.Scan().All(&snapshots)
	return
}

func (ddb *DynamoDBDatabase) ReadSnapshotsByMode(mode string) (snapshots []Snapshot, err error) {
	query := ddb.snapshotsTable.Get("mode", mode).Iter()

	for {
		var snapshot Snapshot
		ok := query.Next(&snapshot)
		if !ok {
			err = query.Err()
			return
		}
		snapshots = append(snapshots, snapshot)
	}
}
