// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

// Snapshot indexes a snapshot file stored elsewhere.
type Snapshot struct {
	Mode    string  `dynamo:"mode" json:"mode"`
	ID      string  `dynamo:"id" json:"id"`
	Label   string  `dynamo:"label,omitempty" json:"label,omitempty"`
	File    string  `dynamo:"file" json:"file"`
	Seed    int64   `dynamo:"seed" json:"seed"`
	Width   int     `dynamo:"width" json:"width"`
	Height  int     `dynamo:"height" json:"height"`
	Depth   int     `dynamo:"depth,omitempty" json:"depth,omitempty"`
	Zoom    float64 `dynamo:"zoom,omitempty" json:"zoom,omitempty"`
	Octaves int     `dynamo:"octaves,omitempty" json:"octaves,omitempty"`
	Created int64   `dynamo:"created" json:"created"`
	// TTL is the unix time after which DynamoDB may expire the entry.
	TTL int64 `dynamo:"ttl,omitempty" json:"ttl,omitempty"`
}
