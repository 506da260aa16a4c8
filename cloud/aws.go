// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package cloud

import (
	"fmt"
	"os"
	"os/user"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
)

const AWSProfile = "terrainlab"

// getAWSSession prefers the terrainlab profile of the shared credentials
// file, and otherwise falls back to the default credential chain.
func getAWSSession(region string) (*session.Session, error) {
	config := aws.NewConfig().WithRegion(region)

	usr, osErr := user.Current()
	if osErr == nil {
		path := fmt.Sprintf("%s/.aws/credentials", usr.HomeDir)
		if _, statErr := os.Stat(path); statErr == nil {
			config = config.WithCredentials(credentials.NewSharedCredentials(path, AWSProfile))
		}
	}

	return session.NewSession(config)
}
