// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	_ "net/http/pprof"

	"github.com/SoftbearStudios/terrainlab/cloud"
	"github.com/SoftbearStudios/terrainlab/config"
	"github.com/SoftbearStudios/terrainlab/preview"
	"golang.org/x/net/netutil"
)

func main() {
	var (
		configFile     string
		mode           string
		port           int
		maxConnections int
		stage          string
		region         string
	)

	flag.StringVar(&configFile, "config", "", "JSON config `file` for the base map")
	flag.StringVar(&mode, "mode", config.ModeVoxel, "base mode if no config file is given")
	flag.IntVar(&port, "port", 8192, "http service port")
	flag.IntVar(&maxConnections, "max-connections", 64, "maximum number of inbound TCP connections")
	flag.StringVar(&stage, "stage", "", "AWS stage whose snapshot index is listed")
	flag.StringVar(&region, "region", "", "AWS region")
	flag.Parse()

	base := config.Default(mode)
	if configFile != "" {
		var err error
		if base, err = config.Load(configFile); err != nil {
			log.Fatal("could not load config: ", err)
		}
	}
	if stage != "" {
		base.Cloud.Stage = stage
	}
	if region != "" {
		base.Cloud.Region = region
	}
	if err := base.Validate(); err != nil {
		log.Fatal("invalid base config: ", err)
	}

	c, err := cloud.New(base.Cloud)
	if err != nil {
		log.Fatal("could not connect to cloud: ", err)
	}
	log.Println("snapshot index:", c)

	server := preview.NewServer(base, c.Database)

	http.Handle("/", server.Handler())

	l, err := net.Listen("tcp", fmt.Sprint(":", port))
	if err != nil {
		log.Fatalf("Listen: %v", err)
	}
	defer l.Close()

	l = netutil.LimitListener(l, maxConnections)

	log.Printf("preview server started on :%d", port)
	log.Fatal("Serve: ", http.Serve(l, nil))
}
