// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package preview serves rendered maps over HTTP and a websocket, so
// parameters can be tweaked and the result looked at from a browser.
package preview

import (
	"errors"
	"log"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/SoftbearStudios/terrainlab/cloud/db"
	"github.com/SoftbearStudios/terrainlab/config"
	"github.com/SoftbearStudios/terrainlab/pipeline"
	"github.com/SoftbearStudios/terrainlab/snapshot"
	"github.com/SoftbearStudios/terrainlab/terrain/render"
)

// Server renders maps derived from a base config.
type Server struct {
	base     *config.Config
	index    db.Database // nil if snapshots aren't indexed
	requests uint64      // atomic

	// Last result, since moving through voxel levels reuses it.
	mutex  sync.Mutex
	cached *pipeline.Result
}

// NewServer creates a Server. index may be nil.
func NewServer(base *config.Config, index db.Database) *Server {
	return &Server{base: base, index: index}
}

// result runs the pipeline for cfg unless it matches the cached run.
func (s *Server) result(cfg *config.Config) (*pipeline.Result, error) {
	atomic.AddUint64(&s.requests, 1)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.cached != nil && *s.cached.Config == *cfg {
		return s.cached, nil
	}

	result, err := pipeline.Run(cfg)
	if err != nil {
		return nil, err
	}
	s.cached = result
	return result, nil
}

// Frame handles one request, reporting failures inside the frame.
func (s *Server) Frame(r *Request) Frame {
	cfg, err := r.apply(s.base)
	if err != nil {
		return Frame{Z: r.Z, Error: err.Error()}
	}

	result, err := s.result(cfg)
	if err != nil {
		return Frame{Mode: cfg.Mode, Z: r.Z, Error: err.Error()}
	}

	frame := Frame{Mode: cfg.Mode, Z: r.Z}
	frame.Min, frame.Max = result.Grid.Bounds()

	if result.Voxels != nil {
		frame.Depth = result.Voxels.Depth
		for _, occupied := range result.Voxels.Slice(r.Z) {
			if occupied {
				frame.Occupied++
			}
		}
	}

	img, err := result.Image(result.Context(), r.Z)
	if err != nil {
		frame.Error = err.Error()
		return frame
	}
	if frame.PNG, err = render.EncodePNG(render.Thumbnail(img, r.Thumb)); err != nil {
		frame.Error = err.Error()
	}
	return frame
}

func (s *Server) ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")

	buf, err := json.Marshal(struct {
		Config   *config.Config `json:"config"`
		Requests uint64         `json:"requests"`
	}{
		Config:   s.base,
		Requests: atomic.LoadUint64(&s.requests),
	})
	if err != nil {
		log.Println("error marshaling status:", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	_, _ = w.Write(buf)
}

// ServeImage renders a PNG. Query values override the base config.
func (s *Server) ServeImage(w http.ResponseWriter, r *http.Request) {
	request, err := parseQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	frame := s.Frame(request)
	if frame.Error != "" {
		http.Error(w, frame.Error, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(frame.PNG)
}

// ServeSnapshots lists indexed snapshots, optionally filtered by ?mode=.
func (s *Server) ServeSnapshots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	snapshots, err := snapshot.List(s.index, r.URL.Query().Get("mode"))
	if err != nil {
		if errors.Is(err, snapshot.ErrNoIndex) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Println("error listing snapshots:", err)
		http.Error(w, "could not list snapshots", http.StatusInternalServerError)
		return
	}
	if snapshots == nil {
		snapshots = []db.Snapshot{}
	}

	buf, err := json.Marshal(snapshots)
	if err != nil {
		log.Println("error marshaling snapshots:", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf)
}

func (s *Server) ServeSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade error", err)
		return
	}

	NewSocket(conn, s).Start()
}

// Handler routes every endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.ServeIndex)
	mux.HandleFunc("/map.png", s.ServeImage)
	mux.HandleFunc("/snapshots", s.ServeSnapshots)
	mux.HandleFunc("/ws", s.ServeSocket)
	return mux
}
