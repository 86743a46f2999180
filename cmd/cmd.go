// Copyright 2023 The CubeFS Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strconv"

	"github.com/cubefs/cubefs/blobstore/common/config"
	"github.com/cubefs/cubefs/blobstore/util/errors"
	"github.com/cubefs/cubefs/blobstore/util/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cubefs/ringsplit/metrics"
	"github.com/cubefs/ringsplit/planner"
)

// Config service config
type Config struct {
	planner.Config

	AdminBindPort uint32    `json:"admin_bind_port"`
	LogLevel      log.Level `json:"log_level"`
}

func main() {
	config.Init("f", "", "plan.json")

	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		log.Fatal(errors.Detail(err))
	}
	log.SetOutputLevel(cfg.LogLevel)

	if cfg.AdminBindPort != 0 {
		serveAdmin(cfg.AdminBindPort)
	}

	p, err := planner.NewPlanner(&cfg.Config)
	if err != nil {
		log.Fatal(errors.Detail(err))
	}

	splits, err := p.Plan(context.Background())
	if err != nil {
		log.Fatal(errors.Detail(err))
	}

	enc := json.NewEncoder(os.Stdout)
	for _, split := range splits {
		if err := enc.Encode(split); err != nil {
			log.Fatalf("encode split failed: %s", err)
		}
	}
	log.Infof("planned %d splits for keyspace %s table %s", len(splits), cfg.Keyspace, cfg.Table)
}

func serveAdmin(port uint32) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	go func() {
		if err := http.ListenAndServe(":"+strconv.Itoa(int(port)), mux); err != nil {
			log.Errorf("admin server stopped: %s", err)
		}
	}()
}
