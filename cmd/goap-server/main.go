/*
   Copyright 2021 Joseph Cumines

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command goap-server runs a Director on a cron schedule, exposing
// Prometheus metrics on Director.Update duration and outcome counts. It's the
// always-on counterpart to goap-demo's one-shot "plan" and interactive
// "watch" subcommands.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"goap"
	"goap/internal/domainconfig"
)

var (
	planOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "goap_director_outcomes_total",
		Help: "Director.Update outcomes, labeled by status.",
	}, []string{"status"})
	planDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "goap_director_update_duration_seconds",
		Help:    "Wall-clock time spent in a single Director.Update call.",
		Buckets: prometheus.DefBuckets,
	})
)

func main() {
	var (
		domainPath string
		schedule   string
		listenAddr string
	)
	flag.StringVar(&domainPath, "domain", "", "path to a domain YAML file")
	flag.StringVar(&schedule, "schedule", "@every 1s", "cron schedule for Director.Update ticks")
	flag.StringVar(&listenAddr, "listen", ":9090", "address to serve /metrics on")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	if domainPath == "" {
		log.Fatal().Msg("--domain is required")
	}

	df, err := domainconfig.Load(domainPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load domain file")
	}
	planner := domainconfig.BuildPlanner(df)
	world := domainconfig.BuildWorld(df)
	goals := domainconfig.BuildGoals(df)

	director, err := goap.NewDirector(planner, world, goals)
	if err != nil {
		log.Fatal().Err(err).Msg("new director")
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		start := time.Now()
		status, err := director.Update()
		planDuration.Observe(time.Since(start).Seconds())
		label := statusLabel(status)
		if err != nil {
			label = "error"
		}
		planOutcomes.WithLabelValues(label).Inc()
		log.Info().Str("status", label).Msg("director tick")
	}); err != nil {
		log.Fatal().Err(err).Msg("schedule director tick")
	}
	c.Start()
	defer c.Stop()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: listenAddr, Handler: mux}
	go func() {
		log.Info().Str("addr", listenAddr).Msg("metrics server started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)
	<-signals
	signal.Stop(signals)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = server.Shutdown(shutdownCtx)
}

func statusLabel(status goap.Status) string {
	switch status {
	case goap.Success:
		return "success"
	case goap.Failure:
		return "failure"
	default:
		return "running"
	}
}
