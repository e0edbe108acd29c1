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

// Command goap-demo loads a YAML domain declaration and either computes a
// single plan for its highest-priority goal ("plan") or drives a live
// terminal view of a Director ticking against it ("watch").
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"goap"
	"goap/internal/domainconfig"
	"goap/visualize"
)

var log zerolog.Logger

func main() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	root := &cobra.Command{
		Use:   "goap-demo",
		Short: "plan and watch goal-oriented action plans from a YAML domain file",
	}

	var domainPath string
	root.PersistentFlags().StringVar(&domainPath, "domain", "", "path to a domain YAML file")
	root.MarkPersistentFlagRequired("domain")

	root.AddCommand(newPlanCommand(&domainPath))
	root.AddCommand(newWatchCommand(&domainPath))

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newPlanCommand(domainPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "compute and print a plan for the highest-relevance goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := domainconfig.Load(*domainPath)
			if err != nil {
				return err
			}
			planner := domainconfig.BuildPlanner(df)
			world := domainconfig.BuildWorld(df)
			goals := domainconfig.BuildGoals(df)

			director, err := goap.NewDirector(planner, world, goals)
			if err != nil {
				return fmt.Errorf("new director: %w", err)
			}
			plan, err := director.FindBestPlan()
			if err != nil {
				return fmt.Errorf("find best plan: %w", err)
			}
			plan.SetTag(uuid.NewString())
			log.Info().Str("plan_id", plan.Tag()).Msg("plan computed")
			fmt.Println(visualize.Tree(plan))
			return nil
		},
	}
}

func newWatchCommand(domainPath *string) *cobra.Command {
	var tickEvery time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "run a Director in a live terminal view until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := domainconfig.Load(*domainPath)
			if err != nil {
				return err
			}
			planner := domainconfig.BuildPlanner(df)
			world := domainconfig.BuildWorld(df)
			goals := domainconfig.BuildGoals(df)

			director, err := goap.NewDirector(planner, world, goals)
			if err != nil {
				return fmt.Errorf("new director: %w", err)
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			signals := make(chan os.Signal, 1)
			signal.Notify(signals, os.Interrupt)
			defer signal.Stop(signals)
			go func() {
				select {
				case <-ctx.Done():
				case <-signals:
					cancel()
				}
			}()

			log.Info().Dur("tick_every", tickEvery).Msg("watch started")
			return visualize.RenderTUI(ctx, director, tickEvery)
		},
	}
	cmd.Flags().DurationVar(&tickEvery, "tick-every", 200*time.Millisecond, "Director tick interval")
	return cmd
}
