// Package scheduler refreshes the Redis feed cache on a cron spec so the
// first dashboard hit after a quiet period does not wait on NewsAPI.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/RonaldMark17/TrueBayan/internal/feed"
)

const prewarmTimeout = 60 * time.Second

type Scheduler struct {
	cron  *cron.Cron
	feeds *feed.Service
}

func New(spec string, feeds *feed.Service) (*Scheduler, error) {
	c := cron.New()
	s := &Scheduler{cron: c, feeds: feeds}

	if _, err := c.AddFunc(spec, s.runOnce); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	// Delay the first prewarm so it does not compete with the requests of
	// users who just opened the page.
	const startupDelay = 15 * time.Second
	time.AfterFunc(startupDelay, func() {
		go s.runOnce()
	})
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunOnce exposes a single prewarm pass for manual triggering.
func (s *Scheduler) RunOnce() {
	s.runOnce()
}

func (s *Scheduler) runOnce() {
	log.Println("start feed prewarm...")
	ctx, cancel := context.WithTimeout(context.Background(), prewarmTimeout)
	defer cancel()

	s.feeds.Prewarm(ctx)
	log.Println("feed prewarm done")
}
