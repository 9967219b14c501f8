package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github-streak-viewer/internal/config"
	"github-streak-viewer/internal/github"
	"github-streak-viewer/internal/notifier"
	"github-streak-viewer/internal/snapshot"
	"github-streak-viewer/internal/stats"

	"github.com/robfig/cron/v3"
)

// Scheduler refreshes stats snapshots for the configured users on a cron
// schedule.
type Scheduler struct {
	cron      *cron.Cron
	config    *config.Config
	store     *snapshot.Store
	notifiers []notifier.Notifier
}

// NewScheduler creates a new scheduler writing into the given store.
func NewScheduler(cfg *config.Config, store *snapshot.Store) (*Scheduler, error) {
	var notifiers []notifier.Notifier

	if cfg.Notifiers.Webhook.Enabled {
		notifiers = append(notifiers, notifier.NewWebhookNotifier(cfg.Notifiers.Webhook.URL))
	}

	return &Scheduler{
		cron:      cron.New(),
		config:    cfg,
		store:     store,
		notifiers: notifiers,
	}, nil
}

// Start registers one refresh job per configured user and starts the cron
// loop.
func (s *Scheduler) Start() error {
	if !s.config.Scheduler.Enabled {
		log.Println("[Scheduler] disabled")
		return nil
	}

	for _, token := range s.config.GitHub.Tokens {
		if token.Username == "" {
			log.Printf("[Scheduler] skipping token without username")
			continue
		}

		s.verifyToken(token)

		token := token // Capture loop variable
		_, err := s.cron.AddFunc(s.config.Scheduler.Cron, func() {
			s.runScheduledRefresh(token)
		})
		if err != nil {
			return fmt.Errorf("failed to add cron job: %w", err)
		}
		log.Printf("[Scheduler] refresh task added for user: %s", token.Username)
	}

	s.cron.Start()
	log.Printf("[Scheduler] started with cron: %s", s.config.Scheduler.Cron)
	return nil
}

// Stop stops the cron loop.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[Scheduler] stopped")
}

// verifyToken resolves the token's owner so misconfigured pairs surface in
// the logs at startup instead of at the first scheduled run.
func (s *Scheduler) verifyToken(token config.GitHubToken) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	login, err := github.NewClient(token.Token).ValidateToken(ctx)
	if err != nil {
		log.Printf("[Scheduler] token check failed for %s: %v", token.Username, err)
		return
	}
	if login != token.Username {
		log.Printf("[Scheduler] token for %s belongs to %s", token.Username, login)
	}
}

// runScheduledRefresh builds a fresh StatsRecord for one user and stores
// it, announcing the result to any configured notifiers.
func (s *Scheduler) runScheduledRefresh(token config.GitHubToken) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log.Printf("[Scheduler] refreshing stats for user: %s", token.Username)

	client := github.NewGraphQLClient(token.Token, s.config.GitHub.GraphQLURL)
	assembler := stats.NewAssembler(client)

	record, err := assembler.Build(ctx, token.Username, s.config.Stats.IncludePrivate)
	if err != nil {
		log.Printf("[Scheduler] failed to refresh stats for %s: %v", token.Username, err)
		s.notify(ctx, fmt.Sprintf("❌ Stats refresh failed for %s: %v", token.Username, err))
		return
	}

	s.store.Put(record)
	log.Printf("[Scheduler] stats refreshed for %s", token.Username)

	s.notify(ctx, fmt.Sprintf(
		"✅ Stats refreshed for %s: %d contributions, current streak %d days, longest streak %d days",
		record.Login, record.TotalContributions, record.CurrentStreak, record.LongestStreak,
	))
}

func (s *Scheduler) notify(ctx context.Context, message string) {
	for _, n := range s.notifiers {
		if err := n.Send(ctx, message); err != nil {
			log.Printf("[Scheduler] failed to send notification: %v", err)
		}
	}
}
