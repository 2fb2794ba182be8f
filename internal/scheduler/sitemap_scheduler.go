package scheduler

import (
	"github.com/coimpres/coimpres-backend/internal/app/service"
	"github.com/coimpres/coimpres-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// SitemapScheduler regenerates the cached sitemap on a cron schedule so
// search engines see catalog changes without a deploy.
type SitemapScheduler struct {
	cron           *cron.Cron
	sitemapService service.SitemapService
	schedule       string
}

func NewSitemapScheduler(sitemapService service.SitemapService, schedule string) *SitemapScheduler {
	return &SitemapScheduler{
		cron:           cron.New(),
		sitemapService: sitemapService,
		schedule:       schedule,
	}
}

func (s *SitemapScheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		logger.Info("Starting scheduled sitemap refresh", nil)

		if err := s.sitemapService.Refresh(); err != nil {
			logger.Error("Scheduled sitemap refresh failed", err)
			return
		}

		logger.Info("Scheduled sitemap refresh completed", nil)
	})
	if err != nil {
		logger.Error("Failed to register sitemap cron job", err, map[string]interface{}{
			"schedule": s.schedule,
		})
		return err
	}

	s.cron.Start()
	logger.Info("Sitemap scheduler started", map[string]interface{}{
		"schedule": s.schedule,
	})
	return nil
}

func (s *SitemapScheduler) Stop() {
	s.cron.Stop()
	logger.Info("Sitemap scheduler stopped", nil)
}
