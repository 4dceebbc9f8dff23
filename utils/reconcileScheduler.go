package utils

import (
	"log"

	"github.com/robfig/cron/v3"

	"courseloc/config"
	"courseloc/store"
)

// InitializeReconcileScheduler starts the periodic supported_langs repair.
// Every course whose locale rows carry a language missing from its
// supported_langs array gets that language appended. The job never prunes:
// the array is monotonic by design.
func InitializeReconcileScheduler(s *store.Store) *cron.Cron {
	c := cron.New()

	spec := config.AppConfig.ReconcileCron
	_, err := c.AddFunc(spec, func() {
		repaired, err := s.ReconcileSupportedLangs()
		if err != nil {
			log.Printf("supported_langs reconcile failed: %v", err)
			return
		}
		if repaired > 0 {
			log.Printf("supported_langs reconcile repaired %d course(s)", repaired)
		}
	})
	if err != nil {
		log.Printf("Failed to schedule supported_langs reconcile (%q): %v", spec, err)
		return c
	}

	c.Start()
	log.Printf("Supported-langs reconcile scheduled: %s", spec)
	return c
}
