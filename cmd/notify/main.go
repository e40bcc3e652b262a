package main

import (
	"context"
	"flag"
	"log"
	"time"

	"ropboard/internal/catalog"
	"ropboard/internal/config"
	"ropboard/internal/expiry"
	"ropboard/internal/notify"
	"ropboard/internal/shortlist"
)

func main() {
	var (
		source = flag.String("catalog", "", "posting JSON url or path (default ROP_CATALOG)")
		dryRun = flag.Bool("dry-run", false, "print the digest instead of emailing it")
	)
	flag.Parse()

	cfg := config.Load()
	src := *source
	if src == "" {
		src = cfg.CatalogSource
	}

	clock, err := expiry.NewClock(cfg.TimeZone)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	courses, err := catalog.Load(ctx, nil, src)
	if err != nil {
		log.Fatal(err)
	}

	store, err := shortlist.Open(cfg.ShortlistPath())
	if err != nil {
		log.Fatal(err)
	}

	items := notify.BuildDigest(courses, store.Snapshot(), clock.Now())
	if len(items) == 0 {
		log.Printf("no shortlisted postings expiring soon")
		return
	}

	if *dryRun {
		msg, err := notify.RenderDigest(items)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("would send: %s\n\n%s", msg.Subject, msg.Text)
		return
	}

	emailCfg := notify.EmailConfig{
		SMTPServer: cfg.SMTPServer,
		SMTPPort:   cfg.SMTPPort,
		SMTPUser:   cfg.SMTPUser,
		SMTPPass:   cfg.SMTPPass,
		FromEmail:  cfg.FromEmail,
		ToEmail:    cfg.ToEmail,
		Enabled:    true,
	}
	if emailCfg.FromEmail == "" {
		emailCfg.FromEmail = cfg.SMTPUser
	}
	if emailCfg.ToEmail == "" {
		log.Fatal("notify: missing env ROP_TO_EMAIL")
	}

	if err := notify.SendDigest(emailCfg, items); err != nil {
		log.Fatal(err)
	}
}
