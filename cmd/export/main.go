package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"ropboard/internal/catalog"
	"ropboard/internal/config"
	"ropboard/internal/expiry"
	"ropboard/internal/export"
	"ropboard/internal/filter"
	"ropboard/internal/sftpclient"
	"ropboard/internal/shortlist"
)

func main() {
	var (
		outPath    = flag.String("out", "shortlist.csv", "output csv path")
		source     = flag.String("catalog", "", "posting JSON url or path (default ROP_CATALOG)")
		xlsxPath   = flag.String("xlsx", "", "also write an xlsx workbook to this path")
		uploadSFTP = flag.Bool("sftp", false, "upload the generated file(s) via SFTP")
	)
	flag.Parse()

	cfg := config.Load()
	src := *source
	if src == "" {
		src = cfg.CatalogSource
	}

	rootCtx, rootCancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer rootCancel()

	courses, err := catalog.Load(rootCtx, nil, src)
	if err != nil {
		log.Fatal(err)
	}

	store, err := shortlist.Open(cfg.ShortlistPath())
	if err != nil {
		log.Fatal(err)
	}

	clock, err := expiry.NewClock(cfg.TimeZone)
	if err != nil {
		log.Fatal(err)
	}

	// The export always covers the full shortlist, active or not.
	selected := filter.Apply(courses, filter.Criteria{ShortlistedOnly: true}, store.Snapshot(), clock.Now())

	if dir := filepath.Dir(*outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal(err)
		}
	}

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := export.WriteShortlistCSV(f, selected); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d shortlisted postings to %s", len(selected), *outPath)

	outputs := []string{*outPath}

	if *xlsxPath != "" {
		if err := export.WriteShortlistXLSX(*xlsxPath, selected); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote workbook %s", *xlsxPath)
		outputs = append(outputs, *xlsxPath)
	}

	if *uploadSFTP {
		upCfg := sftpclient.Config{
			Host:                  cfg.SFTPHost,
			Port:                  cfg.SFTPPort,
			User:                  cfg.SFTPUser,
			Pass:                  cfg.SFTPPass,
			RemoteDir:             cfg.SFTPDir,
			InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
		}

		for _, local := range outputs {
			remoteName := filepath.Base(local)

			upCtx, upCancel := context.WithTimeout(rootCtx, 5*time.Minute)
			err := sftpclient.UploadFile(upCtx, upCfg, local, remoteName)
			upCancel()
			if err != nil {
				log.Fatal(err)
			}
			log.Printf("uploaded to sftp://%s:%d%s/%s", upCfg.Host, upCfg.Port, upCfg.RemoteDir, remoteName)
		}
	}
}
