package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"ropboard/internal/catalog"
	"ropboard/internal/config"
	"ropboard/internal/expiry"
	"ropboard/internal/filter"
	"ropboard/internal/render"
	"ropboard/internal/shortlist"
)

func main() {
	var (
		outPath  = flag.String("out", "postings.html", "output html path")
		source   = flag.String("catalog", "", "posting JSON url or path (default ROP_CATALOG)")
		theme    = flag.String("theme", "light", "page theme: light or dark")
		search   = flag.String("search", "", "free-text search over id/title/description")
		dept     = flag.String("department", "", "exact department filter")
		term     = flag.String("term", "", "term filter (e.g. Fall)")
		delivery = flag.String("delivery", "", "delivery method filter")
		active   = flag.Bool("active-only", false, "hide expired postings")
		starred  = flag.Bool("shortlisted-only", false, "show only shortlisted postings")
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

	criteria := filter.Criteria{
		SearchText:      *search,
		Department:      *dept,
		Term:            *term,
		DeliveryMethod:  *delivery,
		ActiveOnly:      *active,
		ShortlistedOnly: *starred,
	}

	now := clock.Now()
	snapshot := store.Snapshot()
	visible := filter.Apply(courses, criteria, snapshot, now)

	page := render.BuildPage(visible, catalog.CollectFacets(courses), snapshot, render.Options{
		Theme: *theme,
		Total: len(courses),
		Now:   now,
	})

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := render.Render(f, page); err != nil {
		log.Fatal(err)
	}

	log.Printf("wrote %s (%d of %d postings shown)", *outPath, len(visible), len(courses))
}
