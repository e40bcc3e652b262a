package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"ropboard/internal/config"
	"ropboard/internal/shortlist"
)

func main() {
	var (
		toggle = flag.String("toggle", "", "posting id to add/remove")
		list   = flag.Bool("list", false, "print the current shortlist")
		clear  = flag.Bool("clear", false, "empty the shortlist")
	)
	flag.Parse()

	if *toggle == "" && !*list && !*clear {
		fmt.Fprintln(os.Stderr, "usage: shortlist -toggle <id> | -list | -clear")
		os.Exit(1)
	}

	cfg := config.Load()
	store, err := shortlist.Open(cfg.ShortlistPath())
	if err != nil {
		log.Fatal(err)
	}

	if *toggle != "" {
		on, err := store.Toggle(*toggle)
		if err != nil {
			log.Fatal(err)
		}
		if on {
			log.Printf("added %s (shortlist now has %d)", *toggle, store.Len())
		} else {
			log.Printf("removed %s (shortlist now has %d)", *toggle, store.Len())
		}
	}

	if *clear {
		if err := store.Clear(); err != nil {
			log.Fatal(err)
		}
		log.Printf("shortlist cleared")
	}

	if *list {
		ids := store.IDs()
		if len(ids) == 0 {
			fmt.Println("(shortlist is empty)")
			return
		}
		for _, id := range ids {
			fmt.Println(id)
		}
	}
}
