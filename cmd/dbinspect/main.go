// Package main dumps a CampFinder badger data directory without modifying it.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/campfinder/campfinder-server/internal/id"
	"github.com/campfinder/campfinder-server/internal/store"
)

type household struct {
	id        string
	district  string
	kids      []string
	cells     int
	howto     bool
	malformed []string
}

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dataPath := os.Getenv("DATA_PATH")
		if dataPath == "" {
			dataPath = os.ExpandEnv("$HOME/CampFinder/data")
		}
		dbPath = filepath.Join(dataPath, "badger")
	}

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	byID := map[string]*household{}
	get := func(hh string) *household {
		h := byID[hh]
		if h == nil {
			h = &household{id: hh}
			byID[hh] = h
		}
		return h
	}

	err = db.View(func(txn *badger.Txn) error {
		for _, prefix := range store.Prefixes {
			it := txn.NewIterator(badger.IteratorOptions{Prefix: []byte(prefix)})
			for it.Rewind(); it.Valid(); it.Next() {
				item := it.Item()
				hh := strings.TrimPrefix(string(item.Key()), prefix)
				h := get(hh)

				err := item.Value(func(val []byte) error {
					inspect(h, prefix, val)
					return nil
				})
				if err != nil {
					it.Close()
					return err
				}
			}
			it.Close()
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Error iterating database: %v", err)
	}

	ids := make([]string, 0, len(byID))
	for hh := range byID {
		ids = append(ids, hh)
	}
	slices.Sort(ids)

	fmt.Println("=== Database Inspection ===")
	fmt.Printf("Path: %s\n\n", dbPath)

	onboarded, scheduled, malformed := 0, 0, 0
	for _, hh := range ids {
		h := byID[hh]
		fmt.Printf("Household: %s", h.id)
		if !id.IsHousehold(h.id) {
			fmt.Print(" (non-standard id)")
		}
		fmt.Println()
		if h.district != "" {
			onboarded++
			fmt.Printf("  District: %s\n", h.district)
			fmt.Printf("  Kids: %s\n", strings.Join(h.kids, ", "))
		} else {
			fmt.Println("  No profile")
		}
		if h.cells > 0 {
			scheduled++
			fmt.Printf("  Scheduled cells: %d\n", h.cells)
		}
		fmt.Printf("  How-to seen: %t\n", h.howto)
		for _, m := range h.malformed {
			malformed++
			fmt.Printf("  MALFORMED %s\n", m)
		}
		fmt.Println()
	}

	fmt.Println("=== Summary ===")
	fmt.Printf("Households: %d\n", len(ids))
	fmt.Printf("With profile: %d\n", onboarded)
	fmt.Printf("With schedule: %d\n", scheduled)
	fmt.Printf("Malformed documents: %d\n", malformed)
}

// inspect records one stored document.
func inspect(h *household, prefix string, val []byte) {
	kind := strings.TrimSuffix(prefix, ":")
	switch kind {
	case store.KindProfile:
		p, err := store.DecodeProfile(val)
		if err != nil {
			h.malformed = append(h.malformed, fmt.Sprintf("%s: %v", kind, err))
			return
		}
		h.district = p.District
		for _, k := range p.Kids {
			h.kids = append(h.kids, fmt.Sprintf("%s (%d)", k.Name, k.Age))
		}
	case store.KindSchedule:
		s, err := store.DecodeSchedule(val)
		if err != nil {
			h.malformed = append(h.malformed, fmt.Sprintf("%s: %v", kind, err))
		}
		h.cells = len(s.Wire())
	default:
		h.howto = true
	}
}
