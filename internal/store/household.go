package store

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

var howtoSeenValue = []byte("1")

// HowtoSeen reports whether the household dismissed the how-to banner.
func (s *Badger) HowtoSeen(ctx context.Context, householdID string) (_ bool, err error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := CheckHousehold(householdID); err != nil {
		return false, err
	}
	defer s.observe("get_howto", time.Now(), &err)

	_, ok, err := s.get(howtoPrefix, householdID)
	return ok, err
}

// MarkHowtoSeen sets or clears the how-to flag.
func (s *Badger) MarkHowtoSeen(ctx context.Context, householdID string, seen bool) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := CheckHousehold(householdID); err != nil {
		return err
	}
	defer s.observe("set_howto", time.Now(), &err)

	if !seen {
		return s.delete(howtoPrefix, householdID)
	}
	return s.set(howtoPrefix, householdID, howtoSeenValue)
}

// DeleteHousehold removes every document of a household in one transaction.
func (s *Badger) DeleteHousehold(ctx context.Context, householdID string) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := CheckHousehold(householdID); err != nil {
		return err
	}
	defer s.observe("delete_household", time.Now(), &err)

	return s.db.Update(func(txn *badger.Txn) error {
		for _, prefix := range Prefixes {
			if err := txn.Delete([]byte(prefix + householdID)); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListHouseholds returns every household with at least one stored document,
// sorted by id.
func (s *Badger) ListHouseholds(ctx context.Context) (_ []Household, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer s.observe("list_households", time.Now(), &err)

	byID := map[string]*Household{}
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for _, prefix := range Prefixes {
			p := []byte(prefix)
			for it.Seek(p); it.ValidForPrefix(p); it.Next() {
				if err := ctx.Err(); err != nil {
					return err
				}
				item := it.Item()
				_, id, ok := splitKey(string(item.Key()))
				if !ok {
					continue
				}
				h := byID[id]
				if h == nil {
					h = &Household{ID: id}
					byID[id] = h
				}
				size := int(item.ValueSize())
				switch prefix {
				case profilePrefix:
					h.ProfileBytes = size
				case schedulePrefix:
					h.ScheduleBytes = size
				case howtoPrefix:
					h.HowtoSeen = true
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]Household, 0, len(byID))
	for _, h := range byID {
		out = append(out, *h)
	}
	slices.SortFunc(out, func(a, b Household) int { return strings.Compare(a.ID, b.ID) })
	return out, nil
}
