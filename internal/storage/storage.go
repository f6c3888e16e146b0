// Package storage persists running scores and finished game records in a
// badger database.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"

	"github.com/lgbarn/tilechess-go/internal/game"
)

// Key prefixes
const (
	prefixScore = "score/"
	prefixGame  = "game/"
)

// Store wraps BadgerDB for persistent storage.
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) the database in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", dir, err)
	}
	logrus.WithField("dir", dir).Debug("store opened")
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// scoreKey identifies an ordered pair of players. Names are stored
// upper-case, as sessions display them.
func scoreKey(white, black string) []byte {
	return []byte(prefixScore + strings.ToUpper(white) + "/" + strings.ToUpper(black))
}

// gameKey sorts records by finish time.
func gameKey(r game.Result) []byte {
	return []byte(fmt.Sprintf("%s%020d/%s", prefixGame, r.FinishedAt.UnixNano(), r.GameID))
}

// LoadScore returns the score between white and black, zero if none is stored.
func (s *Store) LoadScore(white, black string) (game.Score, error) {
	var score game.Score

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(scoreKey(white, black))
		if err == badger.ErrKeyNotFound {
			return nil // Use zero score
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &score)
		})
	})

	return score, err
}

// SaveScore stores the score between white and black.
func (s *Store) SaveScore(white, black string, score game.Score) error {
	data, err := json.Marshal(score)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(scoreKey(white, black), data)
	})
}

// RecordGame stores a finished game together with the updated score in one
// transaction.
func (s *Store) RecordGame(r game.Result, score game.Score) error {
	result, err := json.Marshal(r)
	if err != nil {
		return err
	}
	scores, err := json.Marshal(score)
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(gameKey(r), result); err != nil {
			return err
		}
		return txn.Set(scoreKey(r.White, r.Black), scores)
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"game":   r.GameID,
		"ending": r.Ending,
	}).Debug("game recorded")
	return nil
}

// ListGames returns stored game records, most recent first. limit <= 0
// returns all of them.
func (s *Store) ListGames(limit int) ([]game.Result, error) {
	var results []game.Result

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		// Reverse iteration seeks to the last key at or below the seek key.
		seek := append([]byte(prefixGame), 0xff)
		prefix := []byte(prefixGame)
		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(results) >= limit {
				break
			}
			var r game.Result
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			}); err != nil {
				return err
			}
			results = append(results, r)
		}
		return nil
	})

	return results, err
}
