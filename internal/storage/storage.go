package storage

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/keshon/datastore"
)

const commandHistoryLimit = 20

// Storage keeps per-chat operational data (command usage history) on top of
// a JSON-file datastore. Parse results never land here; this is bookkeeping
// for the hosting bot.
type Storage struct {
	ds *datastore.DataStore
}

// Record is everything stored for one chat.
type Record struct {
	CommandHistory []CommandRecord `json:"cmd_history"`
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

func (s *Storage) getOrCreateChatRecord(chatID int64) (*Record, error) {
	key := strconv.FormatInt(chatID, 10)

	data, exists := s.ds.Get(key)
	if !exists {
		newRecord := &Record{CommandHistory: []CommandRecord{}}
		s.ds.Add(key, newRecord)
		return newRecord, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling data: %w", err)
	}

	var record Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshalling to *Record: %w", err)
	}

	if len(record.CommandHistory) > commandHistoryLimit {
		record.CommandHistory = record.CommandHistory[len(record.CommandHistory)-commandHistoryLimit:]
	}

	return &record, nil
}

func (s *Storage) save(chatID int64, record *Record) {
	s.ds.Add(strconv.FormatInt(chatID, 10), record)
}
