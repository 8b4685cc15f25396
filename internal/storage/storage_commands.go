package storage

import "time"

// CommandRecord is one logged command execution.
type CommandRecord struct {
	UserID   int64     `json:"user_id"`
	Username string    `json:"username"`
	Command  string    `json:"command"`
	Datetime time.Time `json:"datetime"`
}

// AppendCommandToHistory appends a command history record for a chat.
func (s *Storage) AppendCommandToHistory(chatID int64, rec CommandRecord) error {
	record, err := s.getOrCreateChatRecord(chatID)
	if err != nil {
		return err
	}

	record.CommandHistory = append(record.CommandHistory, rec)
	if len(record.CommandHistory) > commandHistoryLimit {
		record.CommandHistory = record.CommandHistory[len(record.CommandHistory)-commandHistoryLimit:]
	}
	s.save(chatID, record)
	return nil
}

// FetchCommandHistory returns the logged executions for a chat, oldest
// first.
func (s *Storage) FetchCommandHistory(chatID int64) ([]CommandRecord, error) {
	record, err := s.getOrCreateChatRecord(chatID)
	if err != nil {
		return nil, err
	}
	return record.CommandHistory, nil
}
