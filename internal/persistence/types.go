package persistence

import (
	"sync"
	"time"
)

type statusCode string

const (
	StatusCodeConnectError statusCode = "connect_error"
	StatusCodeInitialising statusCode = "init"
	StatusCodeShuttingDown statusCode = "shutdown"
	StatusCodeOk           statusCode = "ok"
	StatusCodePingError    statusCode = "ping_error"
)

type Status struct {
	code          statusCode
	lastChangedAt time.Time
	lastUpdatedAt time.Time
	err           error
	mutex         sync.Mutex
}

func (s *Status) GetCode() statusCode {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.code
}

func (s *Status) GetError() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.err
}

func (s *Status) GetLastChangedAt() time.Time {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.lastChangedAt
}

func (s *Status) GetLastUpdatedAt() time.Time {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.lastUpdatedAt
}

func (s *Status) set(code statusCode, err error) {
	s.mutex.Lock()
	if code != s.code {
		s.lastChangedAt = time.Now()
	}
	s.code = code
	s.err = err
	s.lastUpdatedAt = time.Now()
	s.mutex.Unlock()
}
