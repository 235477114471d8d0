// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package connlog records the stages of outbound connection attempts for
// operators. Entries never contain credentials.
package connlog

import (
	"time"

	"github.com/MKhiriev/go-vault-broker/internal/logger"
)

// Stage names a step of a connection attempt.
type Stage string

const (
	StageResolving    Stage = "resolving"
	StageProxy        Stage = "proxy"
	StageProxyChain   Stage = "proxy_chain"
	StageDirect       Stage = "direct"
	StageGatewayProbe Stage = "gateway_probe"
	StageGatewayToken Stage = "gateway_token"
	StageEstablished  Stage = "established"
	StageFailed       Stage = "failed"
)

// Entry is one connection log record.
type Entry struct {
	UserID   string
	HostID   string
	Target   string
	Stage    Stage
	Detail   string
	Err      error
	Duration time.Duration
}

// Logger receives connection log entries.
type Logger interface {
	Log(e Entry)
}

type zerologLogger struct {
	logger *logger.Logger
}

// New returns a Logger writing entries as structured events to log.
func New(log *logger.Logger) Logger {
	return &zerologLogger{logger: log}
}

func (l *zerologLogger) Log(e Entry) {
	ev := l.logger.Info()
	if e.Err != nil {
		ev = l.logger.Warn().Err(e.Err)
	}
	ev = ev.Str("conn_stage", string(e.Stage)).
		Str("user_id", e.UserID).
		Str("host_id", e.HostID).
		Str("target", e.Target)
	if e.Detail != "" {
		ev = ev.Str("detail", e.Detail)
	}
	if e.Duration > 0 {
		ev = ev.Dur("elapsed", e.Duration)
	}
	ev.Msg("connection log")
}

// Nop discards every entry.
type Nop struct{}

func (Nop) Log(Entry) {}
