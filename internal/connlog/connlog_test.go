// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-broker/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_Success(t *testing.T) {
	var buf bytes.Buffer
	l := New(&logger.Logger{Logger: zerolog.New(&buf)})

	l.Log(Entry{UserID: "u1", HostID: "h1", Target: "10.0.0.5:22", Stage: StageProxyChain, Detail: "3 hops", Duration: time.Second})

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "info", got["level"])
	assert.Equal(t, "proxy_chain", got["conn_stage"])
	assert.Equal(t, "u1", got["user_id"])
	assert.Equal(t, "h1", got["host_id"])
	assert.Equal(t, "10.0.0.5:22", got["target"])
	assert.Equal(t, "3 hops", got["detail"])
	assert.Contains(t, got, "elapsed")
}

func TestLog_Failure(t *testing.T) {
	var buf bytes.Buffer
	l := New(&logger.Logger{Logger: zerolog.New(&buf)})

	l.Log(Entry{Stage: StageFailed, Err: errors.New("refused")})

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "warn", got["level"])
	assert.Equal(t, "refused", got["error"])
	assert.NotContains(t, got, "detail")
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop{}.Log(Entry{Stage: StageFailed}) })
}
