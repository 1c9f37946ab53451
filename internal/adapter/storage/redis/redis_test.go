package redis

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"microfinance-ledger/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisConfig(t *testing.T, addr string) config.RedisConfig {
	t.Helper()
	host, portStr, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return config.RedisConfig{Enabled: true, Host: host, Port: port, Timeout: 500 * time.Millisecond}
}

func TestNewClient_Connects(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(context.Background(), redisConfig(t, mr.Addr()), zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "fx:HTG:USD", "0.0075", 0).Err())
	got, err := mr.Get("fx:HTG:USD")
	require.NoError(t, err)
	assert.Equal(t, "0.0075", got)
}

func TestNewClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := redisConfig(t, mr.Addr())
	mr.Close()

	client, err := NewClient(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), cfg.Addr())
}

func TestNewClient_HonoursContext(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(ctx, redisConfig(t, mr.Addr()), zerolog.Nop())
	assert.ErrorIs(t, err, context.Canceled)
}
