// Package httpclient builds http.Client instances with sane pooled-transport
// defaults that can be overridden with environment variables. Try to use a
// single client and reuse it for all requests to take advantage of
// connection pooling.
//
// # Environment Variables
//
//   - HTTP_TRANSPORT_MAX_IDLE_CONNS: Maximum idle connections (default: 100)
//   - HTTP_TRANSPORT_IDLE_CONN_TIMEOUT: Idle connection timeout (default: 90s)
//   - HTTP_TRANSPORT_TLS_HANDSHAKE_TIMEOUT: TLS handshake timeout (default: 10s)
//   - HTTP_TRANSPORT_EXPECT_CONTINUE_TIMEOUT: Expect-Continue timeout (default: 1s)
//   - HTTP_TRANSPORT_DIAL_TIMEOUT: Connection dial timeout (default: 30s)
//   - HTTP_TRANSPORT_DIAL_KEEPALIVE: TCP keep-alive duration (default: 30s)
//   - HTTP_CLIENT_TIMEOUT: Whole-request timeout (default: 30s)
package httpclient

import (
	"net"
	"net/http"

	"github.com/amp-labs/amp-state/envutil"
)

type config struct {
	DisableConnectionPooling bool
	EnableDNSCache           bool
}

type Option func(*config)

func DisableConnectionPooling(c *config) {
	c.DisableConnectionPooling = true
}

func EnableDNSCache(c *config) {
	c.EnableDNSCache = true
}

func readOptions(opts ...Option) *config {
	cfg := &config{}

	for _, c := range opts {
		if c != nil {
			c(cfg)
		}
	}

	return cfg
}

// New returns a new http.Client with a pooled transport. The transport
// parameters can be fine-tuned with environment variables; the options
// control pooling and DNS caching behavior.
func New(options ...Option) *http.Client {
	cfg := readOptions(options...)

	timeout := envutil.Duration("HTTP_CLIENT_TIMEOUT",
		envutil.Default(defaultRequestTimeout)).
		ValueOrElse(defaultRequestTimeout)

	return &http.Client{
		Transport: newTransport(cfg),
		Timeout:   timeout,
	}
}

// newTransport builds a new http.Transport from the given config.
// It reads environment variables for fine-tuning transport parameters and
// applies the configuration options (connection pooling, DNS caching).
func newTransport(cfg *config) *http.Transport {
	maxIdleConns := envutil.Int("HTTP_TRANSPORT_MAX_IDLE_CONNS",
		envutil.Default(defaultMaxIdleConns)).
		ValueOrElse(defaultMaxIdleConns)

	idleConnTimeout := envutil.Duration("HTTP_TRANSPORT_IDLE_CONN_TIMEOUT",
		envutil.Default(defaultIdleConnTimeout)).
		ValueOrElse(defaultIdleConnTimeout)

	tlsHandshakeTimeout := envutil.Duration("HTTP_TRANSPORT_TLS_HANDSHAKE_TIMEOUT",
		envutil.Default(defaultTLSHandshakeTimeout)).
		ValueOrElse(defaultTLSHandshakeTimeout)

	expectContinueTimeout := envutil.Duration("HTTP_TRANSPORT_EXPECT_CONTINUE_TIMEOUT",
		envutil.Default(defaultExpectContinueTimeout)).
		ValueOrElse(defaultExpectContinueTimeout)

	dialTimeout := envutil.Duration("HTTP_TRANSPORT_DIAL_TIMEOUT",
		envutil.Default(defaultDialTimeout)).
		ValueOrElse(defaultDialTimeout)

	keepAlive := envutil.Duration("HTTP_TRANSPORT_DIAL_KEEPALIVE",
		envutil.Default(defaultKeepAlive)).
		ValueOrElse(defaultKeepAlive)

	trans := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   dialTimeout,
			KeepAlive: keepAlive,
		}).DialContext,
		MaxIdleConns:          maxIdleConns,
		IdleConnTimeout:       idleConnTimeout,
		TLSHandshakeTimeout:   tlsHandshakeTimeout,
		ExpectContinueTimeout: expectContinueTimeout,
	}

	if cfg.DisableConnectionPooling {
		trans.DisableKeepAlives = true
		trans.MaxIdleConns = -1
	}

	if cfg.EnableDNSCache {
		useDNSCacheDialer(trans, dialTimeout, keepAlive)
	}

	return trans
}
