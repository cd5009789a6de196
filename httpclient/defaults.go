package httpclient

import "time"

const (
	defaultIdleConnTimeout       = 90 * time.Second
	defaultMaxIdleConns          = 100
	defaultTLSHandshakeTimeout   = 10 * time.Second
	defaultExpectContinueTimeout = 1 * time.Second
	defaultDialTimeout           = 30 * time.Second //nolint:gomnd,mnd
	defaultKeepAlive             = 30 * time.Second //nolint:gomnd,mnd
	defaultRequestTimeout        = 30 * time.Second //nolint:gomnd,mnd
)
