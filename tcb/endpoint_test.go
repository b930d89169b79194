package tcb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want []string
	}{
		{"127.0.0.1:80", []string{"127.0.0.1", "80"}},
		{":::a::b:", []string{"a", "b"}},
		{"abc", []string{"abc"}},
		{"", nil},
		{":::", nil},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			assert.Equal(t, c.want, Tokenize(c.in, ':'))
		})
	}
}

func TestCombineParseRoundTrip(t *testing.T) {
	t.Parallel()

	for _, ep := range []Endpoint{
		{Addr: "127.0.0.1", Port: 80},
		{Addr: "192.168.0.1", Port: 443},
		{Addr: "example.internal", Port: 0},
		{Addr: "10.1.2.3", Port: 65535},
	} {
		require.NoError(t, ep.Validate())
		key := Combine(ep)
		assert.Equal(t, key, ep.String())

		got, err := Parse(key)
		require.NoError(t, err, key)
		assert.Equal(t, ep, got)
	}
	assert.Equal(t, "127.0.0.1:80", Combine(Endpoint{Addr: "127.0.0.1", Port: 80}))
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	for _, key := range []string{
		"",
		"127.0.0.1",
		"127.0.0.1:http",
		"127.0.0.1:70000",
		"127.0.0.1:-1",
		"fe80::1:80",
	} {
		t.Run(key, func(t *testing.T) {
			_, err := Parse(key)
			assert.ErrorIs(t, err, ErrMalformedKey)
		})
	}
}

func TestEndpoint_Validate(t *testing.T) {
	t.Parallel()

	for _, ep := range []Endpoint{
		{Addr: "", Port: 80},
		{Addr: "fe80::1", Port: 80},
		{Addr: "a:", Port: 80},
		{Addr: ":a", Port: 80},
		{Addr: "h", Port: 70000},
		{Addr: "h", Port: -1},
	} {
		t.Run(ep.String(), func(t *testing.T) {
			assert.ErrorIs(t, ep.Validate(), ErrMalformedKey)
		})
	}
}
