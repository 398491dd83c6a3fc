package share

import (
	"errors"
	"net/url"
	"testing"

	"auction-front/internal/auctionerrors"

	"github.com/stretchr/testify/require"
)

func TestURL(t *testing.T) {
	page := "http://localhost:5173/listing/1?ref=home"

	tests := []struct {
		name      string
		platform  Platform
		host      string
		path      string
		wantQuery map[string]string
	}{
		{
			name:      "facebook",
			platform:  Facebook,
			host:      "www.facebook.com",
			path:      "/sharer/sharer.php",
			wantQuery: map[string]string{"u": page},
		},
		{
			name:     "twitter",
			platform: Twitter,
			host:     "twitter.com",
			path:     "/intent/tweet",
			wantQuery: map[string]string{
				"url":  page,
				"text": "Check out this auction: 2022 Tesla Model 3",
			},
		},
		{
			name:     "linkedin",
			platform: LinkedIn,
			host:     "www.linkedin.com",
			path:     "/shareArticle",
			wantQuery: map[string]string{
				"mini":    "true",
				"url":     page,
				"title":   "2022 Tesla Model 3",
				"summary": "Low mileage & full self-driving",
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			raw, err := URL(tc.platform, page, "2022 Tesla Model 3", "Low mileage & full self-driving")
			require.NoError(t, err)

			u, err := url.Parse(raw)
			require.NoError(t, err)
			require.Equal(t, "https", u.Scheme)
			require.Equal(t, tc.host, u.Host)
			require.Equal(t, tc.path, u.Path)

			q := u.Query()
			require.Len(t, q, len(tc.wantQuery))
			for k, v := range tc.wantQuery {
				require.Equal(t, v, q.Get(k), "query param %s", k)
			}
		})
	}
}

func TestURL_CopyReturnsPage(t *testing.T) {
	got, err := URL(Copy, "http://example.com/listing/2", "Beachfront Villa", "")
	require.NoError(t, err)
	require.Equal(t, "http://example.com/listing/2", got)
}

func TestURL_UnknownPlatform(t *testing.T) {
	_, err := URL("myspace", "http://example.com", "t", "d")
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrUnknownPlatform))
}
