package share

import (
	"fmt"
	"net/url"

	"auction-front/internal/auctionerrors"
)

// Platform is a destination a listing can be shared to
type Platform string

const (
	Facebook Platform = "facebook"
	Twitter  Platform = "twitter"
	LinkedIn Platform = "linkedin"
	Copy     Platform = "copy"
)

// Platforms lists every supported destination
var Platforms = []Platform{Facebook, Twitter, LinkedIn, Copy}

// URL builds the link that shares pageURL on platform. Copy returns pageURL
// unchanged so the caller can put it on the clipboard.
func URL(platform Platform, pageURL, title, description string) (string, error) {
	switch platform {
	case Facebook:
		q := url.Values{}
		q.Set("u", pageURL)
		return "https://www.facebook.com/sharer/sharer.php?" + q.Encode(), nil
	case Twitter:
		q := url.Values{}
		q.Set("url", pageURL)
		q.Set("text", "Check out this auction: "+title)
		return "https://twitter.com/intent/tweet?" + q.Encode(), nil
	case LinkedIn:
		q := url.Values{}
		q.Set("mini", "true")
		q.Set("url", pageURL)
		q.Set("title", title)
		q.Set("summary", description)
		return "https://www.linkedin.com/shareArticle?" + q.Encode(), nil
	case Copy:
		return pageURL, nil
	default:
		return "", fmt.Errorf("share: %w - %q", auctionerrors.ErrUnknownPlatform, platform)
	}
}
