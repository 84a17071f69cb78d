package avatar

import "net/url"

// DefaultShareText accompanies the link in share intents.
const DefaultShareText = "Check out my HAX avatar!"

const (
	xIntentURL        = "https://x.com/intent/tweet"
	linkedInIntentURL = "https://www.linkedin.com/sharing/share-offsite/"
)

// ShareOnX returns the X (Twitter) compose intent for shareURL.
func ShareOnX(shareURL, text string) string {
	if text == "" {
		text = DefaultShareText
	}
	q := url.Values{}
	q.Set("text", text)
	q.Set("url", shareURL)
	return xIntentURL + "?" + q.Encode()
}

// ShareOnLinkedIn returns the LinkedIn share intent for shareURL.
func ShareOnLinkedIn(shareURL string) string {
	q := url.Values{}
	q.Set("url", shareURL)
	return linkedInIntentURL + "?" + q.Encode()
}
