// internal/service/message_service.go
package service

import (
	"fmt"
	"time"
)

// MessageService produces the "AI" message suggestions. These are three
// canned templates behind an artificial delay; no model is ever called. The
// delay is injectable so tests run instantly.
type MessageService struct {
	Delay time.Duration
}

const defaultAudienceLabel = "loyal customers"

func (s *MessageService) Suggestions(campaignName, audienceLabel string) []string {
	if audienceLabel == "" {
		audienceLabel = defaultAudienceLabel
	}

	time.Sleep(s.Delay)

	return []string{
		fmt.Sprintf("Dear %s, we're excited to announce our latest collection of products designed specifically with you in mind. Check out our exclusive offers and enjoy special discounts as a valued customer.", audienceLabel),
		fmt.Sprintf("Thank you for being part of our %s community! We've prepared something special for you - a new line of products that we believe you'll love. Use code SPECIAL10 for an additional 10%% off.", audienceLabel),
		fmt.Sprintf("As one of our %s, we want to give you early access to our upcoming sale. Mark your calendar for next weekend and be the first to explore our new collection with exclusive pricing just for you.", audienceLabel),
	}
}
