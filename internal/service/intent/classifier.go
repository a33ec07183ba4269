// Package intent maps guest utterances to intents with ordered keyword rules.
//
// Matching is case-insensitive substring search only. The first rule that
// matches wins, so the order of the rule table is part of the contract.
package intent

import (
	"strings"

	"github.com/Domenick1991/hotelconcierge/internal/domain"
)

type Kind string

const (
	KindBookRequest       Kind = "book_request"
	KindConfirmBooking    Kind = "confirm_booking"
	KindCancelBooking     Kind = "cancel_booking"
	KindAvailabilityQuery Kind = "availability_query"
	KindPriceQuery        Kind = "price_query"
	KindFeatureQuery      Kind = "feature_query"
	KindDetailQuery       Kind = "detail_query"
	KindUnknown           Kind = "unknown"
)

// Intent is a classified utterance with its extracted slots.
type Intent struct {
	Kind     Kind
	RoomType domain.RoomType // empty when no type was mentioned
	Cheapest bool
}

// Rule is one entry of the priority table.
type Rule struct {
	Kind  Kind
	Match func(text string, hasPending bool) (Intent, bool)
}

var (
	confirmWords      = []string{"yes", "confirm", "okay", "sure"}
	cancelWords       = []string{"no", "cancel"}
	availabilityWords = []string{"available", "vacancy", "free"}
	priceWords        = []string{"price", "cost", "rate", "cheap"}
	featureWords      = []string{"feature", "amenity", "include"}
	detailWords       = []string{"info", "detail"}
)

// Rules is the priority table, evaluated top to bottom.
var Rules = []Rule{
	{Kind: KindBookRequest, Match: func(text string, _ bool) (Intent, bool) {
		if !strings.Contains(text, "book") {
			return Intent{}, false
		}
		return Intent{Kind: KindBookRequest, RoomType: findRoomType(text)}, true
	}},
	{Kind: KindConfirmBooking, Match: func(text string, hasPending bool) (Intent, bool) {
		if !hasPending || !isOneOf(strings.TrimSpace(text), confirmWords) {
			return Intent{}, false
		}
		return Intent{Kind: KindConfirmBooking}, true
	}},
	{Kind: KindCancelBooking, Match: func(text string, _ bool) (Intent, bool) {
		if !isOneOf(strings.TrimSpace(text), cancelWords) {
			return Intent{}, false
		}
		return Intent{Kind: KindCancelBooking}, true
	}},
	{Kind: KindAvailabilityQuery, Match: func(text string, _ bool) (Intent, bool) {
		if !containsAny(text, availabilityWords) {
			return Intent{}, false
		}
		return Intent{Kind: KindAvailabilityQuery, RoomType: findRoomType(text)}, true
	}},
	{Kind: KindPriceQuery, Match: func(text string, _ bool) (Intent, bool) {
		if !containsAny(text, priceWords) {
			return Intent{}, false
		}
		return Intent{Kind: KindPriceQuery, Cheapest: strings.Contains(text, "cheapest")}, true
	}},
	{Kind: KindFeatureQuery, Match: func(text string, _ bool) (Intent, bool) {
		if !containsAny(text, featureWords) {
			return Intent{}, false
		}
		return Intent{Kind: KindFeatureQuery}, true
	}},
	{Kind: KindDetailQuery, Match: func(text string, _ bool) (Intent, bool) {
		if !containsAny(text, detailWords) {
			return Intent{}, false
		}
		return Intent{Kind: KindDetailQuery}, true
	}},
}

type Classifier struct {
	rules []Rule
}

func NewClassifier() *Classifier {
	return &Classifier{rules: Rules}
}

// Classify lower-cases the utterance and returns the intent of the first matching rule.
func (c *Classifier) Classify(text string, hasPending bool) Intent {
	text = strings.ToLower(text)
	for _, rule := range c.rules {
		if in, ok := rule.Match(text, hasPending); ok {
			return in
		}
	}
	return Intent{Kind: KindUnknown}
}

func findRoomType(text string) domain.RoomType {
	for _, t := range domain.RoomTypes {
		if strings.Contains(text, strings.ToLower(string(t))) {
			return t
		}
	}
	return ""
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func isOneOf(text string, words []string) bool {
	for _, w := range words {
		if text == w {
			return true
		}
	}
	return false
}
