package domain

// Subscription is a persisted saved-search filter owned by a user.
// Nil price bounds and nil keyword slices mean "no constraint on that
// dimension".
type Subscription struct {
	ID                     int64    `json:"id"`
	IDUser                 int64    `json:"id_user"`
	MinPrice               *int64   `json:"min_price"`
	MaxPrice               *int64   `json:"max_price"`
	TitleKeywords          []string `json:"title_keywords"`
	DescKeywords           []string `json:"desc_keywords"`
	AdditionalInfoKeywords []string `json:"additional_info_keywords"`
}

// SubscriptionDraft is a subscription that has not been persisted yet, so it
// carries no id. The storage layer assigns one and hands back a Subscription.
type SubscriptionDraft struct {
	IDUser                 int64    `json:"id_user"`
	MinPrice               *int64   `json:"min_price"`
	MaxPrice               *int64   `json:"max_price"`
	TitleKeywords          []string `json:"title_keywords"`
	DescKeywords           []string `json:"desc_keywords"`
	AdditionalInfoKeywords []string `json:"additional_info_keywords"`
}

// WithID attaches a database-assigned id to a draft.
func (d SubscriptionDraft) WithID(id int64) Subscription {
	return Subscription{
		ID:                     id,
		IDUser:                 d.IDUser,
		MinPrice:               d.MinPrice,
		MaxPrice:               d.MaxPrice,
		TitleKeywords:          d.TitleKeywords,
		DescKeywords:           d.DescKeywords,
		AdditionalInfoKeywords: d.AdditionalInfoKeywords,
	}
}

// Draft strips the id, e.g. before a full-replace update where the path
// parameter is authoritative.
func (s Subscription) Draft() SubscriptionDraft {
	return SubscriptionDraft{
		IDUser:                 s.IDUser,
		MinPrice:               s.MinPrice,
		MaxPrice:               s.MaxPrice,
		TitleKeywords:          s.TitleKeywords,
		DescKeywords:           s.DescKeywords,
		AdditionalInfoKeywords: s.AdditionalInfoKeywords,
	}
}
