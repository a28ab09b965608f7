package models

// ReviewStatus is the moderation state of a user review.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// Review is a user-submitted casino review. Ratings are integers in
// [1,5]; anything else is skipped during aggregation.
type Review struct {
	Base            `bson:",inline"`
	CasinoSlug      string       `json:"casino_slug"                bson:"casino_slug"`
	UserName        string       `json:"user_name"                  bson:"user_name"`
	Rating          int          `json:"rating"                     bson:"rating"`
	Comment         string       `json:"comment,omitempty"          bson:"comment,omitempty"`
	Status          ReviewStatus `json:"status"                     bson:"status"`
	ModerationNotes string       `json:"moderation_notes,omitempty" bson:"moderation_notes,omitempty"`
}

// Click records an outbound affiliate click. UserAgent and IP are
// stamped server-side from the request, never taken from the caller.
type Click struct {
	Base       `bson:",inline"`
	CasinoSlug string `json:"casino_slug"       bson:"casino_slug"`
	Source     string `json:"source,omitempty"  bson:"source,omitempty"`
	UserAgent  string `json:"user_agent"        bson:"user_agent"`
	IP         string `json:"ip"                bson:"ip"`
}
