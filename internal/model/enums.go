package model

type ReviewType string

const (
	ReviewTypeBook ReviewType = "book"
	ReviewTypeApp  ReviewType = "app"
)

func (t ReviewType) Valid() bool {
	return t == ReviewTypeBook || t == ReviewTypeApp
}

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// ModerationTarget names the kind of item an admin delete applies to.
type ModerationTarget string

const (
	ModerationTargetReview ModerationTarget = "review"
	ModerationTargetBook   ModerationTarget = "book"
)
