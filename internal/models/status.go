package models

import (
	"fmt"
	"strings"
)

// EntityKind names an entity type that carries a status lifecycle
type EntityKind string

const (
	KindBooking EntityKind = "booking"
	KindInquiry EntityKind = "inquiry"
	KindReview  EntityKind = "review"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// InquiryStatus represents the status of an inquiry or contact message
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusRead      InquiryStatus = "read"
	InquiryStatusResponded InquiryStatus = "responded"
)

// ReviewStatus represents the moderation status of a review
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// statusVocabulary lists the allowed statuses per entity, initial status first.
//
// Any status in the vocabulary may be set from any other one. Staff use this to
// reopen cancelled bookings or move a review back to pending.
var statusVocabulary = map[EntityKind][]string{
	KindBooking: {
		string(BookingStatusPending),
		string(BookingStatusConfirmed),
		string(BookingStatusCancelled),
	},
	KindInquiry: {
		string(InquiryStatusNew),
		string(InquiryStatusRead),
		string(InquiryStatusResponded),
	},
	KindReview: {
		string(ReviewStatusPending),
		string(ReviewStatusApproved),
		string(ReviewStatusRejected),
	},
}

// InvalidStatusError is returned when a status is outside an entity's vocabulary
type InvalidStatusError struct {
	Kind   EntityKind
	Status string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid %s status %q: must be one of %s",
		e.Kind, e.Status, strings.Join(AllowedStatuses(e.Kind), ", "))
}

// AllowedStatuses returns the status vocabulary for an entity kind
func AllowedStatuses(kind EntityKind) []string {
	allowed := statusVocabulary[kind]
	out := make([]string, len(allowed))
	copy(out, allowed)
	return out
}

// IsValidStatus reports whether status belongs to the entity's vocabulary
func IsValidStatus(kind EntityKind, status string) bool {
	for _, s := range statusVocabulary[kind] {
		if s == status {
			return true
		}
	}
	return false
}

// ParseStatus checks status against the entity's vocabulary.
// Only membership is checked; the current status of the entity is irrelevant.
func ParseStatus(kind EntityKind, status string) (string, error) {
	if !IsValidStatus(kind, status) {
		return "", &InvalidStatusError{Kind: kind, Status: status}
	}
	return status, nil
}
